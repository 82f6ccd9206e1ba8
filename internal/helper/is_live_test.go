package helper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-promo/internal/helper"
)

const layout = "2006-01-02 15:04:05"

func jakartaNow(t *testing.T) time.Time {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return time.Now().In(loc)
}

func TestIsCampaignActive(t *testing.T) {
	now := jakartaNow(t)

	mulai := now.Add(-1 * time.Hour).Format(layout)
	akhir := now.Add(1 * time.Hour).Format(layout)
	assert.True(t, helper.IsCampaignActive(mulai, akhir))
}

func TestIsCampaignActivePastWindow(t *testing.T) {
	now := jakartaNow(t)

	mulai := now.Add(-48 * time.Hour).Format(layout)
	akhir := now.Add(-24 * time.Hour).Format(layout)
	assert.False(t, helper.IsCampaignActive(mulai, akhir))
}

func TestIsCampaignActiveFutureWindow(t *testing.T) {
	now := jakartaNow(t)

	mulai := now.Add(24 * time.Hour).Format(layout)
	akhir := now.Add(48 * time.Hour).Format(layout)
	assert.False(t, helper.IsCampaignActive(mulai, akhir))
}

func TestIsCampaignActiveReversedWindow(t *testing.T) {
	now := jakartaNow(t)

	mulai := now.Add(1 * time.Hour).Format(layout)
	akhir := now.Add(-1 * time.Hour).Format(layout)
	assert.False(t, helper.IsCampaignActive(mulai, akhir))
}

func TestIsCampaignActiveWithoutSeconds(t *testing.T) {
	now := jakartaNow(t)

	// Format dari form admin kadang cuma sampai menit
	mulai := now.Add(-1 * time.Hour).Format("2006-01-02 15:04")
	akhir := now.Add(1 * time.Hour).Format("2006-01-02 15:04")
	assert.True(t, helper.IsCampaignActive(mulai, akhir))
}

func TestIsCampaignActiveBadFormat(t *testing.T) {
	assert.False(t, helper.IsCampaignActive("kemarin", "besok"))
	assert.False(t, helper.IsCampaignActive("", ""))
}
