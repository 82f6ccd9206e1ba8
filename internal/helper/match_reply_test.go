package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend-promo/internal/helper"
	"backend-promo/internal/models"
)

func testReplies() []models.DemoReply {
	return []models.DemoReply{
		{Keyword: "harga", Reply: "Versi dasar gratis."},
		{Keyword: "fitur", Reply: "Tanyo bisa jawab FAQ."},
		{Keyword: "gratis", Reply: "Ya, versi dasar gratis selamanya."},
	}
}

func TestMatchReply(t *testing.T) {
	reply, ok := helper.MatchReply(testReplies(), "berapa harga langganannya?")
	assert.True(t, ok)
	assert.Equal(t, "Versi dasar gratis.", reply)
}

func TestMatchReplyCaseInsensitive(t *testing.T) {
	reply, ok := helper.MatchReply(testReplies(), "FITUR apa saja?")
	assert.True(t, ok)
	assert.Equal(t, "Tanyo bisa jawab FAQ.", reply)
}

func TestMatchReplyPriorityOrder(t *testing.T) {
	// "harga" dan "gratis" dua-duanya cocok, yang duluan di list yang menang
	reply, ok := helper.MatchReply(testReplies(), "harga gratis?")
	assert.True(t, ok)
	assert.Equal(t, "Versi dasar gratis.", reply)
}

func TestMatchReplyNoMatch(t *testing.T) {
	_, ok := helper.MatchReply(testReplies(), "cuaca hari ini gimana")
	assert.False(t, ok)
}

func TestMatchReplyEmptyMessage(t *testing.T) {
	_, ok := helper.MatchReply(testReplies(), "   ")
	assert.False(t, ok)
}

func TestMatchReplySkipsEmptyKeyword(t *testing.T) {
	replies := []models.DemoReply{
		{Keyword: "", Reply: "tidak boleh kepilih"},
		{Keyword: "halo", Reply: "Halo juga!"},
	}

	reply, ok := helper.MatchReply(replies, "halo bot")
	assert.True(t, ok)
	assert.Equal(t, "Halo juga!", reply)
}
