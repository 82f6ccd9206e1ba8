package fixtures_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-promo/internal/fixtures"
)

func TestLoadSponsors(t *testing.T) {
	sponsors, err := fixtures.LoadSponsors()
	require.NoError(t, err)
	require.NotEmpty(t, sponsors)

	for _, s := range sponsors {
		assert.NotEmpty(t, s.Title)
		assert.True(t, strings.HasPrefix(s.LinkURL, "https://") || strings.HasPrefix(s.LinkURL, "http://"),
			"link sponsor %q harus absolut", s.Title)
	}
}

func TestLoadFAQCategories(t *testing.T) {
	categories, err := fixtures.LoadFAQCategories()
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	for _, cat := range categories {
		assert.NotEmpty(t, cat.NamaKategori)
		assert.NotEmpty(t, cat.Slug)
		assert.NotEmpty(t, cat.Items, "kategori %q tidak boleh kosong", cat.NamaKategori)

		for _, item := range cat.Items {
			assert.NotEmpty(t, item.Question)
			assert.NotEmpty(t, item.Answer)
		}
	}
}

func TestLoadDemoReplies(t *testing.T) {
	replies, err := fixtures.LoadDemoReplies()
	require.NoError(t, err)
	require.NotEmpty(t, replies)

	for _, r := range replies {
		assert.NotEmpty(t, r.Keyword)
		assert.NotEmpty(t, r.Reply)
	}
}

func TestLoadSiteConfig(t *testing.T) {
	cfg, err := fixtures.LoadSiteConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.NamaSitus)
	assert.NotEmpty(t, cfg.KampanyeMulai)
	assert.NotEmpty(t, cfg.KampanyeAkhir)
}
