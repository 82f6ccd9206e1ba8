package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-promo/internal/models"
	"backend-promo/internal/render"
)

func sponsor(title, desc, image, link string) models.Sponsor {
	return models.Sponsor{
		Title:       title,
		Description: desc,
		ImageURL:    image,
		LinkURL:     link,
	}
}

func faqItem(question, answer, image string) models.FAQResponse {
	return models.FAQResponse{
		Question: question,
		Answer:   answer,
		ImageURL: image,
	}
}

func TestSponsorCards(t *testing.T) {
	sponsors := []models.Sponsor{
		sponsor("Acme", "Great tools", "acme.png", "https://acme.example"),
		sponsor("CloudKita", "Hosting lokal", "ck.png", "https://cloudkita.example.com"),
		sponsor("PayLancar", "Payment gateway", "pl.png", "https://paylancar.example.com"),
	}

	html, err := render.SponsorCards(sponsors)
	require.NoError(t, err)

	// Satu card per sponsor
	assert.Equal(t, len(sponsors), strings.Count(html, `class="sponsor-card"`))

	// Link target sesuai, dibuka di luar halaman
	for _, s := range sponsors {
		assert.Contains(t, html, `href="`+s.LinkURL+`"`)
	}
	assert.Equal(t, len(sponsors), strings.Count(html, `target="_blank"`))

	// Urutan input dipertahankan
	posAcme := strings.Index(html, "Acme")
	posCK := strings.Index(html, "CloudKita")
	posPL := strings.Index(html, "PayLancar")
	assert.True(t, posAcme < posCK && posCK < posPL)
}

func TestSponsorCardsEmpty(t *testing.T) {
	html, err := render.SponsorCards([]models.Sponsor{})
	require.NoError(t, err)
	assert.Zero(t, strings.Count(html, `class="sponsor-card"`))
}

func TestSponsorCardsMissingFields(t *testing.T) {
	// Field kosong tetap render, tidak boleh error
	html, err := render.SponsorCards([]models.Sponsor{sponsor("", "", "", "")})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(html, `class="sponsor-card"`))
	assert.Contains(t, html, `href=""`)
	assert.Contains(t, html, `src=""`)
}

func TestSponsorCardsEscapesMarkup(t *testing.T) {
	html, err := render.SponsorCards([]models.Sponsor{
		sponsor("<script>alert(1)</script>", "a & b", "x.png", "https://x.example"),
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &amp; b")
}

func TestSponsorCardsIdempotent(t *testing.T) {
	sponsors := []models.Sponsor{
		sponsor("Acme", "Great tools", "acme.png", "https://acme.example"),
	}

	first, err := render.SponsorCards(sponsors)
	require.NoError(t, err)
	second, err := render.SponsorCards(sponsors)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFlattenFAQ(t *testing.T) {
	groups := []models.FAQGroup{
		{
			Kategori: models.FAQCategory{NamaKategori: "Umum"},
			Items: []models.FAQResponse{
				faqItem("Apa itu?", "Sebuah bot.", ""),
				faqItem("Gratis?", "Versi dasar gratis.", ""),
			},
		},
		{
			Kategori: models.FAQCategory{NamaKategori: "Langganan"},
			Items: []models.FAQResponse{
				faqItem("Cara bayar?", "Lewat PayLancar.", ""),
			},
		},
	}

	flat := render.FlattenFAQ(groups)

	// Jumlah item = total semua kategori
	require.Len(t, flat, 3)

	// Urutan: kategori dulu, lalu item di dalamnya. Tanpa sort ulang.
	assert.Equal(t, "Apa itu?", flat[0].Question)
	assert.Equal(t, "Gratis?", flat[1].Question)
	assert.Equal(t, "Cara bayar?", flat[2].Question)
}

func TestFlattenFAQEmpty(t *testing.T) {
	assert.Empty(t, render.FlattenFAQ([]models.FAQGroup{}))
	assert.Empty(t, render.FlattenFAQ([]models.FAQGroup{
		{Kategori: models.FAQCategory{NamaKategori: "Kosong"}, Items: []models.FAQResponse{}},
	}))
}

func TestFlattenFAQKeepsDuplicates(t *testing.T) {
	groups := []models.FAQGroup{
		{Items: []models.FAQResponse{faqItem("Sama?", "Ya.", "")}},
		{Items: []models.FAQResponse{faqItem("Sama?", "Ya.", "")}},
	}

	// Tidak ada dedup
	assert.Len(t, render.FlattenFAQ(groups), 2)
}

func TestFAQBlocks(t *testing.T) {
	items := []models.FAQResponse{
		faqItem("What is it?", "A bot.", ""),
		faqItem("Is it free?", "Yes.", "https://cdn.example/free.png"),
	}

	html, err := render.FAQBlocks(items)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, `class="faq-block"`))

	// Urutan block sesuai urutan input
	posFirst := strings.Index(html, "What is it?")
	posSecond := strings.Index(html, "Is it free?")
	assert.True(t, posFirst >= 0 && posFirst < posSecond)

	// Ilustrasi hanya muncul kalau image_url terisi
	assert.Equal(t, 1, strings.Count(html, `class="faq-illustration"`))
	assert.Contains(t, html, `src="https://cdn.example/free.png"`)
}

func TestFAQBlocksEmpty(t *testing.T) {
	html, err := render.FAQBlocks([]models.FAQResponse{})
	require.NoError(t, err)
	assert.Zero(t, strings.Count(html, `class="faq-block"`))
}

func TestFAQBlocksIdempotent(t *testing.T) {
	items := []models.FAQResponse{faqItem("Apa itu Tanyo?", "Chat-bot.", "")}

	first, err := render.FAQBlocks(items)
	require.NoError(t, err)
	second, err := render.FAQBlocks(items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
