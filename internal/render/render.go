package render

import (
	"embed"

	pongo2 "github.com/flosch/pongo2/v6"

	"backend-promo/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	sponsorTpl = mustLoad("templates/sponsor_cards.html")
	faqTpl     = mustLoad("templates/faq_blocks.html")
)

func mustLoad(name string) *pongo2.Template {
	raw, err := templateFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return pongo2.Must(pongo2.FromBytes(raw))
}

// SponsorCards - Render daftar sponsor jadi fragment HTML.
// Satu card per sponsor, urutan input dipertahankan, field kosong jadi string kosong.
func SponsorCards(sponsors []models.Sponsor) (string, error) {
	return sponsorTpl.Execute(pongo2.Context{"sponsors": sponsors})
}

// FAQBlocks - Render daftar FAQ (sudah flat) jadi fragment HTML.
func FAQBlocks(items []models.FAQResponse) (string, error) {
	return faqTpl.Execute(pongo2.Context{"items": items})
}

// FlattenFAQ - Gabungkan semua kategori jadi satu list urut:
// kategori sesuai urutan simpan, item sesuai urutan di dalam kategori.
// Tidak ada sort ulang, dedup, atau filter.
func FlattenFAQ(groups []models.FAQGroup) []models.FAQResponse {
	items := []models.FAQResponse{}
	for _, g := range groups {
		items = append(items, g.Items...)
	}
	return items
}
