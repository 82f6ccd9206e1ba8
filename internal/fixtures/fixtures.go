package fixtures

import (
	"database/sql"
	"embed"
	"encoding/json"
	"log"
)

//go:embed data/*.json
var dataFS embed.FS

type SponsorFixture struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	LinkURL     string `json:"link_url"`
	SortOrder   int    `json:"sort_order"`
}

type FAQItemFixture struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	ImageURL string `json:"image_url"`
}

type FAQCategoryFixture struct {
	NamaKategori string           `json:"nama_kategori"`
	Slug         string           `json:"slug"`
	SortOrder    int              `json:"sort_order"`
	Items        []FAQItemFixture `json:"items"`
}

type DemoReplyFixture struct {
	Keyword string `json:"keyword"`
	Reply   string `json:"reply"`
}

type SiteConfigFixture struct {
	NamaSitus     string `json:"nama_situs"`
	Tagline       string `json:"tagline"`
	TextMarque    string `json:"text_marque"`
	KampanyeMulai string `json:"kampanye_mulai"`
	KampanyeAkhir string `json:"kampanye_akhir"`
}

func LoadSponsors() ([]SponsorFixture, error) {
	raw, err := dataFS.ReadFile("data/sponsors.json")
	if err != nil {
		return nil, err
	}

	var sponsors []SponsorFixture
	if err := json.Unmarshal(raw, &sponsors); err != nil {
		return nil, err
	}
	return sponsors, nil
}

func LoadFAQCategories() ([]FAQCategoryFixture, error) {
	raw, err := dataFS.ReadFile("data/faqs.json")
	if err != nil {
		return nil, err
	}

	var categories []FAQCategoryFixture
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func LoadDemoReplies() ([]DemoReplyFixture, error) {
	raw, err := dataFS.ReadFile("data/demo_replies.json")
	if err != nil {
		return nil, err
	}

	var replies []DemoReplyFixture
	if err := json.Unmarshal(raw, &replies); err != nil {
		return nil, err
	}
	return replies, nil
}

func LoadSiteConfig() (SiteConfigFixture, error) {
	var cfg SiteConfigFixture

	raw, err := dataFS.ReadFile("data/site_config.json")
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Seed - Isi tabel konten dari fixture bawaan.
// Hanya jalan kalau tabel masih kosong, jadi hasil edit admin tidak ketimpa.
func Seed(db *sql.DB) {
	seedSponsors(db)
	seedFAQs(db)
	seedDemoReplies(db)
	seedSiteConfig(db)
}

func tableEmpty(db *sql.DB, table string) bool {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		log.Printf("[seed] gagal cek tabel %s: %v", table, err)
		return false
	}
	return count == 0
}

func seedSponsors(db *sql.DB) {
	if !tableEmpty(db, "sponsors") {
		return
	}

	sponsors, err := LoadSponsors()
	if err != nil {
		log.Printf("[seed] fixture sponsor rusak: %v", err)
		return
	}

	for _, s := range sponsors {
		_, err := db.Exec(
			"INSERT INTO sponsors (title, description, image_url, link_url, is_active, sort_order) VALUES (?, ?, ?, ?, 'y', ?)",
			s.Title, s.Description, s.ImageURL, s.LinkURL, s.SortOrder,
		)
		if err != nil {
			log.Printf("[seed] gagal insert sponsor %q: %v", s.Title, err)
		}
	}

	log.Printf("[seed] %d sponsor dimuat dari fixture", len(sponsors))
}

func seedFAQs(db *sql.DB) {
	if !tableEmpty(db, "faq_categories") {
		return
	}

	categories, err := LoadFAQCategories()
	if err != nil {
		log.Printf("[seed] fixture FAQ rusak: %v", err)
		return
	}

	totalItems := 0
	for _, cat := range categories {
		result, err := db.Exec(
			"INSERT INTO faq_categories (nama_kategori, slug, is_active, sort_order) VALUES (?, ?, 'y', ?)",
			cat.NamaKategori, cat.Slug, cat.SortOrder,
		)
		if err != nil {
			log.Printf("[seed] gagal insert kategori %q: %v", cat.NamaKategori, err)
			continue
		}

		kategoriID, _ := result.LastInsertId()

		for i, item := range cat.Items {
			var imageURL interface{}
			if item.ImageURL != "" {
				imageURL = item.ImageURL
			}

			_, err := db.Exec(
				"INSERT INTO faqs (kategori_id, question, answer, image_url, is_active, sort_order) VALUES (?, ?, ?, ?, 'y', ?)",
				kategoriID, item.Question, item.Answer, imageURL, i+1,
			)
			if err != nil {
				log.Printf("[seed] gagal insert FAQ %q: %v", item.Question, err)
				continue
			}
			totalItems++
		}
	}

	log.Printf("[seed] %d kategori FAQ (%d item) dimuat dari fixture", len(categories), totalItems)
}

func seedDemoReplies(db *sql.DB) {
	if !tableEmpty(db, "demo_replies") {
		return
	}

	replies, err := LoadDemoReplies()
	if err != nil {
		log.Printf("[seed] fixture demo reply rusak: %v", err)
		return
	}

	for _, r := range replies {
		_, err := db.Exec(
			"INSERT INTO demo_replies (keyword, reply, is_active) VALUES (?, ?, 'y')",
			r.Keyword, r.Reply,
		)
		if err != nil {
			log.Printf("[seed] gagal insert demo reply %q: %v", r.Keyword, err)
		}
	}

	log.Printf("[seed] %d demo reply dimuat dari fixture", len(replies))
}

func seedSiteConfig(db *sql.DB) {
	if !tableEmpty(db, "site_configs") {
		return
	}

	cfg, err := LoadSiteConfig()
	if err != nil {
		log.Printf("[seed] fixture site config rusak: %v", err)
		return
	}

	_, err = db.Exec(
		"INSERT INTO site_configs (nama_situs, tagline, text_marque, kampanye_mulai, kampanye_akhir) VALUES (?, ?, ?, ?, ?)",
		cfg.NamaSitus, cfg.Tagline, cfg.TextMarque, cfg.KampanyeMulai, cfg.KampanyeAkhir,
	)
	if err != nil {
		log.Printf("[seed] gagal insert site config: %v", err)
		return
	}

	log.Println("[seed] site config dimuat dari fixture")
}
