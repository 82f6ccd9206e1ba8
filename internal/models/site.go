package models

type SiteConfig struct {
	ID            int64  `json:"id"`
	NamaSitus     string `json:"nama_situs"`
	Tagline       string `json:"tagline"`
	TextMarque    string `json:"text_marque"`
	KampanyeMulai string `json:"kampanye_mulai"` // format: "2006-01-02 15:04:05"
	KampanyeAkhir string `json:"kampanye_akhir"` // format: "2006-01-02 15:04:05"
}

type CreateSiteConfigRequest struct {
	NamaSitus     string `json:"nama_situs" validate:"required,max=255"`
	Tagline       string `json:"tagline" validate:"max=255"`
	TextMarque    string `json:"text_marque" validate:"max=500"`
	KampanyeMulai string `json:"kampanye_mulai" validate:"required"`
	KampanyeAkhir string `json:"kampanye_akhir" validate:"required"`
}

type UpdateSiteConfigRequest struct {
	NamaSitus     string `json:"nama_situs" validate:"omitempty,max=255"`
	Tagline       string `json:"tagline" validate:"omitempty,max=255"`
	TextMarque    string `json:"text_marque" validate:"omitempty,max=500"`
	KampanyeMulai string `json:"kampanye_mulai" validate:"omitempty"`
	KampanyeAkhir string `json:"kampanye_akhir" validate:"omitempty"`
}
