package models

import (
	"database/sql"
	"time"
)

type FAQCategory struct {
	ID           int64     `json:"id"`
	NamaKategori string    `json:"nama_kategori"`
	Slug         string    `json:"slug"`
	IsActive     string    `json:"is_active"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FAQ struct {
	ID         int64          `json:"id"`
	KategoriID int64          `json:"kategori_id"`
	Question   string         `json:"question"`
	Answer     string         `json:"answer"`
	ImageURL   sql.NullString `json:"-"`
	IsActive   string         `json:"is_active"`
	SortOrder  int            `json:"sort_order"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// FAQResponse - DTO supaya image_url keluar sebagai string biasa (kosong jika null)
type FAQResponse struct {
	ID         int64     `json:"id"`
	KategoriID int64     `json:"kategori_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	ImageURL   string    `json:"image_url"`
	IsActive   string    `json:"is_active"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FAQGroup - Satu kategori plus item-item di dalamnya, urut sesuai display order
type FAQGroup struct {
	Kategori FAQCategory   `json:"kategori"`
	Items    []FAQResponse `json:"items"`
}

func ToFAQResponse(f FAQ) FAQResponse {
	imageURL := ""
	if f.ImageURL.Valid {
		imageURL = f.ImageURL.String
	}

	return FAQResponse{
		ID:         f.ID,
		KategoriID: f.KategoriID,
		Question:   f.Question,
		Answer:     f.Answer,
		ImageURL:   imageURL,
		IsActive:   f.IsActive,
		SortOrder:  f.SortOrder,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
