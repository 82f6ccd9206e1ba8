package models

import "time"

type Sponsor struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	LinkURL     string    `json:"link_url"`
	IsActive    string    `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSponsorRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	ImageURL    string `json:"image_url" validate:"max=500"`
	LinkURL     string `json:"link_url" validate:"required,max=500"`
	IsActive    string `json:"is_active" validate:"omitempty,oneof=y n"`
	SortOrder   int    `json:"sort_order" validate:"min=0"`
}

type UpdateSponsorRequest struct {
	Title       string `json:"title" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=500"`
	LinkURL     string `json:"link_url" validate:"omitempty,max=500"`
	IsActive    string `json:"is_active" validate:"omitempty,oneof=y n"`
	SortOrder   *int   `json:"sort_order" validate:"omitempty,min=0"`
}
