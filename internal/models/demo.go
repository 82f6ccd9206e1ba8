package models

import "time"

// DemoReply - Jawaban kalengan untuk widget demo chat di landing page
type DemoReply struct {
	ID        int64     `json:"id"`
	Keyword   string    `json:"keyword"`
	Reply     string    `json:"reply"`
	IsActive  string    `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
