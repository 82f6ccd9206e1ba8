package helper

import (
	"strings"

	"backend-promo/internal/models"
)

// MatchReply - Cari jawaban kalengan untuk pesan visitor di demo chat.
// Match pakai substring case-insensitive, urutan list menentukan prioritas.
// Return false kalau tidak ada keyword yang cocok.
func MatchReply(replies []models.DemoReply, message string) (string, bool) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return "", false
	}

	for _, r := range replies {
		if r.Keyword == "" {
			continue
		}
		if strings.Contains(msg, strings.ToLower(r.Keyword)) {
			return r.Reply, true
		}
	}

	return "", false
}
