package handler

import (
	"backend-promo/internal/config"
	"backend-promo/internal/helper"
	"backend-promo/internal/models"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

var demoClientCounter uint64 // atomic

const demoFallbackReply = "Maaf, aku belum ngerti. Coba tanya soal harga, fitur, atau cara daftar ya!"

// loadDemoReplies - Ambil jawaban kalengan aktif, urutan insert menentukan prioritas match
func loadDemoReplies() ([]models.DemoReply, error) {
	query := `
		SELECT id, keyword, reply, is_active, created_at, updated_at
		FROM demo_replies
		WHERE is_active = 'y'
		ORDER BY id ASC
	`

	rows, err := config.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := []models.DemoReply{}
	for rows.Next() {
		var r models.DemoReply
		err := rows.Scan(
			&r.ID,
			&r.Keyword,
			&r.Reply,
			&r.IsActive,
			&r.CreatedAt,
			&r.UpdatedAt,
		)
		if err != nil {
			continue
		}
		replies = append(replies, r)
	}

	return replies, nil
}

// DemoChatWS - Widget demo chat di landing page.
// Satu koneksi satu visitor, jawaban dari tabel demo_replies.
func DemoChatWS(c *websocket.Conn) {
	id := atomic.AddUint64(&demoClientCounter, 1)
	clientID := fmt.Sprintf("demo-%d", id)

	log.Printf("[demo] %s connecting from %s", clientID, c.RemoteAddr())
	defer log.Printf("[demo] %s closed", clientID)

	replies, err := loadDemoReplies()
	if err != nil {
		_ = c.WriteJSON(fiber.Map{
			"type":    "error",
			"message": "Demo chat lagi tidak tersedia",
		})
		return
	}

	// Sapaan pembuka
	_ = c.WriteJSON(fiber.Map{
		"type":    "bot_message",
		"message": "Halo! Aku Tanyo. Ada yang bisa dibantu?",
	})

	// Read loop
	for {
		c.SetReadDeadline(time.Now().Add(5 * time.Minute))
		_, msg, err := c.ReadMessage()
		if err != nil {
			return
		}

		reply, ok := helper.MatchReply(replies, string(msg))
		if !ok {
			reply = demoFallbackReply
		}

		c.SetWriteDeadline(time.Now().Add(3 * time.Second))
		if err := c.WriteJSON(fiber.Map{
			"type":    "bot_message",
			"message": reply,
		}); err != nil {
			log.Printf("[demo] %s write error: %v", clientID, err)
			return
		}
	}
}
