package handler

import (
	"backend-promo/internal/config"
	"backend-promo/internal/helper"
	"backend-promo/internal/models"
	"backend-promo/internal/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SiteWS - Landing page subscribe ke perubahan site config (marquee, kampanye)
func SiteWS(c *websocket.Conn) {
	realtime.Landing.Register <- c
	defer func() {
		realtime.Landing.Unregister <- c
	}()

	var cfg models.SiteConfig
	err := config.DB.QueryRow(`
		SELECT id, nama_situs, tagline, text_marque, kampanye_mulai, kampanye_akhir
		FROM site_configs
		LIMIT 1
	`).Scan(&cfg.ID, &cfg.NamaSitus, &cfg.Tagline, &cfg.TextMarque, &cfg.KampanyeMulai, &cfg.KampanyeAkhir)

	if err != nil {
		_ = c.WriteJSON(fiber.Map{
			"type":    "error",
			"message": "Konfigurasi situs belum diatur",
		})
		return
	}

	_ = c.WriteJSON(fiber.Map{
		"type":           "site_config",
		"data":           cfg,
		"kampanye_aktif": helper.IsCampaignActive(cfg.KampanyeMulai, cfg.KampanyeAkhir),
	})

	// listen client
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
