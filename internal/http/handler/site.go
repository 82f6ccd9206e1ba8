package handler

import (
	"backend-promo/internal/config"
	"backend-promo/internal/helper"
	"backend-promo/internal/models"
	"backend-promo/internal/realtime"
	"database/sql"
	"encoding/json"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var datetimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} ([0-1][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// GetSiteConfig - Public endpoint untuk konfigurasi situs + status kampanye
func GetSiteConfig(c *fiber.Ctx) error {
	RecordPageView("site")

	var cfg models.SiteConfig
	query := "SELECT id, nama_situs, tagline, text_marque, kampanye_mulai, kampanye_akhir FROM site_configs LIMIT 1"

	err := config.DB.QueryRow(query).Scan(
		&cfg.ID,
		&cfg.NamaSitus,
		&cfg.Tagline,
		&cfg.TextMarque,
		&cfg.KampanyeMulai,
		&cfg.KampanyeAkhir,
	)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Konfigurasi situs belum diatur",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil konfigurasi situs",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"data":           cfg,
		"kampanye_aktif": helper.IsCampaignActive(cfg.KampanyeMulai, cfg.KampanyeAkhir),
	})
}

// CreateSiteConfig - Buat konfigurasi situs (hanya jika belum ada)
func CreateSiteConfig(c *fiber.Ctx) error {
	// Role sudah divalidasi di middleware (super_user only)
	var req struct {
		NamaSitus     string `json:"nama_situs"`
		Tagline       string `json:"tagline"`
		TextMarque    string `json:"text_marque"`
		KampanyeMulai string `json:"kampanye_mulai"`
		KampanyeAkhir string `json:"kampanye_akhir"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validasi input
	if req.NamaSitus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nama situs wajib diisi",
		})
	}

	if req.KampanyeMulai == "" || req.KampanyeAkhir == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Periode kampanye wajib diisi",
		})
	}

	// Validasi format datetime (YYYY-MM-DD HH:MM:SS)
	if !datetimeRegex.MatchString(req.KampanyeMulai) || !datetimeRegex.MatchString(req.KampanyeAkhir) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Format periode harus YYYY-MM-DD HH:MM:SS (contoh: 2026-08-01 00:00:00)",
		})
	}

	// Cek apakah sudah ada data
	var count int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM site_configs").Scan(&count)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal validasi konfigurasi",
		})
	}

	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Konfigurasi sudah ada, gunakan update untuk mengubah",
		})
	}

	// Insert ke database
	query := "INSERT INTO site_configs (nama_situs, tagline, text_marque, kampanye_mulai, kampanye_akhir) VALUES (?, ?, ?, ?, ?)"
	result, err := config.DB.Exec(query, req.NamaSitus, req.Tagline, req.TextMarque, req.KampanyeMulai, req.KampanyeAkhir)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat konfigurasi",
		})
	}

	id, _ := result.LastInsertId()

	// Ambil data yang baru dibuat
	var cfg models.SiteConfig
	config.DB.QueryRow(
		"SELECT id, nama_situs, tagline, text_marque, kampanye_mulai, kampanye_akhir FROM site_configs WHERE id = ?",
		id,
	).Scan(&cfg.ID, &cfg.NamaSitus, &cfg.Tagline, &cfg.TextMarque, &cfg.KampanyeMulai, &cfg.KampanyeAkhir)

	broadcastSiteUpdate(cfg)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Konfigurasi berhasil dibuat",
		"data":    cfg,
	})
}

// UpdateSiteConfig - Update konfigurasi situs yang sudah ada
func UpdateSiteConfig(c *fiber.Ctx) error {
	// Role sudah divalidasi di middleware (super_user only)
	var req struct {
		NamaSitus     string `json:"nama_situs"`
		Tagline       string `json:"tagline"`
		TextMarque    string `json:"text_marque"`
		KampanyeMulai string `json:"kampanye_mulai"`
		KampanyeAkhir string `json:"kampanye_akhir"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Periode kalau dikirim harus valid
	if req.KampanyeMulai != "" && !datetimeRegex.MatchString(req.KampanyeMulai) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Format periode harus YYYY-MM-DD HH:MM:SS (contoh: 2026-08-01 00:00:00)",
		})
	}
	if req.KampanyeAkhir != "" && !datetimeRegex.MatchString(req.KampanyeAkhir) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Format periode harus YYYY-MM-DD HH:MM:SS (contoh: 2026-08-01 00:00:00)",
		})
	}

	// Cek apakah ada data yang bisa diupdate
	var configID int64
	err := config.DB.QueryRow("SELECT id FROM site_configs LIMIT 1").Scan(&configID)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Konfigurasi belum dibuat, gunakan create terlebih dahulu",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil konfigurasi situs",
		})
	}

	// Build dynamic update query
	query := "UPDATE site_configs SET "
	args := []interface{}{}
	updates := []string{}

	if req.NamaSitus != "" {
		updates = append(updates, "nama_situs = ?")
		args = append(args, req.NamaSitus)
	}

	if req.Tagline != "" {
		updates = append(updates, "tagline = ?")
		args = append(args, req.Tagline)
	}

	if req.TextMarque != "" {
		updates = append(updates, "text_marque = ?")
		args = append(args, req.TextMarque)
	}

	if req.KampanyeMulai != "" {
		updates = append(updates, "kampanye_mulai = ?")
		args = append(args, req.KampanyeMulai)
	}

	if req.KampanyeAkhir != "" {
		updates = append(updates, "kampanye_akhir = ?")
		args = append(args, req.KampanyeAkhir)
	}

	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tidak ada data yang diupdate",
		})
	}

	for i, update := range updates {
		if i > 0 {
			query += ", "
		}
		query += update
	}
	query += " WHERE id = ?"
	args = append(args, configID)

	_, err = config.DB.Exec(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengupdate konfigurasi",
		})
	}

	var cfg models.SiteConfig
	config.DB.QueryRow(
		"SELECT id, nama_situs, tagline, text_marque, kampanye_mulai, kampanye_akhir FROM site_configs WHERE id = ?",
		configID,
	).Scan(&cfg.ID, &cfg.NamaSitus, &cfg.Tagline, &cfg.TextMarque, &cfg.KampanyeMulai, &cfg.KampanyeAkhir)

	broadcastSiteUpdate(cfg)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Konfigurasi berhasil diupdate",
		"data":    cfg,
	})
}

// broadcastSiteUpdate kirim config baru ke semua landing page yang terhubung
func broadcastSiteUpdate(cfg models.SiteConfig) {
	payload, _ := json.Marshal(fiber.Map{
		"type":           "site_updated",
		"data":           cfg,
		"kampanye_aktif": helper.IsCampaignActive(cfg.KampanyeMulai, cfg.KampanyeAkhir),
	})

	realtime.Landing.Broadcast <- payload
}
