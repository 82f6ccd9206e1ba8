package handler

import (
	"fmt"
	"time"

	"backend-promo/internal/config"
	"backend-promo/internal/helper"

	"github.com/gofiber/fiber/v2"
)

// Halaman public yang dihitung view-nya
var trackedPages = []string{"sponsors", "faq", "site"}

const viewKeyTTL = 45 * 24 * time.Hour

func viewKey(page, date string) string {
	return fmt.Sprintf("views:%s:%s", page, date)
}

// RecordPageView - Catat satu hit untuk halaman public, per hari, di Redis.
// Dipanggil dari handler public, gagal diam-diam supaya tidak ganggu response.
func RecordPageView(page string) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return
	}

	key := viewKey(page, time.Now().In(loc).Format("2006-01-02"))
	config.Redis.Incr(config.Ctx, key)
	config.Redis.Expire(config.Ctx, key, viewKeyTTL)
}

// GetViewStatistics - Endpoint untuk data visualisasi laporan kunjungan
func GetViewStatistics(c *fiber.Ctx) error {
	// Validasi ulang ke DB, token bisa lebih lama hidup dari akunnya
	userID := c.Locals("user_id").(int64)
	if err := helper.CheckUserRoleByID(userID, "super_user"); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Akun tidak valid untuk laporan ini",
		})
	}

	// Parse query parameters
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	// Validasi input
	if startDate == "" || endDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Parameter start_date dan end_date wajib diisi",
		})
	}

	// Validasi format tanggal (YYYY-MM-DD)
	start, err1 := time.Parse("2006-01-02", startDate)
	end, err2 := time.Parse("2006-01-02", endDate)
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Format tanggal harus YYYY-MM-DD (contoh: 2026-08-01)",
		})
	}

	// Validasi tanggal akhir >= tanggal mulai
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tanggal akhir harus lebih besar atau sama dengan tanggal mulai",
		})
	}

	// Hitung jumlah hari, maksimal 45 hari karena counter expire
	diffDays := int(end.Sub(start).Hours()/24) + 1
	if diffDays > 45 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rentang laporan maksimal 45 hari",
		})
	}

	daily := []fiber.Map{}
	totals := map[string]int64{}
	var grandTotal int64

	for d := start; !d.After(end); d = d.Add(24 * time.Hour) {
		date := d.Format("2006-01-02")
		perPage := map[string]int64{}
		var dayTotal int64

		for _, page := range trackedPages {
			val, _ := config.Redis.Get(config.Ctx, viewKey(page, date)).Int64()
			perPage[page] = val
			totals[page] += val
			dayTotal += val
		}
		grandTotal += dayTotal

		daily = append(daily, fiber.Map{
			"date":  date,
			"pages": perPage,
			"total": dayTotal,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"start_date":  startDate,
			"end_date":    endDate,
			"total_days":  diffDays,
			"total_views": grandTotal,
			"per_page":    totals,
			"daily":       daily,
		},
	})
}
