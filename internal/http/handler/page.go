package handler

import (
	"backend-promo/internal/render"

	"github.com/gofiber/fiber/v2"
)

// GetSponsorPage - Fragment HTML daftar sponsor, dikonsumsi shell landing page
func GetSponsorPage(c *fiber.Ctx) error {
	RecordPageView("sponsors")

	if cached, ok := getCache(cacheKeySponsorHTML); ok {
		c.Set("Content-Type", "text/html; charset=utf-8")
		return c.SendString(cached)
	}

	sponsors, err := getActiveSponsors()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data sponsor",
		})
	}

	html, err := render.SponsorCards(sponsors)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal render halaman sponsor",
		})
	}

	setCache(cacheKeySponsorHTML, html)

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}

// GetFAQPage - Fragment HTML daftar FAQ (semua kategori sudah di-flatten)
func GetFAQPage(c *fiber.Ctx) error {
	RecordPageView("faq")

	if cached, ok := getCache(cacheKeyFAQHTML); ok {
		c.Set("Content-Type", "text/html; charset=utf-8")
		return c.SendString(cached)
	}

	groups, err := getGroupedFAQs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data FAQ",
		})
	}

	html, err := render.FAQBlocks(render.FlattenFAQ(groups))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal render halaman FAQ",
		})
	}

	setCache(cacheKeyFAQHTML, html)

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}
