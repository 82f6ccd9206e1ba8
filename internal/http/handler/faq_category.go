package handler

import (
	"backend-promo/internal/config"
	"backend-promo/internal/models"
	"database/sql"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetAllFAQCategories - Ambil semua kategori FAQ
func GetAllFAQCategories(c *fiber.Ctx) error {
	isActive := c.Query("is_active")

	query := "SELECT id, nama_kategori, slug, is_active, sort_order, created_at, updated_at FROM faq_categories WHERE 1=1"
	args := []interface{}{}

	if isActive != "" {
		query += " AND is_active = ?"
		args = append(args, isActive)
	}

	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := config.DB.Query(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data kategori",
		})
	}
	defer rows.Close()

	categories := []models.FAQCategory{}
	for rows.Next() {
		var cat models.FAQCategory
		err := rows.Scan(
			&cat.ID,
			&cat.NamaKategori,
			&cat.Slug,
			&cat.IsActive,
			&cat.SortOrder,
			&cat.CreatedAt,
			&cat.UpdatedAt,
		)
		if err != nil {
			continue
		}
		categories = append(categories, cat)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}

// GetFAQCategoryByID - Ambil kategori berdasarkan ID
func GetFAQCategoryByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var cat models.FAQCategory
	query := "SELECT id, nama_kategori, slug, is_active, sort_order, created_at, updated_at FROM faq_categories WHERE id = ?"

	err := config.DB.QueryRow(query, id).Scan(
		&cat.ID,
		&cat.NamaKategori,
		&cat.Slug,
		&cat.IsActive,
		&cat.SortOrder,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Kategori tidak ditemukan",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data kategori",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cat,
	})
}

// CreateFAQCategory - Buat kategori FAQ baru
func CreateFAQCategory(c *fiber.Ctx) error {
	var req struct {
		NamaKategori string `json:"nama_kategori"`
		Slug         string `json:"slug"`
		IsActive     string `json:"is_active"`
		SortOrder    int    `json:"sort_order"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validasi input
	req.NamaKategori = strings.TrimSpace(req.NamaKategori)
	if req.NamaKategori == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nama kategori wajib diisi",
		})
	}

	if len(req.NamaKategori) > 255 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nama kategori maksimal 255 karakter",
		})
	}

	// Normalisasi slug
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	if req.Slug == "" {
		req.Slug = strings.ToLower(strings.ReplaceAll(req.NamaKategori, " ", "-"))
	}

	// Validasi: huruf kecil, angka, dash
	re := regexp.MustCompile(`^[a-z0-9-]{1,100}$`)
	if !re.MatchString(req.Slug) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slug hanya boleh huruf kecil, angka, dan tanda minus",
		})
	}

	// Set default is_active jika kosong
	if req.IsActive == "" {
		req.IsActive = "y"
	}

	// Set default sort_order jika 0
	if req.SortOrder == 0 {
		req.SortOrder = 1
	}

	// Cek apakah slug sudah ada
	var count int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM faq_categories WHERE slug = ?", req.Slug).Scan(&count)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal validasi slug",
		})
	}

	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Slug kategori sudah digunakan",
		})
	}

	// Insert ke database
	query := "INSERT INTO faq_categories (nama_kategori, slug, is_active, sort_order) VALUES (?, ?, ?, ?)"
	result, err := config.DB.Exec(query, req.NamaKategori, req.Slug, req.IsActive, req.SortOrder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat kategori",
		})
	}

	id, _ := result.LastInsertId()

	// Ambil data yang baru dibuat
	var cat models.FAQCategory
	config.DB.QueryRow(
		"SELECT id, nama_kategori, slug, is_active, sort_order, created_at, updated_at FROM faq_categories WHERE id = ?",
		id,
	).Scan(&cat.ID, &cat.NamaKategori, &cat.Slug, &cat.IsActive, &cat.SortOrder, &cat.CreatedAt, &cat.UpdatedAt)

	invalidateFAQCache()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Kategori berhasil dibuat",
		"data":    cat,
	})
}

// UpdateFAQCategory - Update kategori berdasarkan ID
func UpdateFAQCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var req struct {
		NamaKategori string `json:"nama_kategori"`
		Slug         string `json:"slug"`
		IsActive     string `json:"is_active"`
		SortOrder    *int   `json:"sort_order"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Cek apakah kategori ada
	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM faq_categories WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Kategori tidak ditemukan",
		})
	}

	// Build dynamic update query
	query := "UPDATE faq_categories SET "
	args := []interface{}{}
	updates := []string{}

	if req.NamaKategori != "" {
		req.NamaKategori = strings.TrimSpace(req.NamaKategori)
		if len(req.NamaKategori) > 255 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Nama kategori maksimal 255 karakter",
			})
		}
		updates = append(updates, "nama_kategori = ?")
		args = append(args, req.NamaKategori)
	}

	if req.Slug != "" {
		req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
		re := regexp.MustCompile(`^[a-z0-9-]{1,100}$`)
		if !re.MatchString(req.Slug) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Slug hanya boleh huruf kecil, angka, dan tanda minus",
			})
		}
		var count int
		config.DB.QueryRow("SELECT COUNT(*) FROM faq_categories WHERE slug = ? AND id != ?", req.Slug, id).Scan(&count)
		if count > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug kategori sudah digunakan",
			})
		}
		updates = append(updates, "slug = ?")
		args = append(args, req.Slug)
	}

	if req.IsActive != "" {
		updates = append(updates, "is_active = ?")
		args = append(args, req.IsActive)
	}

	if req.SortOrder != nil {
		updates = append(updates, "sort_order = ?")
		args = append(args, *req.SortOrder)
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
	args = append(args, id)

	_, err = config.DB.Exec(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengupdate kategori",
		})
	}

	var cat models.FAQCategory
	config.DB.QueryRow(
		"SELECT id, nama_kategori, slug, is_active, sort_order, created_at, updated_at FROM faq_categories WHERE id = ?",
		id,
	).Scan(&cat.ID, &cat.NamaKategori, &cat.Slug, &cat.IsActive, &cat.SortOrder, &cat.CreatedAt, &cat.UpdatedAt)

	invalidateFAQCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Kategori berhasil diupdate",
		"data":    cat,
	})
}

// DeleteFAQCategory - Hapus kategori (soft delete)
func DeleteFAQCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	// Cek apakah kategori ada
	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM faq_categories WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Kategori tidak ditemukan",
		})
	}

	// Soft delete, item di dalamnya ikut hilang dari output public karena join
	_, err = config.DB.Exec("UPDATE faq_categories SET is_active = 'n' WHERE id = ?", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghapus kategori",
		})
	}

	invalidateFAQCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Kategori berhasil dihapus",
	})
}

// HardDeleteFAQCategory - Hapus kategori permanent
func HardDeleteFAQCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := config.DB.Exec("DELETE FROM faq_categories WHERE id = ?", id)
	if err != nil {
		// Cek apakah error karena foreign key constraint
		if strings.Contains(err.Error(), "foreign key constraint") ||
			strings.Contains(err.Error(), "FOREIGN KEY") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Kategori tidak dapat dihapus karena masih punya FAQ",
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghapus kategori",
		})
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Kategori tidak ditemukan",
		})
	}

	invalidateFAQCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Kategori berhasil dihapus permanent",
	})
}
