package handler

import (
	"backend-promo/internal/config"
	"backend-promo/internal/models"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetAllSponsors - Public endpoint untuk ambil semua sponsor aktif
func GetAllSponsors(c *fiber.Ctx) error {
	RecordPageView("sponsors")

	if cached, ok := getCache(cacheKeySponsors); ok {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	sponsors, err := getActiveSponsors()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data sponsor",
		})
	}

	payload, _ := json.Marshal(fiber.Map{
		"success": true,
		"data":    sponsors,
	})
	setCache(cacheKeySponsors, string(payload))

	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}

// getActiveSponsors - Sponsor aktif sesuai display order
func getActiveSponsors() ([]models.Sponsor, error) {
	query := `
		SELECT id, title, description, image_url, link_url, is_active, sort_order, created_at, updated_at
		FROM sponsors
		WHERE is_active = 'y'
		ORDER BY sort_order ASC, created_at ASC
	`

	rows, err := config.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sponsors := []models.Sponsor{}
	for rows.Next() {
		var s models.Sponsor
		err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Description,
			&s.ImageURL,
			&s.LinkURL,
			&s.IsActive,
			&s.SortOrder,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			continue
		}
		sponsors = append(sponsors, s)
	}

	return sponsors, nil
}

// GetAllSponsorsPagination - Admin endpoint untuk ambil semua sponsor dengan pagination
func GetAllSponsorsPagination(c *fiber.Ctx) error {
	isActive := c.Query("is_active")
	search := c.Query("search")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	// Validasi pagination
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	// Query untuk hitung total data
	countQuery := "SELECT COUNT(*) FROM sponsors WHERE 1=1"
	countArgs := []interface{}{}

	if isActive != "" {
		countQuery += " AND is_active = ?"
		countArgs = append(countArgs, isActive)
	}

	if search != "" {
		search = "%" + strings.TrimSpace(search) + "%"
		countQuery += " AND (title LIKE ? OR description LIKE ?)"
		countArgs = append(countArgs, search, search)
	}

	var totalData int
	err := config.DB.QueryRow(countQuery, countArgs...).Scan(&totalData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghitung total data",
		})
	}

	// Query untuk ambil data dengan pagination
	query := "SELECT id, title, description, image_url, link_url, is_active, sort_order, created_at, updated_at FROM sponsors WHERE 1=1"
	args := []interface{}{}

	if isActive != "" {
		query += " AND is_active = ?"
		args = append(args, isActive)
	}

	if search != "" {
		query += " AND (title LIKE ? OR description LIKE ?)"
		args = append(args, search, search)
	}

	query += " ORDER BY sort_order ASC, created_at ASC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := config.DB.Query(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data sponsor",
		})
	}
	defer rows.Close()

	sponsors := []models.Sponsor{}
	for rows.Next() {
		var s models.Sponsor
		err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Description,
			&s.ImageURL,
			&s.LinkURL,
			&s.IsActive,
			&s.SortOrder,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			continue
		}
		sponsors = append(sponsors, s)
	}

	// Hitung total pages
	totalPages := (totalData + limit - 1) / limit

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sponsors,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total_data":  totalData,
			"total_pages": totalPages,
		},
	})
}

// GetSponsorByID - Ambil sponsor berdasarkan ID
func GetSponsorByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var s models.Sponsor
	query := "SELECT id, title, description, image_url, link_url, is_active, sort_order, created_at, updated_at FROM sponsors WHERE id = ?"

	err := config.DB.QueryRow(query, id).Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.ImageURL,
		&s.LinkURL,
		&s.IsActive,
		&s.SortOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sponsor tidak ditemukan",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data sponsor",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    s,
	})
}

// CreateSponsor - Buat sponsor baru
func CreateSponsor(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		LinkURL     string `json:"link_url"`
		IsActive    string `json:"is_active"`
		SortOrder   int    `json:"sort_order"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validasi input
	req.Title = strings.TrimSpace(req.Title)
	req.LinkURL = strings.TrimSpace(req.LinkURL)

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title wajib diisi",
		})
	}

	if req.LinkURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Link URL wajib diisi",
		})
	}

	if !strings.HasPrefix(req.LinkURL, "http://") && !strings.HasPrefix(req.LinkURL, "https://") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Link URL harus diawali http:// atau https://",
		})
	}

	// Validasi panjang karakter
	if len(req.Title) > 255 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title maksimal 255 karakter",
		})
	}

	if len(req.Description) > 1000 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Description maksimal 1000 karakter",
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

	// Insert ke database
	query := "INSERT INTO sponsors (title, description, image_url, link_url, is_active, sort_order) VALUES (?, ?, ?, ?, ?, ?)"
	result, err := config.DB.Exec(query, req.Title, req.Description, req.ImageURL, req.LinkURL, req.IsActive, req.SortOrder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat sponsor",
		})
	}

	id, _ := result.LastInsertId()

	// Ambil data yang baru dibuat
	var s models.Sponsor
	config.DB.QueryRow(
		"SELECT id, title, description, image_url, link_url, is_active, sort_order, created_at, updated_at FROM sponsors WHERE id = ?",
		id,
	).Scan(&s.ID, &s.Title, &s.Description, &s.ImageURL, &s.LinkURL, &s.IsActive, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)

	invalidateSponsorCache()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Sponsor berhasil dibuat",
		"data":    s,
	})
}

// UpdateSponsor - Update sponsor berdasarkan ID
func UpdateSponsor(c *fiber.Ctx) error {
	id := c.Params("id")

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		LinkURL     string `json:"link_url"`
		IsActive    string `json:"is_active"`
		SortOrder   *int   `json:"sort_order"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Cek apakah sponsor ada
	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM sponsors WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sponsor tidak ditemukan",
		})
	}

	// Build dynamic update query
	query := "UPDATE sponsors SET "
	args := []interface{}{}
	updates := []string{}

	if req.Title != "" {
		req.Title = strings.TrimSpace(req.Title)
		if len(req.Title) > 255 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Title maksimal 255 karakter",
			})
		}
		updates = append(updates, "title = ?")
		args = append(args, req.Title)
	}

	if req.Description != "" {
		if len(req.Description) > 1000 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Description maksimal 1000 karakter",
			})
		}
		updates = append(updates, "description = ?")
		args = append(args, req.Description)
	}

	if req.ImageURL != "" {
		updates = append(updates, "image_url = ?")
		args = append(args, req.ImageURL)
	}

	if req.LinkURL != "" {
		req.LinkURL = strings.TrimSpace(req.LinkURL)
		if !strings.HasPrefix(req.LinkURL, "http://") && !strings.HasPrefix(req.LinkURL, "https://") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Link URL harus diawali http:// atau https://",
			})
		}
		updates = append(updates, "link_url = ?")
		args = append(args, req.LinkURL)
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
			"error": "Gagal mengupdate sponsor",
		})
	}

	var s models.Sponsor
	config.DB.QueryRow(
		"SELECT id, title, description, image_url, link_url, is_active, sort_order, created_at, updated_at FROM sponsors WHERE id = ?",
		id,
	).Scan(&s.ID, &s.Title, &s.Description, &s.ImageURL, &s.LinkURL, &s.IsActive, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)

	invalidateSponsorCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sponsor berhasil diupdate",
		"data":    s,
	})
}

// DeleteSponsor - Hapus sponsor (soft delete)
func DeleteSponsor(c *fiber.Ctx) error {
	id := c.Params("id")

	// Cek apakah sponsor ada
	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM sponsors WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sponsor tidak ditemukan",
		})
	}

	// Soft delete
	_, err = config.DB.Exec("UPDATE sponsors SET is_active = 'n' WHERE id = ?", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghapus sponsor",
		})
	}

	invalidateSponsorCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sponsor berhasil dihapus",
	})
}

// HardDeleteSponsor - Hapus sponsor permanent
func HardDeleteSponsor(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := config.DB.Exec("DELETE FROM sponsors WHERE id = ?", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghapus sponsor",
		})
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sponsor tidak ditemukan",
		})
	}

	invalidateSponsorCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sponsor berhasil dihapus permanent",
	})
}
