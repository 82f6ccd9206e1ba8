package handler

import (
	"backend-promo/internal/config"
	"backend-promo/internal/models"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// getGroupedFAQs - Kategori aktif plus item aktif di dalamnya, urut display order
func getGroupedFAQs() ([]models.FAQGroup, error) {
	catQuery := `
		SELECT id, nama_kategori, slug, is_active, sort_order, created_at, updated_at
		FROM faq_categories
		WHERE is_active = 'y'
		ORDER BY sort_order ASC, created_at ASC
	`

	rows, err := config.DB.Query(catQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []models.FAQGroup{}
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
		groups = append(groups, models.FAQGroup{Kategori: cat, Items: []models.FAQResponse{}})
	}

	for i := range groups {
		items, err := getFAQsByCategory(groups[i].Kategori.ID)
		if err != nil {
			continue
		}
		groups[i].Items = items
	}

	return groups, nil
}

func getFAQsByCategory(kategoriID int64) ([]models.FAQResponse, error) {
	query := `
		SELECT id, kategori_id, question, answer, image_url, is_active, sort_order, created_at, updated_at
		FROM faqs
		WHERE kategori_id = ? AND is_active = 'y'
		ORDER BY sort_order ASC, created_at ASC
	`

	rows, err := config.DB.Query(query, kategoriID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.FAQResponse{}
	for rows.Next() {
		var faq models.FAQ
		err := rows.Scan(
			&faq.ID,
			&faq.KategoriID,
			&faq.Question,
			&faq.Answer,
			&faq.ImageURL,
			&faq.IsActive,
			&faq.SortOrder,
			&faq.CreatedAt,
			&faq.UpdatedAt,
		)
		if err != nil {
			continue
		}
		items = append(items, models.ToFAQResponse(faq))
	}

	return items, nil
}

// GetAllFAQs - Public endpoint, semua FAQ aktif sudah di-flatten jadi satu list.
// Urutan: kategori sesuai display order, lalu item di dalam kategori.
func GetAllFAQs(c *fiber.Ctx) error {
	RecordPageView("faq")

	if cached, ok := getCache(cacheKeyFAQFlat); ok {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	query := `
		SELECT f.id, f.kategori_id, f.question, f.answer, f.image_url, f.is_active, f.sort_order, f.created_at, f.updated_at
		FROM faqs f
		INNER JOIN faq_categories k ON f.kategori_id = k.id
		WHERE f.is_active = 'y' AND k.is_active = 'y'
		ORDER BY k.sort_order ASC, k.created_at ASC, f.sort_order ASC, f.created_at ASC
	`

	rows, err := config.DB.Query(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data FAQ",
		})
	}
	defer rows.Close()

	faqs := []models.FAQResponse{}
	for rows.Next() {
		var faq models.FAQ
		err := rows.Scan(
			&faq.ID,
			&faq.KategoriID,
			&faq.Question,
			&faq.Answer,
			&faq.ImageURL,
			&faq.IsActive,
			&faq.SortOrder,
			&faq.CreatedAt,
			&faq.UpdatedAt,
		)
		if err != nil {
			continue
		}
		faqs = append(faqs, models.ToFAQResponse(faq))
	}

	payload, _ := json.Marshal(fiber.Map{
		"success": true,
		"data":    faqs,
	})
	setCache(cacheKeyFAQFlat, string(payload))

	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}

// GetGroupedFAQs - Public endpoint, FAQ per kategori (untuk frontend yang mau render tab)
func GetGroupedFAQs(c *fiber.Ctx) error {
	if cached, ok := getCache(cacheKeyFAQGrouped); ok {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	groups, err := getGroupedFAQs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data FAQ",
		})
	}

	payload, _ := json.Marshal(fiber.Map{
		"success": true,
		"data":    groups,
	})
	setCache(cacheKeyFAQGrouped, string(payload))

	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}

// GetAllFAQsPagination - Admin endpoint untuk ambil semua FAQ dengan pagination
func GetAllFAQsPagination(c *fiber.Ctx) error {
	isActive := c.Query("is_active")
	kategoriID := c.Query("kategori_id")
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
	countQuery := "SELECT COUNT(*) FROM faqs WHERE 1=1"
	countArgs := []interface{}{}

	if isActive != "" {
		countQuery += " AND is_active = ?"
		countArgs = append(countArgs, isActive)
	}

	if kategoriID != "" {
		countQuery += " AND kategori_id = ?"
		countArgs = append(countArgs, kategoriID)
	}

	if search != "" {
		search = "%" + strings.TrimSpace(search) + "%"
		countQuery += " AND (question LIKE ? OR answer LIKE ?)"
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
	query := "SELECT id, kategori_id, question, answer, image_url, is_active, sort_order, created_at, updated_at FROM faqs WHERE 1=1"
	args := []interface{}{}

	if isActive != "" {
		query += " AND is_active = ?"
		args = append(args, isActive)
	}

	if kategoriID != "" {
		query += " AND kategori_id = ?"
		args = append(args, kategoriID)
	}

	if search != "" {
		query += " AND (question LIKE ? OR answer LIKE ?)"
		args = append(args, search, search)
	}

	query += " ORDER BY sort_order ASC, created_at ASC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := config.DB.Query(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data FAQ",
		})
	}
	defer rows.Close()

	faqs := []models.FAQResponse{}
	for rows.Next() {
		var faq models.FAQ
		err := rows.Scan(
			&faq.ID,
			&faq.KategoriID,
			&faq.Question,
			&faq.Answer,
			&faq.ImageURL,
			&faq.IsActive,
			&faq.SortOrder,
			&faq.CreatedAt,
			&faq.UpdatedAt,
		)
		if err != nil {
			continue
		}
		faqs = append(faqs, models.ToFAQResponse(faq))
	}

	// Hitung total pages
	totalPages := (totalData + limit - 1) / limit

	return c.JSON(fiber.Map{
		"success": true,
		"data":    faqs,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total_data":  totalData,
			"total_pages": totalPages,
		},
	})
}

// GetFAQByID - Ambil FAQ berdasarkan ID
func GetFAQByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var faq models.FAQ
	query := "SELECT id, kategori_id, question, answer, image_url, is_active, sort_order, created_at, updated_at FROM faqs WHERE id = ?"

	err := config.DB.QueryRow(query, id).Scan(
		&faq.ID,
		&faq.KategoriID,
		&faq.Question,
		&faq.Answer,
		&faq.ImageURL,
		&faq.IsActive,
		&faq.SortOrder,
		&faq.CreatedAt,
		&faq.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "FAQ tidak ditemukan",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data FAQ",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.ToFAQResponse(faq),
	})
}

// CreateFAQ - Buat FAQ baru
func CreateFAQ(c *fiber.Ctx) error {
	var req struct {
		KategoriID int64  `json:"kategori_id"`
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		ImageURL   string `json:"image_url"`
		IsActive   string `json:"is_active"`
		SortOrder  int    `json:"sort_order"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validasi input
	req.Question = strings.TrimSpace(req.Question)
	req.Answer = strings.TrimSpace(req.Answer)

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question wajib diisi",
		})
	}

	if req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Answer wajib diisi",
		})
	}

	// Validasi panjang karakter
	if len(req.Question) > 255 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question maksimal 255 karakter",
		})
	}

	if len(req.Answer) > 3000 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Answer maksimal 3000 karakter",
		})
	}

	// Kategori wajib ada
	var catExists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM faq_categories WHERE id = ?", req.KategoriID).Scan(&catExists)
	if err != nil || catExists == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Kategori tidak ditemukan",
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

	// ImageURL opsional, simpan null kalau kosong
	var imageURL interface{}
	if req.ImageURL != "" {
		imageURL = req.ImageURL
	}

	// Insert ke database
	query := "INSERT INTO faqs (kategori_id, question, answer, image_url, is_active, sort_order) VALUES (?, ?, ?, ?, ?, ?)"
	result, err := config.DB.Exec(query, req.KategoriID, req.Question, req.Answer, imageURL, req.IsActive, req.SortOrder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat FAQ",
		})
	}

	id, _ := result.LastInsertId()

	// Ambil data yang baru dibuat
	var faq models.FAQ
	config.DB.QueryRow(
		"SELECT id, kategori_id, question, answer, image_url, is_active, sort_order, created_at, updated_at FROM faqs WHERE id = ?",
		id,
	).Scan(&faq.ID, &faq.KategoriID, &faq.Question, &faq.Answer, &faq.ImageURL, &faq.IsActive, &faq.SortOrder, &faq.CreatedAt, &faq.UpdatedAt)

	invalidateFAQCache()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "FAQ berhasil dibuat",
		"data":    models.ToFAQResponse(faq),
	})
}

// UpdateFAQ - Update FAQ berdasarkan ID
func UpdateFAQ(c *fiber.Ctx) error {
	id := c.Params("id")

	var req struct {
		KategoriID *int64  `json:"kategori_id"`
		Question   string  `json:"question"`
		Answer     string  `json:"answer"`
		ImageURL   *string `json:"image_url"`
		IsActive   string  `json:"is_active"`
		SortOrder  *int    `json:"sort_order"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Cek apakah FAQ ada
	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM faqs WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "FAQ tidak ditemukan",
		})
	}

	// Build dynamic update query
	query := "UPDATE faqs SET "
	args := []interface{}{}
	updates := []string{}

	if req.KategoriID != nil {
		var catExists int
		config.DB.QueryRow("SELECT COUNT(*) FROM faq_categories WHERE id = ?", *req.KategoriID).Scan(&catExists)
		if catExists == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Kategori tidak ditemukan",
			})
		}
		updates = append(updates, "kategori_id = ?")
		args = append(args, *req.KategoriID)
	}

	if req.Question != "" {
		req.Question = strings.TrimSpace(req.Question)
		if len(req.Question) > 255 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Question maksimal 255 karakter",
			})
		}
		updates = append(updates, "question = ?")
		args = append(args, req.Question)
	}

	if req.Answer != "" {
		req.Answer = strings.TrimSpace(req.Answer)
		if len(req.Answer) > 3000 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Answer maksimal 3000 karakter",
			})
		}
		updates = append(updates, "answer = ?")
		args = append(args, req.Answer)
	}

	// ImageURL bisa di-set null jika dikirim sebagai empty string
	if req.ImageURL != nil {
		updates = append(updates, "image_url = ?")
		if *req.ImageURL == "" {
			args = append(args, nil)
		} else {
			args = append(args, *req.ImageURL)
		}
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
			"error": "Gagal mengupdate FAQ",
		})
	}

	var faq models.FAQ
	config.DB.QueryRow(
		"SELECT id, kategori_id, question, answer, image_url, is_active, sort_order, created_at, updated_at FROM faqs WHERE id = ?",
		id,
	).Scan(&faq.ID, &faq.KategoriID, &faq.Question, &faq.Answer, &faq.ImageURL, &faq.IsActive, &faq.SortOrder, &faq.CreatedAt, &faq.UpdatedAt)

	invalidateFAQCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "FAQ berhasil diupdate",
		"data":    models.ToFAQResponse(faq),
	})
}

// HardDeleteFAQ - Hapus FAQ permanent
func HardDeleteFAQ(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := config.DB.Exec("DELETE FROM faqs WHERE id = ?", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghapus FAQ",
		})
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "FAQ tidak ditemukan",
		})
	}

	invalidateFAQCache()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "FAQ berhasil dihapus permanent",
	})
}
