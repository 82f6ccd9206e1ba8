package handler

import (
	"backend-promo/internal/config"
	"backend-promo/internal/models"
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID - Ambil user berdasarkan ID
func GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	query := `
		SELECT id, nama, email, role, is_banned, created_at, updated_at
		FROM users
		WHERE id = ?
	`

	err := config.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Nama,
		&user.Email,
		&user.Role,
		&user.IsBanned,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User tidak ditemukan",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data user",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.ToUserDetailResponse(user),
	})
}

// GetAllUsers - Ambil semua user
func GetAllUsers(c *fiber.Ctx) error {
	isBanned := c.Query("is_banned")
	search := c.Query("search")

	query := `
		SELECT id, nama, email, role, is_banned, created_at, updated_at
		FROM users
		WHERE 1=1
	`
	args := []interface{}{}

	if isBanned != "" {
		query += " AND is_banned = ?"
		args = append(args, isBanned)
	}

	if search != "" {
		search = "%" + strings.TrimSpace(search) + "%"
		query += " AND (email LIKE ? OR nama LIKE ?)"
		args = append(args, search, search)
	}

	query += " ORDER BY created_at DESC"

	rows, err := config.DB.Query(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data user",
		})
	}
	defer rows.Close()

	users := []models.UserDetailResponse{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Nama,
			&user.Email,
			&user.Role,
			&user.IsBanned,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			continue
		}
		users = append(users, models.ToUserDetailResponse(user))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    users,
	})
}

// GetAllUsersPagination - Ambil semua user dengan pagination
func GetAllUsersPagination(c *fiber.Ctx) error {
	isBanned := c.Query("is_banned")
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
	countQuery := "SELECT COUNT(*) FROM users WHERE 1=1"
	countArgs := []interface{}{}

	if isBanned != "" {
		countQuery += " AND is_banned = ?"
		countArgs = append(countArgs, isBanned)
	}

	if search != "" {
		search = "%" + strings.TrimSpace(search) + "%"
		countQuery += " AND (email LIKE ? OR nama LIKE ?)"
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
	query := "SELECT id, nama, email, role, is_banned, created_at, updated_at FROM users WHERE 1=1"
	args := []interface{}{}

	if isBanned != "" {
		query += " AND is_banned = ?"
		args = append(args, isBanned)
	}

	if search != "" {
		query += " AND (email LIKE ? OR nama LIKE ?)"
		args = append(args, search, search)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := config.DB.Query(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data user",
		})
	}
	defer rows.Close()

	users := []models.UserDetailResponse{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Nama,
			&user.Email,
			&user.Role,
			&user.IsBanned,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			continue
		}
		users = append(users, models.ToUserDetailResponse(user))
	}

	// Hitung total pages
	totalPages := (totalData + limit - 1) / limit

	return c.JSON(fiber.Map{
		"success": true,
		"data":    users,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total_data":  totalData,
			"total_pages": totalPages,
		},
	})
}

// CreateUser - Buat user baru
func CreateUser(c *fiber.Ctx) error {
	var req struct {
		Nama     string `json:"nama"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validasi input
	req.Nama = strings.TrimSpace(req.Nama)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Nama == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nama, email, dan password wajib diisi",
		})
	}

	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Password minimal 8 karakter",
		})
	}

	// Validasi role
	if req.Role == "" {
		req.Role = "editor"
	}
	if req.Role != "super_user" && req.Role != "editor" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role harus super_user atau editor",
		})
	}

	// Cek apakah email sudah ada
	var count int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", req.Email).Scan(&count)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal validasi email",
		})
	}

	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email sudah digunakan",
		})
	}

	// Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal memproses password",
		})
	}

	// Insert ke database
	query := "INSERT INTO users (nama, email, password, role, is_banned) VALUES (?, ?, ?, ?, 'n')"
	result, err := config.DB.Exec(query, req.Nama, req.Email, string(hashed), req.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat user",
		})
	}

	id, _ := result.LastInsertId()

	// Ambil data yang baru dibuat
	var user models.User
	config.DB.QueryRow(
		"SELECT id, nama, email, role, is_banned, created_at, updated_at FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.Nama, &user.Email, &user.Role, &user.IsBanned, &user.CreatedAt, &user.UpdatedAt)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User berhasil dibuat",
		"data":    models.ToUserDetailResponse(user),
	})
}

// UpdateUser - Update user berdasarkan ID
func UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var req struct {
		Nama     string `json:"nama"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		IsBanned string `json:"is_banned"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Cek apakah user ada
	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM users WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User tidak ditemukan",
		})
	}

	// Build dynamic update query
	query := "UPDATE users SET "
	args := []interface{}{}
	updates := []string{}

	if req.Nama != "" {
		updates = append(updates, "nama = ?")
		args = append(args, strings.TrimSpace(req.Nama))
	}

	if req.Email != "" {
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		var count int
		config.DB.QueryRow("SELECT COUNT(*) FROM users WHERE email = ? AND id != ?", req.Email, id).Scan(&count)
		if count > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email sudah digunakan",
			})
		}
		updates = append(updates, "email = ?")
		args = append(args, req.Email)
	}

	if req.Password != "" {
		if len(req.Password) < 8 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Password minimal 8 karakter",
			})
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Gagal memproses password",
			})
		}
		updates = append(updates, "password = ?")
		args = append(args, string(hashed))
	}

	if req.Role != "" {
		if req.Role != "super_user" && req.Role != "editor" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Role harus super_user atau editor",
			})
		}
		updates = append(updates, "role = ?")
		args = append(args, req.Role)
	}

	if req.IsBanned != "" {
		updates = append(updates, "is_banned = ?")
		args = append(args, req.IsBanned)
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
			"error": "Gagal mengupdate user",
		})
	}

	var user models.User
	config.DB.QueryRow(
		"SELECT id, nama, email, role, is_banned, created_at, updated_at FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.Nama, &user.Email, &user.Role, &user.IsBanned, &user.CreatedAt, &user.UpdatedAt)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User berhasil diupdate",
		"data":    models.ToUserDetailResponse(user),
	})
}

// HardDeleteUser - Hapus user permanent
func HardDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := config.DB.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghapus user",
		})
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User tidak ditemukan",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User berhasil dihapus permanent",
	})
}
