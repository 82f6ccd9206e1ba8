package helper

import (
	"backend-promo/internal/config"
	"database/sql"
	"errors"
)

var (
	ErrUserNotFound = errors.New("user tidak ditemukan")
	ErrUserBanned   = errors.New("user dibanned")
	ErrInvalidRole  = errors.New("role tidak sesuai")
)

// CheckUserRoleByID - Validasi ulang role dan status ban langsung ke DB.
// Dipakai untuk endpoint sensitif, token JWT bisa saja lebih lama hidup dari akunnya.
func CheckUserRoleByID(userID int64, allowedRoles ...string) error {
	var role, isBanned string

	query := "SELECT role, is_banned FROM users WHERE id = ?"
	err := config.DB.QueryRow(query, userID).Scan(&role, &isBanned)

	if err == sql.ErrNoRows {
		return ErrUserNotFound
	}

	if err != nil {
		return err
	}

	if isBanned == "y" {
		return ErrUserBanned
	}

	for _, allowedRole := range allowedRoles {
		if role == allowedRole {
			return nil
		}
	}

	return ErrInvalidRole
}
