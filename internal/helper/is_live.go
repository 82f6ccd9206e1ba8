package helper

import (
	"strings"
	"time"
)

// IsCampaignActive - Cek apakah periode kampanye promo sedang berjalan.
// Format dari database: "2006-01-02 15:04:05", detik boleh tidak ada.
func IsCampaignActive(mulai, akhir string) bool {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return false
	}

	now := time.Now().In(loc)

	layout := "2006-01-02 15:04:05"

	// Normalize - tambahkan :00 jika cuma sampai menit
	if strings.Count(mulai, ":") == 1 {
		mulai += ":00"
	}
	if strings.Count(akhir, ":") == 1 {
		akhir += ":00"
	}

	start, err := time.ParseInLocation(layout, mulai, loc)
	if err != nil {
		return false
	}

	end, err := time.ParseInLocation(layout, akhir, loc)
	if err != nil {
		return false
	}

	// Periode kebalik dianggap tidak aktif
	if end.Before(start) {
		return false
	}

	return now.After(start) && now.Before(end)
}
