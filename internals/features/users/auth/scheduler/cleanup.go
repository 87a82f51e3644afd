package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "alarqam_backend/internals/features/users/auth/repository"
)

const defaultCleanupIntervalHours = 24

// cleanupInterval membaca TOKEN_BLACKLIST_CLEANUP_HOURS (default 24 jam).
func cleanupInterval() time.Duration {
	hours := defaultCleanupIntervalHours
	if val := os.Getenv("TOKEN_BLACKLIST_CLEANUP_HOURS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			hours = parsed
		}
	}
	return time.Duration(hours) * time.Hour
}

// StartBlacklistCleanupScheduler menjaga tabel token_blacklist tetap kecil:
// token yang expired tidak perlu disimpan karena JWT-nya sudah ditolak
// oleh cek expiry di middleware.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		interval := cleanupInterval()
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			if removed, err := authRepo.PurgeExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
			} else if removed > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", removed)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			time.Sleep(interval)
		}
	}()
}
