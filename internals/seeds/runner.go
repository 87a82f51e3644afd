package seeds

import (
	"log"

	"gorm.io/gorm"

	articleModel "alarqam_backend/internals/features/home/articles/model"
	eventModel "alarqam_backend/internals/features/home/events/model"
	galleryModel "alarqam_backend/internals/features/home/gallery/model"
	settingsModel "alarqam_backend/internals/features/home/settings/model"
	authModel "alarqam_backend/internals/features/users/auth/model"
	userModel "alarqam_backend/internals/features/users/user/model"
	"alarqam_backend/internals/seeds/content"
	"alarqam_backend/internals/seeds/users"
)

// RunAllSeeds menyiapkan skema lalu mengisi data awal.
// Semua seeder idempoten: baris yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&eventModel.EventModel{},
		&articleModel.ArticleModel{},
		&galleryModel.GalleryModel{},
		&settingsModel.DonationSettingsModel{},
		&settingsModel.CountdownSettingsModel{},
		&settingsModel.SiteSettingsModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}

	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Konten beranda
	content.SeedEventsFromJSON(db, "internals/seeds/content/data_events.json")
	content.SeedArticlesFromJSON(db, "internals/seeds/content/data_articles.json")
	content.SeedDefaultDonation(db)
}
