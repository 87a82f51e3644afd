package content

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	articleModel "alarqam_backend/internals/features/home/articles/model"
	eventModel "alarqam_backend/internals/features/home/events/model"
	settingsModel "alarqam_backend/internals/features/home/settings/model"
)

type EventSeed struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type ArticleSeed struct {
	Title           string `json:"title"`
	Excerpt         string `json:"excerpt"`
	Content         string `json:"content"`
	Category        string `json:"category"`
	Date            string `json:"date"`
	ReadingTime     string `json:"reading_time"`
	ImageURL        string `json:"image_url"`
	AuthorName      string `json:"author_name"`
	AuthorRole      string `json:"author_role"`
	AuthorAvatarURL string `json:"author_avatar_url"`
}

func SeedEventsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file event:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []EventSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing eventModel.EventModel
		if err := db.Where("title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Event '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		row := eventModel.EventModel{
			Title:       data.Title,
			Date:        data.Date,
			Time:        data.Time,
			Location:    data.Location,
			Category:    data.Category,
			Description: data.Description,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert event '%s': %v", data.Title, err)
		} else {
			log.Printf("✅ Berhasil insert event '%s'", data.Title)
		}
	}
}

func SeedArticlesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file artikel:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []ArticleSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing articleModel.ArticleModel
		if err := db.Where("title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Artikel '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		row := articleModel.ArticleModel{
			Title:           data.Title,
			Excerpt:         data.Excerpt,
			Content:         data.Content,
			Category:        data.Category,
			Date:            data.Date,
			ReadingTime:     data.ReadingTime,
			ImageURL:        data.ImageURL,
			AuthorName:      data.AuthorName,
			AuthorRole:      data.AuthorRole,
			AuthorAvatarURL: data.AuthorAvatarURL,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert artikel '%s': %v", data.Title, err)
		} else {
			log.Printf("✅ Berhasil insert artikel '%s'", data.Title)
		}
	}
}

// SeedDefaultDonation mengisi rekening donasi bawaan bila tabel masih kosong.
func SeedDefaultDonation(db *gorm.DB) {
	var existing settingsModel.DonationSettingsModel
	if err := db.First(&existing).Error; err == nil {
		log.Println("ℹ️ Pengaturan donasi sudah ada, dilewati.")
		return
	}

	row := settingsModel.DonationSettingsModel{
		BankName:      "Bank Syariah Indonesia",
		AccountNumber: "1234567890",
		HolderName:    "Masjid Jami' Al Arqam",
		GoalAmount:    25000000,
		CurrentAmount: 15000000,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("❌ Gagal insert pengaturan donasi: %v", err)
	} else {
		log.Println("✅ Berhasil insert pengaturan donasi bawaan")
	}
}
