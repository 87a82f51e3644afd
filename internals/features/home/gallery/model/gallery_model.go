package model

import (
	"time"

	"github.com/google/uuid"
)

// Kategori galeri: enum tertutup.
const (
	GalleryCategoryKajian   = "kajian"
	GalleryCategorySantunan = "santunan"
	GalleryCategoryOutdoor  = "outdoor"
	GalleryCategoryFestive  = "festive"
)

// Likes hanya dinaikkan server (endpoint like publik), tidak pernah
// ditulis langsung dari payload admin.
type GalleryModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Src       string    `gorm:"column:src;type:text;not null" json:"src"`
	Alt       string    `gorm:"column:alt;type:varchar(255);not null" json:"alt"`
	Caption   string    `gorm:"column:caption;type:varchar(255);not null" json:"caption"`
	Category  string    `gorm:"column:category;type:varchar(20);not null" json:"category"`
	Likes     int       `gorm:"column:likes;not null;default:0" json:"likes"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (GalleryModel) TableName() string {
	return "gallery"
}
