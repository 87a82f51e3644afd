package model

import (
	"time"

	"github.com/google/uuid"
)

// Kategori agenda: enum tertutup, string lain ditolak di validasi DTO.
const (
	EventCategoryKajian   = "kajian"
	EventCategoryOlahraga = "olahraga"
	EventCategorySosial   = "sosial"
	EventCategoryLainnya  = "lainnya"
)

type EventModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Date        string    `gorm:"column:date;type:varchar(32);not null" json:"date"`
	Time        string    `gorm:"column:time;type:varchar(32);not null" json:"time"`
	Location    string    `gorm:"column:location;type:varchar(255);not null" json:"location"`
	Category    string    `gorm:"column:category;type:varchar(20);not null" json:"category"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (EventModel) TableName() string {
	return "events"
}
