package model

import (
	"time"

	"github.com/google/uuid"
)

type ArticleModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title           string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Excerpt         string    `gorm:"column:excerpt;type:text;not null" json:"excerpt"`
	Content         string    `gorm:"column:content;type:text" json:"content"`
	Category        string    `gorm:"column:category;type:varchar(50);not null" json:"category"`
	Date            string    `gorm:"column:date;type:varchar(32);not null" json:"date"`
	ReadingTime     string    `gorm:"column:reading_time;type:varchar(32);not null" json:"reading_time"`
	ImageURL        string    `gorm:"column:image_url;type:text" json:"image_url"`
	AuthorName      string    `gorm:"column:author_name;type:varchar(100)" json:"author_name"`
	AuthorRole      string    `gorm:"column:author_role;type:varchar(100)" json:"author_role"`
	AuthorAvatarURL string    `gorm:"column:author_avatar_url;type:text" json:"author_avatar_url"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (ArticleModel) TableName() string {
	return "articles"
}
