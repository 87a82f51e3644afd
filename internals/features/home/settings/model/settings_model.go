package model

import "time"

// DonationSettingsModel menyimpan konfigurasi donasi (satu baris aktif).
type DonationSettingsModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BankName      string    `gorm:"type:varchar(100);not null" json:"bank_name"`
	AccountNumber string    `gorm:"type:varchar(50);not null" json:"account_number"`
	HolderName    string    `gorm:"type:varchar(100);not null" json:"holder_name"`
	GoalAmount    int64     `gorm:"not null;default:0" json:"goal_amount"`
	CurrentAmount int64     `gorm:"not null;default:0" json:"current_amount"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DonationSettingsModel) TableName() string {
	return "donation_settings"
}

// CountdownSettingsModel menyimpan pengaturan hitung mundur acara di beranda.
type CountdownSettingsModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(150);not null" json:"title"`
	TargetDate  string    `gorm:"type:varchar(32);not null" json:"target_date"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CountdownSettingsModel) TableName() string {
	return "countdown_settings"
}

// SiteSettingsModel adalah singleton (id selalu 1) untuk identitas situs.
type SiteSettingsModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SiteName    string    `gorm:"type:varchar(150);not null" json:"site_name"`
	Tagline     string    `gorm:"type:varchar(200)" json:"tagline"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"type:text" json:"address"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone"`
	Email       string    `gorm:"type:varchar(100)" json:"email"`
	Whatsapp    string    `gorm:"type:varchar(30)" json:"whatsapp"`
	Instagram   string    `gorm:"type:varchar(200)" json:"instagram"`
	Facebook    string    `gorm:"type:varchar(200)" json:"facebook"`
	Youtube     string    `gorm:"type:varchar(200)" json:"youtube"`
	MapURL      string    `gorm:"type:text" json:"map_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SiteSettingsModel) TableName() string {
	return "site_settings"
}
