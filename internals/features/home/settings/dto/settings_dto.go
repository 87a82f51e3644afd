package dto

import (
	"strings"

	"alarqam_backend/internals/features/home/settings/model"
	"alarqam_backend/internals/helpers/sanitize"
)

// JSON publik memakai camelCase; kolom DB snake_case. Konversi hanya di sini.

type DonationSettingsDTO struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
	GoalAmount    int64  `json:"goalAmount"`
	CurrentAmount int64  `json:"currentAmount"`
}

type UpdateDonationSettingsRequest struct {
	BankName      string `json:"bankName" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required"`
	HolderName    string `json:"holderName" validate:"required"`
	GoalAmount    int64  `json:"goalAmount" validate:"gte=0"`
	CurrentAmount int64  `json:"currentAmount" validate:"gte=0"`
}

func ToDonationSettingsDTO(m model.DonationSettingsModel) DonationSettingsDTO {
	return DonationSettingsDTO{
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		HolderName:    m.HolderName,
		GoalAmount:    m.GoalAmount,
		CurrentAmount: m.CurrentAmount,
	}
}

func (r *UpdateDonationSettingsRequest) ApplyToModel(m *model.DonationSettingsModel) {
	m.BankName = strings.TrimSpace(r.BankName)
	m.AccountNumber = strings.TrimSpace(r.AccountNumber)
	m.HolderName = strings.TrimSpace(r.HolderName)
	m.GoalAmount = r.GoalAmount
	m.CurrentAmount = r.CurrentAmount
}

type CountdownSettingsDTO struct {
	Title       string `json:"title"`
	TargetDate  string `json:"targetDate"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type UpdateCountdownSettingsRequest struct {
	Title       string `json:"title" validate:"required"`
	TargetDate  string `json:"targetDate" validate:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

func ToCountdownSettingsDTO(m model.CountdownSettingsModel) CountdownSettingsDTO {
	return CountdownSettingsDTO{
		Title:       m.Title,
		TargetDate:  m.TargetDate,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

func (r *UpdateCountdownSettingsRequest) ApplyToModel(m *model.CountdownSettingsModel) {
	m.Title = strings.TrimSpace(r.Title)
	m.TargetDate = strings.TrimSpace(r.TargetDate)
	m.Description = sanitize.HTML(r.Description)
	m.IsActive = r.IsActive
}

// CheckboxToBool menerjemahkan nilai checkbox form HTML ("on") menjadi bool.
func CheckboxToBool(v string) bool {
	return v == "on" || v == "true" || v == "1"
}

type SiteSettingsDTO struct {
	SiteName    string `json:"siteName"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
	Youtube     string `json:"youtube"`
	MapURL      string `json:"mapUrl"`
}

type UpdateSiteSettingsRequest struct {
	SiteName    string `json:"siteName" validate:"required"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Whatsapp    string `json:"whatsapp"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
	Youtube     string `json:"youtube"`
	MapURL      string `json:"mapUrl"`
}

func ToSiteSettingsDTO(m model.SiteSettingsModel) SiteSettingsDTO {
	return SiteSettingsDTO{
		SiteName:    m.SiteName,
		Tagline:     m.Tagline,
		Description: m.Description,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		Whatsapp:    m.Whatsapp,
		Instagram:   m.Instagram,
		Facebook:    m.Facebook,
		Youtube:     m.Youtube,
		MapURL:      m.MapURL,
	}
}

func (r *UpdateSiteSettingsRequest) ApplyToModel(m *model.SiteSettingsModel) {
	m.SiteName = strings.TrimSpace(r.SiteName)
	m.Tagline = strings.TrimSpace(r.Tagline)
	m.Description = strings.TrimSpace(r.Description)
	m.Address = strings.TrimSpace(r.Address)
	m.Phone = strings.TrimSpace(r.Phone)
	m.Email = strings.TrimSpace(r.Email)
	m.Whatsapp = strings.TrimSpace(r.Whatsapp)
	m.Instagram = sanitize.URL(r.Instagram)
	m.Facebook = sanitize.URL(r.Facebook)
	m.Youtube = sanitize.URL(r.Youtube)
	m.MapURL = sanitize.URL(r.MapURL)
}
