package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alarqam_backend/internals/features/home/settings/dto"
	"alarqam_backend/internals/features/home/settings/model"
	helper "alarqam_backend/internals/helpers"
	"alarqam_backend/internals/helpers/viewcache"
)

var validateSettings = helper.NewValidator()

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// fetchSingleton mengambil satu baris setting. Baris kosong bukan error:
// handler mengembalikan null dan frontend memakai default.
func fetchSingleton[T any](db *gorm.DB, label string) (*T, bool) {
	var row T
	err := db.First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] fetch %s: %v", label, err)
		}
		return nil, false
	}
	return &row, true
}

// =============================
// 💰 Donation Settings
// =============================
func (ctrl *SettingsController) GetDonationSettings(c *fiber.Ctx) error {
	viewcache.SetHeader(c, viewcache.SectionSettings)
	row, ok := fetchSingleton[model.DonationSettingsModel](ctrl.DB, "donation settings")
	if !ok {
		return helper.JsonOK(c, "ok", nil)
	}
	return helper.JsonOK(c, "ok", dto.ToDonationSettingsDTO(*row))
}

func (ctrl *SettingsController) UpdateDonationSettings(c *fiber.Ctx) error {
	var body dto.UpdateDonationSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSettings.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	// Read-then-write: baris pertama di-update, kalau belum ada dibuat.
	var row model.DonationSettingsModel
	err := ctrl.DB.First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan donasi")
	}

	body.ApplyToModel(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan donasi: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionSettings)
	return helper.JsonUpdated(c, "Pengaturan donasi tersimpan", dto.ToDonationSettingsDTO(row))
}

// =============================
// ⏳ Countdown Settings
// =============================
func (ctrl *SettingsController) GetCountdownSettings(c *fiber.Ctx) error {
	viewcache.SetHeader(c, viewcache.SectionSettings)
	row, ok := fetchSingleton[model.CountdownSettingsModel](ctrl.DB, "countdown settings")
	if !ok {
		return helper.JsonOK(c, "ok", nil)
	}
	return helper.JsonOK(c, "ok", dto.ToCountdownSettingsDTO(*row))
}

func (ctrl *SettingsController) UpdateCountdownSettings(c *fiber.Ctx) error {
	var body dto.UpdateCountdownSettingsRequest

	// Dashboard mengirim form biasa; checkbox aktif bernilai "on".
	ct := string(c.Request().Header.ContentType())
	if strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		body.Title = c.FormValue("title")
		body.TargetDate = c.FormValue("targetDate")
		body.Description = c.FormValue("description")
		body.IsActive = dto.CheckboxToBool(c.FormValue("isActive"))
	} else if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validateSettings.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var row model.CountdownSettingsModel
	err := ctrl.DB.First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan countdown")
	}

	body.ApplyToModel(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan countdown: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionSettings)
	return helper.JsonUpdated(c, "Pengaturan countdown tersimpan", dto.ToCountdownSettingsDTO(row))
}

// =============================
// 🏠 Site Settings (singleton id=1)
// =============================
func (ctrl *SettingsController) GetSiteSettings(c *fiber.Ctx) error {
	viewcache.SetHeader(c, viewcache.SectionSettings)
	row, ok := fetchSingleton[model.SiteSettingsModel](ctrl.DB, "site settings")
	if !ok {
		return helper.JsonOK(c, "ok", nil)
	}
	return helper.JsonOK(c, "ok", dto.ToSiteSettingsDTO(*row))
}

func (ctrl *SettingsController) UpdateSiteSettings(c *fiber.Ctx) error {
	var body dto.UpdateSiteSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSettings.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	row := model.SiteSettingsModel{ID: 1}
	body.ApplyToModel(&row)

	// Upsert pada id=1 supaya baris singleton tidak pernah terduplikasi.
	err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan situs: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionSettings)
	return helper.JsonUpdated(c, "Pengaturan situs tersimpan", dto.ToSiteSettingsDTO(row))
}
