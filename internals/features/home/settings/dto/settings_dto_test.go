package dto_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"alarqam_backend/internals/features/home/settings/dto"
	"alarqam_backend/internals/features/home/settings/model"
)

var validate = validator.New()

func TestCheckboxToBool(t *testing.T) {
	assert.True(t, dto.CheckboxToBool("on"))
	assert.True(t, dto.CheckboxToBool("true"))
	assert.True(t, dto.CheckboxToBool("1"))

	assert.False(t, dto.CheckboxToBool(""))
	assert.False(t, dto.CheckboxToBool("off"))
	assert.False(t, dto.CheckboxToBool("false"))
}

func TestUpdateDonationSettings_AmountsNonNegative(t *testing.T) {
	req := dto.UpdateDonationSettingsRequest{
		BankName:      "Bank Syariah Indonesia",
		AccountNumber: "1234567890",
		HolderName:    "Masjid Jami' Al Arqam",
		GoalAmount:    25000000,
		CurrentAmount: 15000000,
	}
	assert.NoError(t, validate.Struct(&req))

	req.GoalAmount = -1
	assert.Error(t, validate.Struct(&req))

	req.GoalAmount = 0
	req.CurrentAmount = -500
	assert.Error(t, validate.Struct(&req))
}

func TestUpdateCountdownSettings_SanitizesDescription(t *testing.T) {
	req := dto.UpdateCountdownSettingsRequest{
		Title:       "Ramadhan 1448H",
		TargetDate:  "2027-02-18",
		Description: `<p>persiapan</p><script>x()</script>`,
		IsActive:    true,
	}

	var m model.CountdownSettingsModel
	req.ApplyToModel(&m)

	assert.Contains(t, m.Description, "<p>persiapan</p>")
	assert.NotContains(t, m.Description, "<script>")
	assert.True(t, m.IsActive)
}

func TestUpdateSiteSettings_SocialURLsSanitized(t *testing.T) {
	req := dto.UpdateSiteSettingsRequest{
		SiteName:  "Masjid Jami' Al Arqam",
		Instagram: "javascript:alert(1)",
		Youtube:   "https://youtube.com/@alarqam",
		MapURL:    "https://maps.google.com/?q=alarqam",
	}
	assert.NoError(t, validate.Struct(&req))

	var m model.SiteSettingsModel
	req.ApplyToModel(&m)

	assert.Empty(t, m.Instagram)
	assert.Equal(t, "https://youtube.com/@alarqam", m.Youtube)
	assert.Equal(t, "https://maps.google.com/?q=alarqam", m.MapURL)
}

func TestUpdateSiteSettings_EmailValidation(t *testing.T) {
	req := dto.UpdateSiteSettingsRequest{SiteName: "Al Arqam", Email: "bukan-email"}
	assert.Error(t, validate.Struct(&req))

	req.Email = ""
	assert.NoError(t, validate.Struct(&req))

	req.Email = "info@alarqam.or.id"
	assert.NoError(t, validate.Struct(&req))
}
