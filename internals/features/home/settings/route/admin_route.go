package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "alarqam_backend/internals/features/home/settings/controller"
)

func SettingsAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	router.Put("/site-settings", ctrl.UpdateSiteSettings)
	router.Put("/donation-settings", ctrl.UpdateDonationSettings)
	router.Put("/countdown-settings", ctrl.UpdateCountdownSettings)
}
