package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "alarqam_backend/internals/features/home/settings/controller"
)

func SettingsUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	router.Get("/site-settings", ctrl.GetSiteSettings)
	router.Get("/donation-settings", ctrl.GetDonationSettings)
	router.Get("/countdown-settings", ctrl.GetCountdownSettings)
}
