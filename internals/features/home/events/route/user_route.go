package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alarqam_backend/internals/features/home/events/controller"
)

func AllEventRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)

	// === USER ROUTES ===
	event := api.Group("/events")
	event.Get("/", eventCtrl.GetAllEvents)        // 📄 Lihat semua agenda
	event.Get("/latest", eventCtrl.GetLatestEvent) // 🕐 Agenda terbaru
	event.Get("/:id", eventCtrl.GetEventByID)     // 🔍 Detail agenda
}
