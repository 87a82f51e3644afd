package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alarqam_backend/internals/features/home/events/controller"
)

// 🔐 Admin only (CRUD Agenda) — group /api/a sudah dipasangi AuthMiddleware
func EventAdminRoutes(router fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)

	event := router.Group("/events")
	event.Post("/", eventCtrl.CreateEvent)      // ➕ Buat agenda
	event.Put("/:id", eventCtrl.UpdateEvent)    // 🔄 Update agenda
	event.Delete("/:id", eventCtrl.DeleteEvent) // 🗑️ Hapus agenda
}
