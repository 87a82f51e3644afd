package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryController "alarqam_backend/internals/features/home/gallery/controller"
	"alarqam_backend/internals/helpers/oss"
)

func GalleryAdminRoutes(router fiber.Router, db *gorm.DB, blob *oss.OSSService) {
	ctrl := galleryController.NewGalleryController(db, blob)

	router.Post("/gallery", ctrl.CreateGallery)
	router.Put("/gallery/:id", ctrl.UpdateGallery)
	router.Delete("/gallery/:id", ctrl.DeleteGallery)
}
