package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryController "alarqam_backend/internals/features/home/gallery/controller"
	"alarqam_backend/internals/helpers/oss"
)

// Rute publik galeri: daftar, item terbaru, dan like.
func GalleryUserRoutes(router fiber.Router, db *gorm.DB, blob *oss.OSSService) {
	ctrl := galleryController.NewGalleryController(db, blob)

	router.Get("/gallery", ctrl.GetAllGalleries)
	router.Get("/gallery/latest", ctrl.GetLatestGalleryItem)
	router.Post("/gallery/:id/like", ctrl.LikeGalleryItem)
}
