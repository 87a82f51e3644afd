package route

import (
	"github.com/gofiber/fiber/v2"

	uploadController "alarqam_backend/internals/features/home/upload/controller"
	"alarqam_backend/internals/helpers/oss"
)

func UploadAdminRoutes(router fiber.Router, blob *oss.OSSService) {
	ctrl := uploadController.NewUploadController(blob)

	router.Post("/upload/image", ctrl.UploadImage)
}
