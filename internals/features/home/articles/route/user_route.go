package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alarqam_backend/internals/features/home/articles/controller"
	"alarqam_backend/internals/helpers/oss"
)

func AllArticleRoutes(api fiber.Router, db *gorm.DB, blob *oss.OSSService) {
	articleCtrl := controller.NewArticleController(db, blob)

	// === USER ROUTES ===
	article := api.Group("/articles")
	article.Get("/", articleCtrl.GetAllArticles)    // 📄 Lihat semua artikel
	article.Get("/:id", articleCtrl.GetArticleByID) // 🔍 Lihat detail artikel
}
