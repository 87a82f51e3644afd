package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alarqam_backend/internals/features/home/articles/controller"
	"alarqam_backend/internals/helpers/oss"
)

// 🔐 Admin only (CRUD Artikel)
func ArticleAdminRoutes(router fiber.Router, db *gorm.DB, blob *oss.OSSService) {
	articleCtrl := controller.NewArticleController(db, blob)

	article := router.Group("/articles")
	article.Post("/", articleCtrl.CreateArticle)      // ➕ Buat artikel
	article.Put("/:id", articleCtrl.UpdateArticle)    // 🔄 Update artikel
	article.Delete("/:id", articleCtrl.DeleteArticle) // 🗑️ Hapus artikel
}
