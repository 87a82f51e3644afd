package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleRoute "alarqam_backend/internals/features/home/articles/route"
	eventRoute "alarqam_backend/internals/features/home/events/route"
	galleryRoute "alarqam_backend/internals/features/home/gallery/route"
	settingsRoute "alarqam_backend/internals/features/home/settings/route"
	uploadRoute "alarqam_backend/internals/features/home/upload/route"
	authRoute "alarqam_backend/internals/features/users/auth/route"
	"alarqam_backend/internals/helpers/oss"
	authMiddleware "alarqam_backend/internals/middlewares/auth"
)

// SetupRoutes merangkai seluruh rute aplikasi:
//   - /api/auth/*   : login, register, logout, me
//   - /api/public/* : konten publik (tanpa auth)
//   - /api/a/*      : operasi admin (wajib token)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	blob, err := oss.NewFromEnv()
	if err != nil {
		// Tanpa OSS aplikasi tetap jalan; upload dan hapus aset dinonaktifkan.
		log.Printf("[WARN] OSS tidak aktif: %v", err)
		blob = nil
	}

	api := app.Group("/api")

	// 🔑 Auth
	authRoute.AuthRoutes(api, db)

	// 🌐 Publik
	public := api.Group("/public")
	eventRoute.AllEventRoutes(public, db)
	articleRoute.AllArticleRoutes(public, db, blob)
	galleryRoute.GalleryUserRoutes(public, db, blob)
	settingsRoute.SettingsUserRoutes(public, db)

	// 🔒 Admin
	admin := api.Group("/a", authMiddleware.AuthMiddleware(db))
	eventRoute.EventAdminRoutes(admin, db)
	articleRoute.ArticleAdminRoutes(admin, db, blob)
	galleryRoute.GalleryAdminRoutes(admin, db, blob)
	settingsRoute.SettingsAdminRoutes(admin, db)
	uploadRoute.UploadAdminRoutes(admin, blob)
}
