package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "alarqam_backend/internals/features/users/auth/controller"
	middlewares "alarqam_backend/internals/middlewares"
	authMiddleware "alarqam_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)             // 🔑 Login email/username
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle) // 🔑 Login Google ID token
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)    // ➕ Daftar admin baru

	// wajib login
	secured := auth.Group("/", authMiddleware.AuthMiddleware(db))
	secured.Post("/logout", ctrl.Logout) // 🚪 Logout (blacklist token)
	secured.Get("/me", ctrl.Me)          // 👤 Profil session aktif
}
