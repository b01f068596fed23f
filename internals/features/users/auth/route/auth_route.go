// file: internals/features/users/auth/route/auth_route.go
package routes

import (
	authController "classtrack_backend/internals/features/users/auth/controller"
	middlewares "classtrack_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthPublicRoutes: register/login (tanpa token, rate-limited ketat).
func AuthPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)
	auth := router.Group("/auth")

	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthUserRoutes: endpoint yang butuh JWT.
func AuthUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)
	router.Get("/me", ctrl.Me)
}
