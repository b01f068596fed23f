// file: internals/features/lessons/sync/route/user_route.go
package routes

import (
	syncController "classtrack_backend/internals/features/lessons/sync/controller"
	middlewares "classtrack_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SyncUserRoutes: push/pull snapshot (JWT group, rate-limited).
func SyncUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := syncController.NewSyncController(db)
	sync := router.Group("/sync", middlewares.SyncRateLimiter())

	sync.Post("/push", ctrl.Push)
	sync.Post("/pull", ctrl.Pull)
}
