// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planRoutes "classtrack_backend/internals/features/lessons/plans/route"
	syncRoutes "classtrack_backend/internals/features/lessons/sync/route"
	authRoutes "classtrack_backend/internals/features/users/auth/route"
	authMiddleware "classtrack_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	authRoutes.AuthPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group (JWT)...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	authRoutes.AuthUserRoutes(private, db)

	log.Println("[INFO] Mounting Plan routes...")
	planRoutes.PlanUserRoutes(private, db)

	log.Println("[INFO] Mounting Sync routes...")
	syncRoutes.SyncUserRoutes(private, db)
}
