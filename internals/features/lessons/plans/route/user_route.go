// file: internals/features/lessons/plans/route/user_route.go
package routes

import (
	planController "classtrack_backend/internals/features/lessons/plans/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PlanUserRoutes: semua endpoint plan milik user login (JWT group).
func PlanUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := planController.NewPlanController(db)
	plans := router.Group("/plans")

	plans.Post("/", ctrl.CreatePlan)
	plans.Get("/", ctrl.ListPlans)
	plans.Get("/:id", ctrl.GetPlan)
	plans.Put("/:id", ctrl.UpdatePlan)
	plans.Delete("/:id", ctrl.DeletePlan)

	// ledger views
	plans.Get("/:id/classes", ctrl.GetClassList)
	plans.Get("/:id/metrics", ctrl.GetMetrics)
	plans.Get("/:id/monthly-stats", ctrl.GetMonthlyStats)
	plans.Get("/:id/report", ctrl.GetReport)

	// attendance
	plans.Post("/:id/attendance", ctrl.RecordAttendance)
	plans.Delete("/:id/attendance/:date", ctrl.ResetAttendance)
}
