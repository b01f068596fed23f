// file: internals/features/lessons/plans/controller/plan_stats_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"classtrack_backend/internals/features/lessons/plans/dto"
	"classtrack_backend/internals/features/lessons/plans/service"
	helper "classtrack_backend/internals/helpers"
)

/* ===================== CLASS LIST ===================== */
// GET /api/u/plans/:id/classes
// Daftar lengkap tanggal kelas: history apa adanya + slot sintesis
// sampai kuota + cancelamento extending terpenuhi.
func (ctrl *PlanController) GetClassList(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, true)
	if err != nil {
		return err
	}

	dates, truncated := service.GenerateClassList(dto.SnapshotFromModel(plan))
	return helper.Success(c, "OK", dto.NewClassListResponse(dates, truncated))
}

/* ===================== METRICS ===================== */
// GET /api/u/plans/:id/metrics
func (ctrl *PlanController) GetMetrics(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, true)
	if err != nil {
		return err
	}

	metrics := service.CalculatePlanMetrics(dto.SnapshotFromModel(plan), time.Now())
	return helper.Success(c, "OK", dto.NewMetricsResponse(metrics))
}

/* ===================== MONTHLY STATS ===================== */
// GET /api/u/plans/:id/monthly-stats
// Rekap per bulan kalender (hanya bulan yang punya record), kronologis.
func (ctrl *PlanController) GetMonthlyStats(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, true)
	if err != nil {
		return err
	}

	stats := service.CalculateMonthlyStats(dto.SnapshotFromModel(plan).History)
	return helper.Success(c, "OK", stats)
}

/* ===================== REPORT ===================== */
// GET /api/u/plans/:id/report
// Payload gabungan untuk layar laporan / ekspor.
func (ctrl *PlanController) GetReport(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, true)
	if err != nil {
		return err
	}

	snapshot := dto.SnapshotFromModel(plan)
	dates, truncated := service.GenerateClassList(snapshot)

	return helper.Success(c, "OK", dto.ReportResponse{
		Plan:         plan,
		Metrics:      dto.NewMetricsResponse(service.CalculatePlanMetrics(snapshot, time.Now())),
		ClassList:    dto.NewClassListResponse(dates, truncated),
		MonthlyStats: service.CalculateMonthlyStats(snapshot.History),
	})
}
