// file: internals/features/lessons/plans/controller/attendance_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"

	"classtrack_backend/internals/features/lessons/plans/dto"
	"classtrack_backend/internals/features/lessons/plans/model"
	helper "classtrack_backend/internals/helpers"
)

/* ===================== RECORD ===================== */
// POST /api/u/plans/:id/attendance
// Catat (atau timpa) outcome satu tanggal: attended / cancelled.
// Satu baris per (plan, tanggal) — konflik = update record lama.
func (ctrl *PlanController) RecordAttendance(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, false)
	if err != nil {
		return err
	}

	var req dto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := req.ParseDate()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date tidak valid")
	}

	rec := req.ToModel(plan.PlanID, date)

	// upsert per (plan_id, date)
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_record_plan_id"},
			{Name: "attendance_record_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_record_time",
			"attendance_record_status",
			"attendance_record_extends_plan",
			"attendance_record_reason",
			"attendance_record_updated_at",
		}),
	}).Create(&rec).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan attendance:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan attendance")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance tersimpan", rec)
}

/* ===================== RESET ===================== */
// DELETE /api/u/plans/:id/attendance/:date
// Reset ke pending = hapus record (lapisan penyimpan tidak menyimpan
// record pending; mesin ledger tetap toleran kalau ada).
func (ctrl *PlanController) ResetAttendance(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, false)
	if err != nil {
		return err
	}

	date, err := time.ParseInLocation("2006-01-02", c.Params("date"), time.UTC)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal tidak valid (yyyy-MM-dd)")
	}

	res := ctrl.DB.
		Where("attendance_record_plan_id = ? AND attendance_record_date = ?", plan.PlanID, date).
		Delete(&model.AttendanceRecordModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus record")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Record tidak ditemukan")
	}

	return helper.Success(c, "Record direset ke pending", fiber.Map{
		"plan_id": plan.PlanID,
		"date":    c.Params("date"),
	})
}
