// file: internals/features/lessons/sync/controller/sync_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	planModel "classtrack_backend/internals/features/lessons/plans/model"
	"classtrack_backend/internals/features/lessons/sync/dto"
	"classtrack_backend/internals/features/lessons/sync/model"
	helper "classtrack_backend/internals/helpers"
)

type SyncController struct {
	DB *gorm.DB
}

func NewSyncController(db *gorm.DB) *SyncController {
	return &SyncController{DB: db}
}

/* ===================== PUSH ===================== */
// POST /api/u/sync/push
// Serialisasi SEMUA plan user → satu dokumen JSON → upsert satu baris.
func (ctrl *SyncController) Push(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var plans []planModel.PlanModel
	if err := ctrl.DB.
		Preload("Schedules").
		Preload("History").
		Where("plan_user_id = ?", userID).
		Order("plan_created_at ASC").
		Find(&plans).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil plans")
	}

	exports := make([]dto.PlanExport, 0, len(plans))
	for i := range plans {
		exports = append(exports, dto.ExportPlan(&plans[i]))
	}

	payload, err := sonic.Marshal(exports)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal serialisasi snapshot")
	}

	snapshot := model.SyncSnapshotModel{
		SyncSnapshotID:    userID.String(),
		SyncSnapshotPlans: payload,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sync_snapshot_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sync_snapshot_plans", "sync_snapshot_updated_at"}),
	}).Create(&snapshot).Error; err != nil {
		log.Println("[ERROR] Gagal push snapshot:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal push snapshot")
	}

	return helper.Success(c, "Snapshot terkirim", fiber.Map{
		"plan_count": len(exports),
	})
}

/* ===================== PULL ===================== */
// POST /api/u/sync/pull
// Ambil snapshot lalu GANTI SELURUH data lokal user dengan isinya
// (whole-list replacement, tanpa merge per field) dalam satu transaksi.
func (ctrl *SyncController) Pull(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var snapshot model.SyncSnapshotModel
	if err := ctrl.DB.First(&snapshot, "sync_snapshot_id = ?", userID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Belum ada snapshot untuk akun ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil snapshot")
	}

	var exports []dto.PlanExport
	if err := sonic.Unmarshal(snapshot.SyncSnapshotPlans, &exports); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Snapshot korup / format tidak dikenal")
	}

	// ===== TRANSACTION START =====
	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// hapus seluruh data lama user (hard delete: ini replacement total)
	var oldIDs []uuid.UUID
	if err := tx.Model(&planModel.PlanModel{}).Unscoped().
		Where("plan_user_id = ?", userID).
		Pluck("plan_id", &oldIDs).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca data lama")
	}
	if len(oldIDs) > 0 {
		if err := tx.Unscoped().Where("attendance_record_plan_id IN ?", oldIDs).
			Delete(&planModel.AttendanceRecordModel{}).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membersihkan attendance lama")
		}
		if err := tx.Unscoped().Where("class_schedule_plan_id IN ?", oldIDs).
			Delete(&planModel.ClassScheduleModel{}).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membersihkan jadwal lama")
		}
		if err := tx.Unscoped().Where("plan_id IN ?", oldIDs).
			Delete(&planModel.PlanModel{}).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membersihkan plan lama")
		}
	}

	// tanam ulang dari snapshot
	for i := range exports {
		if err := ctrl.importPlan(tx, userID, &exports[i]); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	// ===== TRANSACTION END =====

	return helper.Success(c, "Snapshot diterapkan", fiber.Map{
		"plan_count": len(exports),
		"synced_at":  snapshot.SyncSnapshotUpdatedAt,
	})
}

/* ===================== Internal ===================== */

func (ctrl *SyncController) importPlan(tx *gorm.DB, userID uuid.UUID, e *dto.PlanExport) error {
	startDate, err := e.ParseStartDate()
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Snapshot: startDate tidak valid: "+e.StartDate)
	}

	// pertahankan id lama kalau masih uuid valid, kalau tidak buatkan baru
	planID, err := uuid.Parse(e.ID)
	if err != nil {
		planID = uuid.New()
	}

	days := make(pq.Int64Array, 0, 7)
	seen := [7]bool{}
	for _, s := range e.Schedules {
		if s.DayOfWeek >= 0 && s.DayOfWeek <= 6 && !seen[s.DayOfWeek] {
			seen[s.DayOfWeek] = true
		}
	}
	for d := 0; d < 7; d++ {
		if seen[d] {
			days = append(days, int64(d))
		}
	}

	plan := planModel.PlanModel{
		PlanID:                     planID,
		PlanUserID:                 userID,
		PlanStudentName:            e.StudentName,
		PlanStartDate:              startDate,
		PlanDurationMonths:         e.DurationMonths,
		PlanTotalContractedClasses: e.TotalContractedClasses, // kuota beku, jangan hitung ulang
		PlanScheduleDays:           days,
	}
	if err := tx.Create(&plan).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menanam plan dari snapshot")
	}

	for _, s := range e.Schedules {
		child := planModel.ClassScheduleModel{
			ClassSchedulePlanID:    planID,
			ClassScheduleDayOfWeek: s.DayOfWeek,
			ClassScheduleTime:      s.Time,
		}
		if err := tx.Create(&child).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menanam jadwal dari snapshot")
		}
	}

	for _, h := range e.History {
		d, err := h.ParseDate()
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Snapshot: tanggal history tidak valid: "+h.Date)
		}
		rec := planModel.AttendanceRecordModel{
			AttendanceRecordPlanID:      planID,
			AttendanceRecordDate:        d,
			AttendanceRecordTime:        h.Time,
			AttendanceRecordStatus:      planModel.AttendanceStatus(h.Status),
			AttendanceRecordExtendsPlan: h.ExtendsPlan,
			AttendanceRecordReason:      h.Reason,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menanam attendance dari snapshot")
		}
	}

	return nil
}
