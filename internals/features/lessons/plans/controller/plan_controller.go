// file: internals/features/lessons/plans/controller/plan_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classtrack_backend/internals/features/lessons/plans/dto"
	"classtrack_backend/internals/features/lessons/plans/model"
	"classtrack_backend/internals/features/lessons/plans/service"
	helper "classtrack_backend/internals/helpers"
)

type PlanController struct {
	DB *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/u/plans
func (ctrl *PlanController) CreatePlan(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	startDate, err := req.ParseStartDate()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "start_date tidak valid")
	}

	// Kuota kontrak dihitung SEKALI di sini lalu dibekukan di plan.
	quota, truncated := service.CalculateInitialClassCount(startDate, req.DurationMonths, req.ToServiceSchedules())
	if truncated {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Kombinasi durasi dan jadwal menghasilkan lebih dari batas slot kontrak")
	}
	if quota == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Jadwal tidak menghasilkan satu pun slot dalam masa kontrak")
	}

	plan, schedules := req.ToModel(userID, startDate, quota)

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

	if err := tx.Create(plan).Error; err != nil {
		tx.Rollback()
		log.Println("[ERROR] Gagal membuat plan:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat plan")
	}
	for i := range schedules {
		schedules[i].ClassSchedulePlanID = plan.PlanID
	}
	if err := tx.Create(&schedules).Error; err != nil {
		tx.Rollback()
		log.Println("[ERROR] Gagal menyimpan jadwal:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	// ===== TRANSACTION END =====

	plan.Schedules = schedules
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Plan berhasil dibuat", plan)
}

/* ===================== LIST ===================== */
// GET /api/u/plans?page=&per_page=&day_of_week=
func (ctrl *PlanController) ListPlans(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PlanModel{}).Where("plan_user_id = ?", userID)

	// filter hari jadwal lewat cache int[]
	if raw := c.Query("day_of_week"); raw != "" {
		day, convErr := strconv.Atoi(raw)
		if convErr != nil || day < 0 || day > 6 {
			return fiber.NewError(fiber.StatusBadRequest, "day_of_week harus 0..6")
		}
		q = q.Where("? = ANY(plan_schedule_days)", day)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung plan")
	}

	var plans []model.PlanModel
	if err := q.
		Preload("Schedules").
		Preload("History").
		Order("plan_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&plans).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil plans:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil plans")
	}

	now := time.Now()
	items := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		snapshot := dto.SnapshotFromModel(&plans[i])
		items = append(items, dto.PlanResponse{
			Plan:    &plans[i],
			Metrics: dto.NewMetricsResponse(service.CalculatePlanMetrics(snapshot, now)),
		})
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(items)

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": pagination,
	})
}

/* ===================== DETAIL ===================== */
// GET /api/u/plans/:id
func (ctrl *PlanController) GetPlan(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, true)
	if err != nil {
		return err
	}

	snapshot := dto.SnapshotFromModel(plan)
	return helper.Success(c, "OK", dto.PlanResponse{
		Plan:    plan,
		Metrics: dto.NewMetricsResponse(service.CalculatePlanMetrics(snapshot, time.Now())),
	})
}

/* ===================== UPDATE ===================== */
// PUT /api/u/plans/:id — hanya nama siswa & jadwal.
// Kuota kontrak DIBEKUKAN: edit jadwal hanya mempengaruhi slot masa depan.
func (ctrl *PlanController) UpdatePlan(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, false)
	if err != nil {
		return err
	}

	var req dto.UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.StudentName == nil && len(req.Schedules) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	updates := map[string]interface{}{}
	if req.StudentName != nil {
		updates["plan_student_name"] = *req.StudentName
	}
	if len(req.Schedules) > 0 {
		updates["plan_schedule_days"] = dto.ScheduleDaysFromInputs(req.Schedules)
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

	if len(updates) > 0 {
		if err := tx.Model(plan).Updates(updates).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah plan")
		}
	}

	// ganti seluruh set jadwal (whole-set replacement, tanpa merge)
	if len(req.Schedules) > 0 {
		if err := tx.Where("class_schedule_plan_id = ?", plan.PlanID).
			Delete(&model.ClassScheduleModel{}).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengganti jadwal")
		}
		children := make([]model.ClassScheduleModel, 0, len(req.Schedules))
		for _, s := range req.Schedules {
			children = append(children, model.ClassScheduleModel{
				ClassSchedulePlanID:    plan.PlanID,
				ClassScheduleDayOfWeek: s.DayOfWeek,
				ClassScheduleTime:      s.Time,
			})
		}
		if err := tx.Create(&children).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal baru")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	// ===== TRANSACTION END =====

	// reload lengkap untuk response
	refreshed, err := ctrl.loadPlan(plan.PlanID, plan.PlanUserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat ulang plan")
	}
	return helper.Success(c, "Plan berhasil diubah", refreshed)
}

/* ===================== DELETE ===================== */
// DELETE /api/u/plans/:id — hapus plan sebagai satu unit (soft delete)
func (ctrl *PlanController) DeletePlan(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c, false)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(plan).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus plan")
	}
	return helper.Success(c, "Plan berhasil dihapus", fiber.Map{"plan_id": plan.PlanID})
}

/* ===================== Internal ===================== */

// findOwnedPlan mengambil plan milik user login dari :id.
func (ctrl *PlanController) findOwnedPlan(c *fiber.Ctx, withRelations bool) (*model.PlanModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID plan tidak valid")
	}

	if withRelations {
		return ctrl.loadPlan(planID, userID)
	}

	var plan model.PlanModel
	if err := ctrl.DB.
		Where("plan_id = ? AND plan_user_id = ?", planID, userID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Plan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil plan")
	}
	return &plan, nil
}

func (ctrl *PlanController) loadPlan(planID, userID uuid.UUID) (*model.PlanModel, error) {
	var plan model.PlanModel
	if err := ctrl.DB.
		Preload("Schedules").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("attendance_record_date ASC")
		}).
		Where("plan_id = ? AND plan_user_id = ?", planID, userID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Plan tidak ditemukan")
		}
		return nil, err
	}
	return &plan, nil
}
