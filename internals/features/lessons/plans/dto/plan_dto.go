// file: internals/features/lessons/plans/dto/plan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "classtrack_backend/internals/features/lessons/plans/model"
	"classtrack_backend/internals/features/lessons/plans/service"
)

/* =========================================================
   CREATE
   ========================================================= */

type ClassScheduleInput struct {
	// 0=Minggu .. 6=Sabtu
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
}

type CreatePlanRequest struct {
	StudentName    string               `json:"student_name" validate:"required,min=1,max=120"`
	StartDate      string               `json:"start_date" validate:"required,datetime=2006-01-02"`
	DurationMonths int                  `json:"duration_months" validate:"required,min=1,max=36"`
	Schedules      []ClassScheduleInput `json:"schedules" validate:"required,min=1,max=7,dive"`
}

func (r *CreatePlanRequest) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
	for i := range r.Schedules {
		r.Schedules[i].Time = strings.TrimSpace(r.Schedules[i].Time)
	}
}

func (r *CreatePlanRequest) ParseStartDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.StartDate, time.UTC)
}

// ToServiceSchedules: input jadwal → bentuk yang dimengerti mesin ledger.
func (r *CreatePlanRequest) ToServiceSchedules() []service.ClassSchedule {
	out := make([]service.ClassSchedule, 0, len(r.Schedules))
	for _, s := range r.Schedules {
		out = append(out, service.ClassSchedule{
			DayOfWeek: time.Weekday(s.DayOfWeek),
			Time:      s.Time,
		})
	}
	return out
}

// ToModel membangun PlanModel + child schedules. Kuota dihitung caller
// (controller) lewat Initial Quota Calculator lalu DIBEKUKAN di sini.
func (r *CreatePlanRequest) ToModel(userID uuid.UUID, startDate time.Time, frozenQuota int) (*m.PlanModel, []m.ClassScheduleModel) {
	plan := &m.PlanModel{
		PlanUserID:                 userID,
		PlanStudentName:            r.StudentName,
		PlanStartDate:              startDate,
		PlanDurationMonths:         r.DurationMonths,
		PlanTotalContractedClasses: frozenQuota,
		PlanScheduleDays:           scheduleDays(r.Schedules),
	}

	children := make([]m.ClassScheduleModel, 0, len(r.Schedules))
	for _, s := range r.Schedules {
		children = append(children, m.ClassScheduleModel{
			ClassScheduleDayOfWeek: s.DayOfWeek,
			ClassScheduleTime:      s.Time,
		})
	}
	return plan, children
}

/* =========================================================
   UPDATE — hanya nama siswa & jadwal; kuota TIDAK disentuh
   ========================================================= */

type UpdatePlanRequest struct {
	StudentName *string              `json:"student_name" validate:"omitempty,min=1,max=120"`
	Schedules   []ClassScheduleInput `json:"schedules" validate:"omitempty,min=1,max=7,dive"`
}

func (r *UpdatePlanRequest) Normalize() {
	if r.StudentName != nil {
		v := strings.TrimSpace(*r.StudentName)
		r.StudentName = &v
	}
	for i := range r.Schedules {
		r.Schedules[i].Time = strings.TrimSpace(r.Schedules[i].Time)
	}
}

/* =========================================================
   Internal
   ========================================================= */

// scheduleDays: cache hari (int[]) untuk kolom plan_schedule_days,
// dedup + ascending.
func scheduleDays(schedules []ClassScheduleInput) pq.Int64Array {
	seen := [7]bool{}
	for _, s := range schedules {
		if s.DayOfWeek >= 0 && s.DayOfWeek <= 6 {
			seen[s.DayOfWeek] = true
		}
	}
	out := make(pq.Int64Array, 0, 7)
	for d := 0; d < 7; d++ {
		if seen[d] {
			out = append(out, int64(d))
		}
	}
	return out
}

// ScheduleDaysFromInputs diekspos untuk controller update.
func ScheduleDaysFromInputs(schedules []ClassScheduleInput) pq.Int64Array {
	return scheduleDays(schedules)
}
