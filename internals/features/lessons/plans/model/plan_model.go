// file: internals/features/lessons/plans/model/plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   PlanModel — map ke tabel plans
   Satu plan = satu kontrak les per siswa.
   ======================================================= */

type PlanModel struct {
	// PK
	PlanID uuid.UUID `json:"plan_id" gorm:"type:uuid;primaryKey;column:plan_id;default:gen_random_uuid()"`

	// Owner (guru yang login)
	PlanUserID uuid.UUID `json:"plan_user_id" gorm:"type:uuid;not null;index;column:plan_user_id"`

	PlanStudentName string `json:"plan_student_name" gorm:"type:text;not null;column:plan_student_name"`

	// Kontrak
	PlanStartDate      time.Time `json:"plan_start_date" gorm:"type:date;not null;column:plan_start_date"`
	PlanDurationMonths int       `json:"plan_duration_months" gorm:"type:int;not null;column:plan_duration_months"`

	// FIXO: dihitung sekali saat create (Initial Quota Calculator),
	// tidak pernah dihitung ulang walau jadwal diedit.
	PlanTotalContractedClasses int `json:"plan_total_contracted_classes" gorm:"type:int;not null;column:plan_total_contracted_classes"`

	// Cache hari jadwal (0=Minggu..6=Sabtu) untuk filter list; sumber
	// kebenarannya tetap tabel class_schedules.
	PlanScheduleDays pq.Int64Array `json:"plan_schedule_days" gorm:"type:int[];column:plan_schedule_days"`

	// Timestamps
	PlanCreatedAt time.Time      `json:"plan_created_at" gorm:"column:plan_created_at;not null;autoCreateTime"`
	PlanUpdatedAt time.Time      `json:"plan_updated_at" gorm:"column:plan_updated_at;not null;autoUpdateTime"`
	PlanDeletedAt gorm.DeletedAt `json:"plan_deleted_at" gorm:"column:plan_deleted_at;index"`

	// Relasi
	Schedules []ClassScheduleModel    `json:"schedules,omitempty" gorm:"foreignKey:ClassSchedulePlanID;references:PlanID"`
	History   []AttendanceRecordModel `json:"history,omitempty" gorm:"foreignKey:AttendanceRecordPlanID;references:PlanID"`
}

func (PlanModel) TableName() string {
	return "plans"
}
