// file: internals/features/lessons/plans/model/class_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ClassScheduleModel — map ke tabel class_schedules
   Pola mingguan sebuah plan: hari + jam.
   ======================================================= */

type ClassScheduleModel struct {
	// PK
	ClassScheduleID uuid.UUID `json:"class_schedule_id" gorm:"type:uuid;primaryKey;column:class_schedule_id;default:gen_random_uuid()"`

	ClassSchedulePlanID uuid.UUID `json:"class_schedule_plan_id" gorm:"type:uuid;not null;index;column:class_schedule_plan_id"`

	// 0=Minggu .. 6=Sabtu
	ClassScheduleDayOfWeek int `json:"class_schedule_day_of_week" gorm:"type:int;not null;column:class_schedule_day_of_week"`

	// "HH:MM"
	ClassScheduleTime string `json:"class_schedule_time" gorm:"type:varchar(5);not null;column:class_schedule_time"`

	ClassScheduleCreatedAt time.Time `json:"class_schedule_created_at" gorm:"column:class_schedule_created_at;not null;autoCreateTime"`
}

func (ClassScheduleModel) TableName() string {
	return "class_schedules"
}
