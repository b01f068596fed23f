// file: internals/features/lessons/plans/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Enum status kehadiran
   ======================================================= */

type AttendanceStatus string

const (
	AttendanceAttended  AttendanceStatus = "attended"
	AttendanceCancelled AttendanceStatus = "cancelled"
	AttendancePending   AttendanceStatus = "pending"
)

/* =======================================================
   AttendanceRecordModel — map ke tabel attendance_records
   Satu baris per tanggal per plan (unique).
   ======================================================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `json:"attendance_record_id" gorm:"type:uuid;primaryKey;column:attendance_record_id;default:gen_random_uuid()"`

	AttendanceRecordPlanID uuid.UUID `json:"attendance_record_plan_id" gorm:"type:uuid;not null;column:attendance_record_plan_id;uniqueIndex:uq_attendance_records_plan_date"`

	// Tanggal kalender slot (unik per plan)
	AttendanceRecordDate time.Time `json:"attendance_record_date" gorm:"type:date;not null;column:attendance_record_date;uniqueIndex:uq_attendance_records_plan_date"`

	// Jam slot saat outcome dicatat ("HH:MM", hanya untuk display)
	AttendanceRecordTime string `json:"attendance_record_time" gorm:"type:varchar(5);not null;column:attendance_record_time"`

	AttendanceRecordStatus AttendanceStatus `json:"attendance_record_status" gorm:"type:text;not null;column:attendance_record_status"`

	// Hanya bermakna saat status=cancelled.
	// NULL ≡ true (reposição: slot diganti, kontrak memanjang).
	AttendanceRecordExtendsPlan *bool `json:"attendance_record_extends_plan,omitempty" gorm:"column:attendance_record_extends_plan"`

	AttendanceRecordReason *string `json:"attendance_record_reason,omitempty" gorm:"type:text;column:attendance_record_reason"`

	// Reset ke pending = DELETE baris (bukan soft delete), supaya unique
	// (plan_id, date) tidak bentrok saat tanggal yang sama dicatat ulang.
	AttendanceRecordCreatedAt time.Time `json:"attendance_record_created_at" gorm:"column:attendance_record_created_at;not null;autoCreateTime"`
	AttendanceRecordUpdatedAt time.Time `json:"attendance_record_updated_at" gorm:"column:attendance_record_updated_at;not null;autoUpdateTime"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
