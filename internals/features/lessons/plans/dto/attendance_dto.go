// file: internals/features/lessons/plans/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "classtrack_backend/internals/features/lessons/plans/model"
)

/* =========================================================
   Catat outcome satu tanggal (attended / cancelled)
   ========================================================= */

type RecordAttendanceRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,datetime=15:04"`
	Status string `json:"status" validate:"required,oneof=attended cancelled"`

	// Hanya dibaca saat status=cancelled; absen ≡ true (reposição).
	ExtendsPlan *bool   `json:"extends_plan"`
	Reason      *string `json:"reason" validate:"omitempty,max=500"`
}

func (r *RecordAttendanceRequest) Normalize() {
	r.Time = strings.TrimSpace(r.Time)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Reason != nil {
		v := strings.TrimSpace(*r.Reason)
		if v == "" {
			r.Reason = nil
		} else {
			r.Reason = &v
		}
	}
}

func (r *RecordAttendanceRequest) ParseDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.Date, time.UTC)
}

func (r *RecordAttendanceRequest) ToModel(planID uuid.UUID, date time.Time) m.AttendanceRecordModel {
	rec := m.AttendanceRecordModel{
		AttendanceRecordPlanID: planID,
		AttendanceRecordDate:   date,
		AttendanceRecordTime:   r.Time,
		AttendanceRecordStatus: m.AttendanceStatus(r.Status),
		AttendanceRecordReason: r.Reason,
	}
	if r.Status == string(m.AttendanceCancelled) {
		rec.AttendanceRecordExtendsPlan = r.ExtendsPlan
	}
	return rec
}
