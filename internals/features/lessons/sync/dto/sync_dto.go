// file: internals/features/lessons/sync/dto/sync_dto.go
//
// Format dokumen snapshot memakai nama field camelCase yang sama dengan
// aplikasi web lama, supaya snapshot bisa dipertukarkan dua arah.
package dto

import (
	"time"

	planModel "classtrack_backend/internals/features/lessons/plans/model"
)

const isoDateLayout = "2006-01-02"

type ScheduleExport struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0=Minggu .. 6=Sabtu
	Time      string `json:"time"`
}

type RecordExport struct {
	Date        string  `json:"date"` // yyyy-MM-dd
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	ExtendsPlan *bool   `json:"extendsPlan,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

type PlanExport struct {
	ID                     string           `json:"id"`
	StudentName            string           `json:"studentName"`
	StartDate              string           `json:"startDate"` // yyyy-MM-dd
	DurationMonths         int              `json:"durationMonths"`
	TotalContractedClasses int              `json:"totalContractedClasses"` // kuota beku ikut disalin apa adanya
	Schedules              []ScheduleExport `json:"schedules"`
	History                []RecordExport   `json:"history"`
}

// ExportPlan: model GORM (dengan relasi) → dokumen snapshot.
func ExportPlan(p *planModel.PlanModel) PlanExport {
	schedules := make([]ScheduleExport, 0, len(p.Schedules))
	for _, s := range p.Schedules {
		schedules = append(schedules, ScheduleExport{
			DayOfWeek: s.ClassScheduleDayOfWeek,
			Time:      s.ClassScheduleTime,
		})
	}

	history := make([]RecordExport, 0, len(p.History))
	for _, h := range p.History {
		history = append(history, RecordExport{
			Date:        h.AttendanceRecordDate.Format(isoDateLayout),
			Time:        h.AttendanceRecordTime,
			Status:      string(h.AttendanceRecordStatus),
			ExtendsPlan: h.AttendanceRecordExtendsPlan,
			Reason:      h.AttendanceRecordReason,
		})
	}

	return PlanExport{
		ID:                     p.PlanID.String(),
		StudentName:            p.PlanStudentName,
		StartDate:              p.PlanStartDate.Format(isoDateLayout),
		DurationMonths:         p.PlanDurationMonths,
		TotalContractedClasses: p.PlanTotalContractedClasses,
		Schedules:              schedules,
		History:                history,
	}
}

func (e *PlanExport) ParseStartDate() (time.Time, error) {
	return time.ParseInLocation(isoDateLayout, e.StartDate, time.UTC)
}

func (r *RecordExport) ParseDate() (time.Time, error) {
	return time.ParseInLocation(isoDateLayout, r.Date, time.UTC)
}
