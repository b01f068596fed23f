// file: internals/features/lessons/plans/dto/plan_response_dto.go
package dto

import (
	"time"

	m "classtrack_backend/internals/features/lessons/plans/model"
	"classtrack_backend/internals/features/lessons/plans/service"
)

const isoDateLayout = "2006-01-02"

/* =========================================================
   Model → snapshot (input mesin ledger)
   ========================================================= */

// SnapshotFromModel memetakan PlanModel (Schedules & History sudah
// di-preload) ke snapshot polos untuk mesin ledger.
func SnapshotFromModel(p *m.PlanModel) service.PlanSnapshot {
	schedules := make([]service.ClassSchedule, 0, len(p.Schedules))
	for _, s := range p.Schedules {
		schedules = append(schedules, service.ClassSchedule{
			DayOfWeek: time.Weekday(s.ClassScheduleDayOfWeek),
			Time:      s.ClassScheduleTime,
		})
	}

	history := make([]service.AttendanceRecord, 0, len(p.History))
	for _, h := range p.History {
		reason := ""
		if h.AttendanceRecordReason != nil {
			reason = *h.AttendanceRecordReason
		}
		history = append(history, service.AttendanceRecord{
			Date:        h.AttendanceRecordDate,
			Time:        h.AttendanceRecordTime,
			Status:      string(h.AttendanceRecordStatus),
			ExtendsPlan: h.AttendanceRecordExtendsPlan,
			Reason:      reason,
		})
	}

	return service.PlanSnapshot{
		StartDate:              p.PlanStartDate,
		DurationMonths:         p.PlanDurationMonths,
		TotalContractedClasses: p.PlanTotalContractedClasses,
		Schedules:              schedules,
		History:                history,
	}
}

/* =========================================================
   Responses
   ========================================================= */

type MetricsResponse struct {
	OriginalEndDate string  `json:"original_end_date"`
	CurrentEndDate  string  `json:"current_end_date"`
	NextClassDate   *string `json:"next_class_date"`

	TotalPlannedClasses     int `json:"total_planned_classes"`
	TotalAttended           int `json:"total_attended"`
	TotalCancelled          int `json:"total_cancelled"`
	TotalCancelledExtending int `json:"total_cancelled_extending"`

	Truncated bool `json:"truncated"`
}

func NewMetricsResponse(metrics service.PlanMetrics) MetricsResponse {
	var next *string
	if metrics.NextClassDate != nil {
		v := metrics.NextClassDate.Format(isoDateLayout)
		next = &v
	}
	return MetricsResponse{
		OriginalEndDate:         metrics.OriginalEndDate.Format(isoDateLayout),
		CurrentEndDate:          metrics.CurrentEndDate.Format(isoDateLayout),
		NextClassDate:           next,
		TotalPlannedClasses:     metrics.TotalPlannedClasses,
		TotalAttended:           metrics.TotalAttended,
		TotalCancelled:          metrics.TotalCancelled,
		TotalCancelledExtending: metrics.TotalCancelledExtending,
		Truncated:               metrics.Truncated,
	}
}

type PlanResponse struct {
	Plan    *m.PlanModel    `json:"plan"`
	Metrics MetricsResponse `json:"metrics"`
}

type ClassListResponse struct {
	Dates     []string `json:"dates"`
	Truncated bool     `json:"truncated"`
}

func NewClassListResponse(dates []time.Time, truncated bool) ClassListResponse {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(isoDateLayout)
	}
	return ClassListResponse{Dates: out, Truncated: truncated}
}

// ReportResponse: payload gabungan untuk layar laporan.
type ReportResponse struct {
	Plan         *m.PlanModel           `json:"plan"`
	Metrics      MetricsResponse        `json:"metrics"`
	ClassList    ClassListResponse      `json:"class_list"`
	MonthlyStats []service.MonthlyStats `json:"monthly_stats"`
}
