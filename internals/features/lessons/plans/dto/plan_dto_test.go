package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	m "classtrack_backend/internals/features/lessons/plans/model"
	"classtrack_backend/internals/features/lessons/plans/service"
)

func TestCreatePlanRequestToModelFreezesQuota(t *testing.T) {
	req := CreatePlanRequest{
		StudentName:    "  Ana Souza  ",
		StartDate:      "2024-01-01",
		DurationMonths: 1,
		Schedules: []ClassScheduleInput{
			{DayOfWeek: 1, Time: "14:00"},
			{DayOfWeek: 4, Time: "09:00"},
			{DayOfWeek: 1, Time: "16:00"}, // hari duplikat → cache tetap satu entri
		},
	}
	req.Normalize()

	if req.StudentName != "Ana Souza" {
		t.Errorf("Normalize tidak trim nama: %q", req.StudentName)
	}

	start, err := req.ParseStartDate()
	if err != nil {
		t.Fatalf("ParseStartDate: %v", err)
	}

	userID := uuid.New()
	plan, children := req.ToModel(userID, start, 10)

	if plan.PlanTotalContractedClasses != 10 {
		t.Errorf("kuota = %d, want 10 (nilai beku dari caller)", plan.PlanTotalContractedClasses)
	}
	if plan.PlanUserID != userID {
		t.Error("PlanUserID tidak terpasang")
	}
	if len(children) != 3 {
		t.Errorf("jumlah jadwal = %d, want 3", len(children))
	}

	// cache hari: dedup + ascending
	if len(plan.PlanScheduleDays) != 2 || plan.PlanScheduleDays[0] != 1 || plan.PlanScheduleDays[1] != 4 {
		t.Errorf("PlanScheduleDays = %v, want [1 4]", plan.PlanScheduleDays)
	}
}

func TestSnapshotFromModel(t *testing.T) {
	extends := false
	reason := "viagem"
	planID := uuid.New()

	plan := &m.PlanModel{
		PlanID:                     planID,
		PlanStartDate:              time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		PlanDurationMonths:         1,
		PlanTotalContractedClasses: 5,
		Schedules: []m.ClassScheduleModel{
			{ClassSchedulePlanID: planID, ClassScheduleDayOfWeek: 1, ClassScheduleTime: "14:00"},
		},
		History: []m.AttendanceRecordModel{
			{
				AttendanceRecordPlanID:      planID,
				AttendanceRecordDate:        time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
				AttendanceRecordTime:        "14:00",
				AttendanceRecordStatus:      m.AttendanceCancelled,
				AttendanceRecordExtendsPlan: &extends,
				AttendanceRecordReason:      &reason,
			},
		},
	}

	got := SnapshotFromModel(plan)

	if got.TotalContractedClasses != 5 || got.DurationMonths != 1 {
		t.Errorf("kontrak tidak tersalin: %+v", got)
	}
	if len(got.Schedules) != 1 || got.Schedules[0].DayOfWeek != time.Monday {
		t.Errorf("jadwal tidak tersalin: %+v", got.Schedules)
	}
	if len(got.History) != 1 {
		t.Fatalf("history tidak tersalin")
	}
	h := got.History[0]
	if h.Status != service.StatusCancelled || h.ExtendsPlan == nil || *h.ExtendsPlan || h.Reason != "viagem" {
		t.Errorf("record tidak tersalin utuh: %+v", h)
	}

	// snapshot harus benar-benar dimengerti mesin ledger
	list, truncated := service.GenerateClassList(got)
	if truncated {
		t.Fatal("tidak boleh truncated")
	}
	// aula perdida → kuota tetap 5
	if len(list) != 5 {
		t.Errorf("len class list = %d, want 5", len(list))
	}
}

func TestNewMetricsResponseFormatsDates(t *testing.T) {
	next := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	resp := NewMetricsResponse(service.PlanMetrics{
		OriginalEndDate: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		CurrentEndDate:  time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
		NextClassDate:   &next,
	})

	if resp.OriginalEndDate != "2024-02-01" || resp.CurrentEndDate != "2024-02-05" {
		t.Errorf("format tanggal salah: %+v", resp)
	}
	if resp.NextClassDate == nil || *resp.NextClassDate != "2024-01-15" {
		t.Errorf("NextClassDate = %v, want 2024-01-15", resp.NextClassDate)
	}

	none := NewMetricsResponse(service.PlanMetrics{})
	if none.NextClassDate != nil {
		t.Error("NextClassDate harus nil kalau tidak ada")
	}
}
