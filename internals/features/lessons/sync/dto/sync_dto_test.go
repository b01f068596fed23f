package dto

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	planModel "classtrack_backend/internals/features/lessons/plans/model"
)

func TestExportPlanMatchesLegacyDocumentShape(t *testing.T) {
	planID := uuid.New()
	extends := true
	plan := &planModel.PlanModel{
		PlanID:                     planID,
		PlanStudentName:            "Bruno Lima",
		PlanStartDate:              time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		PlanDurationMonths:         3,
		PlanTotalContractedClasses: 13,
		Schedules: []planModel.ClassScheduleModel{
			{ClassScheduleDayOfWeek: 2, ClassScheduleTime: "10:00"},
		},
		History: []planModel.AttendanceRecordModel{
			{
				AttendanceRecordDate:        time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC),
				AttendanceRecordTime:        "10:00",
				AttendanceRecordStatus:      planModel.AttendanceCancelled,
				AttendanceRecordExtendsPlan: &extends,
			},
		},
	}

	export := ExportPlan(plan)
	raw, err := sonic.Marshal(export)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// field harus camelCase seperti dokumen aplikasi web lama
	var doc map[string]interface{}
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "studentName", "startDate", "durationMonths", "totalContractedClasses", "schedules", "history"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("field %q hilang dari dokumen snapshot", key)
		}
	}
	if doc["startDate"] != "2024-01-01" {
		t.Errorf("startDate = %v, want 2024-01-01", doc["startDate"])
	}

	// round-trip parse kembali
	var back PlanExport
	if err := sonic.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal balik: %v", err)
	}
	if back.TotalContractedClasses != 13 {
		t.Errorf("kuota = %d, want 13", back.TotalContractedClasses)
	}
	d, err := back.History[0].ParseDate()
	if err != nil || !d.Equal(time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate history = %v (%v)", d, err)
	}
}
