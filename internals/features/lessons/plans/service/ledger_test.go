package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boolPtr(b bool) *bool { return &b }

// Plan referensi: mulai Senin 2024-01-01, durasi 1 bulan, les tiap Senin.
// Kuota = 5 (Senin: 1, 8, 15, 22, 29 Jan).
func mondayPlan(history []AttendanceRecord) PlanSnapshot {
	return PlanSnapshot{
		StartDate:              date(2024, time.January, 1),
		DurationMonths:         1,
		TotalContractedClasses: 5,
		Schedules:              []ClassSchedule{{DayOfWeek: time.Monday, Time: "14:00"}},
		History:                history,
	}
}

func TestIsScheduledDay(t *testing.T) {
	schedules := []ClassSchedule{
		{DayOfWeek: time.Monday, Time: "14:00"},
		{DayOfWeek: time.Thursday, Time: "09:00"},
	}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"senin match", date(2024, time.January, 1), true},
		{"kamis match", date(2024, time.January, 4), true},
		{"rabu tidak match", date(2024, time.January, 3), false},
		{"jadwal kosong", date(2024, time.January, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schedules
			if tt.name == "jadwal kosong" {
				s = nil
			}
			if got := IsScheduledDay(tt.day, s); got != tt.want {
				t.Errorf("IsScheduledDay(%s) = %v, want %v", tt.day.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestCalculateInitialClassCount(t *testing.T) {
	monday := []ClassSchedule{{DayOfWeek: time.Monday, Time: "14:00"}}

	tests := []struct {
		name     string
		start    time.Time
		months   int
		schedule []ClassSchedule
		want     int
	}{
		// Jan 2024: Senin 1,8,15,22,29 → durasi 1 bulan berakhir 1 Feb? Tidak:
		// end = 1 Feb (inklusif), Senin terakhir sebelum itu = 29 Jan → 5.
		{"satu bulan senin", date(2024, time.January, 1), 1, monday, 5},
		// 6 bulan dari Senin 2024-01-01 s/d 2024-07-01 (Senin, inklusif) = 27 Senin.
		{"enam bulan senin", date(2024, time.January, 1), 6, monday, 27},
		{"jadwal kosong", date(2024, time.January, 1), 6, nil, 0},
		{"dua hari per minggu", date(2024, time.January, 1), 1,
			[]ClassSchedule{
				{DayOfWeek: time.Monday, Time: "14:00"},
				{DayOfWeek: time.Thursday, Time: "14:00"},
			}, 10}, // Senin 1,8,15,22,29 + Kamis 4,11,18,25 + Kamis 1 Feb
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := CalculateInitialClassCount(tt.start, tt.months, tt.schedule)
			if truncated {
				t.Fatalf("tidak boleh truncated untuk input normal")
			}
			if got != tt.want {
				t.Errorf("CalculateInitialClassCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateInitialClassCountTruncates(t *testing.T) {
	// Durasi puluhan tahun dengan jadwal harian → jauh di atas 2000 slot.
	daily := make([]ClassSchedule, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		daily = append(daily, ClassSchedule{DayOfWeek: d, Time: "08:00"})
	}

	count, truncated := CalculateInitialClassCount(date(2024, time.January, 1), 120, daily)
	if !truncated {
		t.Fatalf("durasi 120 bulan harian harus truncated, dapat count=%d", count)
	}
	if count != maxInitialClassCount+1 {
		t.Errorf("count saat truncated = %d, want %d", count, maxInitialClassCount+1)
	}
}

func TestGenerateClassListEmptyHistory(t *testing.T) {
	plan := mondayPlan(nil)

	got, truncated := GenerateClassList(plan)
	if truncated {
		t.Fatal("tidak boleh truncated")
	}

	want := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 8),
		date(2024, time.January, 15),
		date(2024, time.January, 22),
		date(2024, time.January, 29),
	}
	assertDates(t, got, want)
}

func TestGenerateClassListExtendingCancellation(t *testing.T) {
	// Cancelamento dengan reposição: target memanjang satu slot (6 entri).
	// Sintesis lanjut dari SETELAH history terakhir (8 Jan), jadi Senin
	// 1 Jan yang tak pernah dicatat terlewati, bukan disintesis ulang.
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusCancelled, ExtendsPlan: boolPtr(true)},
	})

	got, truncated := GenerateClassList(plan)
	if truncated {
		t.Fatal("tidak boleh truncated")
	}

	want := []time.Time{
		date(2024, time.January, 8), // cancelled, tetap dihitung sebagai slot
		date(2024, time.January, 15),
		date(2024, time.January, 22),
		date(2024, time.January, 29),
		date(2024, time.February, 5),
		date(2024, time.February, 12), // slot makeup
	}
	assertDates(t, got, want)
}

func TestGenerateClassListForfeitedCancellation(t *testing.T) {
	// Aula perdida (extends=false): target tetap kuota (5 entri).
	// History mulai di 8 Jan → sintesis dari 9 Jan; Senin 1 Jan terlewati.
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusCancelled, ExtendsPlan: boolPtr(false)},
	})

	got, truncated := GenerateClassList(plan)
	if truncated {
		t.Fatal("tidak boleh truncated")
	}

	want := []time.Time{
		date(2024, time.January, 8),
		date(2024, time.January, 15),
		date(2024, time.January, 22),
		date(2024, time.January, 29),
		date(2024, time.February, 5),
	}
	assertDates(t, got, want)
}

func TestGenerateClassListExtendsPlanAbsentMeansTrue(t *testing.T) {
	// ExtendsPlan nil ≡ true → sama dengan extending (6 entri).
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusCancelled},
	})

	got, _ := GenerateClassList(plan)
	if len(got) != 6 {
		t.Errorf("len = %d, want 6 (nil extends ≡ true)", len(got))
	}
}

func TestGenerateClassListOffScheduleHistoryDate(t *testing.T) {
	// Makeup ad-hoc di hari Rabu (bukan hari jadwal): tetap masuk list,
	// tetap dihitung ke total.
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 3), Time: "10:00", Status: StatusAttended}, // Rabu
	})

	got, _ := GenerateClassList(plan)

	// Sintesis lanjut dari SETELAH history terakhir (3 Jan) → Senin 8,15,22,29;
	// Senin 1 Jan tidak pernah disintesis karena sudah terlewati.
	want := []time.Time{
		date(2024, time.January, 3), // Rabu, dari history
		date(2024, time.January, 8),
		date(2024, time.January, 15),
		date(2024, time.January, 22),
		date(2024, time.January, 29),
	}
	assertDates(t, got, want)
}

func TestGenerateClassListInvariants(t *testing.T) {
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 1), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusCancelled},                            // extending
		{Date: date(2024, time.January, 15), Time: "14:00", Status: StatusCancelled, ExtendsPlan: boolPtr(false)}, // perdida
	})

	got, truncated := GenerateClassList(plan)
	if truncated {
		t.Fatal("tidak boleh truncated")
	}

	// len == kuota + extending
	if want := 5 + 1; len(got) != want {
		t.Errorf("len = %d, want %d", len(got), want)
	}

	// strictly ascending, tanpa duplikat
	for i := 1; i < len(got); i++ {
		if !got[i-1].Before(got[i]) {
			t.Errorf("list tidak strictly ascending di index %d: %s >= %s",
				i, got[i-1].Format("2006-01-02"), got[i].Format("2006-01-02"))
		}
	}

	// setiap tanggal history muncul tepat sekali
	for _, h := range plan.History {
		n := 0
		for _, d := range got {
			if d.Equal(h.Date) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("tanggal history %s muncul %d kali, want 1", h.Date.Format("2006-01-02"), n)
		}
	}

	// idempoten
	again, _ := GenerateClassList(plan)
	assertDates(t, again, got)
}

func TestGenerateClassListEmptySchedulesTerminates(t *testing.T) {
	plan := PlanSnapshot{
		StartDate:              date(2024, time.January, 1),
		DurationMonths:         6,
		TotalContractedClasses: 10,
		Schedules:              nil, // degenerate: tidak pernah match
	}

	got, truncated := GenerateClassList(plan)
	if !truncated {
		t.Fatal("jadwal kosong harus berakhir dengan truncated=true")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestCalculatePlanMetrics(t *testing.T) {
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 1), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusCancelled}, // extending
	})
	now := date(2024, time.January, 10)

	m := CalculatePlanMetrics(plan, now)

	if want := date(2024, time.February, 1); !m.OriginalEndDate.Equal(want) {
		t.Errorf("OriginalEndDate = %s, want %s", m.OriginalEndDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	// 1 extending → slot terakhir bergeser ke 5 Feb
	if want := date(2024, time.February, 5); !m.CurrentEndDate.Equal(want) {
		t.Errorf("CurrentEndDate = %s, want %s", m.CurrentEndDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if m.TotalPlannedClasses != 5 {
		t.Errorf("TotalPlannedClasses = %d, want 5 (kuota beku)", m.TotalPlannedClasses)
	}
	if m.TotalAttended != 1 || m.TotalCancelled != 1 || m.TotalCancelledExtending != 1 {
		t.Errorf("counts = (%d,%d,%d), want (1,1,1)", m.TotalAttended, m.TotalCancelled, m.TotalCancelledExtending)
	}
	if m.NextClassDate == nil || !m.NextClassDate.Equal(date(2024, time.January, 15)) {
		t.Errorf("NextClassDate = %v, want 2024-01-15", m.NextClassDate)
	}
	if m.Truncated {
		t.Error("Truncated harus false")
	}
}

func TestCalculatePlanMetricsForfeitedDoesNotMoveEndDate(t *testing.T) {
	// History kontigu dari awal kontrak: aula perdida tidak menggeser
	// CurrentEndDate, cancelamento extending menggesernya tepat satu slot.
	base := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 1), Time: "14:00", Status: StatusAttended},
	})
	withForfeit := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 1), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusCancelled, ExtendsPlan: boolPtr(false)},
	})
	withExtend := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 1), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusCancelled, ExtendsPlan: boolPtr(true)},
	})
	now := date(2024, time.January, 2)

	mBase := CalculatePlanMetrics(base, now)
	mForfeit := CalculatePlanMetrics(withForfeit, now)
	mExtend := CalculatePlanMetrics(withExtend, now)

	if want := date(2024, time.January, 29); !mBase.CurrentEndDate.Equal(want) {
		t.Fatalf("CurrentEndDate base = %s, want %s",
			mBase.CurrentEndDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if !mForfeit.CurrentEndDate.Equal(mBase.CurrentEndDate) {
		t.Errorf("aula perdida menggeser CurrentEndDate: %s vs %s",
			mForfeit.CurrentEndDate.Format("2006-01-02"), mBase.CurrentEndDate.Format("2006-01-02"))
	}
	if want := date(2024, time.February, 5); !mExtend.CurrentEndDate.Equal(want) {
		t.Errorf("CurrentEndDate extending = %s, want %s (satu slot makeup)",
			mExtend.CurrentEndDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestCalculatePlanMetricsNextClassSkipsRecordedToday(t *testing.T) {
	// Hari ini sudah attended → next harus slot berikutnya.
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusAttended},
	})
	now := date(2024, time.January, 8)

	m := CalculatePlanMetrics(plan, now)
	if m.NextClassDate == nil || !m.NextClassDate.Equal(date(2024, time.January, 15)) {
		t.Errorf("NextClassDate = %v, want 2024-01-15", m.NextClassDate)
	}
}

func TestCalculatePlanMetricsPendingEqualsAbsent(t *testing.T) {
	// Record pending tersimpan (artefak reset) ≡ tidak ada record:
	// tanggalnya tetap kandidat next class dan tidak masuk hitungan.
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusPending},
	})
	now := date(2024, time.January, 8)

	m := CalculatePlanMetrics(plan, now)
	if m.NextClassDate == nil || !m.NextClassDate.Equal(date(2024, time.January, 8)) {
		t.Errorf("NextClassDate = %v, want 2024-01-08 (pending ≡ absent)", m.NextClassDate)
	}
	if m.TotalAttended != 0 || m.TotalCancelled != 0 {
		t.Errorf("pending tidak boleh masuk hitungan: attended=%d cancelled=%d", m.TotalAttended, m.TotalCancelled)
	}
}

func TestCalculatePlanMetricsNoUpcomingClass(t *testing.T) {
	plan := mondayPlan([]AttendanceRecord{
		{Date: date(2024, time.January, 1), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 15), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 22), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 29), Time: "14:00", Status: StatusAttended},
	})
	now := date(2024, time.March, 1)

	m := CalculatePlanMetrics(plan, now)
	if m.NextClassDate != nil {
		t.Errorf("NextClassDate = %v, want nil (kontrak selesai)", m.NextClassDate)
	}
}

func TestCalculateMonthlyStats(t *testing.T) {
	history := []AttendanceRecord{
		{Date: date(2024, time.February, 5), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 8), Time: "14:00", Status: StatusCancelled},
		{Date: date(2024, time.January, 1), Time: "14:00", Status: StatusAttended},
		{Date: date(2024, time.January, 15), Time: "14:00", Status: StatusPending}, // diabaikan di hitungan
	}

	got := CalculateMonthlyStats(history)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 bulan", len(got))
	}
	// kronologis: Januari dulu walau record Februari duluan di input
	if got[0].MonthYear != "January 2024" || got[1].MonthYear != "February 2024" {
		t.Errorf("urutan bulan salah: %q, %q", got[0].MonthYear, got[1].MonthYear)
	}
	if got[0].Attended != 1 || got[0].Cancelled != 1 {
		t.Errorf("Januari = (%d,%d), want (1,1)", got[0].Attended, got[0].Cancelled)
	}
	if got[1].Attended != 1 || got[1].Cancelled != 0 {
		t.Errorf("Februari = (%d,%d), want (1,0)", got[1].Attended, got[1].Cancelled)
	}
}

func TestCalculateMonthlyStatsEmpty(t *testing.T) {
	if got := CalculateMonthlyStats(nil); len(got) != 0 {
		t.Errorf("history kosong harus menghasilkan 0 entri, dapat %d", len(got))
	}
}

func assertDates(t *testing.T, got, want []time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (got=%v)", len(got), len(want), formatDates(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("index %d: %s, want %s", i, got[i].Format("2006-01-02"), want[i].Format("2006-01-02"))
		}
	}
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}
