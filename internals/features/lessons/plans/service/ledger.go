// file: internals/features/lessons/plans/service/ledger.go
//
// Mesin ledger kontrak les: semua fungsi di sini PURE — tanpa DB, tanpa
// fiber, tanpa I/O. Input berupa snapshot plan (data polos), output nilai
// turunan baru. Controller yang bertanggung jawab memetakan model GORM ke
// snapshot dan meneruskan time.Now().
package service

import (
	"sort"
	"time"
)

/* =======================================================
   Snapshot types (input mesin ledger)
   ======================================================= */

type ClassSchedule struct {
	DayOfWeek time.Weekday // 0=Minggu .. 6=Sabtu
	Time      string       // "HH:MM"
}

const (
	StatusAttended  = "attended"
	StatusCancelled = "cancelled"
	StatusPending   = "pending"
)

type AttendanceRecord struct {
	Date   time.Time // tanggal kalender (jam diabaikan)
	Time   string    // "HH:MM", display only
	Status string    // attended | cancelled | pending

	// Hanya bermakna saat status=cancelled.
	// nil ≡ true (reposição: slot diganti, kontrak memanjang).
	// false = aula perdida: slot hangus, kontrak tidak memanjang.
	ExtendsPlan *bool
	Reason      string
}

type PlanSnapshot struct {
	StartDate      time.Time
	DurationMonths int

	// FIXO: kuota kontrak, dihitung sekali saat create.
	TotalContractedClasses int

	Schedules []ClassSchedule
	History   []AttendanceRecord
}

/* =======================================================
   Batas defensif
   ======================================================= */

const (
	// Kuota awal: stop hitung kalau sudah lewat 2000 slot
	// (durasi puluhan tahun = input patologis).
	maxInitialClassCount = 2000

	// Daftar kelas: maksimal 3000 entri.
	maxClassListEntries = 3000

	// Jadwal kosong tidak pernah match, jadi jumlah HARI yang discan juga
	// dibatasi; dengan jadwal mingguan non-kosong, 7 hari ≥ 1 slot,
	// sehingga batas ini tidak pernah tercapai sebelum batas entri.
	maxClassListWalkDays = 7 * maxClassListEntries
)

/* =======================================================
   4.1 Recurrence Matcher
   ======================================================= */

// IsScheduledDay: true jika weekday `date` ada di salah satu jadwal.
func IsScheduledDay(date time.Time, schedules []ClassSchedule) bool {
	day := date.Weekday()
	for _, s := range schedules {
		if s.DayOfWeek == day {
			return true
		}
	}
	return false
}

/* =======================================================
   4.2 Initial Quota Calculator
   ======================================================= */

// CalculateInitialClassCount menghitung kuota kontrak: jumlah slot
// recurring dari start s/d start+durationMonths (inklusif). Dipanggil
// SEKALI saat plan dibuat; hasilnya dibekukan di plan.
//
// truncated=true kalau batas 2000 tersentuh — hasilnya parsial dan
// caller wajib menolak/menandai input seperti itu.
func CalculateInitialClassCount(start time.Time, durationMonths int, schedules []ClassSchedule) (count int, truncated bool) {
	theoreticalEnd := AddMonthsClamped(start, durationMonths)

	for current := DateOnly(start); !current.After(theoreticalEnd); current = current.AddDate(0, 0, 1) {
		if IsScheduledDay(current, schedules) {
			count++
		}
		if count > maxInitialClassCount {
			return count, true
		}
	}
	return count, false
}

/* =======================================================
   4.3 Class List Generator
   ======================================================= */

// GenerateClassList menghasilkan daftar lengkap tanggal kelas sebuah
// plan, ascending, tanpa duplikat:
//   - semua tanggal history dipakai apa adanya (edit jadwal tidak
//     membatalkan record lama, termasuk makeup di hari non-jadwal);
//   - slot masa depan disintesis mengikuti jadwal mingguan SAAT INI,
//     mulai sehari setelah history terakhir (atau start date);
//   - target panjang = kuota beku + jumlah cancelamento yang
//     memperpanjang kontrak (extends != false).
//
// truncated=true kalau batas defensif tersentuh (list parsial).
func GenerateClassList(plan PlanSnapshot) (dates []time.Time, truncated bool) {
	historyDates := make([]time.Time, 0, len(plan.History))
	historySet := make(map[string]struct{}, len(plan.History))
	for _, h := range plan.History {
		d := DateOnly(h.Date)
		historyDates = append(historyDates, d)
		historySet[isoDate(d)] = struct{}{}
	}
	sort.Slice(historyDates, func(i, j int) bool { return historyDates[i].Before(historyDates[j]) })

	// Setiap cancelamento "extends" menambah tepat satu slot makeup.
	targetTotal := plan.TotalContractedClasses + countCancelledExtending(plan.History)

	result := append([]time.Time{}, historyDates...)

	current := DateOnly(plan.StartDate)
	if n := len(historyDates); n > 0 {
		current = historyDates[n-1].AddDate(0, 0, 1)
	}

	for walked := 0; len(result) < targetTotal; walked++ {
		if len(result) > maxClassListEntries || walked > maxClassListWalkDays {
			truncated = true
			break
		}
		if IsScheduledDay(current, plan.Schedules) {
			if _, exists := historySet[isoDate(current)]; !exists {
				result = append(result, current)
			}
		}
		current = current.AddDate(0, 0, 1)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Before(result[j]) })
	return result, truncated
}

/* =======================================================
   4.4 Metrics Aggregator
   ======================================================= */

type PlanMetrics struct {
	OriginalEndDate time.Time  `json:"original_end_date"` // start + durasi, abaikan cancelamento
	CurrentEndDate  time.Time  `json:"current_end_date"`  // slot terakhir di class list
	NextClassDate   *time.Time `json:"next_class_date"`   // nil = tidak ada slot mendatang

	TotalPlannedClasses     int `json:"total_planned_classes"` // kuota beku
	TotalAttended           int `json:"total_attended"`
	TotalCancelled          int `json:"total_cancelled"`
	TotalCancelledExtending int `json:"total_cancelled_extending"`

	// Class list kena batas defensif → angka di atas parsial.
	Truncated bool `json:"truncated"`
}

// CalculatePlanMetrics menurunkan ringkasan sebuah plan. `now` disuntik
// supaya fungsi tetap pure; controller memakai time.Now().
func CalculatePlanMetrics(plan PlanSnapshot, now time.Time) PlanMetrics {
	classList, truncated := GenerateClassList(plan)

	originalEnd := AddMonthsClamped(plan.StartDate, plan.DurationMonths)
	currentEnd := originalEnd
	if len(classList) > 0 {
		currentEnd = classList[len(classList)-1]
	}

	recordByDate := make(map[string]AttendanceRecord, len(plan.History))
	for _, h := range plan.History {
		recordByDate[isoDate(DateOnly(h.Date))] = h
	}

	// Slot pertama hari-ini-atau-nanti yang belum punya outcome.
	// Record pending ≡ tidak ada record.
	today := DateOnly(now)
	var nextClass *time.Time
	for _, d := range classList {
		if d.Before(today) {
			continue
		}
		rec, has := recordByDate[isoDate(d)]
		if !has || rec.Status == StatusPending {
			next := d
			nextClass = &next
			break
		}
	}

	attended, cancelled := 0, 0
	for _, h := range plan.History {
		switch h.Status {
		case StatusAttended:
			attended++
		case StatusCancelled:
			cancelled++
		}
	}

	return PlanMetrics{
		OriginalEndDate:         originalEnd,
		CurrentEndDate:          currentEnd,
		NextClassDate:           nextClass,
		TotalPlannedClasses:     plan.TotalContractedClasses,
		TotalAttended:           attended,
		TotalCancelled:          cancelled,
		TotalCancelledExtending: countCancelledExtending(plan.History),
		Truncated:               truncated,
	}
}

/* =======================================================
   4.5 Monthly Statistics Reducer
   ======================================================= */

type MonthlyStats struct {
	MonthYear string `json:"month_year"` // label display, mis. "January 2024"
	Attended  int    `json:"attended"`
	Cancelled int    `json:"cancelled"`
}

// CalculateMonthlyStats mengelompokkan history per bulan kalender.
// Bulan tanpa record tidak pernah muncul. Urutan kronologis.
func CalculateMonthlyStats(history []AttendanceRecord) []MonthlyStats {
	type counts struct{ attended, cancelled int }

	byMonth := make(map[string]*counts)
	keys := make([]string, 0)

	for _, record := range history {
		d := DateOnly(record.Date)
		key := d.Format("2006-01") // sortable
		if _, ok := byMonth[key]; !ok {
			byMonth[key] = &counts{}
			keys = append(keys, key)
		}
		switch record.Status {
		case StatusAttended:
			byMonth[key].attended++
		case StatusCancelled:
			byMonth[key].cancelled++
		}
	}

	sort.Strings(keys)

	stats := make([]MonthlyStats, 0, len(keys))
	for _, key := range keys {
		month, _ := time.ParseInLocation("2006-01", key, time.UTC)
		stats = append(stats, MonthlyStats{
			MonthYear: month.Format("January 2006"),
			Attended:  byMonth[key].attended,
			Cancelled: byMonth[key].cancelled,
		})
	}
	return stats
}

/* =======================================================
   Internal
   ======================================================= */

func countCancelledExtending(history []AttendanceRecord) int {
	n := 0
	for _, h := range history {
		if h.Status == StatusCancelled && (h.ExtendsPlan == nil || *h.ExtendsPlan) {
			n++
		}
	}
	return n
}
