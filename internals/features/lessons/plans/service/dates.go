// file: internals/features/lessons/plans/service/dates.go
//
// Granularitas seluruh mesin ledger = hari kalender: semua tanggal
// dinormalisasi ke tengah malam UTC sebelum dibandingkan.
package service

import "time"

// DateOnly membuang komponen jam dan memaksa UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonthsClamped menambah bulan kalender dengan clamp hari:
// 31 Jan + 1 bulan = 28/29 Feb (bukan overflow ke Maret seperti AddDate).
// Ini konvensi "nearest valid day" untuk tanggal akhir kontrak.
func AddMonthsClamped(t time.Time, months int) time.Time {
	t = DateOnly(t)

	year := t.Year()
	month := int(t.Month()) - 1 + months
	year += month / 12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysInMonth(year, time.Month(month+1)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// hari ke-0 bulan berikutnya = hari terakhir bulan ini
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isoDate: key lookup history, format yyyy-MM-dd.
func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
