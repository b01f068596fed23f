package service

import (
	"testing"
	"time"
)

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"biasa", date(2024, time.January, 1), 1, date(2024, time.February, 1)},
		{"enam bulan", date(2024, time.January, 15), 6, date(2024, time.July, 15)},
		{"lintas tahun", date(2024, time.November, 10), 3, date(2025, time.February, 10)},
		// clamp: 31 Jan + 1 bulan = 29 Feb (2024 kabisat), bukan 2 Maret
		{"clamp kabisat", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp non-kabisat", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamp 31 ke 30", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonthsClamped(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonthsClamped(%s, %d) = %s, want %s",
					tt.start.Format("2006-01-02"), tt.months,
					got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, time.March, 5, 23, 45, 12, 999, time.FixedZone("X", 3*3600))
	got := DateOnly(in)
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
}
