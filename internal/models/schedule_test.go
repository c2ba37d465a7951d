package models

import (
	"testing"
	"time"
)

func TestScheduleItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    ScheduleItem
		wantErr bool
	}{
		{
			name: "valid item",
			item: ScheduleItem{
				ID:          "test-id",
				Title:       "Meditação",
				Date:        "2026-09-01",
				Time:        "08:30",
				DurationMin: 20,
				Category:    CategoryMind,
			},
			wantErr: false,
		},
		{
			name: "invalid date format",
			item: ScheduleItem{
				ID:          "test-id",
				Title:       "Meditação",
				Date:        "01/09/2026",
				Time:        "08:30",
				DurationMin: 20,
				Category:    CategoryMind,
			},
			wantErr: true,
		},
		{
			name: "invalid time format",
			item: ScheduleItem{
				ID:          "test-id",
				Title:       "Meditação",
				Date:        "2026-09-01",
				Time:        "8h30",
				DurationMin: 20,
				Category:    CategoryMind,
			},
			wantErr: true,
		},
		{
			name: "zero duration",
			item: ScheduleItem{
				ID:          "test-id",
				Title:       "Meditação",
				Date:        "2026-09-01",
				Time:        "08:30",
				DurationMin: 0,
				Category:    CategoryBody,
			},
			wantErr: true,
		},
		{
			name: "invalid category",
			item: ScheduleItem{
				ID:          "test-id",
				Title:       "Meditação",
				Date:        "2026-09-01",
				Time:        "08:30",
				DurationMin: 20,
				Category:    "spirit",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScheduleItem_IsOverdue(t *testing.T) {
	item := ScheduleItem{
		ID:          "test-id",
		Title:       "Caminhada",
		Date:        "2026-09-01",
		Time:        "10:00",
		DurationMin: 30,
		Category:    CategoryBody,
	}

	day := func(clock string) time.Time {
		t, _ := time.ParseInLocation("2006-01-02 15:04", "2026-09-01 "+clock, time.Local)
		return t
	}

	tests := []struct {
		name string
		now  time.Time
		done bool
		want bool
	}{
		{name: "before start", now: day("09:00"), want: false},
		{name: "during window", now: day("10:15"), want: false},
		{name: "exactly at end", now: day("10:30"), want: false},
		{name: "after end", now: day("10:31"), want: true},
		{name: "after end but completed", now: day("10:31"), done: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := item
			it.Completed = tt.done
			if got := it.IsOverdue(tt.now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("unparseable date is never overdue", func(t *testing.T) {
		it := item
		it.Date = "not-a-date"
		if it.IsOverdue(day("23:00")) {
			t.Error("IsOverdue() = true for unparseable date")
		}
	})
}
