package models

import (
	"time"

	"github.com/plenoapp/pleno/internal/utils"
	"github.com/plenoapp/pleno/internal/validation"
)

// ScheduleCategory splits scheduled activities between physical and mental
// self-care.
type ScheduleCategory string

const (
	CategoryBody ScheduleCategory = "body"
	CategoryMind ScheduleCategory = "mind"
)

// ScheduleItem is a dated, timed activity with an expected duration.
// "Overdue" is derived from the clock, never stored.
type ScheduleItem struct {
	ID          string           `json:"id" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string           `json:"time" validate:"required,datetime=15:04"`
	DurationMin int              `json:"duration_min" validate:"min=1"`
	Category    ScheduleCategory `json:"category" validate:"required,oneof=body mind"`
	Completed   bool             `json:"completed"`
}

func (s *ScheduleItem) Validate() error {
	return validation.Struct(s)
}

// EndTime resolves the item's scheduled end (start + duration) in local time.
func (s *ScheduleItem) EndTime() (time.Time, error) {
	start, err := utils.CombineDateTime(s.Date, s.Time)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(s.DurationMin) * time.Minute), nil
}

// IsOverdue reports whether an incomplete item's scheduled window has fully
// elapsed at the given instant. Items with unparseable date/time are never
// overdue.
func (s *ScheduleItem) IsOverdue(now time.Time) bool {
	if s.Completed {
		return false
	}
	end, err := s.EndTime()
	if err != nil {
		return false
	}
	return now.After(end)
}

// Toggle flips the completion flag.
func (s *ScheduleItem) Toggle() {
	s.Completed = !s.Completed
}
