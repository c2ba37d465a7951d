package models

import (
	"github.com/plenoapp/pleno/internal/validation"
)

// HistoryType classifies an activity-history entry.
type HistoryType string

const (
	HistoryChat    HistoryType = "conversa"
	HistoryGoal    HistoryType = "meta"
	HistoryRoutine HistoryType = "rotina"
	HistoryChart   HistoryType = "grafico"
)

// HistoryEntry is one line of the append-only activity log.
type HistoryEntry struct {
	ID          string      `json:"id"`
	Type        HistoryType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CreatedAt   int64       `json:"created_at"` // epoch milliseconds
	Date        string      `json:"date"`       // display string, DD/MM/YYYY
}

// MonthlyProgress is one point of the month-by-month wellbeing series.
type MonthlyProgress struct {
	Month string `json:"month" validate:"required"`
	Score int    `json:"score" validate:"min=0,max=100"`
}

func (m *MonthlyProgress) Validate() error {
	return validation.Struct(m)
}

// UserProfile is the single on-device user record.
type UserProfile struct {
	Name             string `json:"name"`
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone"`
	BirthDate        string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergency_contact"`
}

func (u *UserProfile) Validate() error {
	return validation.Struct(u)
}
