package models

import (
	"math"
	"time"

	"github.com/plenoapp/pleno/internal/utils"
	"github.com/plenoapp/pleno/internal/validation"
)

// GoalType distinguishes short-term from long-term objectives.
type GoalType string

const (
	GoalShortTerm GoalType = "short-term"
	GoalLongTerm  GoalType = "long-term"
)

// Goal is a user-defined objective with a target date.
type Goal struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Type        GoalType `json:"type" validate:"required,oneof=short-term long-term"`
	TargetDate  string   `json:"target_date" validate:"required,datetime=2006-01-02"`
	Completed   bool     `json:"completed"`
	CreatedAt   int64    `json:"created_at"` // epoch milliseconds
}

func (g *Goal) Validate() error {
	return validation.Struct(g)
}

// DaysUntil returns the number of days until the target date, rounded up.
// Zero or negative means the deadline has passed.
func (g *Goal) DaysUntil(now time.Time) (int, error) {
	target, err := utils.ParseDate(g.TargetDate)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(target.Sub(now).Hours() / 24)), nil
}

// Toggle flips the completion flag.
func (g *Goal) Toggle() {
	g.Completed = !g.Completed
}
