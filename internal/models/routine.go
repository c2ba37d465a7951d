package models

import (
	"github.com/plenoapp/pleno/internal/validation"
)

// RoutineCategory classifies a recurring self-care habit.
type RoutineCategory string

const (
	RoutineTraining  RoutineCategory = "training"
	RoutineNutrition RoutineCategory = "nutrition"
	RoutineAdvice    RoutineCategory = "advice"
)

// RoutineItem is a recurring habit with a completion streak. The streak is
// a completion-toggle counter, not a date-validated consecutive-day count.
type RoutineItem struct {
	ID          string          `json:"id" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Category    RoutineCategory `json:"category" validate:"required,oneof=training nutrition advice"`
	Completed   bool            `json:"completed"`
	Streak      int             `json:"streak" validate:"min=0"`
}

func (r *RoutineItem) Validate() error {
	return validation.Struct(r)
}

// DefaultRoutineItems returns the three habits seeded on first run.
func DefaultRoutineItems() []RoutineItem {
	return []RoutineItem{
		{
			ID:          "routine-exercise",
			Title:       "Exercício Matinal",
			Description: "30 minutos de caminhada ou exercício leve",
			Category:    RoutineTraining,
		},
		{
			ID:          "routine-hydration",
			Title:       "Hidratação",
			Description: "Beber pelo menos 2 litros de água ao longo do dia",
			Category:    RoutineNutrition,
		},
		{
			ID:          "routine-breathing",
			Title:       "Respiração Consciente",
			Description: "5 minutos de respiração profunda para reduzir o estresse",
			Category:    RoutineAdvice,
		},
	}
}

// Toggle flips completion and adjusts the streak: +1 when completing,
// -1 when un-completing, never below zero.
func (r *RoutineItem) Toggle() {
	if r.Completed {
		r.Completed = false
		if r.Streak > 0 {
			r.Streak--
		}
		return
	}
	r.Completed = true
	r.Streak++
}
