package models

import (
	"github.com/plenoapp/pleno/internal/validation"
)

// DailyHours is the fixed-shape breakdown of how the day's hours were
// spent. Each category is bounded independently; the sum is deliberately
// not validated against 24.
type DailyHours struct {
	Sleep   float64 `json:"sleep" validate:"min=0,max=24"`
	Phone   float64 `json:"phone" validate:"min=0,max=24"`
	Leisure float64 `json:"leisure" validate:"min=0,max=24"`
	Work    float64 `json:"work" validate:"min=0,max=24"`
	Other   float64 `json:"other" validate:"min=0,max=24"`
}

func (d *DailyHours) Validate() error {
	return validation.Struct(d)
}

// DefaultDailyHours is the breakdown seeded on first run.
func DefaultDailyHours() DailyHours {
	return DailyHours{Sleep: 8, Phone: 4, Leisure: 3, Work: 8, Other: 1}
}
