// Package alerts derives transient reminders from the schedule and goal
// collections. Alerts are recomputed from scratch on every cycle and are
// never persisted; a dismissed alert whose cause persists reappears on the
// next evaluation.
package alerts

import (
	"fmt"
	"time"

	"github.com/plenoapp/pleno/internal/constants"
	"github.com/plenoapp/pleno/internal/models"
)

// Evaluate computes the full alert set for the given schedule items and goals
// at the given instant. IDs are deterministic functions of the source record
// so unchanged state always yields the same set.
func Evaluate(items []models.ScheduleItem, goals []models.Goal, now time.Time) []models.Alert {
	alerts := []models.Alert{}

	for _, item := range items {
		if !item.IsOverdue(now) {
			continue
		}
		alerts = append(alerts, models.Alert{
			ID:        "alert-" + item.ID,
			RelatedID: item.ID,
			Title:     fmt.Sprintf("Tempo Excedido: %s", item.Title),
			Message: fmt.Sprintf("Você passou do tempo programado para %q. Tempo programado: %d minutos.",
				item.Title, item.DurationMin),
			TriggeredAt: now.UnixMilli(),
		})
	}

	for _, goal := range goals {
		if goal.Completed {
			continue
		}
		days, err := goal.DaysUntil(now)
		if err != nil {
			continue
		}
		switch {
		case days > 0 && days <= constants.GoalDeadlineWindowDays:
			alerts = append(alerts, models.Alert{
				ID:        "goal-alert-" + goal.ID,
				RelatedID: goal.ID,
				Title:     fmt.Sprintf("Meta Próxima do Prazo: %s", goal.Title),
				Message: fmt.Sprintf("Sua meta %q vence em %d dia(s). Continue firme!",
					goal.Title, days),
				TriggeredAt: now.UnixMilli(),
			})
		case days <= 0:
			alerts = append(alerts, models.Alert{
				ID:        "goal-expired-" + goal.ID,
				RelatedID: goal.ID,
				Title:     fmt.Sprintf("Meta Vencida: %s", goal.Title),
				Message: fmt.Sprintf("O prazo da sua meta %q já passou. Que tal revisar ou concluir?",
					goal.Title),
				TriggeredAt: now.UnixMilli(),
			})
		}
	}

	return alerts
}
