package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenoapp/pleno/internal/models"
)

func TestEvaluate_OverdueSchedule(t *testing.T) {
	now := time.Date(2026, 9, 1, 11, 0, 0, 0, time.Local)

	items := []models.ScheduleItem{
		{ID: "a", Title: "Caminhada", Date: "2026-09-01", Time: "10:00", DurationMin: 30, Category: models.CategoryBody},
		{ID: "b", Title: "Meditação", Date: "2026-09-01", Time: "10:45", DurationMin: 30, Category: models.CategoryMind},
		{ID: "c", Title: "Yoga", Date: "2026-09-01", Time: "09:00", DurationMin: 30, Category: models.CategoryBody, Completed: true},
	}

	alerts := Evaluate(items, nil, now)
	require.Len(t, alerts, 1)

	assert.Equal(t, "alert-a", alerts[0].ID)
	assert.Equal(t, "a", alerts[0].RelatedID)
	assert.Equal(t, "Tempo Excedido: Caminhada", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "30 minutos")
	assert.Equal(t, now.UnixMilli(), alerts[0].TriggeredAt)
}

func TestEvaluate_GoalDeadlines(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	goals := []models.Goal{
		{ID: "near", Title: "Ler um livro", Type: models.GoalShortTerm, TargetDate: "2026-09-05"},
		{ID: "far", Title: "Correr 10km", Type: models.GoalLongTerm, TargetDate: "2026-12-01"},
		{ID: "past", Title: "Organizar quarto", Type: models.GoalShortTerm, TargetDate: "2026-08-20"},
		{ID: "done", Title: "Beber mais água", Type: models.GoalShortTerm, TargetDate: "2026-09-02", Completed: true},
		{ID: "bad", Title: "Sem data", Type: models.GoalShortTerm, TargetDate: "soon"},
	}

	alerts := Evaluate(nil, goals, now)
	require.Len(t, alerts, 2)

	assert.Equal(t, "goal-alert-near", alerts[0].ID)
	assert.Equal(t, "Meta Próxima do Prazo: Ler um livro", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "4 dia(s)")

	assert.Equal(t, "goal-expired-past", alerts[1].ID)
	assert.Equal(t, "Meta Vencida: Organizar quarto", alerts[1].Title)
}

func TestEvaluate_ApproachingAndExpiredAreExclusive(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	// Deadline today: DaysUntil is 0, which is expired, never approaching.
	goals := []models.Goal{
		{ID: "today", Title: "Hoje", Type: models.GoalShortTerm, TargetDate: "2026-09-01"},
	}

	alerts := Evaluate(nil, goals, now)
	require.Len(t, alerts, 1)
	assert.Equal(t, "goal-expired-today", alerts[0].ID)
}

func TestEvaluate_Boundary7Days(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	goals := []models.Goal{
		{ID: "seventh", Title: "No limite", Type: models.GoalShortTerm, TargetDate: "2026-09-08"},
		{ID: "eighth", Title: "Fora do limite", Type: models.GoalShortTerm, TargetDate: "2026-09-09"},
	}

	alerts := Evaluate(nil, goals, now)
	require.Len(t, alerts, 1)
	assert.Equal(t, "goal-alert-seventh", alerts[0].ID)
}

func TestEvaluate_Deterministic(t *testing.T) {
	now := time.Date(2026, 9, 1, 11, 0, 0, 0, time.Local)

	items := []models.ScheduleItem{
		{ID: "a", Title: "Caminhada", Date: "2026-09-01", Time: "10:00", DurationMin: 30, Category: models.CategoryBody},
	}
	goals := []models.Goal{
		{ID: "g", Title: "Ler", Type: models.GoalShortTerm, TargetDate: "2026-09-03"},
	}

	first := Evaluate(items, goals, now)
	second := Evaluate(items, goals, now)
	assert.Equal(t, first, second)
}

func TestEvaluate_Empty(t *testing.T) {
	alerts := Evaluate(nil, nil, time.Now())
	assert.Empty(t, alerts)
	assert.NotNil(t, alerts)
}
