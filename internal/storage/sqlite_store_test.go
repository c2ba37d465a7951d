package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenoapp/pleno/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "pleno.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_InitSeedsDefaults(t *testing.T) {
	store := newTestSQLiteStore(t)

	routines, err := store.GetRoutineItems()
	require.NoError(t, err)
	require.Len(t, routines, 3)
	assert.Equal(t, "routine-exercise", routines[0].ID)

	hours, err := store.GetDailyHours()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDailyHours(), hours)
}

func TestSQLiteStore_InitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pleno.db")

	store := NewSQLiteStore(path)
	require.NoError(t, store.Init())
	require.NoError(t, store.AddRoutineItem(models.RoutineItem{
		ID: "custom", Title: "Leitura", Category: models.RoutineAdvice,
	}))
	require.NoError(t, store.Close())

	again := NewSQLiteStore(path)
	require.NoError(t, again.Init())
	defer again.Close()

	routines, err := again.GetRoutineItems()
	require.NoError(t, err)
	assert.Len(t, routines, 4, "re-init must not clobber or reseed existing rows")
}

func TestSQLiteStore_LoadMissingFile(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestSQLiteStore_LoadForeignFileReinitializes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pleno.db")
	require.NoError(t, os.WriteFile(path, []byte(""), 0600))

	store := NewSQLiteStore(path)
	require.NoError(t, store.Load())
	defer store.Close()

	routines, err := store.GetRoutineItems()
	require.NoError(t, err)
	assert.Len(t, routines, 3, "schema-less file should be rebuilt with defaults")
}

func TestSQLiteStore_JournalCRUD(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.AddJournalEntry(models.JournalEntry{
		ID: "1", Date: "01/09/2026", Emotion: models.EmotionHappy, Intensity: 7, Message: "bom dia", CreatedAt: 100,
	}))
	require.NoError(t, store.AddJournalEntry(models.JournalEntry{
		ID: "2", Date: "01/09/2026", Emotion: models.EmotionSad, Intensity: 3, Message: "cansado", CreatedAt: 200,
	}))

	entries, err := store.GetJournalEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].ID, "newest first")
	assert.Equal(t, models.EmotionSad, entries[0].Emotion)

	require.NoError(t, store.DeleteJournalEntry("1"))
	entries, err = store.GetJournalEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Error(t, store.DeleteJournalEntry("nope"))
}

func TestSQLiteStore_ScheduleAndGoals(t *testing.T) {
	store := newTestSQLiteStore(t)

	item := models.ScheduleItem{
		ID: "s1", Title: "Caminhada", Date: "2026-09-01", Time: "10:00",
		DurationMin: 30, Category: models.CategoryBody,
	}
	require.NoError(t, store.AddScheduleItem(item))

	item.Completed = true
	require.NoError(t, store.UpdateScheduleItem(item))

	items, err := store.GetScheduleItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Completed)
	assert.Equal(t, models.CategoryBody, items[0].Category)

	assert.Error(t, store.UpdateScheduleItem(models.ScheduleItem{ID: "ghost"}))

	goal := models.Goal{
		ID: "g1", Title: "Ler", Type: models.GoalShortTerm, TargetDate: "2026-09-30", CreatedAt: 10,
	}
	require.NoError(t, store.AddGoal(goal))

	goal.Completed = true
	require.NoError(t, store.UpdateGoal(goal))

	goals, err := store.GetGoals()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Completed)

	require.NoError(t, store.DeleteGoal("g1"))
	goals, err = store.GetGoals()
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestSQLiteStore_ChatAndHistory(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.AppendChatMessage(models.ChatMessage{ID: "m1", Text: "oi", FromBot: true, CreatedAt: 1}))
	require.NoError(t, store.AppendChatMessage(models.ChatMessage{ID: "m2", Text: "olá", FromBot: false, CreatedAt: 2}))

	msgs, err := store.GetChatMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID, "chronological order")
	assert.True(t, msgs[0].FromBot)
	assert.False(t, msgs[1].FromBot)

	require.NoError(t, store.ClearChatMessages())
	msgs, err = store.GetChatMessages()
	require.NoError(t, err)
	assert.Empty(t, msgs)

	require.NoError(t, store.AppendHistoryEntry(models.HistoryEntry{ID: "h1", Type: models.HistoryChat, Title: "Conversa", CreatedAt: 1}))
	require.NoError(t, store.AppendHistoryEntry(models.HistoryEntry{ID: "h2", Type: models.HistoryGoal, Title: "Meta", CreatedAt: 2}))

	history, err := store.GetHistoryEntries()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "h2", history[0].ID, "newest first")
	assert.Equal(t, models.HistoryGoal, history[0].Type)
}

func TestSQLiteStore_MetaSingletons(t *testing.T) {
	store := newTestSQLiteStore(t)

	hours := models.DailyHours{Sleep: 7, Phone: 2, Leisure: 4, Work: 9, Other: 2}
	require.NoError(t, store.SaveDailyHours(hours))
	got, err := store.GetDailyHours()
	require.NoError(t, err)
	assert.Equal(t, hours, got)

	// Malformed stored hours fall back to defaults instead of failing.
	require.NoError(t, store.setMeta(metaKeyDailyHours, "{broken"))
	got, err = store.GetDailyHours()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDailyHours(), got)

	require.NoError(t, store.SaveDailyMessage("Força!"))
	msg, err := store.GetDailyMessage()
	require.NoError(t, err)
	assert.Equal(t, "Força!", msg)

	profile := models.UserProfile{Name: "Ana", BirthDate: "1990-05-12"}
	require.NoError(t, store.SaveProfile(profile))
	gotProfile, err := store.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, profile, gotProfile)
}

func TestSQLiteStore_MonthlyProgressReplace(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.SaveMonthlyProgress([]models.MonthlyProgress{
		{Month: "2026-08", Score: 60},
		{Month: "2026-09", Score: 75},
	}))

	// A save replaces the whole series.
	require.NoError(t, store.SaveMonthlyProgress([]models.MonthlyProgress{
		{Month: "2026-09", Score: 80},
	}))

	points, err := store.GetMonthlyProgress()
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 80, points[0].Score)
}
