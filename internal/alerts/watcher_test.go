package alerts

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/storage"
)

func watcherStore(t *testing.T) storage.Provider {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "pleno.json"))
	require.NoError(t, store.Init())
	require.NoError(t, store.Load())

	item := models.ScheduleItem{
		ID:          "late",
		Title:       "Alongamento",
		Date:        "2020-01-01",
		Time:        "08:00",
		DurationMin: 15,
		Category:    models.CategoryBody,
	}
	require.NoError(t, store.AddScheduleItem(item))
	return store
}

func TestWatcher_EvaluateAndDismiss(t *testing.T) {
	store := watcherStore(t)

	var notified []models.Alert
	w := NewWatcher(store, time.Minute, func(a models.Alert) {
		notified = append(notified, a)
	})

	w.evaluate(time.Now())

	active := w.Active()
	require.Len(t, active, 1)
	require.Equal(t, "alert-late", active[0].ID)
	require.Len(t, notified, 1)

	// Dismissal clears the active set for this cycle only.
	w.Dismiss("alert-late")
	require.Empty(t, w.Active())

	w.evaluate(time.Now())
	require.Len(t, w.Active(), 1, "dismissed alert should come back while its cause persists")

	// Unchanged state never re-notifies.
	require.Len(t, notified, 1)
}

func TestWatcher_NotifiesOnlyNewAlerts(t *testing.T) {
	store := watcherStore(t)

	count := 0
	w := NewWatcher(store, time.Minute, func(models.Alert) { count++ })

	w.evaluate(time.Now())
	w.evaluate(time.Now())
	w.evaluate(time.Now())

	require.Equal(t, 1, count)
}
