package alerts

import (
	"context"
	"sync"
	"time"

	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/storage"
)

// NotifyFunc receives each alert that enters the active set.
type NotifyFunc func(models.Alert)

// Watcher periodically re-evaluates the alert set from storage. Dismissals
// are session-scoped: a dismissed alert is suppressed until its next
// re-evaluation produces it again.
type Watcher struct {
	store    storage.Provider
	interval time.Duration
	notify   NotifyFunc

	mu        sync.Mutex
	active    []models.Alert
	dismissed map[string]bool
}

func NewWatcher(store storage.Provider, interval time.Duration, notify NotifyFunc) *Watcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Watcher{
		store:     store,
		interval:  interval,
		notify:    notify,
		dismissed: map[string]bool{},
	}
}

// Run evaluates immediately, then on every interval tick until the context is
// cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.evaluate(time.Now())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.evaluate(time.Now())
		}
	}
}

// Active returns a copy of the current alert set.
func (w *Watcher) Active() []models.Alert {
	w.mu.Lock()
	defer w.mu.Unlock()

	alerts := make([]models.Alert, len(w.active))
	copy(alerts, w.active)
	return alerts
}

// Dismiss removes an alert from the active set until the next evaluation.
func (w *Watcher) Dismiss(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.dismissed[id] = true
	kept := w.active[:0]
	for _, a := range w.active {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	w.active = kept
}

func (w *Watcher) evaluate(now time.Time) {
	items, err := w.store.GetScheduleItems()
	if err != nil {
		logger.Error("Failed to load schedule items for alert evaluation", "error", err)
		return
	}
	goals, err := w.store.GetGoals()
	if err != nil {
		logger.Error("Failed to load goals for alert evaluation", "error", err)
		return
	}

	fresh := Evaluate(items, goals, now)

	w.mu.Lock()
	previous := map[string]bool{}
	for _, a := range w.active {
		previous[a.ID] = true
	}
	for id := range w.dismissed {
		previous[id] = true
	}

	w.active = fresh
	// Dismissals expire with the cycle: re-derived alerts come back.
	w.dismissed = map[string]bool{}

	var arrived []models.Alert
	for _, a := range fresh {
		if !previous[a.ID] {
			arrived = append(arrived, a)
		}
	}
	w.mu.Unlock()

	if w.notify != nil {
		for _, a := range arrived {
			w.notify(a)
		}
	}
}
