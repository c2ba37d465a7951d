package routine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/utils"
)

type RoutineToggleCmd struct {
	ID string `arg:"" help:"Habit ID to toggle."`
}

func (c *RoutineToggleCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetRoutineItems()
	if err != nil {
		return fmt.Errorf("failed to get routine items: %w", err)
	}

	for _, item := range items {
		if item.ID != c.ID {
			continue
		}

		item.Toggle()
		if err := ctx.Store.UpdateRoutineItem(item); err != nil {
			return err
		}

		if item.Completed {
			now := time.Now()
			history := models.HistoryEntry{
				ID:        uuid.New().String(),
				Type:      models.HistoryRoutine,
				Title:     item.Title,
				CreatedAt: now.UnixMilli(),
				Date:      utils.FormatDisplayDate(now),
			}
			if err := ctx.Store.AppendHistoryEntry(history); err != nil {
				logger.Warn("Failed to record routine completion in history", "error", err)
			}
			fmt.Printf("Completed: %s (streak %d)\n", item.Title, item.Streak)
		} else {
			fmt.Printf("Unchecked: %s (streak %d)\n", item.Title, item.Streak)
		}
		return nil
	}

	return fmt.Errorf("routine item not found: %s", c.ID)
}
