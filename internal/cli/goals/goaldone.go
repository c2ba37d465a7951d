package goals

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/utils"
)

type GoalDoneCmd struct {
	ID string `arg:"" help:"Goal ID to toggle."`
}

func (c *GoalDoneCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return fmt.Errorf("failed to get goals: %w", err)
	}

	for _, goal := range goals {
		if goal.ID != c.ID {
			continue
		}

		goal.Toggle()
		if err := ctx.Store.UpdateGoal(goal); err != nil {
			return err
		}

		if goal.Completed {
			now := time.Now()
			history := models.HistoryEntry{
				ID:        uuid.New().String(),
				Type:      models.HistoryGoal,
				Title:     goal.Title,
				CreatedAt: now.UnixMilli(),
				Date:      utils.FormatDisplayDate(now),
			}
			if err := ctx.Store.AppendHistoryEntry(history); err != nil {
				logger.Warn("Failed to record goal completion in history", "error", err)
			}
			fmt.Printf("Completed goal: %s\n", goal.Title)
		} else {
			fmt.Printf("Reopened goal: %s\n", goal.Title)
		}
		return nil
	}

	return fmt.Errorf("goal not found: %s", c.ID)
}
