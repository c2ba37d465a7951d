package schedule

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
)

type ScheduleDoneCmd struct {
	ID string `arg:"" help:"Item ID to toggle."`
}

func (c *ScheduleDoneCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetScheduleItems()
	if err != nil {
		return fmt.Errorf("failed to get schedule items: %w", err)
	}

	for _, item := range items {
		if item.ID != c.ID {
			continue
		}

		item.Toggle()
		if err := ctx.Store.UpdateScheduleItem(item); err != nil {
			return err
		}

		if item.Completed {
			fmt.Printf("Completed: %s\n", item.Title)
		} else {
			fmt.Printf("Reopened: %s\n", item.Title)
		}
		return nil
	}

	return fmt.Errorf("schedule item not found: %s", c.ID)
}
