package schedule

import (
	"fmt"
	"time"

	"github.com/plenoapp/pleno/internal/cli"
)

type ScheduleListCmd struct {
	Date    string `short:"d" help:"Show only this date (YYYY-MM-DD)."`
	ShowIDs bool   `help:"Show item IDs." name:"show-ids"`
}

func (c *ScheduleListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetScheduleItems()
	if err != nil {
		return fmt.Errorf("failed to get schedule items: %w", err)
	}
	if len(items) == 0 {
		fmt.Println("No scheduled activities")
		return nil
	}

	now := time.Now()
	shown := 0

	fmt.Println(cli.TitleStyle.Render("Schedule:"))
	for _, item := range items {
		if c.Date != "" && item.Date != c.Date {
			continue
		}
		shown++

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", item.ID)
		}

		line := fmt.Sprintf("  %s %s %s  %s - %dm (%s)%s",
			cli.Checkbox(item.Completed), item.Date, item.Time, item.Title, item.DurationMin, item.Category, idStr)
		if item.IsOverdue(now) {
			line += " " + cli.DangerStyle.Render("overdue")
		}
		fmt.Println(line)

		if item.Description != "" {
			fmt.Printf("      %s\n", item.Description)
		}
	}

	if shown == 0 {
		fmt.Println("  No activities for that date")
	}

	return nil
}
