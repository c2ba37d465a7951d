package routine

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
)

type RoutineListCmd struct {
	ShowIDs bool `help:"Show habit IDs." name:"show-ids"`
}

func (c *RoutineListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetRoutineItems()
	if err != nil {
		return fmt.Errorf("failed to get routine items: %w", err)
	}
	if len(items) == 0 {
		fmt.Println("No habits configured")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Routine:"))
	for _, item := range items {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", item.ID)
		}

		streak := ""
		if item.Streak > 0 {
			streak = cli.SuccessStyle.Render(fmt.Sprintf(" streak %d", item.Streak))
		}

		fmt.Printf("  %s %s (%s)%s%s\n", cli.Checkbox(item.Completed), item.Title, item.Category, streak, idStr)
		if item.Description != "" {
			fmt.Printf("      %s\n", item.Description)
		}
	}

	return nil
}
