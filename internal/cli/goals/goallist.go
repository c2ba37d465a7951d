package goals

import (
	"fmt"
	"time"

	"github.com/plenoapp/pleno/internal/cli"
)

type GoalListCmd struct {
	All     bool `short:"a" help:"Include completed goals."`
	ShowIDs bool `help:"Show goal IDs." name:"show-ids"`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return fmt.Errorf("failed to get goals: %w", err)
	}
	if len(goals) == 0 {
		fmt.Println("No goals yet")
		return nil
	}

	now := time.Now()
	shown := 0

	fmt.Println(cli.TitleStyle.Render("Goals:"))
	for _, goal := range goals {
		if goal.Completed && !c.All {
			continue
		}
		shown++

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", goal.ID)
		}

		deadline := ""
		if !goal.Completed {
			if days, err := goal.DaysUntil(now); err == nil {
				switch {
				case days <= 0:
					deadline = " " + cli.DangerStyle.Render("expired")
				case days <= 7:
					deadline = " " + cli.WarningStyle.Render(fmt.Sprintf("%d day(s) left", days))
				default:
					deadline = cli.MutedStyle.Render(fmt.Sprintf(" %d day(s) left", days))
				}
			}
		}

		fmt.Printf("  %s %s (%s, target %s)%s%s\n",
			cli.Checkbox(goal.Completed), goal.Title, goal.Type, goal.TargetDate, deadline, idStr)
		if goal.Description != "" {
			fmt.Printf("      %s\n", goal.Description)
		}
	}

	if shown == 0 {
		fmt.Println("  All goals completed")
	}

	return nil
}
