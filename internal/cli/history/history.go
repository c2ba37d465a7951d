package history

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/models"
)

type HistoryListCmd struct {
	Type  string `short:"t" help:"Filter by type (conversa|meta|rotina|grafico)."`
	Limit int    `short:"n" help:"Show at most N entries (0 = all)." default:"20"`
}

func (c *HistoryListCmd) Validate() error {
	switch models.HistoryType(c.Type) {
	case "", models.HistoryChat, models.HistoryGoal, models.HistoryRoutine, models.HistoryChart:
		return nil
	}
	return fmt.Errorf("invalid history type: %s", c.Type)
}

func (c *HistoryListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetHistoryEntries()
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	shown := 0
	fmt.Println(cli.TitleStyle.Render("History:"))
	for _, entry := range entries {
		if c.Type != "" && entry.Type != models.HistoryType(c.Type) {
			continue
		}
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		shown++

		fmt.Printf("  %s  [%s] %s\n", entry.Date, entry.Type, entry.Title)
		if entry.Description != "" {
			fmt.Printf("      %s\n", entry.Description)
		}
	}

	if shown == 0 {
		fmt.Println("  No history entries")
	}

	return nil
}
