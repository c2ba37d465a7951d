package journal

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
)

type JournalListCmd struct {
	Limit   int  `short:"n" help:"Show at most N entries (0 = all)." default:"10"`
	ShowIDs bool `help:"Show entry IDs." name:"show-ids"`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetJournalEntries()
	if err != nil {
		return fmt.Errorf("failed to get journal entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries yet")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Journal:"))
	for i, entry := range entries {
		if c.Limit > 0 && i >= c.Limit {
			fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("  ... and %d more", len(entries)-c.Limit)))
			break
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", entry.ID)
		}

		fmt.Printf("  %s  %s %d/10%s\n", entry.Date, entry.Emotion.Name(), entry.Intensity, idStr)
		fmt.Printf("      %s\n", entry.Message)
	}

	return nil
}
