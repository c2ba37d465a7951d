package journal

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
)

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry ID to delete."`
}

func (c *JournalDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteJournalEntry(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted journal entry: %s\n", c.ID)
	return nil
}
