package schedule

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
)

type ScheduleDeleteCmd struct {
	ID string `arg:"" help:"Item ID to delete."`
}

func (c *ScheduleDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteScheduleItem(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted schedule item: %s\n", c.ID)
	return nil
}
