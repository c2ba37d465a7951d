package routine

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
)

type RoutineDeleteCmd struct {
	ID string `arg:"" help:"Habit ID to delete."`
}

func (c *RoutineDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteRoutineItem(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.ID)
	return nil
}
