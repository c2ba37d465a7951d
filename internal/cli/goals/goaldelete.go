package goals

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
)

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID to delete."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteGoal(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted goal: %s\n", c.ID)
	return nil
}
