package goals

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/utils"
)

type GoalAddCmd struct {
	Title       string `arg:"" help:"Goal title."`
	Target      string `short:"t" help:"Target date (YYYY-MM-DD)." required:""`
	Type        string `short:"k" help:"Goal type (short-term|long-term)." default:"short-term"`
	Description string `help:"Optional description."`
}

func (c *GoalAddCmd) Validate() error {
	if _, err := utils.ParseDate(c.Target); err != nil {
		return err
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	goal := models.Goal{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Type:        models.GoalType(c.Type),
		TargetDate:  c.Target,
		CreatedAt:   utils.NowMillis(),
	}

	if err := goal.Validate(); err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}

	if err := ctx.Store.AddGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Added goal: %s (target %s)\n", c.Title, c.Target)
	return nil
}
