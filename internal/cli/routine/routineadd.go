package routine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/models"
)

type RoutineAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Category    string `short:"c" help:"Category (training|nutrition|advice)." required:""`
	Description string `help:"Optional description."`
}

func (c *RoutineAddCmd) Run(ctx *cli.Context) error {
	item := models.RoutineItem{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Category:    models.RoutineCategory(c.Category),
	}

	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid routine item: %w", err)
	}

	if err := ctx.Store.AddRoutineItem(item); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", c.Title, c.Category)
	return nil
}
