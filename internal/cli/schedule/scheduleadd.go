package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/utils"
)

type ScheduleAddCmd struct {
	Title       string `arg:"" help:"Activity title."`
	Date        string `short:"d" help:"Date (YYYY-MM-DD)." required:""`
	Time        string `short:"t" help:"Start time (HH:MM)." required:""`
	Duration    int    `short:"m" help:"Duration in minutes." default:"30"`
	Category    string `short:"c" help:"Category (body|mind)." default:"mind"`
	Description string `help:"Optional description."`
}

func (c *ScheduleAddCmd) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	if _, err := utils.ParseDate(c.Date); err != nil {
		return err
	}
	if _, err := utils.ParseClock(c.Time); err != nil {
		return err
	}
	return nil
}

func (c *ScheduleAddCmd) Run(ctx *cli.Context) error {
	item := models.ScheduleItem{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Date:        c.Date,
		Time:        c.Time,
		DurationMin: c.Duration,
		Category:    models.ScheduleCategory(c.Category),
	}

	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid schedule item: %w", err)
	}

	if err := ctx.Store.AddScheduleItem(item); err != nil {
		return err
	}

	fmt.Printf("Scheduled: %s on %s at %s (%dm)\n", c.Title, c.Date, c.Time, c.Duration)
	return nil
}
