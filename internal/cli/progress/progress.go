package progress

import (
	"fmt"
	"strings"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/models"
)

type ProgressListCmd struct{}

func (c *ProgressListCmd) Run(ctx *cli.Context) error {
	points, err := ctx.Store.GetMonthlyProgress()
	if err != nil {
		return fmt.Errorf("failed to get monthly progress: %w", err)
	}
	if len(points) == 0 {
		fmt.Println("No monthly progress recorded")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Monthly progress:"))
	for _, p := range points {
		bar := strings.Repeat("█", p.Score/5)
		fmt.Printf("  %-8s %3d%% %s\n", p.Month, p.Score, bar)
	}

	return nil
}

type ProgressSetCmd struct {
	Month string `arg:"" help:"Month label (e.g. 2026-09 or Set)."`
	Score int    `arg:"" help:"Well-being score (0-100)."`
}

func (c *ProgressSetCmd) Run(ctx *cli.Context) error {
	point := models.MonthlyProgress{Month: c.Month, Score: c.Score}
	if err := point.Validate(); err != nil {
		return fmt.Errorf("invalid progress point: %w", err)
	}

	points, err := ctx.Store.GetMonthlyProgress()
	if err != nil {
		return fmt.Errorf("failed to get monthly progress: %w", err)
	}

	replaced := false
	for i := range points {
		if points[i].Month == c.Month {
			points[i] = point
			replaced = true
			break
		}
	}
	if !replaced {
		points = append(points, point)
	}

	if err := ctx.Store.SaveMonthlyProgress(points); err != nil {
		return err
	}

	fmt.Printf("Recorded %s: %d%%\n", c.Month, c.Score)
	return nil
}
