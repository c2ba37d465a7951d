package hours

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
)

type HoursShowCmd struct{}

func (c *HoursShowCmd) Run(ctx *cli.Context) error {
	hours, err := ctx.Store.GetDailyHours()
	if err != nil {
		return fmt.Errorf("failed to get daily hours: %w", err)
	}

	total := hours.Sleep + hours.Phone + hours.Leisure + hours.Work + hours.Other

	fmt.Println(cli.TitleStyle.Render("Daily hours:"))
	fmt.Printf("  Sleep:   %s\n", cli.FormatHours(hours.Sleep))
	fmt.Printf("  Phone:   %s\n", cli.FormatHours(hours.Phone))
	fmt.Printf("  Leisure: %s\n", cli.FormatHours(hours.Leisure))
	fmt.Printf("  Work:    %s\n", cli.FormatHours(hours.Work))
	fmt.Printf("  Other:   %s\n", cli.FormatHours(hours.Other))
	fmt.Printf("  Total:   %s\n", cli.FormatHours(total))

	if total != 24 {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("  Note: total differs from 24h by %s", cli.FormatHours(total-24))))
	}

	return nil
}

type HoursSetCmd struct {
	Sleep   float64 `help:"Hours of sleep." default:"-1"`
	Phone   float64 `help:"Hours on the phone." default:"-1"`
	Leisure float64 `help:"Hours of leisure." default:"-1"`
	Work    float64 `help:"Hours of work or study." default:"-1"`
	Other   float64 `help:"Other hours." default:"-1"`
}

func (c *HoursSetCmd) Run(ctx *cli.Context) error {
	hours, err := ctx.Store.GetDailyHours()
	if err != nil {
		return fmt.Errorf("failed to get daily hours: %w", err)
	}

	// Negative sentinel means "leave unchanged".
	if c.Sleep >= 0 {
		hours.Sleep = c.Sleep
	}
	if c.Phone >= 0 {
		hours.Phone = c.Phone
	}
	if c.Leisure >= 0 {
		hours.Leisure = c.Leisure
	}
	if c.Work >= 0 {
		hours.Work = c.Work
	}
	if c.Other >= 0 {
		hours.Other = c.Other
	}

	if err := hours.Validate(); err != nil {
		return fmt.Errorf("invalid daily hours: %w", err)
	}

	if err := ctx.Store.SaveDailyHours(hours); err != nil {
		return err
	}

	fmt.Println("Updated daily hours")
	return nil
}
