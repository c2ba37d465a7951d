package alertscmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/plenoapp/pleno/internal/alerts"
	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/constants"
	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/notifier"
)

type AlertListCmd struct{}

func (c *AlertListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetScheduleItems()
	if err != nil {
		return fmt.Errorf("failed to get schedule items: %w", err)
	}
	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return fmt.Errorf("failed to get goals: %w", err)
	}

	active := alerts.Evaluate(items, goals, time.Now())
	if len(active) == 0 {
		fmt.Println("No active reminders")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Reminders:"))
	for _, alert := range active {
		fmt.Printf("  %s\n", cli.DangerStyle.Render(alert.Title))
		fmt.Printf("      %s\n", alert.Message)
	}

	return nil
}

type AlertWatchCmd struct {
	Interval time.Duration `short:"i" help:"Evaluation interval." default:"60s"`
	Notify   bool          `help:"Forward new reminders to the desktop tray."`
}

func (c *AlertWatchCmd) Validate() error {
	if c.Interval < time.Second {
		return fmt.Errorf("interval must be at least 1s")
	}
	return nil
}

func (c *AlertWatchCmd) Run(ctx *cli.Context) error {
	if c.Interval == 0 {
		c.Interval = constants.DefaultAlertInterval
	}

	tray := notifier.New()
	notify := func(alert models.Alert) {
		fmt.Printf("%s %s\n", cli.DangerStyle.Render(alert.Title), alert.Message)
		if c.Notify {
			if err := tray.Notify(alert.Title); err != nil {
				logger.Warn("Failed to deliver desktop notification", "error", err)
			}
		}
	}

	watcher := alerts.NewWatcher(ctx.Store, c.Interval, notify)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching for reminders every %s (Ctrl-C to stop)\n", c.Interval)
	err := watcher.Run(runCtx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
