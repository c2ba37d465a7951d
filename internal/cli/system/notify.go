package system

import (
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/notifier"
)

type NotifyCmd struct {
	Message string `arg:"" help:"Notification text."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	n := notifier.New()
	if err := n.Notify(c.Message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
