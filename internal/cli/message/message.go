package message

import (
	"fmt"
	"math/rand"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/constants"
)

type MessageShowCmd struct{}

func (c *MessageShowCmd) Run(ctx *cli.Context) error {
	msg, err := ctx.Store.GetDailyMessage()
	if err != nil {
		return fmt.Errorf("failed to get daily message: %w", err)
	}

	if msg == "" {
		// No published message: draw from the built-in pool.
		msg = constants.MotivationalMessages[rand.Intn(len(constants.MotivationalMessages))]
	}

	fmt.Println(cli.TitleStyle.Render("Message of the day:"))
	fmt.Printf("  %s\n", msg)
	return nil
}

type MessagePublishCmd struct {
	Text string `arg:"" optional:"" help:"Message to publish. Empty clears the published message."`
}

func (c *MessagePublishCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.SaveDailyMessage(c.Text); err != nil {
		return err
	}

	if c.Text == "" {
		fmt.Println("Cleared published message, the daily pool takes over")
	} else {
		fmt.Println("Published message of the day")
	}
	return nil
}
