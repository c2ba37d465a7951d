package chat

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plenoapp/pleno/internal/chatbot"
	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/constants"
	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/utils"
)

// resumeSession rebuilds a session from the stored transcript so a new
// process picks up at the right script step.
func resumeSession(ctx *cli.Context, delay time.Duration) (*chatbot.Session, error) {
	session := chatbot.NewSession(ctx.Store, delay)

	msgs, err := ctx.Store.GetChatMessages()
	if err != nil {
		return nil, err
	}
	session.Replay(msgs)
	return session, nil
}

type ChatStartCmd struct{}

func (c *ChatStartCmd) Run(ctx *cli.Context) error {
	session, err := resumeSession(ctx, 0)
	if err != nil {
		return err
	}

	msgs, err := session.Transcript()
	if err != nil {
		return err
	}
	if len(msgs) > 0 {
		fmt.Println("Conversation already started, showing transcript:")
		printTranscript(msgs)
		return nil
	}

	if err := session.Start(); err != nil {
		return err
	}

	now := time.Now()
	history := models.HistoryEntry{
		ID:        uuid.New().String(),
		Type:      models.HistoryChat,
		Title:     "Conversa com assistente",
		CreatedAt: now.UnixMilli(),
		Date:      utils.FormatDisplayDate(now),
	}
	if err := ctx.Store.AppendHistoryEntry(history); err != nil {
		logger.Warn("Failed to record chat session in history", "error", err)
	}

	fmt.Println(cli.TitleStyle.Render("assistant:"), constants.BotGreeting)
	return nil
}

type ChatSayCmd struct {
	Message string `arg:"" help:"Your message to the assistant."`
	NoDelay bool   `help:"Skip the simulated typing delay."`
}

func (c *ChatSayCmd) Run(ctx *cli.Context) error {
	delay := constants.DefaultTypingDelay
	if c.NoDelay {
		delay = 0
	}

	session, err := resumeSession(ctx, delay)
	if err != nil {
		return err
	}

	before, err := session.Transcript()
	if err != nil {
		return err
	}
	if len(before) == 0 {
		return fmt.Errorf("no conversation in progress, run 'pleno chat start' first")
	}

	if err := session.Submit(c.Message); err != nil {
		return err
	}
	session.Wait()

	after, err := session.Transcript()
	if err != nil {
		return err
	}
	last := after[len(after)-1]
	if last.FromBot {
		fmt.Println(cli.TitleStyle.Render("assistant:"), last.Text)
	}

	return nil
}

type ChatResetCmd struct{}

func (c *ChatResetCmd) Run(ctx *cli.Context) error {
	session := chatbot.NewSession(ctx.Store, 0)
	if err := session.Reset(); err != nil {
		return err
	}

	fmt.Println("Conversation cleared")
	return nil
}

type ChatLogCmd struct{}

func (c *ChatLogCmd) Run(ctx *cli.Context) error {
	msgs, err := ctx.Store.GetChatMessages()
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		fmt.Println("No conversation yet")
		return nil
	}

	printTranscript(msgs)
	return nil
}

func printTranscript(msgs []models.ChatMessage) {
	for _, msg := range msgs {
		speaker := "you:      "
		if msg.FromBot {
			speaker = cli.TitleStyle.Render("assistant:")
		}
		fmt.Printf("%s %s %s\n", cli.MutedStyle.Render(cli.FormatMillis(msg.CreatedAt)), speaker, msg.Text)
	}
}
