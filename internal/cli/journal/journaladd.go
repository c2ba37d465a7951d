package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/constants"
	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/utils"
)

type JournalAddCmd struct {
	Message   string `arg:"" help:"What's on your mind (max 500 characters)."`
	Emotion   string `short:"e" help:"Emotion tag (muito-feliz|feliz|neutro|triste|irritado|energetico)." required:""`
	Intensity int    `short:"i" help:"Intensity from 1 to 10." default:"5"`
}

func (c *JournalAddCmd) Validate() error {
	if len(c.Message) > constants.MaxJournalMessageLen {
		return fmt.Errorf("message must be at most %d characters", constants.MaxJournalMessageLen)
	}
	return nil
}

func (c *JournalAddCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Date:      utils.FormatDisplayDate(now),
		Emotion:   models.EmotionTag(c.Emotion),
		Intensity: c.Intensity,
		Message:   c.Message,
		CreatedAt: now.UnixMilli(),
	}

	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid journal entry: %w", err)
	}

	if err := ctx.Store.AddJournalEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Registered check-in: %s (intensity %d)\n", entry.Emotion.Name(), entry.Intensity)
	return nil
}
