package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/metrics"
)

type JournalStatsCmd struct {
	Days int `short:"d" help:"Length of the daily series in days." default:"7"`
}

func (c *JournalStatsCmd) Validate() error {
	if c.Days < 1 || c.Days > 90 {
		return fmt.Errorf("days must be between 1 and 90")
	}
	return nil
}

func (c *JournalStatsCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetJournalEntries()
	if err != nil {
		return fmt.Errorf("failed to get journal entries: %w", err)
	}

	now := time.Now()

	fmt.Println(cli.TitleStyle.Render("Well-being stats:"))
	fmt.Printf("  Average mood:   %.1f/10\n", metrics.AverageMood(entries))
	fmt.Printf("  Weekly entries: %d\n", metrics.WeeklyCount(entries, now))
	fmt.Printf("  Consistency:    %d%% of the last 7 days\n", metrics.Consistency(entries, now))

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Last %d days:", c.Days)))
	for _, point := range metrics.DailySeries(entries, now, c.Days) {
		bar := strings.Repeat("█", int(point.Mood))
		fmt.Printf("  %s  %-12s %4.1f %s\n", point.Date, point.Emotion.Name(), point.Mood, bar)
	}

	dist := metrics.EmotionDistribution(entries)
	if len(dist) > 0 {
		fmt.Println()
		fmt.Println(cli.TitleStyle.Render("Emotions:"))
		for _, share := range dist {
			fmt.Printf("  %-12s %3d%% (%d)\n", share.Emotion.Name(), share.Percent, share.Count)
		}
	}

	return nil
}
