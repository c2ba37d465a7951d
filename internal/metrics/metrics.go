// Package metrics derives well-being statistics from the journal. All
// functions are pure over the entry slice so callers can feed either backend
// and tests can use literal fixtures.
package metrics

import (
	"math"
	"time"

	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/utils"
)

// DailyPoint is one day of the check-in series.
type DailyPoint struct {
	Date    string            `json:"date"` // YYYY-MM-DD
	Mood    float64           `json:"mood"`
	Emotion models.EmotionTag `json:"emotion"`
	Count   int               `json:"count"`
}

// EmotionShare is one slice of the emotion distribution.
type EmotionShare struct {
	Emotion models.EmotionTag `json:"emotion"`
	Count   int               `json:"count"`
	Percent int               `json:"percent"`
}

// AverageMood returns the mean intensity across all entries, rounded to one
// decimal place. Zero when there are no entries.
func AverageMood(entries []models.JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Intensity
	}
	mean := float64(sum) / float64(len(entries))
	return math.Round(mean*10) / 10
}

// WeeklyCount returns the number of entries created in the trailing seven
// days ending at now.
func WeeklyCount(entries []models.JournalEntry, now time.Time) int {
	cutoff := now.AddDate(0, 0, -7)
	count := 0
	for _, e := range entries {
		if !time.UnixMilli(e.CreatedAt).Before(cutoff) {
			count++
		}
	}
	return count
}

// DailySeries builds the last `days` calendar days ending at now, one point
// per day. A day's mood is the mean intensity of its entries rounded to one
// decimal; its emotion is the most frequent tag that day, with first-seen
// order breaking ties. Days with no entries report zero mood and a neutral
// emotion.
func DailySeries(entries []models.JournalEntry, now time.Time, days int) []DailyPoint {
	if days <= 0 {
		return []DailyPoint{}
	}

	type bucket struct {
		sum   int
		count int
		tally map[models.EmotionTag]int
		order []models.EmotionTag
	}
	byDay := map[string]*bucket{}
	for _, e := range entries {
		key := utils.DayKey(e.CreatedAt)
		b, ok := byDay[key]
		if !ok {
			b = &bucket{tally: map[models.EmotionTag]int{}}
			byDay[key] = b
		}
		b.sum += e.Intensity
		b.count++
		if _, seen := b.tally[e.Emotion]; !seen {
			b.order = append(b.order, e.Emotion)
		}
		b.tally[e.Emotion]++
	}

	series := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := utils.DayKey(day.UnixMilli())
		point := DailyPoint{Date: key, Emotion: models.EmotionNeutral}
		if b, ok := byDay[key]; ok {
			point.Mood = math.Round(float64(b.sum)/float64(b.count)*10) / 10
			point.Count = b.count
			best := b.order[0]
			for _, tag := range b.order {
				if b.tally[tag] > b.tally[best] {
					best = tag
				}
			}
			point.Emotion = best
		}
		series = append(series, point)
	}
	return series
}

// EmotionDistribution returns the share of entries carrying each tag, in the
// standard display order, as integer percentages. Tags with no entries are
// omitted. Percentages are rounded independently and may not total 100.
func EmotionDistribution(entries []models.JournalEntry) []EmotionShare {
	if len(entries) == 0 {
		return []EmotionShare{}
	}

	tally := map[models.EmotionTag]int{}
	for _, e := range entries {
		tally[e.Emotion]++
	}

	shares := []EmotionShare{}
	total := float64(len(entries))
	for _, tag := range models.EmotionTags {
		count := tally[tag]
		if count == 0 {
			continue
		}
		shares = append(shares, EmotionShare{
			Emotion: tag,
			Count:   count,
			Percent: int(math.Round(float64(count) / total * 100)),
		})
	}
	return shares
}

// Consistency reports the percentage of the trailing seven days that have at
// least one check-in.
func Consistency(entries []models.JournalEntry, now time.Time) int {
	days := map[string]bool{}
	for _, e := range entries {
		days[utils.DayKey(e.CreatedAt)] = true
	}

	active := 0
	for i := 0; i < 7; i++ {
		key := utils.DayKey(now.AddDate(0, 0, -i).UnixMilli())
		if days[key] {
			active++
		}
	}
	return int(math.Round(float64(active) / 7 * 100))
}
