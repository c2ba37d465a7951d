package models

import (
	"github.com/plenoapp/pleno/internal/validation"
)

// EmotionTag identifies one of the six check-in emotions.
type EmotionTag string

const (
	EmotionVeryHappy EmotionTag = "muito-feliz"
	EmotionHappy     EmotionTag = "feliz"
	EmotionNeutral   EmotionTag = "neutro"
	EmotionSad       EmotionTag = "triste"
	EmotionAngry     EmotionTag = "irritado"
	EmotionEnergetic EmotionTag = "energetico"
)

// EmotionTags lists every valid tag in display order.
var EmotionTags = []EmotionTag{
	EmotionVeryHappy,
	EmotionHappy,
	EmotionNeutral,
	EmotionSad,
	EmotionAngry,
	EmotionEnergetic,
}

var emotionNames = map[EmotionTag]string{
	EmotionVeryHappy: "Muito Feliz",
	EmotionHappy:     "Feliz",
	EmotionNeutral:   "Neutro",
	EmotionSad:       "Triste",
	EmotionAngry:     "Irritado",
	EmotionEnergetic: "Energético",
}

// Name returns the pt-BR display name for the tag, "Neutro" for unknown tags.
func (e EmotionTag) Name() string {
	if name, ok := emotionNames[e]; ok {
		return name
	}
	return emotionNames[EmotionNeutral]
}

// JournalEntry is one emotional check-in. Entries are immutable once
// created; the only permitted mutation is deletion.
type JournalEntry struct {
	ID        string     `json:"id" validate:"required"`
	Date      string     `json:"date"` // display string, DD/MM/YYYY
	Emotion   EmotionTag `json:"emotion" validate:"required,oneof=muito-feliz feliz neutro triste irritado energetico"`
	Intensity int        `json:"intensity" validate:"min=1,max=10"`
	Message   string     `json:"message" validate:"required,max=500"`
	CreatedAt int64      `json:"created_at"` // epoch milliseconds
}

func (j *JournalEntry) Validate() error {
	return validation.Struct(j)
}
