package models

import (
	"strings"
	"testing"
)

func TestJournalEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   JournalEntry
		wantErr bool
	}{
		{
			name: "valid entry",
			entry: JournalEntry{
				ID:        "test-id",
				Date:      "01/09/2026",
				Emotion:   EmotionHappy,
				Intensity: 7,
				Message:   "Dia produtivo",
				CreatedAt: 1756700000000,
			},
			wantErr: false,
		},
		{
			name: "unknown emotion",
			entry: JournalEntry{
				ID:        "test-id",
				Emotion:   "eufórico",
				Intensity: 5,
				Message:   "test",
			},
			wantErr: true,
		},
		{
			name: "intensity below range",
			entry: JournalEntry{
				ID:        "test-id",
				Emotion:   EmotionNeutral,
				Intensity: 0,
				Message:   "test",
			},
			wantErr: true,
		},
		{
			name: "intensity above range",
			entry: JournalEntry{
				ID:        "test-id",
				Emotion:   EmotionNeutral,
				Intensity: 11,
				Message:   "test",
			},
			wantErr: true,
		},
		{
			name: "empty message",
			entry: JournalEntry{
				ID:        "test-id",
				Emotion:   EmotionSad,
				Intensity: 3,
				Message:   "",
			},
			wantErr: true,
		},
		{
			name: "message over 500 characters",
			entry: JournalEntry{
				ID:        "test-id",
				Emotion:   EmotionHappy,
				Intensity: 5,
				Message:   strings.Repeat("a", 501),
			},
			wantErr: true,
		},
		{
			name: "message at 500 characters",
			entry: JournalEntry{
				ID:        "test-id",
				Emotion:   EmotionHappy,
				Intensity: 5,
				Message:   strings.Repeat("a", 500),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEmotionTag_Name(t *testing.T) {
	tests := []struct {
		tag  EmotionTag
		want string
	}{
		{EmotionVeryHappy, "Muito Feliz"},
		{EmotionHappy, "Feliz"},
		{EmotionNeutral, "Neutro"},
		{EmotionSad, "Triste"},
		{EmotionAngry, "Irritado"},
		{EmotionEnergetic, "Energético"},
		{EmotionTag("unknown"), "Neutro"},
	}

	for _, tt := range tests {
		if got := tt.tag.Name(); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
