// Package chatbot implements the scripted well-being assistant. The script
// has three steps: a greeting, one branched reply keyed on the user's answer,
// and a closing line for everything after that.
package chatbot

import (
	"strings"

	"github.com/plenoapp/pleno/internal/constants"
)

// Engine tracks the position in the assistant script. It holds no storage
// and no timing; callers decide when replies are committed.
type Engine struct {
	step int
}

func NewEngine() *Engine {
	return &Engine{}
}

// Step returns the current script position: 0 before the greeting, 1 while
// awaiting the user's answer, 2 once the conversation has branched.
func (e *Engine) Step() int {
	return e.step
}

// Start returns the greeting and advances to the awaiting-answer step. It is
// a no-op returning an empty string when the conversation already started.
func (e *Engine) Start() string {
	if e.step != 0 {
		return ""
	}
	e.step = 1
	return constants.BotGreeting
}

// Respond produces the scripted reply to a user message and advances the
// step. On the branching step the user's text is matched case-insensitively
// for profession keywords; unmatched text gets the generic reply. Every
// later message gets the closing line.
func (e *Engine) Respond(text string) string {
	switch e.step {
	case 0:
		// Responding before the greeting still starts the script.
		e.step = 2
		return branchReply(text)
	case 1:
		e.step = 2
		return branchReply(text)
	default:
		return constants.BotClosingReply
	}
}

// Reset rewinds the script to the beginning.
func (e *Engine) Reset() {
	e.step = 0
}

func branchReply(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "psicólogo") || strings.Contains(lower, "psicologo"):
		return constants.BotPsychologistReply
	case strings.Contains(lower, "personal") || strings.Contains(lower, "trainer"):
		return constants.BotTrainerReply
	default:
		return constants.BotGenericReply
	}
}
