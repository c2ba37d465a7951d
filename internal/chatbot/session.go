package chatbot

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/plenoapp/pleno/internal/models"
	"github.com/plenoapp/pleno/internal/storage"
	"github.com/plenoapp/pleno/internal/utils"
)

// Session drives an Engine against persistent storage with a simulated
// typing delay before each bot reply. Resetting the session bumps a
// generation counter so replies still pending from the previous conversation
// are discarded instead of landing in the new one.
type Session struct {
	store storage.Provider
	delay time.Duration

	mu      sync.Mutex
	engine  *Engine
	gen     int
	pending sync.WaitGroup
}

func NewSession(store storage.Provider, delay time.Duration) *Session {
	return &Session{
		store:  store,
		delay:  delay,
		engine: NewEngine(),
	}
}

// Start persists the greeting if the conversation hasn't begun. The greeting
// is committed immediately, without the typing delay.
func (s *Session) Start() error {
	s.mu.Lock()
	greeting := s.engine.Start()
	s.mu.Unlock()

	if greeting == "" {
		return nil
	}
	return s.append(greeting, true)
}

// Submit persists the user's message and schedules the bot's reply after the
// typing delay. The error covers the user message only; a failure to persist
// the delayed reply is logged by the store layer's caller via Wait.
func (s *Session) Submit(text string) error {
	if err := s.append(text, false); err != nil {
		return err
	}

	s.mu.Lock()
	reply := s.engine.Respond(text)
	gen := s.gen
	s.pending.Add(1)
	s.mu.Unlock()

	time.AfterFunc(s.delay, func() {
		defer s.pending.Done()

		s.mu.Lock()
		stale := gen != s.gen
		s.mu.Unlock()
		if stale {
			return
		}
		s.append(reply, true)
	})

	return nil
}

// Reset clears the stored transcript and rewinds the script. Any reply still
// pending from before the reset is dropped when its timer fires.
func (s *Session) Reset() error {
	s.mu.Lock()
	s.gen++
	s.engine.Reset()
	s.mu.Unlock()

	return s.store.ClearChatMessages()
}

// Replay positions the script from a stored transcript: an empty transcript
// means the greeting hasn't been given, a transcript without user messages
// means the script is awaiting the branch answer, anything else means the
// conversation already branched.
func (s *Session) Replay(msgs []models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Reset()
	if len(msgs) == 0 {
		return
	}
	s.engine.step = 1
	for _, m := range msgs {
		if !m.FromBot {
			s.engine.step = 2
			break
		}
	}
}

// Wait blocks until all scheduled replies have fired or been discarded.
func (s *Session) Wait() {
	s.pending.Wait()
}

// Transcript returns the stored conversation in chronological order.
func (s *Session) Transcript() ([]models.ChatMessage, error) {
	return s.store.GetChatMessages()
}

func (s *Session) append(text string, fromBot bool) error {
	return s.store.AppendChatMessage(models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		FromBot:   fromBot,
		CreatedAt: utils.NowMillis(),
	})
}
