package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/models"
)

// Store is the single persisted document of the JSON backend: every
// collection in one file, rewritten wholesale on each mutation. Volumes are
// tens to low hundreds of records, so the full rewrite is cheap.
type Store struct {
	Version         int                      `json:"version"`
	JournalEntries  []models.JournalEntry    `json:"journal_entries"`
	ScheduleItems   []models.ScheduleItem    `json:"schedule_items"`
	RoutineItems    []models.RoutineItem     `json:"routine_items"`
	Goals           []models.Goal            `json:"goals"`
	ChatMessages    []models.ChatMessage     `json:"chat_messages"`
	DailyHours      models.DailyHours        `json:"daily_hours"`
	DailyMessage    string                   `json:"daily_message"`
	MonthlyProgress []models.MonthlyProgress `json:"monthly_progress"`
	HistoryEntries  []models.HistoryEntry    `json:"history_entries"`
	Profile         models.UserProfile       `json:"profile"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultStore() *Store {
	return &Store{
		Version:         1,
		JournalEntries:  []models.JournalEntry{},
		ScheduleItems:   []models.ScheduleItem{},
		RoutineItems:    models.DefaultRoutineItems(),
		Goals:           []models.Goal{},
		ChatMessages:    []models.ChatMessage{},
		DailyHours:      models.DefaultDailyHours(),
		MonthlyProgress: []models.MonthlyProgress{},
		HistoryEntries:  []models.HistoryEntry{},
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = defaultStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'pleno init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// A malformed document is treated as absent: substitute defaults
		// and keep going rather than blocking the user.
		logger.Warn("Stored data is malformed, falling back to defaults", "path", s.path, "error", err)
		s.store = defaultStore()
		return nil
	}

	// Tolerate absent collections from older or partial documents.
	if s.store.JournalEntries == nil {
		s.store.JournalEntries = []models.JournalEntry{}
	}
	if s.store.ScheduleItems == nil {
		s.store.ScheduleItems = []models.ScheduleItem{}
	}
	if s.store.RoutineItems == nil {
		s.store.RoutineItems = models.DefaultRoutineItems()
	}
	if s.store.Goals == nil {
		s.store.Goals = []models.Goal{}
	}
	if s.store.ChatMessages == nil {
		s.store.ChatMessages = []models.ChatMessage{}
	}
	if s.store.MonthlyProgress == nil {
		s.store.MonthlyProgress = []models.MonthlyProgress{}
	}
	if s.store.HistoryEntries == nil {
		s.store.HistoryEntries = []models.HistoryEntry{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// Journal

func (s *JSONStore) AddJournalEntry(entry models.JournalEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}

	// Newest first: the journal is displayed in insertion-reverse order.
	s.store.JournalEntries = append([]models.JournalEntry{entry}, s.store.JournalEntries...)
	return s.save()
}

func (s *JSONStore) GetJournalEntries() ([]models.JournalEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, len(s.store.JournalEntries))
	copy(entries, s.store.JournalEntries)
	return entries, nil
}

func (s *JSONStore) DeleteJournalEntry(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, entry := range s.store.JournalEntries {
		if entry.ID == id {
			s.store.JournalEntries = append(s.store.JournalEntries[:i], s.store.JournalEntries[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("journal entry not found: %s", id)
}

// Schedule

func (s *JSONStore) AddScheduleItem(item models.ScheduleItem) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.ScheduleItems = append(s.store.ScheduleItems, item)
	return s.save()
}

func (s *JSONStore) GetScheduleItems() ([]models.ScheduleItem, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	items := make([]models.ScheduleItem, len(s.store.ScheduleItems))
	copy(items, s.store.ScheduleItems)
	return items, nil
}

func (s *JSONStore) UpdateScheduleItem(item models.ScheduleItem) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i := range s.store.ScheduleItems {
		if s.store.ScheduleItems[i].ID == item.ID {
			s.store.ScheduleItems[i] = item
			return s.save()
		}
	}
	return fmt.Errorf("schedule item not found: %s", item.ID)
}

func (s *JSONStore) DeleteScheduleItem(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, item := range s.store.ScheduleItems {
		if item.ID == id {
			s.store.ScheduleItems = append(s.store.ScheduleItems[:i], s.store.ScheduleItems[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("schedule item not found: %s", id)
}

// Routine

func (s *JSONStore) AddRoutineItem(item models.RoutineItem) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.RoutineItems = append(s.store.RoutineItems, item)
	return s.save()
}

func (s *JSONStore) GetRoutineItems() ([]models.RoutineItem, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	items := make([]models.RoutineItem, len(s.store.RoutineItems))
	copy(items, s.store.RoutineItems)
	return items, nil
}

func (s *JSONStore) UpdateRoutineItem(item models.RoutineItem) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i := range s.store.RoutineItems {
		if s.store.RoutineItems[i].ID == item.ID {
			s.store.RoutineItems[i] = item
			return s.save()
		}
	}
	return fmt.Errorf("routine item not found: %s", item.ID)
}

func (s *JSONStore) DeleteRoutineItem(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, item := range s.store.RoutineItems {
		if item.ID == id {
			s.store.RoutineItems = append(s.store.RoutineItems[:i], s.store.RoutineItems[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("routine item not found: %s", id)
}

// Goals

func (s *JSONStore) AddGoal(goal models.Goal) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Goals = append(s.store.Goals, goal)
	return s.save()
}

func (s *JSONStore) GetGoals() ([]models.Goal, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	goals := make([]models.Goal, len(s.store.Goals))
	copy(goals, s.store.Goals)
	return goals, nil
}

func (s *JSONStore) UpdateGoal(goal models.Goal) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i := range s.store.Goals {
		if s.store.Goals[i].ID == goal.ID {
			s.store.Goals[i] = goal
			return s.save()
		}
	}
	return fmt.Errorf("goal not found: %s", goal.ID)
}

func (s *JSONStore) DeleteGoal(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, goal := range s.store.Goals {
		if goal.ID == id {
			s.store.Goals = append(s.store.Goals[:i], s.store.Goals[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("goal not found: %s", id)
}

// Chat log

func (s *JSONStore) AppendChatMessage(msg models.ChatMessage) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.ChatMessages = append(s.store.ChatMessages, msg)
	return s.save()
}

func (s *JSONStore) GetChatMessages() ([]models.ChatMessage, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	msgs := make([]models.ChatMessage, len(s.store.ChatMessages))
	copy(msgs, s.store.ChatMessages)
	return msgs, nil
}

func (s *JSONStore) ClearChatMessages() error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.ChatMessages = []models.ChatMessage{}
	return s.save()
}

// Daily hours

func (s *JSONStore) GetDailyHours() (models.DailyHours, error) {
	if err := s.loaded(); err != nil {
		return models.DailyHours{}, err
	}
	return s.store.DailyHours, nil
}

func (s *JSONStore) SaveDailyHours(hours models.DailyHours) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.DailyHours = hours
	return s.save()
}

// Daily message

func (s *JSONStore) GetDailyMessage() (string, error) {
	if err := s.loaded(); err != nil {
		return "", err
	}
	return s.store.DailyMessage, nil
}

func (s *JSONStore) SaveDailyMessage(msg string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.DailyMessage = msg
	return s.save()
}

// Monthly progress

func (s *JSONStore) GetMonthlyProgress() ([]models.MonthlyProgress, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	points := make([]models.MonthlyProgress, len(s.store.MonthlyProgress))
	copy(points, s.store.MonthlyProgress)
	return points, nil
}

func (s *JSONStore) SaveMonthlyProgress(points []models.MonthlyProgress) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.MonthlyProgress = points
	return s.save()
}

// History

func (s *JSONStore) AppendHistoryEntry(entry models.HistoryEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}

	// Newest first, like the journal.
	s.store.HistoryEntries = append([]models.HistoryEntry{entry}, s.store.HistoryEntries...)
	return s.save()
}

func (s *JSONStore) GetHistoryEntries() ([]models.HistoryEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, len(s.store.HistoryEntries))
	copy(entries, s.store.HistoryEntries)
	return entries, nil
}

// Profile

func (s *JSONStore) GetProfile() (models.UserProfile, error) {
	if err := s.loaded(); err != nil {
		return models.UserProfile{}, err
	}
	return s.store.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.UserProfile) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Profile = profile
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
