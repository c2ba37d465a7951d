package storage

import "github.com/plenoapp/pleno/internal/models"

// Provider is the persistence surface shared by the JSON and SQLite
// backends. Every mutation persists synchronously before returning,
// including mutations that empty a collection.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Journal
	AddJournalEntry(models.JournalEntry) error
	GetJournalEntries() ([]models.JournalEntry, error)
	DeleteJournalEntry(id string) error

	// Schedule
	AddScheduleItem(models.ScheduleItem) error
	GetScheduleItems() ([]models.ScheduleItem, error)
	UpdateScheduleItem(models.ScheduleItem) error
	DeleteScheduleItem(id string) error

	// Routine
	AddRoutineItem(models.RoutineItem) error
	GetRoutineItems() ([]models.RoutineItem, error)
	UpdateRoutineItem(models.RoutineItem) error
	DeleteRoutineItem(id string) error

	// Goals
	AddGoal(models.Goal) error
	GetGoals() ([]models.Goal, error)
	UpdateGoal(models.Goal) error
	DeleteGoal(id string) error

	// Chat log
	AppendChatMessage(models.ChatMessage) error
	GetChatMessages() ([]models.ChatMessage, error)
	ClearChatMessages() error

	// Daily hours breakdown
	GetDailyHours() (models.DailyHours, error)
	SaveDailyHours(models.DailyHours) error

	// Daily motivational message
	GetDailyMessage() (string, error)
	SaveDailyMessage(string) error

	// Monthly progress series
	GetMonthlyProgress() ([]models.MonthlyProgress, error)
	SaveMonthlyProgress([]models.MonthlyProgress) error

	// Activity history
	AppendHistoryEntry(models.HistoryEntry) error
	GetHistoryEntries() ([]models.HistoryEntry, error)

	// Profile
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error

	// Utils
	GetConfigPath() string
}
