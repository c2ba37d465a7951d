package constants

import "time"

const (
	AppName           = "pleno"
	DefaultConfigPath = "~/.config/pleno/pleno.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DisplayDateFormat is the pt-BR date format shown to the user (DD/MM/YYYY)
	DisplayDateFormat = "02/01/2006"

	// MaxJournalMessageLen caps the free text of a journal entry
	MaxJournalMessageLen = 500

	// GoalDeadlineWindowDays is how far ahead a goal deadline raises an alert
	GoalDeadlineWindowDays = 7

	// DefaultAlertInterval is the reminder evaluation cadence
	DefaultAlertInterval = 60 * time.Second

	// DefaultTypingDelay simulates the assistant composing a reply
	DefaultTypingDelay = time.Second

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "pleno-"

	// Notify constants
	NotifierLockfileName   = "pleno-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "app.pleno.tray"

	// Keyring constants
	KeyringPinUser = "profile-pin"
)
