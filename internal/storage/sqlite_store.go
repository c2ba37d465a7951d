package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/models"
)

// Meta keys for the singleton values that don't warrant their own table.
const (
	metaKeyDailyHours   = "daily_hours"
	metaKeyDailyMessage = "daily_message"
	metaKeyProfile      = "profile"
	metaKeyVersion      = "schema_version"
)

const schemaVersion = "1"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		emotion TEXT NOT NULL,
		intensity INTEGER NOT NULL,
		message TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schedule_items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		category TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS routine_items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		streak INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		target_date TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		from_bot INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS monthly_progress (
		month TEXT PRIMARY KEY,
		score INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS history_entries (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return s.seedDefaults()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'pleno init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	ok, err := s.tableExists("journal_entries")
	if err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if !ok {
		// The file exists but isn't ours (or is damaged). Treat the stored
		// state as absent and rebuild defaults instead of blocking the user.
		logger.Warn("Database schema missing, reinitializing with defaults", "path", s.path)
		if err := s.createSchema(); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return s.seedDefaults()
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) createSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedDefaults installs the built-in routine items, the default daily-hours
// breakdown, and the schema version marker, without clobbering existing
// rows.
func (s *SQLiteStore) seedDefaults() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM routine_items").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		for _, item := range models.DefaultRoutineItems() {
			if err := s.AddRoutineItem(item); err != nil {
				return err
			}
		}
	}

	if _, ok, err := s.getMeta(metaKeyDailyHours); err != nil {
		return err
	} else if !ok {
		if err := s.SaveDailyHours(models.DefaultDailyHours()); err != nil {
			return err
		}
	}

	return s.setMeta(metaKeyVersion, schemaVersion)
}

// tableExists checks if a table exists. The check is case-insensitive to
// match SQLite's behavior.
func (s *SQLiteStore) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQLiteStore) getMeta(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) setMeta(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

// Daily hours

func (s *SQLiteStore) GetDailyHours() (models.DailyHours, error) {
	value, ok, err := s.getMeta(metaKeyDailyHours)
	if err != nil {
		return models.DailyHours{}, err
	}
	if !ok {
		return models.DefaultDailyHours(), nil
	}

	var hours models.DailyHours
	if err := json.Unmarshal([]byte(value), &hours); err != nil {
		logger.Warn("Stored daily hours are malformed, falling back to defaults", "error", err)
		return models.DefaultDailyHours(), nil
	}
	return hours, nil
}

func (s *SQLiteStore) SaveDailyHours(hours models.DailyHours) error {
	data, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("failed to serialize daily hours: %w", err)
	}
	return s.setMeta(metaKeyDailyHours, string(data))
}

// Daily message

func (s *SQLiteStore) GetDailyMessage() (string, error) {
	value, _, err := s.getMeta(metaKeyDailyMessage)
	return value, err
}

func (s *SQLiteStore) SaveDailyMessage(msg string) error {
	return s.setMeta(metaKeyDailyMessage, msg)
}

// Profile

func (s *SQLiteStore) GetProfile() (models.UserProfile, error) {
	value, ok, err := s.getMeta(metaKeyProfile)
	if err != nil {
		return models.UserProfile{}, err
	}
	if !ok {
		return models.UserProfile{}, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		logger.Warn("Stored profile is malformed, falling back to empty profile", "error", err)
		return models.UserProfile{}, nil
	}
	return profile, nil
}

func (s *SQLiteStore) SaveProfile(profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	return s.setMeta(metaKeyProfile, string(data))
}
