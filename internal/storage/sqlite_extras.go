package storage

import (
	"github.com/plenoapp/pleno/internal/models"
)

// Chat log

func (s *SQLiteStore) AppendChatMessage(msg models.ChatMessage) error {
	_, err := s.db.Exec(`
		INSERT INTO chat_messages (id, text, from_bot, created_at)
		VALUES (?, ?, ?, ?)`,
		msg.ID, msg.Text, boolToInt(msg.FromBot), msg.CreatedAt)
	return err
}

func (s *SQLiteStore) GetChatMessages() ([]models.ChatMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, text, from_bot, created_at
		FROM chat_messages ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		var fromBot int
		if err := rows.Scan(&m.ID, &m.Text, &fromBot, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.FromBot = fromBot != 0
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (s *SQLiteStore) ClearChatMessages() error {
	_, err := s.db.Exec("DELETE FROM chat_messages")
	return err
}

// Monthly progress

func (s *SQLiteStore) GetMonthlyProgress() ([]models.MonthlyProgress, error) {
	rows, err := s.db.Query("SELECT month, score FROM monthly_progress ORDER BY month")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []models.MonthlyProgress{}
	for rows.Next() {
		var p models.MonthlyProgress
		if err := rows.Scan(&p.Month, &p.Score); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *SQLiteStore) SaveMonthlyProgress(points []models.MonthlyProgress) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM monthly_progress"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO monthly_progress (month, score) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.Exec(p.Month, p.Score); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// History

func (s *SQLiteStore) AppendHistoryEntry(entry models.HistoryEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO history_entries (id, type, title, description, created_at, date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, string(entry.Type), entry.Title, entry.Description, entry.CreatedAt, entry.Date)
	return err
}

func (s *SQLiteStore) GetHistoryEntries() ([]models.HistoryEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, type, title, description, created_at, date
		FROM history_entries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		var entryType string
		if err := rows.Scan(&e.ID, &entryType, &e.Title, &e.Description, &e.CreatedAt, &e.Date); err != nil {
			return nil, err
		}
		e.Type = models.HistoryType(entryType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
