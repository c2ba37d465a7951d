package storage

import (
	"database/sql"
	"fmt"

	"github.com/plenoapp/pleno/internal/models"
)

// Journal

func (s *SQLiteStore) AddJournalEntry(entry models.JournalEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO journal_entries (id, date, emotion, intensity, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Date, string(entry.Emotion), entry.Intensity, entry.Message, entry.CreatedAt)
	return err
}

func (s *SQLiteStore) GetJournalEntries() ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, emotion, intensity, message, created_at
		FROM journal_entries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		var emotion string
		if err := rows.Scan(&e.ID, &e.Date, &emotion, &e.Intensity, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Emotion = models.EmotionTag(emotion)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) DeleteJournalEntry(id string) error {
	return s.deleteByID("journal_entries", "journal entry", id)
}

// Schedule

func (s *SQLiteStore) AddScheduleItem(item models.ScheduleItem) error {
	_, err := s.db.Exec(`
		INSERT INTO schedule_items (id, title, description, date, time, duration_min, category, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Description, item.Date, item.Time, item.DurationMin,
		string(item.Category), boolToInt(item.Completed))
	return err
}

func (s *SQLiteStore) GetScheduleItems() ([]models.ScheduleItem, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, date, time, duration_min, category, completed
		FROM schedule_items ORDER BY date, time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.ScheduleItem{}
	for rows.Next() {
		var item models.ScheduleItem
		var category string
		var completed int
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Date, &item.Time,
			&item.DurationMin, &category, &completed); err != nil {
			return nil, err
		}
		item.Category = models.ScheduleCategory(category)
		item.Completed = completed != 0
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) UpdateScheduleItem(item models.ScheduleItem) error {
	res, err := s.db.Exec(`
		UPDATE schedule_items
		SET title = ?, description = ?, date = ?, time = ?, duration_min = ?, category = ?, completed = ?
		WHERE id = ?`,
		item.Title, item.Description, item.Date, item.Time, item.DurationMin,
		string(item.Category), boolToInt(item.Completed), item.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "schedule item", item.ID)
}

func (s *SQLiteStore) DeleteScheduleItem(id string) error {
	return s.deleteByID("schedule_items", "schedule item", id)
}

// Routine

func (s *SQLiteStore) AddRoutineItem(item models.RoutineItem) error {
	_, err := s.db.Exec(`
		INSERT INTO routine_items (id, title, description, category, completed, streak)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Description, string(item.Category),
		boolToInt(item.Completed), item.Streak)
	return err
}

func (s *SQLiteStore) GetRoutineItems() ([]models.RoutineItem, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, category, completed, streak
		FROM routine_items ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.RoutineItem{}
	for rows.Next() {
		var item models.RoutineItem
		var category string
		var completed int
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &category, &completed, &item.Streak); err != nil {
			return nil, err
		}
		item.Category = models.RoutineCategory(category)
		item.Completed = completed != 0
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) UpdateRoutineItem(item models.RoutineItem) error {
	res, err := s.db.Exec(`
		UPDATE routine_items
		SET title = ?, description = ?, category = ?, completed = ?, streak = ?
		WHERE id = ?`,
		item.Title, item.Description, string(item.Category),
		boolToInt(item.Completed), item.Streak, item.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "routine item", item.ID)
}

func (s *SQLiteStore) DeleteRoutineItem(id string) error {
	return s.deleteByID("routine_items", "routine item", id)
}

// Goals

func (s *SQLiteStore) AddGoal(goal models.Goal) error {
	_, err := s.db.Exec(`
		INSERT INTO goals (id, title, description, type, target_date, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.Title, goal.Description, string(goal.Type), goal.TargetDate,
		boolToInt(goal.Completed), goal.CreatedAt)
	return err
}

func (s *SQLiteStore) GetGoals() ([]models.Goal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, type, target_date, completed, created_at
		FROM goals ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var g models.Goal
		var goalType string
		var completed int
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &goalType, &g.TargetDate, &completed, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Type = models.GoalType(goalType)
		g.Completed = completed != 0
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *SQLiteStore) UpdateGoal(goal models.Goal) error {
	res, err := s.db.Exec(`
		UPDATE goals
		SET title = ?, description = ?, type = ?, target_date = ?, completed = ?
		WHERE id = ?`,
		goal.Title, goal.Description, string(goal.Type), goal.TargetDate,
		boolToInt(goal.Completed), goal.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "goal", goal.ID)
}

func (s *SQLiteStore) DeleteGoal(id string) error {
	return s.deleteByID("goals", "goal", id)
}

// Helpers

func (s *SQLiteStore) deleteByID(table, label, id string) error {
	res, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return err
	}
	return requireRow(res, label, id)
}

func requireRow(res sql.Result, label, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", label, id)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
