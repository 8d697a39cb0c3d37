package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/plant-reminder/internal/model"
)

// GetSetting returns the value for a settings key, or the empty string
// when the key has never been set.
func (s *SQLiteStore) GetSetting(
	ctx context.Context,
	key string,
) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value,
		"SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a settings value, replacing any previous one.
func (s *SQLiteStore) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

// ResetAll irrevocably deletes all plants, care history, settings, and
// reminders. The schema itself is kept.
func (s *SQLiteStore) ResetAll(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning reset transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"care_history", "user_plants", "settings", "reminders",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	return tx.Commit()
}

// CreateReminder inserts a new reminder record.
func (s *SQLiteStore) CreateReminder(
	ctx context.Context,
	r model.Reminder,
) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reminders (id, message, read, created_at)
		VALUES (?, ?, ?, ?)`,
		r.ID, r.Message, boolToInt(r.Read), r.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("creating reminder: %w", err)
	}
	return nil
}

// UnreadReminders retrieves all reminders not yet seen by the user,
// newest first.
func (s *SQLiteStore) UnreadReminders(
	ctx context.Context,
) ([]model.Reminder, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, message, read, created_at FROM reminders WHERE read = 0 ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying unread reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var (
			r       model.Reminder
			readInt int
		)
		if err := rows.Scan(&r.ID, &r.Message, &readInt, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning reminder row: %w", err)
		}
		r.Read = readInt != 0
		reminders = append(reminders, r)
	}

	return reminders, rows.Err()
}

// MarkReminderRead marks a single reminder as seen.
func (s *SQLiteStore) MarkReminderRead(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE reminders SET read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking reminder %s as read: %w", id, err)
	}
	return nil
}
