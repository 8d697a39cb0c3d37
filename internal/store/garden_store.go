package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nhle/plant-reminder/internal/model"
)

// CreateUserPlant inserts a new user plant row. The id is the catalog
// plant id; a duplicate insert fails on the primary key.
func (s *SQLiteStore) CreateUserPlant(
	ctx context.Context,
	up model.UserPlant,
) error {
	if up.ID == "" {
		return fmt.Errorf("user plant has empty id")
	}
	if up.DateAdded.IsZero() {
		up.DateAdded = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO user_plants (id, date_added) VALUES (?, ?)",
		up.ID, up.DateAdded.UTC(),
	)
	if err != nil {
		return fmt.Errorf("creating user plant %s: %w", up.ID, err)
	}
	return nil
}

// DeleteUserPlant removes a user plant and, via cascade, its entire
// care history.
func (s *SQLiteStore) DeleteUserPlant(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM user_plants WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting user plant %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetUserPlant retrieves a single user plant with its care history.
// Returns sql.ErrNoRows (wrapped) when the plant is not in the garden.
func (s *SQLiteStore) GetUserPlant(
	ctx context.Context,
	id string,
) (*model.UserPlant, error) {
	var up model.UserPlant
	err := s.db.QueryRowxContext(ctx,
		"SELECT id, date_added FROM user_plants WHERE id = ?", id,
	).Scan(&up.ID, &up.DateAdded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("getting user plant %s: %w", id, err)
	}

	history, err := s.careHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading history for plant %s: %w", id, err)
	}
	up.CareHistory = history

	return &up, nil
}

// ListUserPlants retrieves all user plants with their care history,
// ordered by adoption time.
func (s *SQLiteStore) ListUserPlants(
	ctx context.Context,
) ([]model.UserPlant, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, date_added FROM user_plants ORDER BY date_added, id")
	if err != nil {
		return nil, fmt.Errorf("querying user plants: %w", err)
	}
	defer rows.Close()

	var plants []model.UserPlant
	for rows.Next() {
		var up model.UserPlant
		if err := rows.Scan(&up.ID, &up.DateAdded); err != nil {
			return nil, fmt.Errorf("scanning user plant row: %w", err)
		}
		plants = append(plants, up)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range plants {
		history, err := s.careHistory(ctx, plants[i].ID)
		if err != nil {
			return nil, fmt.Errorf("loading history for plant %s: %w",
				plants[i].ID, err)
		}
		plants[i].CareHistory = history
	}

	return plants, nil
}

// AppendCareEntry records a completed care action. The UNIQUE index on
// (plant_id, action, day) makes the append idempotent per calendar day:
// a duplicate insert is ignored and reported as false.
func (s *SQLiteStore) AppendCareEntry(
	ctx context.Context,
	e model.CareHistoryEntry,
) (bool, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO care_history (id, plant_id, action, day, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.PlantID, string(e.Action), e.Day, e.CreatedAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("appending care entry for plant %s: %w",
			e.PlantID, err)
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// careHistory loads the care entries for one plant in chronological
// addition order. Malformed rows (unknown action kind, unparseable day)
// are dropped with a log line rather than failing the load.
func (s *SQLiteStore) careHistory(
	ctx context.Context,
	plantID string,
) ([]model.CareHistoryEntry, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, plant_id, action, day, created_at
		FROM care_history WHERE plant_id = ? ORDER BY created_at, id`,
		plantID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying care history: %w", err)
	}
	defer rows.Close()

	var entries []model.CareHistoryEntry
	for rows.Next() {
		e, err := scanCareEntry(rows)
		if err != nil {
			s.log.Warn("dropping malformed care history row",
				"plant", plantID, "error", err)
			continue
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// scanCareEntry scans and validates a single care history row.
func scanCareEntry(rows *sqlx.Rows) (model.CareHistoryEntry, error) {
	var (
		e      model.CareHistoryEntry
		action string
	)

	err := rows.Scan(&e.ID, &e.PlantID, &action, &e.Day, &e.CreatedAt)
	if err != nil {
		return model.CareHistoryEntry{}, fmt.Errorf("scanning care entry: %w", err)
	}

	e.Action = model.ActionKind(action)
	if !model.KnownActionKind(e.Action) {
		return model.CareHistoryEntry{}, fmt.Errorf("unknown action kind %q", action)
	}
	if _, err := time.Parse("2006-01-02", e.Day); err != nil {
		return model.CareHistoryEntry{}, fmt.Errorf("invalid day %q", e.Day)
	}

	return e, nil
}
