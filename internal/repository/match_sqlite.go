package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type sqliteMatch struct {
	conn *sql.DB
}

// NewSQLiteMatchRepository expects the matches table created by storage.Storage.Init.
func NewSQLiteMatchRepository(conn *sql.DB) MatchRepository {
	return &sqliteMatch{
		conn: conn,
	}
}

func (that *sqliteMatch) Save(ctx context.Context, record *entity.MatchRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	query := `INSERT OR REPLACE INTO matches (id, finished_at, record) VALUES (?, ?, ?)`

	_, err = that.conn.ExecContext(ctx, query, record.ID, record.FinishedAt.UnixNano(), string(recordJSON))
	if err != nil {
		return fmt.Errorf("can't save match: %w", err)
	}

	return nil
}

func (that *sqliteMatch) GetByID(ctx context.Context, id string) (*entity.MatchRecord, error) {
	query := `SELECT record FROM matches WHERE id = ?`

	var raw string

	err := that.conn.QueryRowContext(ctx, query, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find match: %w", err)
	}

	var record entity.MatchRecord
	if err = json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &record, nil
}

func (that *sqliteMatch) ListRecent(ctx context.Context, limit int) ([]*entity.MatchRecord, error) {
	query := `SELECT record FROM matches ORDER BY finished_at DESC, rowid DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("can't list matches: %w", err)
	}
	defer rows.Close()

	records := make([]*entity.MatchRecord, 0)
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("can't scan match: %w", err)
		}

		var record entity.MatchRecord
		if err = json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match: %w", err)
		}
		records = append(records, &record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list matches: %w", err)
	}

	return records, nil
}
