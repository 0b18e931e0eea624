package repository

import (
	"context"
	"database/sql"
	"fmt"

	"focuscontrol/internal/model"
)

type InterruptionRepository struct {
	db *sql.DB
}

func NewInterruptionRepository(db *sql.DB) *InterruptionRepository {
	return &InterruptionRepository{db: db}
}

func (r *InterruptionRepository) Create(ctx context.Context, interruption *model.Interruption) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO interruptions (id, session_id, ts, content)
		 VALUES (?, ?, ?, ?)`,
		interruption.ID,
		interruption.SessionID,
		formatTime(interruption.Timestamp),
		interruption.Content,
	)
	if err != nil {
		return fmt.Errorf("create interruption: %w", err)
	}
	return nil
}

func (r *InterruptionRepository) ListBySession(ctx context.Context, sessionID string) ([]model.Interruption, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, session_id, ts, content
		 FROM interruptions
		 WHERE session_id = ?
		 ORDER BY ts ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list interruptions: %w", err)
	}
	defer rows.Close()

	interruptions := make([]model.Interruption, 0)
	for rows.Next() {
		var interruption model.Interruption
		var ts string
		if err := rows.Scan(&interruption.ID, &interruption.SessionID, &ts, &interruption.Content); err != nil {
			return nil, fmt.Errorf("scan interruption: %w", err)
		}

		parsedTS, parseErr := parseTime(ts)
		if parseErr != nil {
			return nil, fmt.Errorf("parse interruption ts: %w", parseErr)
		}
		interruption.Timestamp = parsedTS

		interruptions = append(interruptions, interruption)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interruptions: %w", err)
	}

	return interruptions, nil
}
