package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focuscontrol/internal/model"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	endTS := ""
	if session.EndedAt != nil {
		endTS = formatTime(*session.EndedAt)
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO sessions (id, task_id, mode, duration_min, start_ts, end_ts, energy, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.TaskID,
		session.Mode,
		session.DurationMinutes,
		formatTime(session.StartedAt),
		endTS,
		session.Energy,
		session.Note,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*model.Session, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, task_id, mode, duration_min, start_ts, end_ts, energy, note
		 FROM sessions
		 WHERE id = ?`,
		id,
	)
	return scanSession(row)
}

// SetEnded records the end timestamp for a still-open session. The guard on
// end_ts keeps the timestamp write-once: a second call changes nothing.
func (r *SessionRepository) SetEnded(ctx context.Context, id string, endedAt time.Time) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE sessions SET end_ts = ? WHERE id = ? AND end_ts = ''`,
		formatTime(endedAt),
		id,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// ListStartedBetween returns sessions whose start timestamp lies in the
// half-open window [from, before), newest first. Bounds and stored values
// share the same fixed-width encoding, so the string comparison is exact.
func (r *SessionRepository) ListStartedBetween(ctx context.Context, from, before time.Time) ([]model.Session, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, task_id, mode, duration_min, start_ts, end_ts, energy, note
		 FROM sessions
		 WHERE start_ts >= ? AND start_ts < ?
		 ORDER BY start_ts DESC`,
		formatTime(from),
		formatTime(before),
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]model.Session, 0)
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		sessions = append(sessions, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

func scanSession(s scanner) (*model.Session, error) {
	session := model.Session{}
	var startTS string
	var endTS string
	err := s.Scan(
		&session.ID,
		&session.TaskID,
		&session.Mode,
		&session.DurationMinutes,
		&startTS,
		&endTS,
		&session.Energy,
		&session.Note,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	parsedStartedAt, err := parseTime(startTS)
	if err != nil {
		return nil, fmt.Errorf("parse session start_ts: %w", err)
	}
	session.StartedAt = parsedStartedAt

	if endTS != "" {
		parsedEndedAt, parseErr := parseTime(endTS)
		if parseErr != nil {
			return nil, fmt.Errorf("parse session end_ts: %w", parseErr)
		}
		session.EndedAt = &parsedEndedAt
	}

	return &session, nil
}
