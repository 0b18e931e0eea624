package repository

import (
	"context"
	"database/sql"
	"fmt"

	"focuscontrol/internal/model"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO tasks (id, title, context, est_minutes, tag, priority, created_at, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		task.Title,
		task.Context,
		task.EstimateMinutes,
		task.Tag,
		task.Priority,
		formatTime(task.CreatedAt),
		task.Status,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, title, context, est_minutes, tag, priority, created_at, status
		 FROM tasks
		 WHERE id = ?`,
		id,
	)
	return scanTask(row)
}

// ListOpen returns open tasks, highest priority first, newest first within a
// priority.
func (r *TaskRepository) ListOpen(ctx context.Context, limit int) ([]model.Task, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, title, context, est_minutes, tag, priority, created_at, status
		 FROM tasks
		 WHERE status = ?
		 ORDER BY priority DESC, created_at DESC
		 LIMIT ?`,
		model.TaskStatusOpen,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0, limit)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

func scanTask(s scanner) (*model.Task, error) {
	task := model.Task{}
	var createdAt string
	err := s.Scan(
		&task.ID,
		&task.Title,
		&task.Context,
		&task.EstimateMinutes,
		&task.Tag,
		&task.Priority,
		&createdAt,
		&task.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}

	parsedCreatedAt, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse task created_at: %w", err)
	}
	task.CreatedAt = parsedCreatedAt

	return &task, nil
}
