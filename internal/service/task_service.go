package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "focuscontrol/internal/errors"
	"focuscontrol/internal/model"
	"focuscontrol/internal/repository"
)

type TaskService struct {
	repo *repository.TaskRepository
}

type CreateTaskInput struct {
	Title           string
	Context         string
	EstimateMinutes int
	Tag             string
	Priority        int
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create captures a task. Only the title is validated; the estimate range is
// the capture form's concern and is accepted as sent.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*model.Task, *apperrors.APIError) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.BadRequest("title_required", "add a task title")
	}

	estimate := input.EstimateMinutes
	if estimate == 0 {
		estimate = model.DefaultEstimateMinutes
	}
	priority := input.Priority
	if priority == 0 {
		priority = model.DefaultPriority
	}
	tag := input.Tag
	if tag == "" {
		tag = model.Tags[0]
	}

	task := model.Task{
		ID:              uuid.NewString(),
		Title:           title,
		Context:         strings.TrimSpace(input.Context),
		EstimateMinutes: estimate,
		Tag:             tag,
		Priority:        priority,
		CreatedAt:       time.Now().UTC(),
		Status:          model.TaskStatusOpen,
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, apperrors.Internal("failed to create task")
	}

	return &task, nil
}

func (s *TaskService) ListOpen(ctx context.Context, limit int) ([]model.Task, *apperrors.APIError) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	tasks, err := s.repo.ListOpen(ctx, limit)
	if err != nil {
		return nil, apperrors.Internal("failed to list tasks")
	}
	return tasks, nil
}
