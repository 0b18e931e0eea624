package service

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuscontrol/internal/db"
	"focuscontrol/internal/model"
	"focuscontrol/internal/repository"
)

func newTaskService(t *testing.T) (*TaskService, *repository.TaskRepository) {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")
	require.NoError(t, db.RunMigrations(database, migrationsDir))

	repo := repository.NewTaskRepository(database)
	return NewTaskService(repo), repo
}

func TestCreateTask(t *testing.T) {
	svc, repo := newTaskService(t)
	ctx := context.Background()

	before := time.Now().UTC()
	task, apiErr := svc.Create(ctx, CreateTaskInput{
		Title:           "  Write the report  ",
		Context:         "  outline first  ",
		EstimateMinutes: 40,
		Tag:             "Admin",
		Priority:        5,
	})
	require.Nil(t, apiErr)

	assert.Equal(t, "Write the report", task.Title)
	assert.Equal(t, "outline first", task.Context)
	assert.Equal(t, 40, task.EstimateMinutes)
	assert.Equal(t, "Admin", task.Tag)
	assert.Equal(t, 5, task.Priority)
	assert.Equal(t, model.TaskStatusOpen, task.Status)
	assert.False(t, task.CreatedAt.Before(before))

	stored, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusOpen, stored.Status)
	assert.Equal(t, "Write the report", stored.Title)
}

func TestCreateTaskEmptyTitleRejected(t *testing.T) {
	svc, repo := newTaskService(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, apiErr := svc.Create(ctx, CreateTaskInput{Title: title})
		require.NotNil(t, apiErr)
		assert.Equal(t, "title_required", apiErr.Code)
	}

	tasks, err := repo.ListOpen(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, _ := newTaskService(t)

	task, apiErr := svc.Create(context.Background(), CreateTaskInput{Title: "Quick capture"})
	require.Nil(t, apiErr)

	assert.Equal(t, model.DefaultEstimateMinutes, task.EstimateMinutes)
	assert.Equal(t, model.DefaultPriority, task.Priority)
	assert.Equal(t, "Deep Work", task.Tag)
}

func TestListOpenOrdering(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, apiErr := svc.Create(ctx, CreateTaskInput{Title: "low", Priority: 1})
	require.Nil(t, apiErr)
	_, apiErr = svc.Create(ctx, CreateTaskInput{Title: "high", Priority: 5})
	require.Nil(t, apiErr)
	_, apiErr = svc.Create(ctx, CreateTaskInput{Title: "mid", Priority: 3})
	require.Nil(t, apiErr)

	tasks, apiErr := svc.ListOpen(ctx, 10)
	require.Nil(t, apiErr)
	require.Len(t, tasks, 3)
	assert.Equal(t, "high", tasks[0].Title)
	assert.Equal(t, "mid", tasks[1].Title)
	assert.Equal(t, "low", tasks[2].Title)
}
