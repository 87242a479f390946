package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-tracker/internal/model"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")

	require.NoError(t, db.AutoMigrate(&model.Task{}), "migrate test database")

	return db
}

func seedTask(t *testing.T, db *gorm.DB, task model.Task) model.Task {
	t.Helper()
	require.NoError(t, db.Create(&task).Error)
	return task
}

func TestTaskRepository_Create(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := model.Task{Title: "Buy milk", Category: model.CategoryShopping, Priority: model.PriorityLow}
	require.NoError(t, repo.Create(ctx, &task))

	assert.NotZero(t, task.ID, "store should assign an ID")
	assert.False(t, task.CreatedAt.IsZero(), "store should stamp CreatedAt")

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", found.Title)
	assert.Equal(t, model.CategoryShopping, found.Category)
}

func TestTaskRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := seedTask(t, db, model.Task{Title: "Call mom"})

	t.Run("existing task", func(t *testing.T) {
		found, err := repo.FindByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, found.ID)
		assert.Equal(t, "Call mom", found.Title)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	tasks, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	seedTask(t, db, model.Task{Title: "One"})
	seedTask(t, db, model.Task{Title: "Two"})

	tasks, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := seedTask(t, db, model.Task{Title: "Old title", Priority: model.PriorityLow})

	task.Title = "New title"
	task.Priority = model.PriorityHigh
	require.NoError(t, repo.Update(ctx, &task))

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", found.Title)
	assert.Equal(t, model.PriorityHigh, found.Priority)
}

func TestTaskRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := seedTask(t, db, model.Task{Title: "Doomed"})

	require.NoError(t, repo.Delete(ctx, task.ID))
	_, err := repo.FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent ID is a silent no-op.
	assert.NoError(t, repo.Delete(ctx, 9999))
}

func TestTaskRepository_FindByTitleContaining(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedTask(t, db, model.Task{Title: "Buy milk"})
	seedTask(t, db, model.Task{Title: "Call mom"})

	tasks, err := repo.FindByTitleContaining(ctx, "MILK")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
}

func TestTaskRepository_ExactMatchFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedTask(t, db, model.Task{Title: "Report", Category: model.CategoryWork, Priority: model.PriorityHigh, Completed: true})
	seedTask(t, db, model.Task{Title: "Groceries", Category: model.CategoryShopping, Priority: model.PriorityLow})

	t.Run("by completed", func(t *testing.T) {
		tasks, err := repo.FindByCompleted(ctx, true)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Report", tasks[0].Title)
	})

	t.Run("by category", func(t *testing.T) {
		tasks, err := repo.FindByCategory(ctx, model.CategoryShopping)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Groceries", tasks[0].Title)
	})

	t.Run("by priority", func(t *testing.T) {
		tasks, err := repo.FindByPriority(ctx, model.PriorityHigh)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Report", tasks[0].Title)
	})
}

func TestTaskRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedTask(t, db, model.Task{Title: "Weekly report", Category: model.CategoryWork, Priority: model.PriorityHigh, Completed: true, CreatedAt: base})
	seedTask(t, db, model.Task{Title: "Quarterly report", Category: model.CategoryWork, Priority: model.PriorityMedium, Completed: true, CreatedAt: base.Add(time.Hour)})
	seedTask(t, db, model.Task{Title: "Buy milk", Category: model.CategoryShopping, Priority: model.PriorityLow, CreatedAt: base.Add(2 * time.Hour)})

	t.Run("conjunction of criteria, newest first", func(t *testing.T) {
		completed := true
		category := model.CategoryWork
		tasks, err := repo.Search(ctx, Filter{Completed: &completed, Category: &category})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "Quarterly report", tasks[0].Title)
		assert.Equal(t, "Weekly report", tasks[1].Title)
	})

	t.Run("substring term is case-insensitive", func(t *testing.T) {
		tasks, err := repo.Search(ctx, Filter{Search: "milk"})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Buy milk", tasks[0].Title)
	})

	t.Run("unset criteria impose no constraint", func(t *testing.T) {
		tasks, err := repo.Search(ctx, Filter{Search: "report"})
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})
}

func TestFilter_Empty(t *testing.T) {
	assert.True(t, Filter{}.Empty())

	completed := false
	assert.False(t, Filter{Completed: &completed}.Empty(), "false is a criterion, not absence")
	assert.False(t, Filter{Search: "x"}.Empty())
}
