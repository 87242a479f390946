package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-tracker/internal/model"
)

// ErrNotFound is returned when no task matches the requested ID.
var ErrNotFound = errors.New("task not found")

// Filter collects the optional criteria of a combined search. A nil
// pointer (or empty search term) means the criterion imposes no
// constraint, so "no status filter" stays distinct from "incomplete only".
type Filter struct {
	Search    string
	Completed *bool
	Category  *model.Category
	Priority  *model.Priority
}

// Empty reports whether no criterion is set.
func (f Filter) Empty() bool {
	return f.Search == "" && f.Completed == nil && f.Category == nil && f.Priority == nil
}

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update persists a full replacement of the record with the same ID.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task by ID. Deleting an absent ID is a silent no-op.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// FindByTitleContaining matches titles by case-insensitive substring.
func (r *TaskRepository) FindByTitleContaining(ctx context.Context, term string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?)", "%"+term+"%").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByCompleted(ctx context.Context, completed bool) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("completed = ?", completed).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("filter tasks by status: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByCategory(ctx context.Context, category model.Category) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("category = ?", category).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("filter tasks by category: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByPriority(ctx context.Context, priority model.Priority) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("priority = ?", priority).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("filter tasks by priority: %w", err)
	}
	return tasks, nil
}

// Search applies the conjunction of every set criterion and returns the
// matches newest first.
func (r *TaskRepository) Search(ctx context.Context, filter Filter) ([]model.Task, error) {
	db := r.db.WithContext(ctx)
	if filter.Search != "" {
		db = db.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.Completed != nil {
		db = db.Where("completed = ?", *filter.Completed)
	}
	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}
	if filter.Priority != nil {
		db = db.Where("priority = ?", *filter.Priority)
	}

	var tasks []model.Task
	if err := db.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return tasks, nil
}
