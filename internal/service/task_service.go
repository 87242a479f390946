package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/repository"
)

// ErrTitleRequired is returned when a create or update carries an empty
// or whitespace-only title.
var ErrTitleRequired = errors.New("title is required")

// TaskInput represents data required to create or update a task. Category
// and Priority are optional; empty values fall back to the defaults.
type TaskInput struct {
	Title       string
	Description string
	Category    model.Category
	Priority    model.Priority
}

// TaskService wraps task-related business logic.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// GetAllTasks returns every task in store order.
func (s *TaskService) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.FindAll(ctx)
}

// CreateTask builds a new task from the input, applying defaults for the
// optional fields, and persists it. The store assigns the ID and the
// creation timestamp.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	start := time.Now()

	title := strings.TrimSpace(input.Title)
	if title == "" {
		createTaskCount.WithLabelValues("error").Inc()
		return nil, ErrTitleRequired
	}

	task := model.Task{
		Title:       title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Completed:   false,
	}
	if task.Category == "" {
		task.Category = model.CategoryOther
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		createTaskCount.WithLabelValues("error").Inc()
		return nil, err
	}

	createTaskCount.WithLabelValues("success").Inc()
	createTaskDuration.Observe(time.Since(start).Seconds())
	return &task, nil
}

// CreateTaskWithTitle is the title-only shorthand: no description and the
// default category and priority.
func (s *TaskService) CreateTaskWithTitle(ctx context.Context, title string) (*model.Task, error) {
	return s.CreateTask(ctx, TaskInput{Title: title})
}

// GetTask returns the task with the given ID, or repository.ErrNotFound.
func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateTask overwrites title, description, category and priority of an
// existing task. ID, Completed and CreatedAt stay untouched.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, input TaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		updateTaskCount.WithLabelValues("error").Inc()
		return nil, ErrTitleRequired
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		updateTaskCount.WithLabelValues("error").Inc()
		return nil, err
	}

	task.Title = title
	task.Description = input.Description
	if input.Category != "" {
		task.Category = input.Category
	}
	if input.Priority != "" {
		task.Priority = input.Priority
	}

	if err := s.repo.Update(ctx, task); err != nil {
		updateTaskCount.WithLabelValues("error").Inc()
		return nil, err
	}

	updateTaskCount.WithLabelValues("success").Inc()
	return task, nil
}

// DeleteTask removes a task. Deleting an ID that does not exist succeeds.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		deleteTaskCount.WithLabelValues("error").Inc()
		return err
	}
	deleteTaskCount.WithLabelValues("success").Inc()
	return nil
}

// ToggleTask flips the completion flag of an existing task.
func (s *TaskService) ToggleTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		toggleTaskCount.WithLabelValues("error").Inc()
		return nil, err
	}

	task.Completed = !task.Completed
	if err := s.repo.Update(ctx, task); err != nil {
		toggleTaskCount.WithLabelValues("error").Inc()
		return nil, err
	}

	toggleTaskCount.WithLabelValues("success").Inc()
	return task, nil
}

// SearchAndFilterTasks runs the combined query. With no criteria set it
// falls back to GetAllTasks, which does not apply the created_at ordering
// of the filtered path.
func (s *TaskService) SearchAndFilterTasks(ctx context.Context, filter repository.Filter) ([]model.Task, error) {
	if filter.Empty() {
		return s.GetAllTasks(ctx)
	}
	return s.repo.Search(ctx, filter)
}

// SearchTasksByTitle returns tasks whose title contains the term,
// case-insensitively. An empty term returns all tasks.
func (s *TaskService) SearchTasksByTitle(ctx context.Context, term string) ([]model.Task, error) {
	if term == "" {
		return s.GetAllTasks(ctx)
	}
	return s.repo.FindByTitleContaining(ctx, term)
}

// FilterTasksByStatus returns tasks with the given completion state. A nil
// flag returns all tasks.
func (s *TaskService) FilterTasksByStatus(ctx context.Context, completed *bool) ([]model.Task, error) {
	if completed == nil {
		return s.GetAllTasks(ctx)
	}
	return s.repo.FindByCompleted(ctx, *completed)
}

// FilterTasksByCategory returns tasks in the given category. A nil
// category returns all tasks.
func (s *TaskService) FilterTasksByCategory(ctx context.Context, category *model.Category) ([]model.Task, error) {
	if category == nil {
		return s.GetAllTasks(ctx)
	}
	return s.repo.FindByCategory(ctx, *category)
}

// FilterTasksByPriority returns tasks with the given priority. A nil
// priority returns all tasks.
func (s *TaskService) FilterTasksByPriority(ctx context.Context, priority *model.Priority) ([]model.Task, error) {
	if priority == nil {
		return s.GetAllTasks(ctx)
	}
	return s.repo.FindByPriority(ctx, *priority)
}
