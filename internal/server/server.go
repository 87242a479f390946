package server

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"task-tracker/internal/model"
	"task-tracker/internal/repository"
	"task-tracker/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// listView feeds the task list template. The filter fields echo the
// current selection so the form keeps its state across a search.
type listView struct {
	Tasks      []model.Task
	Categories []model.Category
	Priorities []model.Priority
	Search     string
	Status     string
	Category   string
	Priority   string
}

type editView struct {
	Task       *model.Task
	Categories []model.Category
	Priorities []model.Priority
}

// NewRouter wires every HTTP route to the task service.
func NewRouter(tasks *service.TaskService) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/", listTasksHandler(tasks))
	r.Get("/task", listTasksHandler(tasks))
	r.Post("/", createTaskHandler(tasks))
	r.Get("/search", searchTasksHandler(tasks))
	r.Get("/{id}/edit", editTaskFormHandler(tasks))
	r.Post("/{id}/edit", updateTaskHandler(tasks))
	r.Get("/{id}/delete", deleteTaskHandler(tasks))
	r.Get("/{id}/toggle", toggleTaskHandler(tasks))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func listTasksHandler(tasks *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := tasks.GetAllTasks(r.Context())
		if err != nil {
			serverError(w, err)
			return
		}
		renderList(w, listView{Tasks: all})
	}
}

func createTaskHandler(tasks *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := taskInputFromForm(w, r)
		if !ok {
			return
		}

		if _, err := tasks.CreateTask(r.Context(), input); err != nil {
			// A blank title is silently discarded; nothing was created.
			if !errors.Is(err, service.ErrTitleRequired) {
				serverError(w, err)
				return
			}
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func searchTasksHandler(tasks *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		view := listView{
			Search:   strings.TrimSpace(q.Get("search")),
			Status:   q.Get("status"),
			Category: q.Get("category"),
			Priority: q.Get("priority"),
		}

		filter := repository.Filter{Search: view.Search}

		if view.Status != "" {
			completed, err := strconv.ParseBool(view.Status)
			if err != nil {
				http.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			filter.Completed = &completed
		}
		if view.Category != "" {
			category, err := model.ParseCategory(view.Category)
			if err != nil {
				http.Error(w, "invalid category", http.StatusBadRequest)
				return
			}
			filter.Category = &category
		}
		if view.Priority != "" {
			priority, err := model.ParsePriority(view.Priority)
			if err != nil {
				http.Error(w, "invalid priority", http.StatusBadRequest)
				return
			}
			filter.Priority = &priority
		}

		found, err := tasks.SearchAndFilterTasks(r.Context(), filter)
		if err != nil {
			serverError(w, err)
			return
		}

		view.Tasks = found
		renderList(w, view)
	}
}

func editTaskFormHandler(tasks *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(w, r)
		if !ok {
			return
		}

		task, err := tasks.GetTask(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			serverError(w, err)
			return
		}

		view := editView{
			Task:       task,
			Categories: model.Categories(),
			Priorities: model.Priorities(),
		}
		if err := templates.ExecuteTemplate(w, "edit.html", view); err != nil {
			log.Printf("render edit: %v", err)
		}
	}
}

func updateTaskHandler(tasks *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(w, r)
		if !ok {
			return
		}
		input, ok := taskInputFromForm(w, r)
		if !ok {
			return
		}

		if _, err := tasks.UpdateTask(r.Context(), id, input); err != nil {
			switch {
			case errors.Is(err, service.ErrTitleRequired):
				// Same guard as create: drop the submission.
			case errors.Is(err, repository.ErrNotFound):
				http.NotFound(w, r)
				return
			default:
				serverError(w, err)
				return
			}
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func deleteTaskHandler(tasks *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(w, r)
		if !ok {
			return
		}

		if err := tasks.DeleteTask(r.Context(), id); err != nil {
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func toggleTaskHandler(tasks *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(w, r)
		if !ok {
			return
		}

		if _, err := tasks.ToggleTask(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// taskID reads the {id} path parameter. A non-numeric value is a 400.
func taskID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// taskInputFromForm reads the shared create/edit form fields. An
// unrecognized category or priority value is a 400.
func taskInputFromForm(w http.ResponseWriter, r *http.Request) (service.TaskInput, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return service.TaskInput{}, false
	}

	input := service.TaskInput{
		Title:       r.PostFormValue("title"),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}

	if raw := r.PostFormValue("category"); raw != "" {
		category, err := model.ParseCategory(raw)
		if err != nil {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return service.TaskInput{}, false
		}
		input.Category = category
	}
	if raw := r.PostFormValue("priority"); raw != "" {
		priority, err := model.ParsePriority(raw)
		if err != nil {
			http.Error(w, "invalid priority", http.StatusBadRequest)
			return service.TaskInput{}, false
		}
		input.Priority = priority
	}

	return input, true
}

func renderList(w http.ResponseWriter, view listView) {
	view.Categories = model.Categories()
	view.Priorities = model.Priorities()
	if err := templates.ExecuteTemplate(w, "tasks.html", view); err != nil {
		log.Printf("render tasks: %v", err)
	}
}

func serverError(w http.ResponseWriter, err error) {
	log.Printf("[ERROR] %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
