package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	createTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasktracker_tasks_created_total",
			Help: "Total number of CreateTask operations",
		},
		[]string{"status"},
	)

	updateTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasktracker_tasks_updated_total",
			Help: "Total number of UpdateTask operations",
		},
		[]string{"status"},
	)

	toggleTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasktracker_tasks_toggled_total",
			Help: "Total number of ToggleTask operations",
		},
		[]string{"status"},
	)

	deleteTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasktracker_tasks_deleted_total",
			Help: "Total number of DeleteTask operations",
		},
		[]string{"status"},
	)

	createTaskDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tasktracker_create_task_duration_seconds",
			Help:    "Duration of CreateTask operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
