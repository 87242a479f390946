package model

import "time"

// Task represents a single item in the tracker.
type Task struct {
	ID          uint `gorm:"primaryKey"`
	Title       string
	Description string
	Category    Category `gorm:"type:text;default:OTHER"`
	Priority    Priority `gorm:"type:text;default:MEDIUM"`
	Completed   bool     `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
