package model

import "fmt"

// Category groups tasks by area (work, health, study, etc.). The symbolic
// name is what gets persisted; Label is what the UI shows.
type Category string

const (
	CategoryWork      Category = "WORK"
	CategoryPersonal  Category = "PERSONAL"
	CategoryShopping  Category = "SHOPPING"
	CategoryHealth    Category = "HEALTH"
	CategoryEducation Category = "EDUCATION"
	CategoryOther     Category = "OTHER"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryPersonal,
		CategoryShopping,
		CategoryHealth,
		CategoryEducation,
		CategoryOther,
	}
}

// ParseCategory validates a textual category name.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	switch c {
	case CategoryWork, CategoryPersonal, CategoryShopping,
		CategoryHealth, CategoryEducation, CategoryOther:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

// Label returns the human-readable form of the category.
func (c Category) Label() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryPersonal:
		return "Personal"
	case CategoryShopping:
		return "Shopping"
	case CategoryHealth:
		return "Health"
	case CategoryEducation:
		return "Education"
	case CategoryOther:
		return "Other"
	}
	return string(c)
}
