package models

import (
	"errors"
	"strings"
	"time"
)

// Priority of a task or treatment
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities; unknown values rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) Valid() bool {
	return p.Rank() > 0
}

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyCategory   = errors.New("category is required")
	ErrEmptyUserID     = errors.New("user_id is required")
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high")
	ErrEmptyDueDate    = errors.New("due_date is required")
)

// Task is a scheduled farming activity. CompletedAt is set iff Completed.
type Task struct {
	ID               string     `json:"id" db:"id"`
	UserID           string     `json:"user_id" db:"user_id"`
	Title            string     `json:"title" db:"title"`
	TitleHindi       string     `json:"title_hindi,omitempty" db:"title_hindi"`
	TitleLocal       string     `json:"title_local,omitempty" db:"title_local"`
	Description      string     `json:"description,omitempty" db:"description"`
	DescriptionHindi string     `json:"description_hindi,omitempty" db:"description_hindi"`
	DescriptionLocal string     `json:"description_local,omitempty" db:"description_local"`
	Category         string     `json:"category" db:"category"`
	Priority         Priority   `json:"priority" db:"priority"`
	CropType         string     `json:"crop_type,omitempty" db:"crop_type"`
	DueDate          Date       `json:"due_date" db:"due_date"`
	DueTime          string     `json:"due_time,omitempty" db:"due_time"`
	Completed        bool       `json:"completed" db:"completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	TemplateSlot     *int       `json:"-" db:"template_slot"` // set only for template-generated tasks
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

type TaskCreate struct {
	UserID           string   `json:"user_id"`
	Title            string   `json:"title" binding:"required"`
	TitleHindi       string   `json:"title_hindi,omitempty"`
	TitleLocal       string   `json:"title_local,omitempty"`
	Description      string   `json:"description,omitempty"`
	DescriptionHindi string   `json:"description_hindi,omitempty"`
	DescriptionLocal string   `json:"description_local,omitempty"`
	Category         string   `json:"category" binding:"required"`
	Priority         Priority `json:"priority,omitempty"`
	CropType         string   `json:"crop_type,omitempty"`
	DueDate          Date     `json:"due_date"`
	DueTime          string   `json:"due_time,omitempty"`
}

// Validate fills the default priority and checks required fields.
func (c *TaskCreate) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(c.Category) == "" {
		return ErrEmptyCategory
	}
	if c.DueDate.IsZero() {
		return ErrEmptyDueDate
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	if !c.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// TaskUpdate is a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title            *string   `json:"title,omitempty"`
	TitleHindi       *string   `json:"title_hindi,omitempty"`
	TitleLocal       *string   `json:"title_local,omitempty"`
	Description      *string   `json:"description,omitempty"`
	DescriptionHindi *string   `json:"description_hindi,omitempty"`
	DescriptionLocal *string   `json:"description_local,omitempty"`
	Category         *string   `json:"category,omitempty"`
	Priority         *Priority `json:"priority,omitempty"`
	CropType         *string   `json:"crop_type,omitempty"`
	DueDate          *Date     `json:"due_date,omitempty"`
	DueTime          *string   `json:"due_time,omitempty"`
	Completed        *bool     `json:"completed,omitempty"`
}

// Apply mutates t with the non-nil fields of u and refreshes UpdatedAt.
func (u TaskUpdate) Apply(t *Task, now time.Time) error {
	if u.Priority != nil && !u.Priority.Valid() {
		return ErrInvalidPriority
	}
	setString(&t.Title, u.Title)
	setString(&t.TitleHindi, u.TitleHindi)
	setString(&t.TitleLocal, u.TitleLocal)
	setString(&t.Description, u.Description)
	setString(&t.DescriptionHindi, u.DescriptionHindi)
	setString(&t.DescriptionLocal, u.DescriptionLocal)
	setString(&t.Category, u.Category)
	setString(&t.CropType, u.CropType)
	setString(&t.DueTime, u.DueTime)
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
		if t.Completed {
			completedAt := now
			t.CompletedAt = &completedAt
		} else {
			t.CompletedAt = nil
		}
	}
	t.UpdatedAt = now
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
