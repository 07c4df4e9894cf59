package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusReview     TaskStatus = "REVIEW"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// FilterAll is the sentinel clients send to disable a status or
// priority filter.
const FilterAll = "ALL"

const (
	AssignedFilterMe      = "me"
	AssignedFilterCreated = "created"
)

type Task struct {
	ID           primitive.ObjectID
	Title        string
	Description  *string
	Status       TaskStatus
	Priority     TaskPriority
	DueDate      *time.Time
	CreatedByID  primitive.ObjectID
	AssignedToID *primitive.ObjectID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Resolved summaries, populated by the service layer.
	CreatedBy  *UserSummary
	AssignedTo *UserSummary
}

// TaskRef is the projection of a task exposed through notification
// enrichment. No other task fields cross that boundary.
type TaskRef struct {
	ID    primitive.ObjectID
	Title string
}

type TaskFilter struct {
	Status     string
	Priority   string
	AssignedTo string
	Search     string
}

type TaskQuery struct {
	RequesterID primitive.ObjectID
	Filter      TaskFilter
}

type CreateTaskInput struct {
	Title        string
	Description  *string
	Status       TaskStatus
	Priority     TaskPriority
	DueDate      *time.Time
	AssignedToID *primitive.ObjectID
}

// UpdateTaskInput is the full replacement state of a task. A nil field
// is written back as null, not skipped: updates overwrite, they do not
// merge. The creator reference is absent on purpose, it never changes.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Status       *TaskStatus
	Priority     *TaskPriority
	DueDate      *time.Time
	AssignedToID *primitive.ObjectID
}

// CanMutate reports whether the given user may update the task. Only
// the creator or the current assignee qualifies.
func (t Task) CanMutate(userID primitive.ObjectID) bool {
	if t.CreatedByID == userID {
		return true
	}
	return t.AssignedToID != nil && *t.AssignedToID == userID
}
