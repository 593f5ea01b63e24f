package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault-api/internal/domain"
)

// TaskCriteria represents optional search criteria for a user's tasks.
// Zero values mean "criterion not applied": each populated field contributes
// exactly one conjunctive clause to the executed query, and absent fields
// impose no constraint. Every query built from a TaskCriteria is additionally
// scoped to the owner, which is passed separately and is never optional.
type TaskCriteria struct {
	// Status matches tasks with exactly this status.
	Status domain.TaskStatus

	// Priority matches tasks with exactly this priority.
	Priority domain.TaskPriority

	// Title matches tasks whose title contains this string (case-insensitive).
	Title string

	// Description matches tasks whose description contains this string
	// (case-insensitive).
	Description string

	// DueAfter matches tasks whose due date is at or after this instant.
	DueAfter *time.Time
}

// TaskPage is one window of a user's tasks together with the unfiltered
// total, from which the caller derives the page count.
type TaskPage struct {
	Tasks []*domain.Task

	// Total is the count of ALL of the owner's tasks, not just the window.
	Total int
}

// TaskStore defines the interface for task data persistence.
//
// Every single-task operation takes both the task ID and the owner's user ID
// and must match on both. Implementations return ErrTaskNotFound when no row
// satisfies the pair, whether the task is missing or belongs to someone else.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByOwner retrieves a task by ID, scoped to the given owner.
	// Returns ErrTaskNotFound if no task matches both the ID and the owner.
	GetByOwner(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)

	// Update persists the mutable fields of the task, scoped to its owner.
	// The owner recorded in the store is never changed.
	// Returns ErrTaskNotFound if no task matches both the ID and the owner.
	Update(ctx context.Context, task *domain.Task) error

	// DeleteByOwner removes a task by ID, scoped to the given owner.
	// Returns ErrTaskNotFound if no task matches both the ID and the owner.
	DeleteByOwner(ctx context.Context, taskID, ownerID uuid.UUID) error

	// ListByOwner returns the [offset, offset+pageSize) window of the owner's
	// tasks in creation order, plus the owner's unfiltered task total.
	// A page below 1 is treated as page 1.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*TaskPage, error)

	// SearchByOwner returns all of the owner's tasks matching the criteria,
	// without pagination. An empty criteria matches all of the owner's tasks.
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, criteria TaskCriteria) ([]*domain.Task, error)
}
