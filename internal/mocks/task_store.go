package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
//
// The default in-memory implementation mirrors the real store's contract:
// single-task operations match on (id, owner) and report a foreign task as
// not found, listings are in creation order, and criteria matching follows
// the same conjunction semantics as the SQL builder.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, task *domain.Task) error
	GetByOwnerFn    func(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)
	UpdateFn        func(ctx context.Context, task *domain.Task) error
	DeleteByOwnerFn func(ctx context.Context, taskID, ownerID uuid.UUID) error
	ListByOwnerFn   func(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*store.TaskPage, error)
	SearchByOwnerFn func(ctx context.Context, ownerID uuid.UUID, criteria store.TaskCriteria) ([]*domain.Task, error)

	// Data for default implementation, keyed by task ID
	Tasks map[uuid.UUID]*domain.Task

	// Errors returned by the default implementation when set
	CreateError error
	SearchError error
}

// Ensure MockTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := task.Validate(); err != nil {
		return err
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByOwner implements the TaskStore interface
func (m *MockTaskStore) GetByOwner(
	ctx context.Context,
	taskID, ownerID uuid.UUID,
) (*domain.Task, error) {
	if m.GetByOwnerFn != nil {
		return m.GetByOwnerFn(ctx, taskID, ownerID)
	}

	task, exists := m.Tasks[taskID]
	if !exists || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}

	copied := *task
	return &copied, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.OwnerID != task.OwnerID {
		return store.ErrTaskNotFound
	}

	copied := *task
	copied.OwnerID = existing.OwnerID
	copied.CreatedAt = existing.CreatedAt
	m.Tasks[task.ID] = &copied
	return nil
}

// DeleteByOwner implements the TaskStore interface
func (m *MockTaskStore) DeleteByOwner(ctx context.Context, taskID, ownerID uuid.UUID) error {
	if m.DeleteByOwnerFn != nil {
		return m.DeleteByOwnerFn(ctx, taskID, ownerID)
	}

	task, exists := m.Tasks[taskID]
	if !exists || task.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, taskID)
	return nil
}

// ListByOwner implements the TaskStore interface
func (m *MockTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	page, pageSize int,
) (*store.TaskPage, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID, page, pageSize)
	}

	owned := m.ownedTasks(ownerID)

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	window := []*domain.Task{}
	for i := offset; i < len(owned) && i < offset+pageSize; i++ {
		window = append(window, owned[i])
	}

	return &store.TaskPage{Tasks: window, Total: len(owned)}, nil
}

// SearchByOwner implements the TaskStore interface
func (m *MockTaskStore) SearchByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	criteria store.TaskCriteria,
) ([]*domain.Task, error) {
	if m.SearchByOwnerFn != nil {
		return m.SearchByOwnerFn(ctx, ownerID, criteria)
	}

	if m.SearchError != nil {
		return nil, m.SearchError
	}

	matched := []*domain.Task{}
	for _, task := range m.ownedTasks(ownerID) {
		if matchesCriteria(task, criteria) {
			matched = append(matched, task)
		}
	}

	return matched, nil
}

// ownedTasks returns copies of the owner's tasks in creation order.
func (m *MockTaskStore) ownedTasks(ownerID uuid.UUID) []*domain.Task {
	owned := []*domain.Task{}
	for _, task := range m.Tasks {
		if task.OwnerID == ownerID {
			copied := *task
			owned = append(owned, &copied)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID.String() < owned[j].ID.String()
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})

	return owned
}

// matchesCriteria applies the same conjunction semantics as the SQL builder.
func matchesCriteria(task *domain.Task, c store.TaskCriteria) bool {
	if c.Status != "" && task.Status != c.Status {
		return false
	}
	if c.Priority != "" && task.Priority != c.Priority {
		return false
	}
	if c.Title != "" && !containsFold(task.Title, c.Title) {
		return false
	}
	if c.Description != "" && !containsFold(task.Description, c.Description) {
		return false
	}
	if c.DueAfter != nil {
		if task.DueDate == nil || task.DueDate.Before(*c.DueAfter) {
			return false
		}
	}
	return true
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
