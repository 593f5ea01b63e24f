package api

import (
	"time"

	"github.com/taskvault/taskvault-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the public descriptor of a user. It never carries the
// password hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RegisterResponse defines the successful response for the registration endpoint.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
}

// TaskRequest defines the payload for creating or updating a task.
// Any owner or user ID present in the body is ignored: ownership always
// comes from the authenticated identity.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=100"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"required,oneof=pending in-progress completed"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate"     validate:"omitempty"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"ownerId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ListTasksResponse defines the paginated task listing response.
type ListTasksResponse struct {
	Tasks       []TaskResponse `json:"tasks"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

// CreateTaskResponse defines the successful response for task creation.
type CreateTaskResponse struct {
	Message     string       `json:"message"`
	CreatedTask TaskResponse `json:"createdTask"`
}

// UpdateTaskResponse defines the successful response for task updates.
type UpdateTaskResponse struct {
	Message     string       `json:"message"`
	UpdatedTask TaskResponse `json:"updatedTask"`
}

// MessageResponse defines a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		OwnerID:     task.OwnerID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToResponse converts a slice of domain tasks, always returning a
// non-nil slice so the JSON encoding is an array rather than null.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
