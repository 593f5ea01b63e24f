package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// TaskHandler handles task-related API requests. Every operation is scoped
// to the authenticated user taken from the request context; no handler ever
// trusts an owner supplied in a payload.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
	}
}

// ListTasks handles GET /tasks?page=&limit= requests.
// A page below 1 falls back to the first page rather than erroring, and the
// response carries the total page count so clients can paginate.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	page := queryInt(r, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit := queryInt(r, "limit", defaultPageSize)
	if limit < 1 {
		limit = defaultPageSize
	}

	result, err := h.taskStore.ListByOwner(r.Context(), userID, page, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	totalPages := (result.Total + limit - 1) / limit

	shared.RespondWithJSON(w, r, http.StatusOK, ListTasksResponse{
		Tasks:       tasksToResponse(result.Tasks),
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

// CreateTask handles POST /tasks requests.
// The owner of the new task is always the authenticated user.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := domain.NewTask(
		userID,
		req.Title,
		req.Description,
		domain.TaskStatus(req.Status),
		domain.TaskPriority(req.Priority),
		dueDate,
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTaskResponse{
		Message:     "Task created successfully",
		CreatedTask: taskToResponse(task),
	})
}

// GetTask handles GET /tasks/{taskID} requests.
// A task belonging to another user is reported as not found.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := requireUserAndTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskStore.GetByOwner(r.Context(), taskID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{taskID} requests.
// The full document is re-validated and the owner cannot be changed by the
// update payload.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := requireUserAndTaskID(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskStore.GetByOwner(r.Context(), taskID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := task.Apply(
		req.Title,
		req.Description,
		domain.TaskStatus(req.Status),
		domain.TaskPriority(req.Priority),
		dueDate,
	); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateTaskResponse{
		Message:     "Task updated successfully",
		UpdatedTask: taskToResponse(task),
	})
}

// DeleteTask handles DELETE /tasks/{taskID} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := requireUserAndTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskStore.DeleteByOwner(r.Context(), taskID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

// SearchTasks handles GET /tasks/search requests.
// Each supplied query parameter contributes one conjunctive criterion;
// absent parameters impose no constraint, so an empty query returns all of
// the user's tasks.
func (h *TaskHandler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	q := r.URL.Query()

	dueAfter, err := parseDueDate(q.Get("dueDate"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	criteria := store.TaskCriteria{
		Status:      domain.TaskStatus(q.Get("status")),
		Priority:    domain.TaskPriority(q.Get("priority")),
		Title:       q.Get("title"),
		Description: q.Get("description"),
		DueAfter:    dueAfter,
	}

	tasks, err := h.taskStore.SearchByOwner(r.Context(), userID, criteria)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// FilterTasks handles GET /tasks/filter requests.
// Same conjunction policy as search, restricted to the two exact-match
// fields.
func (h *TaskHandler) FilterTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	q := r.URL.Query()

	criteria := store.TaskCriteria{
		Status:   domain.TaskStatus(q.Get("status")),
		Priority: domain.TaskPriority(q.Get("priority")),
	}

	tasks, err := h.taskStore.SearchByOwner(r.Context(), userID, criteria)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to filter tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}
