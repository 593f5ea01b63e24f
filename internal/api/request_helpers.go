package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// Pagination defaults for the task listing endpoint.
const (
	defaultPage     = 1
	defaultPageSize = 10
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The user ID is placed in the context by the
// authentication middleware; a missing or zero value means the request
// never passed authentication.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathTaskID extracts the task ID from the URL path. A malformed ID can
// never name an existing task, so it surfaces as not found rather than as a
// validation failure, indistinguishable from a missing task.
func getPathTaskID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		return uuid.Nil, store.ErrTaskNotFound
	}
	return id, nil
}

// requireUserAndTaskID extracts both the authenticated user ID from the
// context and the task ID from the URL path. It writes an error response and
// returns false if either extraction fails.
func requireUserAndTaskID(
	w http.ResponseWriter,
	r *http.Request,
) (userID, taskID uuid.UUID, ok bool) {
	userID, ok = getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return uuid.Nil, uuid.Nil, false
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, taskID, true
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// dueDateLayouts are the accepted formats for due dates, tried in order.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDueDate parses an ISO due date string. An empty string yields nil
// (no due date). An unparseable string yields a ValidationError rather than
// a silently never-matching bound.
func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, domain.NewValidationError("dueDate", "must be an ISO date", domain.ErrValidation)
}
