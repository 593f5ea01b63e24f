package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/service/auth"
	"github.com/taskvault/taskvault-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"bare not found", store.ErrNotFound, http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"domain validation", domain.ErrTitleTooShort, http.StatusBadRequest},
		{
			"wrapped validation",
			domain.NewValidationError("dueDate", "must be an ISO date", domain.ErrValidation),
			http.StatusBadRequest,
		},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
		{
			"wrapped not found",
			fmt.Errorf("loading task: %w", store.ErrTaskNotFound),
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"unauthorized", domain.ErrUnauthorized, "You Are not Authorized"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"username exists", store.ErrUsernameExists, "Username already taken"},
		{"invalid entity", store.ErrInvalidEntity, "Invalid entity data"},
		{
			"unknown error hides detail",
			errors.New("pq: connection refused host=10.0.0.5"),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		errMsg   string
		expected string
	}{
		{
			name:     "required tag",
			errMsg:   "Key: 'LoginRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag",
			expected: "Invalid Username: required field",
		},
		{
			name:     "min tag",
			errMsg:   "Key: 'RegisterRequest.Password' Error:Field validation for 'Password' failed on the 'min' tag",
			expected: "Invalid Password: too short",
		},
		{
			name:     "oneof tag",
			errMsg:   "Key: 'TaskRequest.Status' Error:Field validation for 'Status' failed on the 'oneof' tag",
			expected: "Invalid Status: invalid value",
		},
		{
			name:     "unrecognized format",
			errMsg:   "something else entirely",
			expected: "Validation error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SanitizeValidationError(errors.New(tt.errMsg)))
		})
	}
}
