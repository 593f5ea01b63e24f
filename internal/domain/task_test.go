package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	ownerID := uuid.New()
	due := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	task, err := NewTask(ownerID, "Write report", "quarterly numbers", TaskStatusPending, TaskPriorityHigh, &due)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.OwnerID != ownerID {
		t.Errorf("Expected owner %s, got %s", ownerID, task.OwnerID)
	}

	if task.Priority != TaskPriorityHigh {
		t.Errorf("Expected priority %s, got %s", TaskPriorityHigh, task.Priority)
	}

	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, task.DueDate)
	}

	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}
}

func TestNewTaskDefaultPriority(t *testing.T) {
	task, err := NewTask(uuid.New(), "Walk the dog", "", TaskStatusPending, "", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Priority != TaskPriorityMedium {
		t.Errorf("Expected default priority %s, got %s", TaskPriorityMedium, task.Priority)
	}
}

func TestNewTaskValidation(t *testing.T) {
	ownerID := uuid.New()

	// Title too short
	_, err := NewTask(ownerID, "ab", "", TaskStatusPending, TaskPriorityLow, nil)
	if err != ErrTitleTooShort {
		t.Errorf("Expected error %v, got %v", ErrTitleTooShort, err)
	}

	// Title too long
	_, err = NewTask(ownerID, strings.Repeat("x", 101), "", TaskStatusPending, TaskPriorityLow, nil)
	if err != ErrTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTitleTooLong, err)
	}

	// Unknown status
	_, err = NewTask(ownerID, "Valid title", "", "archived", TaskPriorityLow, nil)
	if err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	// Unknown priority
	_, err = NewTask(ownerID, "Valid title", "", TaskStatusPending, "urgent", nil)
	if err != ErrInvalidPriority {
		t.Errorf("Expected error %v, got %v", ErrInvalidPriority, err)
	}

	// Missing owner
	_, err = NewTask(uuid.Nil, "Valid title", "", TaskStatusPending, TaskPriorityLow, nil)
	if err != ErrEmptyTaskOwnerID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskOwnerID, err)
	}
}

func TestNewTaskTitleLengthIsInCharacters(t *testing.T) {
	ownerID := uuid.New()

	// 40 characters but 120 bytes; must pass the 100-character cap.
	_, err := NewTask(ownerID, strings.Repeat("日", 40), "", TaskStatusPending, TaskPriorityLow, nil)
	if err != nil {
		t.Errorf("Expected no error for 40-character multibyte title, got %v", err)
	}

	// 100 characters exactly is still valid.
	_, err = NewTask(ownerID, strings.Repeat("日", 100), "", TaskStatusPending, TaskPriorityLow, nil)
	if err != nil {
		t.Errorf("Expected no error for 100-character multibyte title, got %v", err)
	}

	// 101 characters is too long regardless of encoding.
	_, err = NewTask(ownerID, strings.Repeat("日", 101), "", TaskStatusPending, TaskPriorityLow, nil)
	if err != ErrTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTitleTooLong, err)
	}
}

func TestTaskApply(t *testing.T) {
	ownerID := uuid.New()
	task, err := NewTask(ownerID, "Original title", "original", TaskStatusPending, TaskPriorityLow, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	createdAt := task.CreatedAt

	due := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if err := task.Apply("Updated title", "updated", TaskStatusCompleted, TaskPriorityHigh, &due); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != "Updated title" {
		t.Errorf("Expected updated title, got %s", task.Title)
	}

	if task.Status != TaskStatusCompleted {
		t.Errorf("Expected status %s, got %s", TaskStatusCompleted, task.Status)
	}

	if task.OwnerID != ownerID {
		t.Error("Apply must not change the owner")
	}

	if !task.CreatedAt.Equal(createdAt) {
		t.Error("Apply must not change the creation timestamp")
	}

	// A failing Apply must leave the task untouched
	before := *task
	if err := task.Apply("ab", "", TaskStatusPending, TaskPriorityLow, nil); err != ErrTitleTooShort {
		t.Fatalf("Expected error %v, got %v", ErrTitleTooShort, err)
	}

	if task.Title != before.Title || task.Status != before.Status {
		t.Error("Failed Apply must not mutate the task")
	}
}

func TestIsValidTaskStatus(t *testing.T) {
	for _, status := range []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted} {
		if !IsValidTaskStatus(status) {
			t.Errorf("Expected %s to be valid", status)
		}
	}

	for _, status := range []TaskStatus{"", "done", "PENDING"} {
		if IsValidTaskStatus(status) {
			t.Errorf("Expected %s to be invalid", status)
		}
	}
}

func TestIsValidTaskPriority(t *testing.T) {
	for _, priority := range []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh} {
		if !IsValidTaskPriority(priority) {
			t.Errorf("Expected %s to be valid", priority)
		}
	}

	for _, priority := range []TaskPriority{"", "urgent", "LOW"} {
		if IsValidTaskPriority(priority) {
			t.Errorf("Expected %s to be invalid", priority)
		}
	}
}
