package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

func TestCriteriaClausesEmpty(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	where, args := criteriaClauses(ownerID, store.TaskCriteria{})

	// An empty criteria must reduce to the bare owner scope, not an
	// accidental always-true or always-false filter.
	assert.Equal(t, "WHERE owner_id = $1", where)
	assert.Equal(t, []any{ownerID}, args)
}

func TestCriteriaClausesSingleField(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	tests := []struct {
		name      string
		criteria  store.TaskCriteria
		wantWhere string
		wantArg   any
	}{
		{
			name:      "status equality",
			criteria:  store.TaskCriteria{Status: domain.TaskStatusPending},
			wantWhere: "WHERE owner_id = $1 AND status = $2",
			wantArg:   "pending",
		},
		{
			name:      "priority equality",
			criteria:  store.TaskCriteria{Priority: domain.TaskPriorityHigh},
			wantWhere: "WHERE owner_id = $1 AND priority = $2",
			wantArg:   "high",
		},
		{
			name:      "title contains",
			criteria:  store.TaskCriteria{Title: "Task"},
			wantWhere: "WHERE owner_id = $1 AND title ILIKE $2",
			wantArg:   "%Task%",
		},
		{
			name:      "description contains",
			criteria:  store.TaskCriteria{Description: "report"},
			wantWhere: "WHERE owner_id = $1 AND description ILIKE $2",
			wantArg:   "%report%",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			where, args := criteriaClauses(ownerID, tt.criteria)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, []any{ownerID, tt.wantArg}, args)
		})
	}
}

func TestCriteriaClausesDueAfter(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	due := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	where, args := criteriaClauses(ownerID, store.TaskCriteria{DueAfter: &due})

	assert.Equal(t, "WHERE owner_id = $1 AND due_date >= $2", where)
	assert.Equal(t, []any{ownerID, due}, args)
}

func TestCriteriaClausesAllFields(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	due := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	where, args := criteriaClauses(ownerID, store.TaskCriteria{
		Status:      domain.TaskStatusInProgress,
		Priority:    domain.TaskPriorityLow,
		Title:       "New",
		Description: "draft",
		DueAfter:    &due,
	})

	assert.Equal(t,
		"WHERE owner_id = $1 AND status = $2 AND priority = $3 AND title ILIKE $4 AND description ILIKE $5 AND due_date >= $6",
		where)
	assert.Equal(t, []any{ownerID, "in-progress", "low", "%New%", "%draft%", due}, args)
}

func TestCriteriaClausesPlaceholdersStayAligned(t *testing.T) {
	t.Parallel()

	// Skipping optional fields must renumber placeholders, never leave gaps.
	ownerID := uuid.New()

	where, args := criteriaClauses(ownerID, store.TaskCriteria{
		Priority:    domain.TaskPriorityMedium,
		Description: "notes",
	})

	assert.Equal(t, "WHERE owner_id = $1 AND priority = $2 AND description ILIKE $3", where)
	assert.Len(t, args, 3)
}

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%milk%", containsPattern("milk"))

	// LIKE metacharacters must match literally
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%due\_date%`, containsPattern("due_date"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
