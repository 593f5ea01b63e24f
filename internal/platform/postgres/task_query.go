package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault-api/internal/store"
)

// taskColumns is the column list shared by every task query.
const taskColumns = "id, owner_id, title, description, status, priority, due_date, created_at, updated_at"

// criteriaClauses builds the WHERE clause and argument list for an
// owner-scoped task query from the given criteria. It is a pure function of
// its inputs: each populated criteria field contributes exactly one
// conjunctive clause, absent fields contribute nothing, and the owner
// equality clause is always present. Clause assembly is order-independent
// because every clause is AND-ed.
//
// The returned clause starts with "WHERE" and uses positional placeholders
// beginning at $1.
func criteriaClauses(ownerID uuid.UUID, c store.TaskCriteria) (string, []any) {
	conditions := []string{"owner_id = $1"}
	args := []any{ownerID}

	next := func() int { return len(args) + 1 }

	if c.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", next()))
		args = append(args, string(c.Status))
	}

	if c.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", next()))
		args = append(args, string(c.Priority))
	}

	if c.Title != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", next()))
		args = append(args, containsPattern(c.Title))
	}

	if c.Description != "" {
		conditions = append(conditions, fmt.Sprintf("description ILIKE $%d", next()))
		args = append(args, containsPattern(c.Description))
	}

	if c.DueAfter != nil {
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d", next()))
		args = append(args, *c.DueAfter)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// containsPattern converts a raw substring into a LIKE pattern matching any
// occurrence of it. LIKE metacharacters in the input are escaped so they
// match literally.
func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + escaped + "%"
}
