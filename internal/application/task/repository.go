package task

import (
	"context"

	"github.com/rezkam/taskhub/internal/domain"
)

// Repository defines the read-side storage operations for task search.
type Repository interface {
	// SearchTasks returns one page of tasks matching the filter, each row
	// carrying distinct collaborator and comment counts, ordered by task
	// creation time descending, plus the total number of distinct matches
	// under the same filter.
	SearchTasks(ctx context.Context, filter domain.SearchFilter, page domain.PageRequest) (*domain.SearchResult, error)

	// FindTaskWithOwner retrieves a task together with its owning user in
	// a single round trip.
	// Returns domain.ErrTaskNotFound if the task doesn't exist.
	FindTaskWithOwner(ctx context.Context, id int64) (*domain.TaskWithOwner, error)
}
