package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/rezkam/taskhub/internal/domain"
)

// Default configuration values.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Config holds configuration for the Service.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service provides the task search operations.
// It normalizes filter and pagination input and delegates querying to the
// Repository; it performs no writes and holds no per-request state.
type Service struct {
	repo   Repository
	config Config
}

// NewService creates a new task service.
// Applies application defaults for zero or invalid config values.
func NewService(repo Repository, config Config) *Service {
	if config.DefaultPageSize <= 0 {
		config.DefaultPageSize = DefaultPageSize
	}
	if config.MaxPageSize <= 0 {
		config.MaxPageSize = MaxPageSize
	}

	return &Service{
		repo:   repo,
		config: config,
	}
}

// Search returns a page of tasks matching the filter with per-task
// collaborator and comment counts. Blank string criteria are dropped so
// they impose no constraint, matching the absent-field semantics.
func (s *Service) Search(ctx context.Context, filter domain.SearchFilter, page domain.PageRequest) (*domain.SearchResult, error) {
	normalizeFilter(&filter)

	// Reject negative offsets to prevent database errors.
	if page.Offset < 0 {
		page.Offset = 0
	}

	// Apply default page size if not specified or invalid.
	if page.Limit <= 0 {
		page.Limit = s.config.DefaultPageSize
	}
	// Enforce maximum page size.
	page.Limit = min(page.Limit, s.config.MaxPageSize)

	result, err := s.repo.SearchTasks(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}

	return result, nil
}

// GetWithOwner retrieves a single task together with its owning user.
// Returns domain.ErrTaskNotFound if the task doesn't exist.
func (s *Service) GetWithOwner(ctx context.Context, id int64) (*domain.TaskWithOwner, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: task id %d", domain.ErrInvalidID, id)
	}

	result, err := s.repo.FindTaskWithOwner(ctx, id)
	if err != nil {
		return nil, err // Repository returns domain errors.
	}

	return result, nil
}

// normalizeFilter drops blank string criteria so the repository only sees
// constraints that should actually filter.
func normalizeFilter(filter *domain.SearchFilter) {
	if filter.Keyword != nil && strings.TrimSpace(*filter.Keyword) == "" {
		filter.Keyword = nil
	}
	if filter.CollaboratorNickname != nil && strings.TrimSpace(*filter.CollaboratorNickname) == "" {
		filter.CollaboratorNickname = nil
	}
}
