package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/rezkam/taskhub/internal/domain"
)

// SearchTasks runs the two-query search: a grouped page of matching tasks
// with distinct collaborator and comment counts, and a distinct total count
// under the same predicate. Both queries share one predicate builder so
// they cannot drift apart.
func (s *Store) SearchTasks(ctx context.Context, filter domain.SearchFilter, page domain.PageRequest) (*domain.SearchResult, error) {
	where, args := buildSearchPredicates(filter)

	pageQuery := fmt.Sprintf(`
		SELECT t.title,
		       COUNT(DISTINCT c.id)  AS collaborator_count,
		       COUNT(DISTINCT cm.id) AS comment_count
		FROM tasks t
		LEFT JOIN collaborators c ON c.task_id = t.id
		LEFT JOIN users cu ON cu.id = c.user_id
		LEFT JOIN comments cm ON cm.task_id = t.id
		%s
		GROUP BY t.id
		ORDER BY t.created_at DESC
		OFFSET $%d LIMIT $%d`,
		where, len(args)+1, len(args)+2)

	pageArgs := append(append([]any{}, args...), page.Offset, page.Limit)

	rows, err := s.pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	defer rows.Close()

	results := make([]domain.TaskSearchRow, 0, page.Limit)
	for rows.Next() {
		var row domain.TaskSearchRow
		if err := rows.Scan(&row.Title, &row.CollaboratorCount, &row.CommentCount); err != nil {
			return nil, fmt.Errorf("failed to scan search row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search rows: %w", err)
	}

	// Total count under the same predicate, without windowing. The comments
	// join is omitted: comments never constrain matching.
	countQuery := fmt.Sprintf(`
		SELECT COUNT(DISTINCT t.id)
		FROM tasks t
		LEFT JOIN collaborators c ON c.task_id = t.id
		LEFT JOIN users cu ON cu.id = c.user_id
		%s`, where)

	var totalCount sql.Null[int64]
	if err := s.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return &domain.SearchResult{
		Rows:       results,
		TotalCount: totalCount.V, // NULL aggregate reads as zero
		Offset:     page.Offset,
		Limit:      page.Limit,
	}, nil
}

// FindTaskWithOwner retrieves a task and its owning user in one round trip.
func (s *Store) FindTaskWithOwner(ctx context.Context, id int64) (*domain.TaskWithOwner, error) {
	const query = `
		SELECT t.id, t.title, t.contents, t.weather, t.created_at, t.updated_at,
		       u.id, u.email, u.nickname, u.user_role, u.created_at
		FROM tasks t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.id = $1`

	var (
		task           domain.Task
		ownerID        sql.Null[int64]
		ownerEmail     sql.Null[string]
		ownerNickname  sql.Null[string]
		ownerRole      sql.Null[string]
		ownerCreatedAt sql.NullTime
	)

	err := s.pool.QueryRow(ctx, query, id).Scan(
		&task.ID, &task.Title, &task.Contents, &task.Weather, &task.CreatedAt, &task.UpdatedAt,
		&ownerID, &ownerEmail, &ownerNickname, &ownerRole, &ownerCreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: task %d", domain.ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()

	result := &domain.TaskWithOwner{Task: task}
	if ownerID.Valid {
		result.Owner = &domain.User{
			ID:        ownerID.V,
			Email:     ownerEmail.V,
			Nickname:  ownerNickname.V,
			Role:      domain.Role(ownerRole.V),
			CreatedAt: ownerCreatedAt.Time.UTC(),
		}
	}

	return result, nil
}

// buildSearchPredicates composes the WHERE clause from the filter's present
// criteria. Absent criteria contribute nothing, so an empty filter yields
// an empty clause and matches every task.
func buildSearchPredicates(filter domain.SearchFilter) (where string, args []any) {
	var clauses []string

	if filter.Keyword != nil {
		args = append(args, "%"+*filter.Keyword+"%")
		clauses = append(clauses, fmt.Sprintf("t.title ILIKE $%d", len(args)))
	}

	if filter.CollaboratorNickname != nil {
		args = append(args, "%"+*filter.CollaboratorNickname+"%")
		clauses = append(clauses, fmt.Sprintf("cu.nickname ILIKE $%d", len(args)))
	}

	from, to := filter.CreatedBounds()
	if from != nil {
		args = append(args, *from)
		clauses = append(clauses, fmt.Sprintf("t.created_at >= $%d", len(args)))
	}
	if to != nil {
		// Exclusive upper bound: start of the day after CreatedTo.
		args = append(args, *to)
		clauses = append(clauses, fmt.Sprintf("t.created_at < $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
