package domain

import "time"

// SearchFilter holds the optional task search criteria. A nil field means
// "no constraint": predicates are composed only from the fields that are
// present, so an empty filter matches every task.
type SearchFilter struct {
	// Keyword is matched case-insensitively as a substring of the task
	// title. Blank strings impose no constraint.
	Keyword *string

	// CollaboratorNickname is matched case-insensitively as a substring of
	// the nickname of any user assigned to the task as a collaborator.
	CollaboratorNickname *string

	// CreatedFrom is the inclusive lower bound date (start of day, UTC).
	CreatedFrom *time.Time

	// CreatedTo is the inclusive upper bound date. The effective bound is
	// exclusive of the following day's start, so tasks created any time on
	// CreatedTo still match.
	CreatedTo *time.Time
}

// PageRequest is an offset/limit pagination window. Results are always
// ordered by task creation time, descending; no caller-selectable sort.
type PageRequest struct {
	Offset int
	Limit  int
}

// TaskSearchRow is one search hit: the task title with distinct counts of
// its collaborator assignments and comments. Duplicate join rows must not
// inflate either count.
type TaskSearchRow struct {
	Title             string
	CollaboratorCount int64
	CommentCount      int64
}

// SearchResult is a page of search rows plus the total number of distinct
// matching tasks under the same filter, independent of the page window.
type SearchResult struct {
	Rows       []TaskSearchRow
	TotalCount int64
	Offset     int
	Limit      int
}

// CreatedBounds resolves the filter's date range into concrete timestamp
// bounds for querying. The upper bound, when present, is the start of the
// day after CreatedTo and must be compared exclusively.
func (f SearchFilter) CreatedBounds() (from, to *time.Time) {
	if f.CreatedFrom != nil {
		t := startOfDayUTC(*f.CreatedFrom)
		from = &t
	}
	if f.CreatedTo != nil {
		t := startOfDayUTC(*f.CreatedTo).AddDate(0, 0, 1)
		to = &t
	}
	return from, to
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
