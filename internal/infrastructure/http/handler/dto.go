package handler

import "time"

// SearchRowResponse is one search hit with its distinct aggregate counts.
type SearchRowResponse struct {
	Title             string `json:"title"`
	CollaboratorCount int64  `json:"collaborator_count"`
	CommentCount      int64  `json:"comment_count"`
}

// SearchResponse is a page of search hits plus the total match count under
// the same filter.
type SearchResponse struct {
	Tasks      []SearchRowResponse `json:"tasks"`
	TotalCount int64               `json:"total_count"`
	Offset     int                 `json:"offset"`
	PageSize   int                 `json:"page_size"`
}

// OwnerResponse identifies the user owning a task.
type OwnerResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// TaskResponse is a full task with its owner, for single-task detail.
type TaskResponse struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Contents  string         `json:"contents"`
	Weather   string         `json:"weather"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Owner     *OwnerResponse `json:"owner,omitempty"`
}
