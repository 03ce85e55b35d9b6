package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/taskhub/internal/domain"
	"github.com/rezkam/taskhub/internal/infrastructure/http/response"
)

// SearchTasks handles GET /tasks/search.
// All criteria are optional query parameters; an empty query returns the
// full listing, newest first, paginated.
func (s *Server) SearchTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSearchFilter(r.URL.Query())
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := s.tasks.Search(r.Context(), filter, parsePageRequest(r.URL.Query()))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, toSearchResponse(result))
}

// GetTask handles GET /tasks/{taskID}, returning the task with its owner.
func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		response.ValidationError(w, "taskID", "must be an integer")
		return
	}

	result, err := s.tasks.GetWithOwner(r.Context(), id)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, toTaskResponse(result))
}

// toSearchResponse converts a search result page to its wire shape.
func toSearchResponse(result *domain.SearchResult) SearchResponse {
	rows := make([]SearchRowResponse, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = SearchRowResponse{
			Title:             row.Title,
			CollaboratorCount: row.CollaboratorCount,
			CommentCount:      row.CommentCount,
		}
	}

	return SearchResponse{
		Tasks:      rows,
		TotalCount: result.TotalCount,
		Offset:     result.Offset,
		PageSize:   result.Limit,
	}
}

// toTaskResponse converts a task with owner to its wire shape.
func toTaskResponse(result *domain.TaskWithOwner) TaskResponse {
	resp := TaskResponse{
		ID:        result.Task.ID,
		Title:     result.Task.Title,
		Contents:  result.Task.Contents,
		Weather:   result.Task.Weather,
		CreatedAt: result.Task.CreatedAt,
		UpdatedAt: result.Task.UpdatedAt,
	}
	if result.Owner != nil {
		resp.Owner = &OwnerResponse{
			ID:       result.Owner.ID,
			Email:    result.Owner.Email,
			Nickname: result.Owner.Nickname,
		}
	}
	return resp
}
