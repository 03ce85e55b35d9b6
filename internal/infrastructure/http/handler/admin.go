package handler

import (
	"net/http"

	"github.com/rezkam/taskhub/internal/application/auth"
	"github.com/rezkam/taskhub/internal/infrastructure/http/response"
)

// PrincipalResponse echoes the authenticated identity of the caller.
type PrincipalResponse struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Nickname string `json:"nickname"`
}

// Whoami handles GET /admin/whoami. It reads the principal the auth
// middleware attached to the request context; the route's admin rule
// guarantees it is present and carries the ADMIN role.
func (s *Server) Whoami(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFromContext(r.Context())
	if principal == nil {
		response.Unauthorized(w, "no authenticated principal")
		return
	}

	response.OK(w, PrincipalResponse{
		UserID:   principal.UserID,
		Email:    principal.Email,
		Role:     string(principal.Role),
		Nickname: principal.Nickname,
	})
}
