package domain

import (
	"fmt"
	"time"
)

// Role is the access level carried in a token's userRole claim.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole validates a role name from a token claim.
// Matching is case-sensitive: tokens are minted with the canonical names.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Principal is the authenticated identity derived from a decoded token.
// It is request-scoped: constructed by the auth guard at the start of a
// request, carried via context, and never persisted or shared.
type Principal struct {
	UserID   int64
	Email    string
	Role     Role
	Nickname string
}

// IsAdmin reports whether the principal carries the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// User is the owner or collaborator of a task.
type User struct {
	ID        int64
	Email     string
	Nickname  string
	Role      Role
	CreatedAt time.Time
}

// Task is a tracked work item. Collaborators and comments are related
// entities read through joins; the search core never mutates them.
type Task struct {
	ID        int64
	Title     string
	Contents  string
	Weather   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskWithOwner is a task eagerly joined with its owning user.
// Owner is nil when the task has no owner on record.
type TaskWithOwner struct {
	Task  Task
	Owner *User
}
