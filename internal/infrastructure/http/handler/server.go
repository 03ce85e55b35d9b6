// Package handler implements the HTTP handlers for the task API.
package handler

import (
	"github.com/rezkam/taskhub/internal/application/task"
)

// Server holds the handler dependencies.
type Server struct {
	tasks *task.Service
}

// NewServer creates a new handler server around the task service.
func NewServer(tasks *task.Service) *Server {
	return &Server{tasks: tasks}
}
