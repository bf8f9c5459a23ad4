// Package api はtaskboardのAPIサーバー実装を提供します。
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/stsysd/taskboard/config"
	"github.com/stsysd/taskboard/service"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router  *http.ServeMux
	handler http.Handler
	svc     *service.Service
	config  config.Config
	log     *slog.Logger
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(svc *service.Service, cfg config.Config, log *slog.Logger) *Server {
	s := &Server{
		router: http.NewServeMux(),
		svc:    svc,
		config: cfg,
		log:    log,
	}
	s.routes()
	s.handler = s.requestLogger(s.timeoutMiddleware(s.router))
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	// Project endpoints
	s.router.HandleFunc("GET /api/projects", s.handleListProjects)
	s.router.HandleFunc("POST /api/projects", s.handleAddProject)
	s.router.HandleFunc("GET /api/projects/{id}", s.handleGetProject)
	s.router.HandleFunc("PUT /api/projects/{id}", s.handleUpdateProject)
	s.router.HandleFunc("DELETE /api/projects/{id}", s.handleDeleteProject)

	// Task endpoints
	s.router.HandleFunc("GET /api/tasks", s.handleListTasks)
	s.router.HandleFunc("POST /api/tasks", s.handleAddTask)
	s.router.HandleFunc("GET /api/tasks/{id}", s.handleGetTask)
	s.router.HandleFunc("PUT /api/tasks/{id}/name", s.handleRenameTask)
	s.router.HandleFunc("PUT /api/tasks/{id}/status", s.handleUpdateTaskStatus)
	s.router.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)

	// User endpoints
	s.router.HandleFunc("GET /api/users", s.handleListUsers)
	s.router.HandleFunc("POST /api/users", s.handleAddUser)
	s.router.HandleFunc("GET /api/users/{id}", s.handleGetUser)
	s.router.HandleFunc("PUT /api/users/{id}", s.handleUpdateUser)
	s.router.HandleFunc("DELETE /api/users/{id}", s.handleDeleteUser)

	// Task assignment endpoints
	s.router.HandleFunc("GET /api/taskAssignments", s.handleListAssignments)
	s.router.HandleFunc("POST /api/taskAssignments", s.handleAssignUserToTask)
	s.router.HandleFunc("GET /api/taskAssignments/{id}", s.handleGetAssignment)
	s.router.HandleFunc("DELETE /api/taskAssignments/{id}", s.handleDeleteAssignment)

	// Comment endpoints
	s.router.HandleFunc("GET /api/comments", s.handleListComments)
	s.router.HandleFunc("POST /api/comments", s.handleAddComment)
	s.router.HandleFunc("GET /api/comments/{id}", s.handleGetComment)
	s.router.HandleFunc("PUT /api/comments/{id}", s.handleUpdateComment)
	s.router.HandleFunc("DELETE /api/comments/{id}", s.handleDeleteComment)

	// Task status endpoints
	s.router.HandleFunc("GET /api/taskStatuses", s.handleListTaskStatuses)
	s.router.HandleFunc("POST /api/taskStatuses", s.handleAddTaskStatus)
	s.router.HandleFunc("GET /api/taskStatuses/{id}", s.handleGetTaskStatus)
	s.router.HandleFunc("PUT /api/taskStatuses/{id}", s.handleUpdateTaskStatusName)
	s.router.HandleFunc("DELETE /api/taskStatuses/{id}", s.handleDeleteTaskStatus)

	// Task status history endpoints
	s.router.HandleFunc("GET /api/taskStatusHistories", s.handleListStatusHistories)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Ping(r.Context()); err != nil {
		s.log.Error("health check failed", "error", err)
		writeJSONError(w, "store is unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, "ok", nil)
}

// Run はサーバーを起動し、ctx がキャンセルされるとグレースフルに停止します。
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.config.HTTP.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.HTTP.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("taskboard http server", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
