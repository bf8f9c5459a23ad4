package api

import (
	"net/http"

	"github.com/stsysd/taskboard/service"
)

type projectRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (p projectRequest) input() service.ProjectInput {
	return service.ProjectInput{ID: p.ID, Name: p.Name, Description: p.Description}
}

// handleListProjects はプロジェクト一覧取得エンドポイントのハンドラーです。
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svc.ListProjects(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", projects)
}

// handleGetProject はプロジェクト取得エンドポイントのハンドラーです。
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	project, err := s.svc.GetProject(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", project)
}

// handleAddProject はプロジェクト作成エンドポイントのハンドラーです。
func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	project, err := s.svc.AddProject(r.Context(), req.input())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Project created successfully", project)
}

// handleUpdateProject はプロジェクト更新エンドポイントのハンドラーです。
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.UpdateProject(r.Context(), id, req.input()); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeNoContent(w)
}

// handleDeleteProject はプロジェクト削除エンドポイントのハンドラーです。
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.DeleteProject(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "Project deleted successfully", nil)
}
