package api

import (
	"net/http"

	"github.com/stsysd/taskboard/service"
)

type addTaskRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ProjectID       int64  `json:"projectId"`
	StatusID        *int64 `json:"statusId"`
	CreatedByUserID *int64 `json:"createdByUserId"`
}

// handleListTasks はタスク一覧取得エンドポイントのハンドラーです。
// projectId を指定した場合はそのプロジェクトのタスクだけを返します。
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	projectID, err := optionalQueryID(r, "projectId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	req, err := s.pageRequest(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	page, err := s.svc.ListTasksByProject(r.Context(), projectID, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", page)
}

// handleGetTask はタスク取得エンドポイントのハンドラーです。
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	task, err := s.svc.GetTask(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", task)
}

// handleAddTask はタスク作成エンドポイントのハンドラーです。
func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	task, err := s.svc.AddTask(r.Context(), service.TaskInput{
		Name:            req.Name,
		Description:     req.Description,
		ProjectID:       req.ProjectID,
		StatusID:        req.StatusID,
		CreatedByUserID: req.CreatedByUserID,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Task created successfully", task)
}

// handleRenameTask はタスク名変更エンドポイントのハンドラーです。本文はJSON文字列です。
func (s *Server) handleRenameTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	var name string
	if err := decodeBody(r, &name); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.RenameTask(r.Context(), id, name); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeNoContent(w)
}

// handleUpdateTaskStatus はタスクのステータス変更エンドポイントのハンドラーです。
func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	statusID, err := queryID(r, "statusId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	userID, err := queryID(r, "userId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.UpdateTaskStatus(r.Context(), id, statusID, userID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeNoContent(w)
}

// handleDeleteTask はタスク削除エンドポイントのハンドラーです。
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.DeleteTask(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "Task deleted successfully", nil)
}
