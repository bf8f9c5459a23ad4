package api

import (
	"net/http"

	"github.com/stsysd/taskboard/service"
)

type taskStatusRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// handleListTaskStatuses はステータス一覧取得エンドポイントのハンドラーです。
func (s *Server) handleListTaskStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.svc.ListTaskStatuses(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", statuses)
}

// handleGetTaskStatus はステータス取得エンドポイントのハンドラーです。
func (s *Server) handleGetTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	status, err := s.svc.GetTaskStatus(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", status)
}

// handleAddTaskStatus はステータス作成エンドポイントのハンドラーです。
func (s *Server) handleAddTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req taskStatusRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	status, err := s.svc.AddTaskStatus(r.Context(), service.TaskStatusInput{Name: req.Name})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Task status created successfully", status)
}

// handleUpdateTaskStatusName はステータス名変更エンドポイントのハンドラーです。
func (s *Server) handleUpdateTaskStatusName(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	var req taskStatusRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.UpdateTaskStatusName(r.Context(), id, service.TaskStatusInput{ID: req.ID, Name: req.Name}); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeNoContent(w)
}

// handleDeleteTaskStatus はステータス削除エンドポイントのハンドラーです。
func (s *Server) handleDeleteTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.DeleteTaskStatus(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "Task status deleted successfully", nil)
}

// handleListStatusHistories はステータス変更履歴一覧取得エンドポイントのハンドラーです。
// taskId と taskAssignmentId で絞り込めます。
func (s *Server) handleListStatusHistories(w http.ResponseWriter, r *http.Request) {
	taskID, err := optionalQueryID(r, "taskId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	assignmentID, err := optionalQueryID(r, "taskAssignmentId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	req, err := s.pageRequest(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	page, err := s.svc.ListStatusHistories(r.Context(), taskID, assignmentID, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", page)
}
