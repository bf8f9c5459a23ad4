package api

import (
	"net/http"
)

type assignRequest struct {
	UserID int64 `json:"userId"`
	TaskID int64 `json:"taskId"`
}

// handleListAssignments は割り当て一覧取得エンドポイントのハンドラーです。
// taskId と userId で絞り込めます。
func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	taskID, err := optionalQueryID(r, "taskId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	userID, err := optionalQueryID(r, "userId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	req, err := s.pageRequest(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	page, err := s.svc.ListAssignments(r.Context(), taskID, userID, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", page)
}

// handleGetAssignment は割り当て取得エンドポイントのハンドラーです。
func (s *Server) handleGetAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	assignment, err := s.svc.GetAssignment(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", assignment)
}

// handleAssignUserToTask は割り当て作成エンドポイントのハンドラーです。
func (s *Server) handleAssignUserToTask(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	assignment, err := s.svc.AssignUserToTask(r.Context(), req.UserID, req.TaskID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "User assigned to task successfully", assignment)
}

// handleDeleteAssignment は割り当て削除エンドポイントのハンドラーです。
func (s *Server) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.DeleteAssignment(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "Task assignment deleted successfully", nil)
}
