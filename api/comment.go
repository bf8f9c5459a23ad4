package api

import (
	"net/http"

	"github.com/stsysd/taskboard/service"
)

type commentRequest struct {
	Message          string `json:"message"`
	TaskAssignmentID int64  `json:"taskAssignmentId"`
}

// handleListComments はコメント一覧取得エンドポイントのハンドラーです。
// taskAssignmentId と taskId で絞り込めます。
func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := optionalQueryID(r, "taskAssignmentId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	taskID, err := optionalQueryID(r, "taskId")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	req, err := s.pageRequest(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	page, err := s.svc.ListComments(r.Context(), assignmentID, taskID, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", page)
}

// handleGetComment はコメント取得エンドポイントのハンドラーです。
func (s *Server) handleGetComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	comment, err := s.svc.GetComment(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", comment)
}

// handleAddComment はコメント作成エンドポイントのハンドラーです。
func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	comment, err := s.svc.AddComment(r.Context(), service.CommentInput{
		Message:          req.Message,
		TaskAssignmentID: req.TaskAssignmentID,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Comment created successfully", comment)
}

// handleUpdateComment はコメント更新エンドポイントのハンドラーです。
func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.UpdateComment(r.Context(), id, service.CommentInput{Message: req.Message}); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeNoContent(w)
}

// handleDeleteComment はコメント削除エンドポイントのハンドラーです。
func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.DeleteComment(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "Comment deleted successfully", nil)
}
