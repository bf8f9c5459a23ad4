package api

import (
	"net/http"

	"github.com/stsysd/taskboard/service"
)

type userRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (u userRequest) input() service.UserInput {
	return service.UserInput{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// handleListUsers はユーザー一覧取得エンドポイントのハンドラーです。
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	req, err := s.pageRequest(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	page, err := s.svc.ListUsers(r.Context(), r.URL.Query().Get("search"), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", page)
}

// handleGetUser はユーザー取得エンドポイントのハンドラーです。
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	user, err := s.svc.GetUser(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "", user)
}

// handleAddUser はユーザー作成エンドポイントのハンドラーです。
func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	user, err := s.svc.AddUser(r.Context(), req.input())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "User created successfully", user)
}

// handleUpdateUser はユーザー更新エンドポイントのハンドラーです。
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	user, err := s.svc.UpdateUser(r.Context(), id, req.input())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "User updated successfully", user)
}

// handleDeleteUser はユーザー削除エンドポイントのハンドラーです。
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.svc.DeleteUser(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "User deleted successfully", nil)
}
