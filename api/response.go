package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stsysd/taskboard/model"
)

// Response はすべてのJSONレスポンスに共通するエンベロープです。
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// writeJSON は成功レスポンスを返却します。
func writeJSON(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Response{Success: true, Message: message, Data: data})
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Response{Success: false, Message: message})
}

// writeNoContent は本文なしの 204 を返却します。
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError はサービス層のエラーをステータスコードに対応付けて返却します。
// サーバー側の失敗だけをログに記録します。
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSONError(w, validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, model.ErrNotFound):
		writeJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrIntegrity):
		s.log.Error("data integrity violation", "request_id", RequestID(r.Context()), "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSONError(w, "internal error", http.StatusInternalServerError)
	default:
		s.log.Error("request failed", "request_id", RequestID(r.Context()), "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSONError(w, "internal error", http.StatusInternalServerError)
	}
}
