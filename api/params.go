package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/stsysd/taskboard/model"
)

// pathID はパスパラメータ {id} を解析します。
func pathID(r *http.Request) (int64, error) {
	return model.ParseID("id", r.PathValue("id"))
}

// queryID は必須のクエリパラメータを解析します。
func queryID(r *http.Request, name string) (int64, error) {
	return model.ParseID(name, r.URL.Query().Get(name))
}

// optionalQueryID は任意のクエリパラメータを解析します。
func optionalQueryID(r *http.Request, name string) (*int64, error) {
	return model.ParseOptionalID(name, r.URL.Query().Get(name))
}

// pageRequest は pageNumber と pageSize を解析します。
func (s *Server) pageRequest(r *http.Request) (model.PageRequest, error) {
	q := r.URL.Query()
	return model.NewPageRequest(q.Get("pageNumber"), q.Get("pageSize"),
		s.config.Pagination.DefaultSize, s.config.Pagination.MaxSize)
}

// decodeBody はリクエスト本文のJSONを v に読み込みます。
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewValidationError("request body is required")
		}
		return model.NewValidationErrorf("invalid request body: %v", err)
	}
	return nil
}
