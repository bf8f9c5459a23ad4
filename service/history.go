package service

import (
	"context"

	"github.com/stsysd/taskboard/model"
	"github.com/stsysd/taskboard/store"
)

// ListStatusHistories はステータス変更履歴をページ単位で返します。
// taskID と assignmentID は任意の絞り込み条件です。
func (s *Service) ListStatusHistories(ctx context.Context, taskID, assignmentID *int64, req model.PageRequest) (*model.Page[model.StatusHistoryView], error) {
	return s.store.ListStatusHistoryViews(ctx, store.HistoryFilter{TaskID: taskID, TaskAssignmentID: assignmentID}, req)
}
