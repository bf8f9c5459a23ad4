package store

import (
	"context"
	"fmt"

	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

// HistoryFilter はステータス変更履歴の絞り込み条件です。nil の項目は条件に含めません。
type HistoryFilter struct {
	// TaskID は割り当てを経由してタスクで絞り込みます。
	TaskID           *int64
	TaskAssignmentID *int64
}

// HistoryStore はステータス変更履歴の追記と取得を行うインターフェースです。
// 履歴を更新・削除する操作はありません。
type HistoryStore interface {
	// CreateStatusHistory は履歴を1件追記し、採番したIDを設定します。
	CreateStatusHistory(ctx context.Context, history *model.TaskStatusHistory) error
	// ListStatusHistories は割り当ての履歴をID順にすべて取得します。
	ListStatusHistories(ctx context.Context, assignmentID int64) ([]*model.TaskStatusHistory, error)
	// ListStatusHistoryViews は条件に一致する履歴をページ単位で取得します。
	ListStatusHistoryViews(ctx context.Context, filter HistoryFilter, req model.PageRequest) (*model.Page[model.StatusHistoryView], error)
}

// CreateStatusHistory はステータス変更履歴をデータベースに追記します。
func (s *SQLiteStore) CreateStatusHistory(ctx context.Context, history *model.TaskStatusHistory) error {
	id, err := s.queries.CreateTaskStatusHistory(ctx, db.CreateTaskStatusHistoryParams{
		StatusID:         history.StatusID,
		TaskAssignmentID: history.TaskAssignmentID,
		Date:             history.Date.UTC(),
	})
	if err != nil {
		return writeError(err, "create task status history", "status history references a missing status or task assignment")
	}
	history.ID = id
	return nil
}

// ListStatusHistories は割り当ての履歴をすべて取得します。
func (s *SQLiteStore) ListStatusHistories(ctx context.Context, assignmentID int64) ([]*model.TaskStatusHistory, error) {
	rows, err := s.queries.ListTaskStatusHistoriesByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task status histories: %w", err)
	}
	histories := make([]*model.TaskStatusHistory, 0, len(rows))
	for _, h := range rows {
		histories = append(histories, &model.TaskStatusHistory{
			ID:               h.ID,
			StatusID:         h.StatusID,
			TaskAssignmentID: h.TaskAssignmentID,
			Date:             h.Date,
		})
	}
	return histories, nil
}

// ListStatusHistoryViews は条件に一致する履歴をID順にページ単位で取得します。
func (s *SQLiteStore) ListStatusHistoryViews(ctx context.Context, filter HistoryFilter, req model.PageRequest) (*model.Page[model.StatusHistoryView], error) {
	q := historyViewQuery
	if filter.TaskID != nil {
		q.where.add("a.task_id = ?", *filter.TaskID)
	}
	if filter.TaskAssignmentID != nil {
		q.where.add("h.task_assignment_id = ?", *filter.TaskAssignmentID)
	}

	var rows []historyRow
	total, err := s.selectPage(ctx, &rows, q, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list task status histories: %w", err)
	}
	views, err := viewsOf(rows, historyRow.view)
	if err != nil {
		s.log.Error("broken status history relation", "error", err)
		return nil, err
	}
	return model.NewPage(views, total, req), nil
}
