package store

import (
	"context"
	"fmt"

	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

// TaskStatusStore はタスクステータスの保存と取得を行うインターフェースです。
type TaskStatusStore interface {
	// CreateTaskStatus は新しいステータスを作成し、採番したIDを設定します。
	CreateTaskStatus(ctx context.Context, status *model.TaskStatus) error
	// GetTaskStatus は指定されたIDのステータスを取得します。
	GetTaskStatus(ctx context.Context, id int64) (*model.TaskStatus, error)
	// ListTaskStatuses はすべてのステータスをID順に取得します。
	ListTaskStatuses(ctx context.Context) ([]*model.TaskStatus, error)
	// UpdateTaskStatusName はステータスの名前を更新します。
	UpdateTaskStatusName(ctx context.Context, status *model.TaskStatus) error
	// DeleteTaskStatus はステータスを削除し、削除した行数を返します。
	DeleteTaskStatus(ctx context.Context, id int64) (int64, error)
}

// CreateTaskStatus は新しいステータスをデータベースに保存します。
func (s *SQLiteStore) CreateTaskStatus(ctx context.Context, status *model.TaskStatus) error {
	id, err := s.queries.CreateTaskStatus(ctx, status.Name)
	if err != nil {
		return fmt.Errorf("failed to create task status: %w", err)
	}
	status.ID = id
	return nil
}

// GetTaskStatus は指定されたIDのステータスを取得します。
func (s *SQLiteStore) GetTaskStatus(ctx context.Context, id int64) (*model.TaskStatus, error) {
	st, err := s.queries.GetTaskStatus(ctx, id)
	if err != nil {
		return nil, readError(err, "task status", id)
	}
	return &model.TaskStatus{ID: st.ID, Name: st.Name}, nil
}

// ListTaskStatuses はすべてのステータスを取得します。
func (s *SQLiteStore) ListTaskStatuses(ctx context.Context) ([]*model.TaskStatus, error) {
	rows, err := s.queries.ListTaskStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task statuses: %w", err)
	}
	statuses := make([]*model.TaskStatus, 0, len(rows))
	for _, st := range rows {
		statuses = append(statuses, &model.TaskStatus{ID: st.ID, Name: st.Name})
	}
	return statuses, nil
}

// UpdateTaskStatusName はステータスの名前を更新します。
func (s *SQLiteStore) UpdateTaskStatusName(ctx context.Context, status *model.TaskStatus) error {
	n, err := affected(s.queries.RenameTaskStatus(ctx, db.RenameTaskStatusParams{
		Name: status.Name,
		ID:   status.ID,
	}))
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if n == 0 {
		return model.NewNotFoundError("task status", status.ID)
	}
	return nil
}

// DeleteTaskStatus はステータスを削除します。このステータスを持つタスクは
// ステータスなしになり、このステータスへの変更履歴は削除されます。
func (s *SQLiteStore) DeleteTaskStatus(ctx context.Context, id int64) (int64, error) {
	n, err := affected(s.queries.DeleteTaskStatus(ctx, id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete task status: %w", err)
	}
	return n, nil
}
