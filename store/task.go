package store

import (
	"context"
	"fmt"

	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

// TaskFilter はタスク一覧の絞り込み条件です。nil の項目は条件に含めません。
type TaskFilter struct {
	ProjectID *int64
}

// TaskStore はタスクの保存と取得を行うインターフェースです。
type TaskStore interface {
	// CreateTask は新しいタスクを作成し、採番したIDを設定します。
	CreateTask(ctx context.Context, task *model.Task) error
	// GetTask は指定されたIDのタスクを取得します。
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	// TaskExists は指定されたIDのタスクが存在するかを返します。
	TaskExists(ctx context.Context, id int64) (bool, error)
	// UpdateTask はタスクの名前、説明、ステータスを更新します。
	UpdateTask(ctx context.Context, task *model.Task) error
	// DeleteTask はタスクを削除し、削除した行数を返します。
	DeleteTask(ctx context.Context, id int64) (int64, error)
	// GetTaskView は指定されたIDのタスクを読み取り用レコードとして取得します。
	GetTaskView(ctx context.Context, id int64) (*model.TaskView, error)
	// ListTaskViews は条件に一致するタスクをページ単位で取得します。
	ListTaskViews(ctx context.Context, filter TaskFilter, req model.PageRequest) (*model.Page[model.TaskView], error)
}

func toTask(t db.Task) *model.Task {
	return &model.Task{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		ProjectID:       t.ProjectID,
		StatusID:        int64Ptr(t.StatusID),
		CreatedByUserID: int64Ptr(t.CreatedByUserID),
		CreatedAt:       t.CreatedAt,
	}
}

// CreateTask は新しいタスクをデータベースに保存します。
func (s *SQLiteStore) CreateTask(ctx context.Context, task *model.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	id, err := s.queries.CreateTask(ctx, db.CreateTaskParams{
		Name:            task.Name,
		Description:     task.Description,
		ProjectID:       task.ProjectID,
		StatusID:        nullInt64(task.StatusID),
		CreatedByUserID: nullInt64(task.CreatedByUserID),
		CreatedAt:       task.CreatedAt.UTC(),
	})
	if err != nil {
		return writeError(err, "create task", "task references a missing project, status or user")
	}
	task.ID = id
	return nil
}

// GetTask は指定されたIDのタスクを取得します。
func (s *SQLiteStore) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	t, err := s.queries.GetTask(ctx, id)
	if err != nil {
		return nil, readError(err, "task", id)
	}
	return toTask(t), nil
}

// TaskExists は指定されたIDのタスクが存在するかを返します。
func (s *SQLiteStore) TaskExists(ctx context.Context, id int64) (bool, error) {
	n, err := s.queries.TaskExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check task: %w", err)
	}
	return n != 0, nil
}

// UpdateTask はタスクを更新します。プロジェクトと作成者は変更しません。
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *model.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	n, err := affected(s.queries.UpdateTask(ctx, db.UpdateTaskParams{
		Name:        task.Name,
		Description: task.Description,
		StatusID:    nullInt64(task.StatusID),
		ID:          task.ID,
	}))
	if err != nil {
		return writeError(err, "update task", "task references a missing status")
	}
	if n == 0 {
		return model.NewNotFoundError("task", task.ID)
	}
	return nil
}

// DeleteTask はタスクを削除します。割り当て以下の関連データも削除されます。
func (s *SQLiteStore) DeleteTask(ctx context.Context, id int64) (int64, error) {
	n, err := affected(s.queries.DeleteTask(ctx, id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}
	return n, nil
}

// GetTaskView は指定されたIDのタスクを読み取り用レコードとして取得します。
func (s *SQLiteStore) GetTaskView(ctx context.Context, id int64) (*model.TaskView, error) {
	q := taskViewQuery
	q.where.add("t.id = ?", id)

	var row taskRow
	if err := s.selectOne(ctx, &row, q); err != nil {
		return nil, readError(err, "task", id)
	}
	v, err := row.view()
	if err != nil {
		s.log.Error("broken task relation", "task_id", id, "error", err)
		return nil, err
	}
	return v, nil
}

// ListTaskViews は条件に一致するタスクをID順にページ単位で取得します。
func (s *SQLiteStore) ListTaskViews(ctx context.Context, filter TaskFilter, req model.PageRequest) (*model.Page[model.TaskView], error) {
	q := taskViewQuery
	if filter.ProjectID != nil {
		q.where.add("t.project_id = ?", *filter.ProjectID)
	}

	var rows []taskRow
	total, err := s.selectPage(ctx, &rows, q, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	views, err := viewsOf(rows, taskRow.view)
	if err != nil {
		s.log.Error("broken task relation", "error", err)
		return nil, err
	}
	return model.NewPage(views, total, req), nil
}
