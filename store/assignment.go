package store

import (
	"context"
	"fmt"

	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

// AssignmentFilter は割り当て一覧の絞り込み条件です。nil の項目は条件に含めません。
type AssignmentFilter struct {
	TaskID *int64
	UserID *int64
}

// AssignmentStore はタスク割り当ての保存と取得を行うインターフェースです。
type AssignmentStore interface {
	// CreateAssignment は新しい割り当てを作成し、採番したIDを設定します。
	CreateAssignment(ctx context.Context, assignment *model.TaskAssignment) error
	// GetAssignment は指定されたIDの割り当てを取得します。
	GetAssignment(ctx context.Context, id int64) (*model.TaskAssignment, error)
	// AssignmentExists は指定されたIDの割り当てが存在するかを返します。
	AssignmentExists(ctx context.Context, id int64) (bool, error)
	// FindAssignments はタスクとユーザーの組に一致する割り当てをID順に取得します。
	FindAssignments(ctx context.Context, taskID, userID int64) ([]*model.TaskAssignment, error)
	// DeleteAssignment は割り当てを削除し、削除した行数を返します。
	DeleteAssignment(ctx context.Context, id int64) (int64, error)
	// GetAssignmentView は指定されたIDの割り当てを読み取り用レコードとして取得します。
	GetAssignmentView(ctx context.Context, id int64) (*model.AssignmentView, error)
	// ListAssignmentViews は条件に一致する割り当てをページ単位で取得します。
	ListAssignmentViews(ctx context.Context, filter AssignmentFilter, req model.PageRequest) (*model.Page[model.AssignmentView], error)
}

func toAssignment(a db.TaskAssignment) *model.TaskAssignment {
	return &model.TaskAssignment{
		ID:     a.ID,
		UserID: a.UserID,
		TaskID: a.TaskID,
		Date:   a.Date,
	}
}

// CreateAssignment は新しい割り当てをデータベースに保存します。
func (s *SQLiteStore) CreateAssignment(ctx context.Context, assignment *model.TaskAssignment) error {
	id, err := s.queries.CreateTaskAssignment(ctx, db.CreateTaskAssignmentParams{
		UserID: assignment.UserID,
		TaskID: assignment.TaskID,
		Date:   assignment.Date.UTC(),
	})
	if err != nil {
		return writeError(err, "create task assignment", "task assignment references a missing user or task")
	}
	assignment.ID = id
	return nil
}

// GetAssignment は指定されたIDの割り当てを取得します。
func (s *SQLiteStore) GetAssignment(ctx context.Context, id int64) (*model.TaskAssignment, error) {
	a, err := s.queries.GetTaskAssignment(ctx, id)
	if err != nil {
		return nil, readError(err, "task assignment", id)
	}
	return toAssignment(a), nil
}

// AssignmentExists は指定されたIDの割り当てが存在するかを返します。
func (s *SQLiteStore) AssignmentExists(ctx context.Context, id int64) (bool, error) {
	n, err := s.queries.TaskAssignmentExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check task assignment: %w", err)
	}
	return n != 0, nil
}

// FindAssignments はタスクとユーザーの組に一致する割り当てを取得します。
func (s *SQLiteStore) FindAssignments(ctx context.Context, taskID, userID int64) ([]*model.TaskAssignment, error) {
	rows, err := s.queries.FindTaskAssignments(ctx, db.FindTaskAssignmentsParams{
		TaskID: taskID,
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find task assignments: %w", err)
	}
	assignments := make([]*model.TaskAssignment, 0, len(rows))
	for _, a := range rows {
		assignments = append(assignments, toAssignment(a))
	}
	return assignments, nil
}

// DeleteAssignment は割り当てを削除します。コメントと変更履歴も削除されます。
func (s *SQLiteStore) DeleteAssignment(ctx context.Context, id int64) (int64, error) {
	n, err := affected(s.queries.DeleteTaskAssignment(ctx, id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete task assignment: %w", err)
	}
	return n, nil
}

// GetAssignmentView は指定されたIDの割り当てを読み取り用レコードとして取得します。
func (s *SQLiteStore) GetAssignmentView(ctx context.Context, id int64) (*model.AssignmentView, error) {
	q := assignmentViewQuery
	q.where.add("a.id = ?", id)

	var row assignmentRow
	if err := s.selectOne(ctx, &row, q); err != nil {
		return nil, readError(err, "task assignment", id)
	}
	v, err := row.view()
	if err != nil {
		s.log.Error("broken task assignment relation", "task_assignment_id", id, "error", err)
		return nil, err
	}
	return v, nil
}

// ListAssignmentViews は条件に一致する割り当てをID順にページ単位で取得します。
func (s *SQLiteStore) ListAssignmentViews(ctx context.Context, filter AssignmentFilter, req model.PageRequest) (*model.Page[model.AssignmentView], error) {
	q := assignmentViewQuery
	if filter.TaskID != nil {
		q.where.add("a.task_id = ?", *filter.TaskID)
	}
	if filter.UserID != nil {
		q.where.add("a.user_id = ?", *filter.UserID)
	}

	var rows []assignmentRow
	total, err := s.selectPage(ctx, &rows, q, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list task assignments: %w", err)
	}
	views, err := viewsOf(rows, assignmentRow.view)
	if err != nil {
		s.log.Error("broken task assignment relation", "error", err)
		return nil, err
	}
	return model.NewPage(views, total, req), nil
}
