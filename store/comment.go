package store

import (
	"context"
	"fmt"

	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

// CommentFilter はコメント一覧の絞り込み条件です。nil の項目は条件に含めません。
type CommentFilter struct {
	TaskAssignmentID *int64
	// TaskID は割り当てを経由してタスクで絞り込みます。
	TaskID *int64
}

// CommentStore はコメントの保存と取得を行うインターフェースです。
type CommentStore interface {
	// CreateComment は新しいコメントを作成し、採番したIDを設定します。
	CreateComment(ctx context.Context, comment *model.Comment) error
	// GetComment は指定されたIDのコメントを取得します。
	GetComment(ctx context.Context, id int64) (*model.Comment, error)
	// UpdateComment はコメントのメッセージを更新します。
	UpdateComment(ctx context.Context, comment *model.Comment) error
	// DeleteComment はコメントを削除し、削除した行数を返します。
	DeleteComment(ctx context.Context, id int64) (int64, error)
	// GetCommentView は指定されたIDのコメントを読み取り用レコードとして取得します。
	GetCommentView(ctx context.Context, id int64) (*model.CommentView, error)
	// ListCommentViews は条件に一致するコメントをページ単位で取得します。
	ListCommentViews(ctx context.Context, filter CommentFilter, req model.PageRequest) (*model.Page[model.CommentView], error)
}

// CreateComment は新しいコメントをデータベースに保存します。
func (s *SQLiteStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	id, err := s.queries.CreateComment(ctx, db.CreateCommentParams{
		Message:          comment.Message,
		TaskAssignmentID: comment.TaskAssignmentID,
		DateCreated:      comment.DateCreated.UTC(),
	})
	if err != nil {
		return writeError(err, "create comment", "comment references a missing task assignment")
	}
	comment.ID = id
	return nil
}

// GetComment は指定されたIDのコメントを取得します。
func (s *SQLiteStore) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	c, err := s.queries.GetComment(ctx, id)
	if err != nil {
		return nil, readError(err, "comment", id)
	}
	return &model.Comment{
		ID:               c.ID,
		Message:          c.Message,
		TaskAssignmentID: c.TaskAssignmentID,
		DateCreated:      c.DateCreated,
	}, nil
}

// UpdateComment はコメントのメッセージだけを更新します。
func (s *SQLiteStore) UpdateComment(ctx context.Context, comment *model.Comment) error {
	n, err := affected(s.queries.UpdateComment(ctx, db.UpdateCommentParams{
		Message: comment.Message,
		ID:      comment.ID,
	}))
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if n == 0 {
		return model.NewNotFoundError("comment", comment.ID)
	}
	return nil
}

// DeleteComment はコメントを削除します。
func (s *SQLiteStore) DeleteComment(ctx context.Context, id int64) (int64, error) {
	n, err := affected(s.queries.DeleteComment(ctx, id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete comment: %w", err)
	}
	return n, nil
}

// GetCommentView は指定されたIDのコメントを読み取り用レコードとして取得します。
func (s *SQLiteStore) GetCommentView(ctx context.Context, id int64) (*model.CommentView, error) {
	q := commentViewQuery
	q.where.add("c.id = ?", id)

	var row commentRow
	if err := s.selectOne(ctx, &row, q); err != nil {
		return nil, readError(err, "comment", id)
	}
	v, err := row.view()
	if err != nil {
		s.log.Error("broken comment relation", "comment_id", id, "error", err)
		return nil, err
	}
	return v, nil
}

// ListCommentViews は条件に一致するコメントをID順にページ単位で取得します。
func (s *SQLiteStore) ListCommentViews(ctx context.Context, filter CommentFilter, req model.PageRequest) (*model.Page[model.CommentView], error) {
	q := commentViewQuery
	if filter.TaskAssignmentID != nil {
		q.where.add("c.task_assignment_id = ?", *filter.TaskAssignmentID)
	}
	if filter.TaskID != nil {
		q.where.add("a.task_id = ?", *filter.TaskID)
	}

	var rows []commentRow
	total, err := s.selectPage(ctx, &rows, q, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	views, err := viewsOf(rows, commentRow.view)
	if err != nil {
		s.log.Error("broken comment relation", "error", err)
		return nil, err
	}
	return model.NewPage(views, total, req), nil
}
