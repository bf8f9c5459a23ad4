package service

import (
	"context"

	"github.com/stsysd/taskboard/model"
	"github.com/stsysd/taskboard/store"
)

// CommentInput はコメントの作成・更新内容です。更新では TaskAssignmentID を使いません。
type CommentInput struct {
	Message          string
	TaskAssignmentID int64
}

// ListComments はコメントをページ単位で返します。
// assignmentID と taskID は任意の絞り込み条件で、taskID は割り当てを経由して判定します。
func (s *Service) ListComments(ctx context.Context, assignmentID, taskID *int64, req model.PageRequest) (*model.Page[model.CommentView], error) {
	return s.store.ListCommentViews(ctx, store.CommentFilter{TaskAssignmentID: assignmentID, TaskID: taskID}, req)
}

// GetComment は指定されたIDのコメントを返します。
func (s *Service) GetComment(ctx context.Context, id int64) (*model.CommentView, error) {
	return s.store.GetCommentView(ctx, id)
}

// AddComment は割り当てにコメントを追加します。
func (s *Service) AddComment(ctx context.Context, in CommentInput) (*model.CommentView, error) {
	comment, err := model.NewComment(in.Message, in.TaskAssignmentID, s.timestamp())
	if err != nil {
		return nil, err
	}
	ok, err := s.store.AssignmentExists(ctx, in.TaskAssignmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NewValidationErrorf("invalid task assignment id: %d", in.TaskAssignmentID)
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.store.GetCommentView(ctx, comment.ID)
}

// UpdateComment はコメントのメッセージを置き換えます。
func (s *Service) UpdateComment(ctx context.Context, id int64, in CommentInput) error {
	comment, err := s.store.GetComment(ctx, id)
	if err != nil {
		return err
	}
	if err := comment.Edit(in.Message); err != nil {
		return err
	}
	return s.store.UpdateComment(ctx, comment)
}

// DeleteComment はコメントを削除します。
func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	n, err := s.store.DeleteComment(ctx, id)
	return deleted(n, err, "comment", id)
}
