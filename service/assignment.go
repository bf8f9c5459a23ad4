package service

import (
	"context"

	"github.com/stsysd/taskboard/model"
	"github.com/stsysd/taskboard/store"
)

// ListAssignments は割り当てをページ単位で返します。taskID と userID は任意の絞り込み条件です。
func (s *Service) ListAssignments(ctx context.Context, taskID, userID *int64, req model.PageRequest) (*model.Page[model.AssignmentView], error) {
	return s.store.ListAssignmentViews(ctx, store.AssignmentFilter{TaskID: taskID, UserID: userID}, req)
}

// GetAssignment は指定されたIDの割り当てを返します。
func (s *Service) GetAssignment(ctx context.Context, id int64) (*model.AssignmentView, error) {
	return s.store.GetAssignmentView(ctx, id)
}

// AssignUserToTask はユーザーをタスクに割り当てます。同じ組の割り当てが既にあっても新しく作成します。
func (s *Service) AssignUserToTask(ctx context.Context, userID, taskID int64) (*model.AssignmentView, error) {
	assignment, err := model.NewTaskAssignment(userID, taskID, s.timestamp())
	if err != nil {
		return nil, err
	}

	ok, err := s.store.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NewValidationErrorf("invalid user id: %d", userID)
	}
	ok, err = s.store.TaskExists(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NewValidationErrorf("invalid task id: %d", taskID)
	}

	if err := s.store.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	s.log.Info("user assigned to task", "task_assignment_id", assignment.ID, "user_id", userID, "task_id", taskID)
	return s.store.GetAssignmentView(ctx, assignment.ID)
}

// DeleteAssignment は割り当てとそのコメント、変更履歴を削除します。
func (s *Service) DeleteAssignment(ctx context.Context, id int64) error {
	n, err := s.store.DeleteAssignment(ctx, id)
	return deleted(n, err, "task assignment", id)
}
