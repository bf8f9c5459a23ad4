package service

import (
	"context"

	"github.com/stsysd/taskboard/model"
)

// TaskStatusInput はステータスの作成・更新内容です。
type TaskStatusInput struct {
	ID   int64
	Name string
}

// ListTaskStatuses はすべてのステータスを返します。
func (s *Service) ListTaskStatuses(ctx context.Context) ([]*model.TaskStatus, error) {
	return s.store.ListTaskStatuses(ctx)
}

// GetTaskStatus は指定されたIDのステータスを返します。
func (s *Service) GetTaskStatus(ctx context.Context, id int64) (*model.TaskStatus, error) {
	return s.store.GetTaskStatus(ctx, id)
}

// AddTaskStatus は新しいステータスを作成します。同名のステータスも作成できます。
func (s *Service) AddTaskStatus(ctx context.Context, in TaskStatusInput) (*model.TaskStatus, error) {
	status, err := model.NewTaskStatus(in.Name)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateTaskStatus(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

// UpdateTaskStatusName はステータスの名前を変更します。
func (s *Service) UpdateTaskStatusName(ctx context.Context, id int64, in TaskStatusInput) error {
	if err := checkIDMatch(id, in.ID); err != nil {
		return err
	}
	status, err := model.NewTaskStatus(in.Name)
	if err != nil {
		return err
	}
	status.ID = id
	return s.store.UpdateTaskStatusName(ctx, status)
}

// DeleteTaskStatus はステータスを削除します。
func (s *Service) DeleteTaskStatus(ctx context.Context, id int64) error {
	n, err := s.store.DeleteTaskStatus(ctx, id)
	return deleted(n, err, "task status", id)
}
