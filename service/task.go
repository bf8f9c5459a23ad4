package service

import (
	"context"
	"strings"
	"time"

	"github.com/stsysd/taskboard/model"
	"github.com/stsysd/taskboard/store"
)

// TaskInput はタスクの作成内容です。
type TaskInput struct {
	Name            string
	Description     string
	ProjectID       int64
	StatusID        *int64
	CreatedByUserID *int64
}

// ListTasksByProject はタスクをページ単位で返します。projectID が nil なら全プロジェクトが対象です。
func (s *Service) ListTasksByProject(ctx context.Context, projectID *int64, req model.PageRequest) (*model.Page[model.TaskView], error) {
	return s.store.ListTaskViews(ctx, store.TaskFilter{ProjectID: projectID}, req)
}

// GetTask は指定されたIDのタスクを返します。
func (s *Service) GetTask(ctx context.Context, id int64) (*model.TaskView, error) {
	return s.store.GetTaskView(ctx, id)
}

// AddTask は新しいタスクを作成します。プロジェクトが存在しない場合は何も保存しません。
func (s *Service) AddTask(ctx context.Context, in TaskInput) (*model.TaskView, error) {
	task, err := model.NewTask(in.Name, in.Description, in.ProjectID, in.StatusID, in.CreatedByUserID, s.timestamp())
	if err != nil {
		return nil, err
	}

	ok, err := s.store.ProjectExists(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NewValidationErrorf("invalid project id: %d", in.ProjectID)
	}
	if in.CreatedByUserID != nil {
		ok, err := s.store.UserExists(ctx, *in.CreatedByUserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, model.NewValidationErrorf("invalid user id: %d", *in.CreatedByUserID)
		}
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	s.log.Info("task created", "task_id", task.ID, "project_id", task.ProjectID)
	return s.store.GetTaskView(ctx, task.ID)
}

// RenameTask はタスク名を変更します。
func (s *Service) RenameTask(ctx context.Context, id int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return model.NewValidationError("name cannot be null or empty")
	}
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if err := task.Rename(name); err != nil {
		return err
	}
	return s.store.UpdateTask(ctx, task)
}

// UpdateTaskStatus はタスクのステータスを statusID に変更し、userID の割り当てに変更履歴を1件追記します。
// ステータス間の遷移に制約はありません。ステータスの変更と履歴の追記は同じトランザクションで行い、
// どちらかが失敗した場合は何も保存しません。
//
// (taskID, userID) に一致する割り当てがない場合は ValidationError を返します。
// 複数ある場合は最も新しい割り当てを使います。
func (s *Service) UpdateTaskStatus(ctx context.Context, taskID, statusID, userID int64) error {
	err := s.store.WithinTx(ctx, func(tx store.Store) error {
		task, err := tx.GetTask(ctx, taskID)
		if err != nil {
			return err
		}

		assignments, err := tx.FindAssignments(ctx, taskID, userID)
		if err != nil {
			return err
		}
		if len(assignments) == 0 {
			return model.NewValidationErrorf("user %d is not assigned to task %d", userID, taskID)
		}
		assignment := assignments[len(assignments)-1]

		task.StatusID = &statusID
		if err := tx.UpdateTask(ctx, task); err != nil {
			return err
		}

		date, err := s.historyDate(ctx, tx, assignment.ID)
		if err != nil {
			return err
		}
		return tx.CreateStatusHistory(ctx, &model.TaskStatusHistory{
			StatusID:         statusID,
			TaskAssignmentID: assignment.ID,
			Date:             date,
		})
	})
	if err != nil {
		return err
	}
	s.log.Info("task status changed", "task_id", taskID, "status_id", statusID, "user_id", userID)
	return nil
}

// historyDate は新しい履歴の日時を返します。割り当ての履歴は日時の昇順に並ぶので、
// 時計が最新の履歴より前を指している場合は最新の履歴の日時を使います。
func (s *Service) historyDate(ctx context.Context, tx store.Store, assignmentID int64) (time.Time, error) {
	date := s.timestamp()
	histories, err := tx.ListStatusHistories(ctx, assignmentID)
	if err != nil {
		return time.Time{}, err
	}
	if n := len(histories); n > 0 && date.Before(histories[n-1].Date) {
		date = histories[n-1].Date
	}
	return date, nil
}

// DeleteTask はタスクとその割り当てを削除します。
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	n, err := s.store.DeleteTask(ctx, id)
	if err := deleted(n, err, "task", id); err != nil {
		return err
	}
	s.log.Info("task deleted", "task_id", id)
	return nil
}
