package service

import (
	"context"

	"github.com/stsysd/taskboard/model"
)

// ProjectInput はプロジェクトの作成・更新内容です。
type ProjectInput struct {
	ID          int64
	Name        string
	Description string
}

// ListProjects はすべてのプロジェクトを返します。
func (s *Service) ListProjects(ctx context.Context) ([]*model.Project, error) {
	return s.store.ListProjects(ctx)
}

// GetProject は指定されたIDのプロジェクトを返します。
func (s *Service) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	return s.store.GetProject(ctx, id)
}

// AddProject は新しいプロジェクトを作成します。
func (s *Service) AddProject(ctx context.Context, in ProjectInput) (*model.Project, error) {
	project, err := model.NewProject(in.Name, in.Description, s.timestamp())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	s.log.Info("project created", "project_id", project.ID)
	return project, nil
}

// UpdateProject はプロジェクトの名前と説明を置き換えます。
// in.ID はパスの id と一致していなければなりません。
func (s *Service) UpdateProject(ctx context.Context, id int64, in ProjectInput) error {
	if err := checkIDMatch(id, in.ID); err != nil {
		return err
	}
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if err := project.Rename(in.Name, in.Description); err != nil {
		return err
	}
	return s.store.UpdateProject(ctx, project)
}

// DeleteProject はプロジェクトとその配下のタスクを削除します。
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	n, err := s.store.DeleteProject(ctx, id)
	if err := deleted(n, err, "project", id); err != nil {
		return err
	}
	s.log.Info("project deleted", "project_id", id)
	return nil
}
