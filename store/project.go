package store

import (
	"context"
	"fmt"

	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

// ProjectStore はプロジェクトの保存と取得を行うインターフェースです。
type ProjectStore interface {
	// CreateProject は新しいプロジェクトを作成し、採番したIDを設定します。
	CreateProject(ctx context.Context, project *model.Project) error
	// GetProject は指定されたIDのプロジェクトを取得します。
	GetProject(ctx context.Context, id int64) (*model.Project, error)
	// ProjectExists は指定されたIDのプロジェクトが存在するかを返します。
	ProjectExists(ctx context.Context, id int64) (bool, error)
	// ListProjects はすべてのプロジェクトをID順に取得します。
	ListProjects(ctx context.Context) ([]*model.Project, error)
	// UpdateProject はプロジェクトの名前と説明を更新します。
	UpdateProject(ctx context.Context, project *model.Project) error
	// DeleteProject はプロジェクトを削除し、削除した行数を返します。
	DeleteProject(ctx context.Context, id int64) (int64, error)
}

func toProject(p db.Project) *model.Project {
	return &model.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateProject は新しいプロジェクトをデータベースに保存します。
func (s *SQLiteStore) CreateProject(ctx context.Context, project *model.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	id, err := s.queries.CreateProject(ctx, db.CreateProjectParams{
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = id
	return nil
}

// GetProject は指定されたIDのプロジェクトを取得します。
func (s *SQLiteStore) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	p, err := s.queries.GetProject(ctx, id)
	if err != nil {
		return nil, readError(err, "project", id)
	}
	return toProject(p), nil
}

// ProjectExists は指定されたIDのプロジェクトが存在するかを返します。
func (s *SQLiteStore) ProjectExists(ctx context.Context, id int64) (bool, error) {
	n, err := s.queries.ProjectExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check project: %w", err)
	}
	return n != 0, nil
}

// ListProjects はすべてのプロジェクトを取得します。
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	rows, err := s.queries.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	projects := make([]*model.Project, 0, len(rows))
	for _, p := range rows {
		projects = append(projects, toProject(p))
	}
	return projects, nil
}

// UpdateProject は指定されたプロジェクトを更新します。
func (s *SQLiteStore) UpdateProject(ctx context.Context, project *model.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	n, err := affected(s.queries.UpdateProject(ctx, db.UpdateProjectParams{
		Name:        project.Name,
		Description: project.Description,
		ID:          project.ID,
	}))
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if n == 0 {
		return model.NewNotFoundError("project", project.ID)
	}
	return nil
}

// DeleteProject はプロジェクトを削除します。タスク以下の関連データも削除されます。
func (s *SQLiteStore) DeleteProject(ctx context.Context, id int64) (int64, error) {
	n, err := affected(s.queries.DeleteProject(ctx, id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete project: %w", err)
	}
	return n, nil
}
