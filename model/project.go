package model

import (
	"strings"
	"time"
)

// Project はタスクをまとめるプロジェクトを表します。
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProject は未保存の新しいプロジェクトを作成します。
func NewProject(name, description string, now time.Time) (*Project, error) {
	p := &Project{
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate はプロジェクトの内容を検証します。
func (p *Project) Validate() error {
	if p.Name == "" {
		return NewValidationError("project name is required")
	}
	if p.CreatedAt.IsZero() {
		return NewValidationError("project created_at is required")
	}
	return nil
}

// Rename はプロジェクトの名前と説明を置き換えます。
func (p *Project) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewValidationError("project name is required")
	}
	p.Name = name
	p.Description = description
	return nil
}
