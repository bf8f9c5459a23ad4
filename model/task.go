package model

import (
	"strings"
	"time"
)

// Task はただ1つのプロジェクトに属するタスクです。StatusID と CreatedByUserID は任意です。
type Task struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	ProjectID       int64     `json:"projectId"`
	StatusID        *int64    `json:"statusId,omitempty"`
	CreatedByUserID *int64    `json:"createdByUserId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewTask は未保存の新しいタスクを作成します。
func NewTask(name, description string, projectID int64, statusID, createdBy *int64, now time.Time) (*Task, error) {
	t := &Task{
		Name:            strings.TrimSpace(name),
		Description:     description,
		ProjectID:       projectID,
		StatusID:        statusID,
		CreatedByUserID: createdBy,
		CreatedAt:       now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate はタスクの内容を検証します。
func (t *Task) Validate() error {
	if t.Name == "" {
		return NewValidationError("task name is required")
	}
	if t.ProjectID <= 0 {
		return NewValidationError("project_id is required")
	}
	if t.CreatedAt.IsZero() {
		return NewValidationError("task created_at is required")
	}
	return nil
}

// Rename はタスク名を変更します。空の名前は受け付けません。
func (t *Task) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewValidationError("name cannot be null or empty")
	}
	t.Name = name
	return nil
}

// TaskStatus はタスクのステータスです。名前は一意である必要はありません。
type TaskStatus struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewTaskStatus は未保存の新しいステータスを作成します。
func NewTaskStatus(name string) (*TaskStatus, error) {
	s := &TaskStatus{Name: strings.TrimSpace(name)}
	if s.Name == "" {
		return nil, NewValidationError("task status name cannot be null or empty")
	}
	return s, nil
}
