package model

import "time"

// TaskView はタスクの読み取り用レコードです。
type TaskView struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	ProjectID             int64     `json:"projectId"`
	ProjectName           string    `json:"projectName"`
	StatusID              *int64    `json:"statusId,omitempty"`
	StatusName            string    `json:"statusName"`
	CreatedAt             time.Time `json:"createdAt"`
	CreatedByUserFullName string    `json:"createdByUserFullName"`
}

// CommentView はコメントの読み取り用レコードです。
type CommentView struct {
	ID               int64     `json:"id"`
	Message          string    `json:"message"`
	TaskAssignmentID int64     `json:"taskAssignmentId"`
	UserFullName     string    `json:"userFullName"`
	TaskName         string    `json:"taskName"`
	DateCreated      time.Time `json:"dateCreated"`
}

// AssignmentView はタスク割り当ての読み取り用レコードです。
type AssignmentView struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	UserID       int64     `json:"userId"`
	UserFullName string    `json:"userFullName"`
	TaskID       int64     `json:"taskId"`
	TaskName     string    `json:"taskName"`
}

// StatusHistoryView はステータス変更の読み取り用レコードです。
type StatusHistoryView struct {
	ID                  int64     `json:"id"`
	TaskName            string    `json:"taskName"`
	ChangedToStatusName string    `json:"changedToStatusName"`
	ByUserFullName      string    `json:"byUserFullName"`
	Date                time.Time `json:"date"`
}
