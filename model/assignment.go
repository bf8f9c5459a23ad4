package model

import (
	"strings"
	"time"
)

// TaskAssignment はユーザーとタスクの割り当てです。コメントとステータス履歴はこれに紐づきます。
type TaskAssignment struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"userId"`
	TaskID int64     `json:"taskId"`
	Date   time.Time `json:"date"`
}

// NewTaskAssignment は now を日付とする割り当てを作成します。
func NewTaskAssignment(userID, taskID int64, now time.Time) (*TaskAssignment, error) {
	a := &TaskAssignment{UserID: userID, TaskID: taskID, Date: now}
	if userID <= 0 {
		return nil, NewValidationError("invalid user id")
	}
	if taskID <= 0 {
		return nil, NewValidationError("invalid task id")
	}
	return a, nil
}

// Comment は割り当てに対して残されたメッセージです。
type Comment struct {
	ID               int64     `json:"id"`
	Message          string    `json:"message"`
	TaskAssignmentID int64     `json:"taskAssignmentId"`
	DateCreated      time.Time `json:"dateCreated"`
}

// NewComment は未保存の新しいコメントを作成します。
func NewComment(message string, assignmentID int64, now time.Time) (*Comment, error) {
	c := &Comment{
		Message:          strings.TrimSpace(message),
		TaskAssignmentID: assignmentID,
		DateCreated:      now,
	}
	if c.Message == "" {
		return nil, NewValidationError("comment message is required")
	}
	if assignmentID <= 0 {
		return nil, NewValidationError("invalid task assignment id")
	}
	return c, nil
}

// Edit はメッセージを置き換えます。
func (c *Comment) Edit(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return NewValidationError("comment message is required")
	}
	c.Message = message
	return nil
}

// TaskStatusHistory は割り当てのタスクがあるステータスへ変わったことを記録します。
// 追記のみで更新はしません。
type TaskStatusHistory struct {
	ID               int64     `json:"id"`
	StatusID         int64     `json:"statusId"`
	TaskAssignmentID int64     `json:"taskAssignmentId"`
	Date             time.Time `json:"date"`
}
