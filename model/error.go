// Package model はtaskboardのエンティティ、読み取りビュー、値オブジェクトを提供します。
package model

import (
	"errors"
	"fmt"
)

// 以下の型付きエラーが errors.Is で一致するセンチネルエラーです。
var (
	ErrNotFound  = errors.New("not found")
	ErrIntegrity = errors.New("data integrity violation")
)

// ValidationError はクライアント起因のエラー（必須項目の欠落、不正な参照、IDの不一致）を表します。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError は ValidationError を生成します。
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NewValidationErrorf は fmt.Sprintf と同じ書式でメッセージを組み立てます。
func NewValidationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError は指定されたIDのエンティティが存在しないことを表します。
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with id %d", e.Resource, e.ID)
}

// Is は errors.Is(err, ErrNotFound) を満たします。
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError は NotFoundError を生成します。
func NewNotFoundError(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IntegrityError は必須の関連がストアに存在しないことを表します。
type IntegrityError struct {
	Resource string
	ID       int64
	Relation string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %d references a missing %s", e.Resource, e.ID, e.Relation)
}

// Is は errors.Is(err, ErrIntegrity) を満たします。
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// NewIntegrityError は IntegrityError を生成します。
func NewIntegrityError(resource string, id int64, relation string) error {
	return &IntegrityError{Resource: resource, ID: id, Relation: relation}
}

// IsValidation は err が ValidationError を含むかどうかを返します。
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
