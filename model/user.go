package model

import (
	"net/mail"
	"strings"
	"time"
)

// User はタスクを作成し、タスクに割り当てられるメンバーです。
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser は未保存の新しいユーザーを作成します。
func NewUser(firstName, lastName, email string, now time.Time) (*User, error) {
	u := &User{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate はユーザーの内容を検証します。メールアドレスは空でも構いません。
func (u *User) Validate() error {
	if u.Email != "" && !IsEmail(u.Email) {
		return NewValidationError("invalid email address")
	}
	if u.CreatedAt.IsZero() {
		return NewValidationError("user created_at is required")
	}
	return nil
}

// FullName は名と姓を空白1つでつなげた氏名を返します。
func (u *User) FullName() string {
	return FullName(u.FirstName, u.LastName)
}

// FullName は名と姓を空白1つでつなげた氏名を返します。
func FullName(first, last string) string {
	return first + " " + last
}

// IsEmail は s が "ann@example.com" のような素のメールアドレスかどうかを返します。
// "Ann <ann@example.com>" のような表示名付きの形式は受け付けません。
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
