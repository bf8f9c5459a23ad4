package service

import (
	"context"
	"strings"

	"github.com/stsysd/taskboard/model"
)

// UserInput はユーザーの作成・更新内容です。更新ではメールアドレスを使いません。
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
}

// ListUsers は search に一致するユーザーをページ単位で返します。
func (s *Service) ListUsers(ctx context.Context, search string, req model.PageRequest) (*model.Page[model.User], error) {
	return s.store.ListUsers(ctx, search, req)
}

// GetUser は指定されたIDのユーザーを返します。
func (s *Service) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.store.GetUser(ctx, id)
}

// AddUser は新しいユーザーを作成します。
func (s *Service) AddUser(ctx context.Context, in UserInput) (*model.User, error) {
	user, err := model.NewUser(in.FirstName, in.LastName, in.Email, s.timestamp())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user created", "user_id", user.ID)
	return user, nil
}

// UpdateUser はユーザーの名と姓を置き換え、更新後のユーザーを返します。
func (s *Service) UpdateUser(ctx context.Context, id int64, in UserInput) (*model.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser はユーザーとその割り当てを削除します。
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	n, err := s.store.DeleteUser(ctx, id)
	if err := deleted(n, err, "user", id); err != nil {
		return err
	}
	s.log.Info("user deleted", "user_id", id)
	return nil
}
