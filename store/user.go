package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

// UserStore はユーザーの保存と取得を行うインターフェースです。
type UserStore interface {
	// CreateUser は新しいユーザーを作成し、採番したIDを設定します。
	CreateUser(ctx context.Context, user *model.User) error
	// GetUser は指定されたIDのユーザーを取得します。
	GetUser(ctx context.Context, id int64) (*model.User, error)
	// UserExists は指定されたIDのユーザーが存在するかを返します。
	UserExists(ctx context.Context, id int64) (bool, error)
	// UpdateUser はユーザーの名と姓を更新します。
	UpdateUser(ctx context.Context, user *model.User) error
	// DeleteUser はユーザーを削除し、削除した行数を返します。
	DeleteUser(ctx context.Context, id int64) (int64, error)
	// ListUsers は search に一致するユーザーをページ単位で取得します。
	ListUsers(ctx context.Context, search string, req model.PageRequest) (*model.Page[model.User], error)
}

func toUser(u db.User) *model.User {
	return &model.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// CreateUser は新しいユーザーをデータベースに保存します。
func (s *SQLiteStore) CreateUser(ctx context.Context, user *model.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	id, err := s.queries.CreateUser(ctx, db.CreateUserParams{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id
	return nil
}

// GetUser は指定されたIDのユーザーを取得します。
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, readError(err, "user", id)
	}
	return toUser(u), nil
}

// UserExists は指定されたIDのユーザーが存在するかを返します。
func (s *SQLiteStore) UserExists(ctx context.Context, id int64) (bool, error) {
	n, err := s.queries.UserExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return n != 0, nil
}

// UpdateUser はユーザーの名と姓を更新します。メールアドレスは変更しません。
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *model.User) error {
	n, err := affected(s.queries.UpdateUser(ctx, db.UpdateUserParams{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ID:        user.ID,
	}))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return model.NewNotFoundError("user", user.ID)
	}
	return nil
}

// DeleteUser はユーザーを削除します。ユーザーの割り当ても削除され、
// ユーザーが作成したタスクの作成者は空になります。
func (s *SQLiteStore) DeleteUser(ctx context.Context, id int64) (int64, error) {
	n, err := affected(s.queries.DeleteUser(ctx, id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return n, nil
}

type userRow struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// likePattern は部分一致検索用の LIKE パターンを作ります。
// 大文字と小文字の同一視は SQLite の LIKE に任せるので、term はそのまま使います。
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// ListUsers は名、姓、メールアドレスのいずれかに search を含むユーザーを取得します。
// ASCII の大文字と小文字は区別しません。search が空の場合は全件が対象です。
func (s *SQLiteStore) ListUsers(ctx context.Context, search string, req model.PageRequest) (*model.Page[model.User], error) {
	var w where
	if term := model.SearchTerm(search); term != "" {
		w.add(`(first_name LIKE ? ESCAPE '\' OR last_name LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\')`,
			likePattern(term), likePattern(term), likePattern(term))
	}

	var rows []userRow
	total, err := s.selectPage(ctx, &rows, pageQuery{
		columns: "id, first_name, last_name, email, created_at",
		from:    "users",
		where:   w,
		orderBy: "id",
	}, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]model.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, model.User{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			CreatedAt: r.CreatedAt,
		})
	}
	return model.NewPage(users, total, req), nil
}
