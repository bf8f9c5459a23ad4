package store

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stsysd/taskboard/model"
)

// where は AND で連結する絞り込み条件とその引数です。
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// pageQuery はページ取得クエリの構成要素です。
type pageQuery struct {
	columns string
	from    string
	where   where
	orderBy string
}

// selectPage は絞り込み後の全件数を数えてから、要求されたページだけを dest に読み込みます。
// 不正な要求や範囲外のページでは dest を空のままにし、全件数だけを返します。
func (s *SQLiteStore) selectPage(ctx context.Context, dest any, q pageQuery, req model.PageRequest) (int, error) {
	var total int
	countSQL := "SELECT COUNT(*) FROM " + q.from + q.where.String()
	if err := sqlx.GetContext(ctx, s.ext, &total, countSQL, q.where.args...); err != nil {
		return 0, err
	}
	offset, ok := req.Window(total)
	if !ok {
		return total, nil
	}

	selectSQL := "SELECT " + q.columns + " FROM " + q.from + q.where.String() +
		" ORDER BY " + q.orderBy + " LIMIT ? OFFSET ?"
	args := append(append([]any{}, q.where.args...), req.Limit(), offset)
	if err := sqlx.SelectContext(ctx, s.ext, dest, selectSQL, args...); err != nil {
		return 0, err
	}
	return total, nil
}

// selectOne は絞り込み条件に一致する1行を dest に読み込みます。
func (s *SQLiteStore) selectOne(ctx context.Context, dest any, q pageQuery) error {
	query := "SELECT " + q.columns + " FROM " + q.from + q.where.String()
	return sqlx.GetContext(ctx, s.ext, dest, query, q.where.args...)
}
