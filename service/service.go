// Package service はtaskboardの業務操作を提供します。
// 参照整合性の確認やステータス変更の記録など、複数のストア操作にまたがる規則はここで扱います。
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/stsysd/taskboard/model"
	"github.com/stsysd/taskboard/store"
)

// Service はストアの上に業務規則を実装します。
type Service struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time
}

// Option は Service の生成オプションです。
type Option func(*Service)

// WithClock は現在時刻の取得関数を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New は新しい Service を作成します。
func New(st store.Store, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store: st,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping はストアへの疎通を確認します。
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

// deleted は削除件数が0のときに NotFoundError を返します。
func deleted(n int64, err error, resource string, id int64) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return model.NewNotFoundError(resource, id)
	}
	return nil
}

// checkIDMatch はパスのIDと本文のIDが一致することを確認します。
func checkIDMatch(pathID, bodyID int64) error {
	if pathID != bodyID {
		return model.NewValidationErrorf("id mismatch: path has %d, body has %d", pathID, bodyID)
	}
	return nil
}
