package settings

import (
	"context"
	"strings"
)

// Service は設定の取得と更新のユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase は設定ユースケースの公開インターフェースです。
type UseCase interface {
	Get(ctx context.Context, email string) (Settings, error)
	Update(ctx context.Context, email string, s Settings) (Settings, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get はユーザーの設定を返します。未保存の場合は既定値が返ります。
func (s *Service) Get(ctx context.Context, email string) (Settings, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return Settings{}, ErrInvalidEmail
	}
	return s.repo.Get(ctx, email)
}

// Update は設定全体を置き換えて保存します。フィールド単位のマージは
// 行いません。
func (s *Service) Update(ctx context.Context, email string, in Settings) (Settings, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return Settings{}, ErrInvalidEmail
	}
	if err := s.repo.Save(ctx, email, in); err != nil {
		return Settings{}, err
	}
	return in, nil
}
