package cv

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Service は履歴書管理のユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
}

// UseCase は履歴書ユースケースの公開インターフェースです。
type UseCase interface {
	AddCV(ctx context.Context, in AddCVInput) (*CV, error)
	RemoveCV(ctx context.Context, id string) error
	ListCVs(ctx context.Context) ([]*CV, error)
	GetCV(ctx context.Context, id string) (*CV, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// AddCVInput は履歴書登録時の入力です。
type AddCVInput struct {
	Name string
	Tag  string
	Link string
}

// AddCV は新しい履歴書を登録します。
func (s *Service) AddCV(ctx context.Context, in AddCVInput) (*CV, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	now := s.clock.Now()
	c := &CV{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		Tag:       strings.TrimSpace(in.Tag),
		Link:      strings.TrimSpace(in.Link),
		UpdatedAt: now,
	}

	return s.repo.Insert(ctx, c)
}

// RemoveCV は履歴書を削除します。参照している応募があっても検出しません。
func (s *Service) RemoveCV(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrCVNotFound
	}
	return s.repo.Remove(ctx, id)
}

// ListCVs は履歴書の一覧を新しい順で返します。
func (s *Service) ListCVs(ctx context.Context) ([]*CV, error) {
	return s.repo.List(ctx)
}

// GetCV は ID で履歴書を取得します。
func (s *Service) GetCV(ctx context.Context, id string) (*CV, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrCVNotFound
	}
	return s.repo.FindByID(ctx, id)
}
