package user

import (
	"context"
	"net/mail"
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

// Service はユーザープロフィールに関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
}

// UseCase はユーザーユースケースの公開インターフェースです。
type UseCase interface {
	Get(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*User, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// UpdateProfileInput はプロフィール更新時の入力です。
// Email は同一性のキーであるため更新対象に含まれません。
type UpdateProfileInput struct {
	Name     *string
	Bio      *string
	Gender   *string
	Age      *int
	Company  *string
	PhotoURL *string
}

// Get は現在のユーザーを取得します。
func (s *Service) Get(ctx context.Context) (*User, error) {
	return s.repo.Current(ctx)
}

// UpdateProfile は現在ユーザーのプロフィールを更新します。
func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*User, error) {
	existing, err := s.repo.Current(ctx)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		existing.Name = name
	}

	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		if bio == "" {
			return nil, ErrInvalidBio
		}
		existing.Bio = bio
	}

	if in.Gender != nil {
		gender := strings.TrimSpace(*in.Gender)
		if gender == "" {
			return nil, ErrInvalidGender
		}
		existing.Gender = gender
	}

	if in.Age != nil {
		existing.Age = *in.Age
	}

	if in.Company != nil {
		existing.Company = strings.TrimSpace(*in.Company)
	}

	if in.PhotoURL != nil {
		existing.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}

	existing.UpdatedAt = s.clock.Now()

	return s.repo.Save(ctx, existing)
}

// NormalizeEmail はメールアドレスを検証し小文字へ正規化します。
func NormalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(addr.Address), nil
}

// IsValidRole は役割値の妥当性を検証します。
func IsValidRole(role Role) bool {
	switch role {
	case RoleHR, RoleEmployee:
		return true
	default:
		return false
	}
}
