package onboarding

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/careerhub-dev/careerhub/internal/core/user"
)

// Service はオンボーディングフローのユースケースをまとめます。
// フロー位置と認証段階で入力されたメールアドレスはセッション内の状態であり、
// ユーザーエンティティはプロフィール完了時に初めて永続化されます。
type Service struct {
	users user.Repository
	clock user.Clock

	mu    sync.Mutex
	step  Step
	email string
}

// UseCase はオンボーディングユースケースの公開インターフェースです。
type UseCase interface {
	State(ctx context.Context) (Step, error)
	SignIn(ctx context.Context, in SignInInput) (Step, error)
	CompleteProfile(ctx context.Context, in CompleteProfileInput) (*user.User, error)
	SelectRole(ctx context.Context, in SelectRoleInput) (*user.User, error)
	Back(ctx context.Context) (Step, error)
}

// NewService は Service を生成し、永続化済みユーザーから状態を復元します。
func NewService(ctx context.Context, users user.Repository, clock user.Clock) (*Service, error) {
	if clock == nil {
		clock = realClock{}
	}

	s := &Service{users: users, clock: clock}

	current, err := users.Current(ctx)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}
	s.step = Resume(current)
	if current != nil {
		s.email = current.Email
	}

	return s, nil
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// SignInInput は認証段階の入力です。
type SignInInput struct {
	Email string
}

// CompleteProfileInput はプロフィール段階の入力です。
// Age・Company・PhotoURL は任意項目です。
type CompleteProfileInput struct {
	Name     string
	Bio      string
	Gender   string
	Age      int
	Company  string
	PhotoURL string
}

// SelectRoleInput は役割選択段階の入力です。
type SelectRoleInput struct {
	Role user.Role
}

// State は現在のフロー位置を返します。
func (s *Service) State(_ context.Context) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step, nil
}

// SignIn はメールアドレスを無条件に信頼して認証段階を通過します。
// 資格情報の検証は行いません。
func (s *Service) SignIn(_ context.Context, in SignInInput) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepAuth {
		return s.step, ErrInvalidTransition
	}

	email, err := user.NormalizeEmail(in.Email)
	if err != nil {
		return s.step, err
	}

	s.email = email
	s.step = StepProfile
	return s.step, nil
}

// CompleteProfile は必須項目を検証し、初期ユーザーエンティティを永続化します。
func (s *Service) CompleteProfile(ctx context.Context, in CompleteProfileInput) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepProfile {
		return nil, ErrInvalidTransition
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, user.ErrInvalidName
	}

	bio := strings.TrimSpace(in.Bio)
	if bio == "" {
		return nil, user.ErrInvalidBio
	}

	gender := strings.TrimSpace(in.Gender)
	if gender == "" {
		return nil, user.ErrInvalidGender
	}

	now := s.clock.Now()
	u := &user.User{
		Email:     s.email,
		Name:      name,
		Bio:       bio,
		Gender:    gender,
		Age:       in.Age,
		Company:   strings.TrimSpace(in.Company),
		PhotoURL:  strings.TrimSpace(in.PhotoURL),
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	s.step = StepRole
	return saved, nil
}

// SelectRole は役割を設定しフローを完了します。
func (s *Service) SelectRole(ctx context.Context, in SelectRoleInput) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepRole {
		return nil, ErrInvalidTransition
	}

	if !user.IsValidRole(in.Role) {
		return nil, user.ErrInvalidRole
	}

	current, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	current.Role = in.Role
	current.UpdatedAt = s.clock.Now()

	saved, err := s.users.Save(ctx, current)
	if err != nil {
		return nil, err
	}

	s.step = StepApp
	return saved, nil
}

// Back はプロフィール段階から認証段階へ戻ります。他の状態からは戻れません。
func (s *Service) Back(_ context.Context) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepProfile {
		return s.step, ErrInvalidTransition
	}

	s.email = ""
	s.step = StepAuth
	return s.step, nil
}
