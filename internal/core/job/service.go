package job

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/careerhub-dev/careerhub/internal/core/user"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// UserSource は操作主体となる現在ユーザーを解決します。
type UserSource interface {
	Current(ctx context.Context) (*user.User, error)
}

// Service は求人ボードのユースケースをまとめます。
type Service struct {
	repo  Repository
	saved SavedJobsRepository
	users UserSource
	clock Clock
}

// UseCase は求人ユースケースの公開インターフェースです。
type UseCase interface {
	PostJob(ctx context.Context, in PostJobInput) (*Job, error)
	ListJobs(ctx context.Context) ([]*Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	SaveJob(ctx context.Context, id string) ([]string, error)
	UnsaveJob(ctx context.Context, id string) ([]string, error)
	SavedIDs(ctx context.Context) ([]string, error)
	SavedJobs(ctx context.Context) ([]*Job, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, saved SavedJobsRepository, users UserSource, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, saved: saved, users: users, clock: clock}
}

// PostJobInput は求人作成時の入力です。
type PostJobInput struct {
	Title            string
	Company          string
	Location         string
	Type             Type
	Salary           string
	Description      string
	Requirements     []string
	Responsibilities []string
}

// PostJob は HR ユーザーとして新しい求人を作成します。
// 作成された求人はコレクションの先頭へ追加されます。
func (s *Service) PostJob(ctx context.Context, in PostJobInput) (*Job, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != user.RoleHR {
		return nil, ErrNotHR
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	company := strings.TrimSpace(in.Company)
	if company == "" {
		return nil, ErrInvalidCompany
	}

	if !isValidType(in.Type) {
		return nil, ErrInvalidType
	}

	now := s.clock.Now()
	j := &Job{
		ID:               strconv.FormatInt(now.UnixMilli(), 10),
		Title:            title,
		Company:          company,
		Location:         strings.TrimSpace(in.Location),
		Type:             in.Type,
		Salary:           strings.TrimSpace(in.Salary),
		Description:      in.Description,
		Requirements:     in.Requirements,
		Responsibilities: in.Responsibilities,
		CreatedAt:        now,
		HREmail:          actor.Email,
		HRName:           actor.Name,
	}

	return s.repo.Insert(ctx, j)
}

// ListJobs は求人の一覧を新しい順で返します。
func (s *Service) ListJobs(ctx context.Context) ([]*Job, error) {
	return s.repo.List(ctx)
}

// GetJob は ID で求人を取得します。
func (s *Service) GetJob(ctx context.Context, id string) (*Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrJobNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// SaveJob は求人 ID を現在ユーザーの保存済み集合へ追加します。
// 既に保存済みの ID は追加されません(呼び出し側での重複排除)。
func (s *Service) SaveJob(ctx context.Context, id string) ([]string, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := s.saved.IDs(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	for _, existing := range ids {
		if existing == id {
			return ids, nil
		}
	}

	next := append([]string{id}, ids...)
	if err := s.saved.ReplaceIDs(ctx, actor.Email, next); err != nil {
		return nil, err
	}
	return next, nil
}

// UnsaveJob は求人 ID を現在ユーザーの保存済み集合から取り除きます。
func (s *Service) UnsaveJob(ctx context.Context, id string) ([]string, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := s.saved.IDs(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	next := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			next = append(next, existing)
		}
	}

	if len(next) == len(ids) {
		return ids, nil
	}

	if err := s.saved.ReplaceIDs(ctx, actor.Email, next); err != nil {
		return nil, err
	}
	return next, nil
}

// SavedIDs は現在ユーザーの保存済み求人 ID を返します。
func (s *Service) SavedIDs(ctx context.Context) ([]string, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.saved.IDs(ctx, actor.Email)
}

// SavedJobs は保存済み ID を求人へ解決します。参照先が削除済みなどで
// 見つからない ID は黙って読み飛ばします。
func (s *Service) SavedJobs(ctx context.Context) ([]*Job, error) {
	ids, err := s.SavedIDs(ctx)
	if err != nil {
		return nil, err
	}

	jobs := make([]*Job, 0, len(ids))
	for _, id := range ids {
		j, err := s.repo.FindByID(ctx, id)
		if err != nil {
			continue
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func isValidType(t Type) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	default:
		return false
	}
}
