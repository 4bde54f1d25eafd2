package application

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/careerhub-dev/careerhub/internal/core/job"
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

// JobSource は応募対象となる求人の参照を提供します。
type JobSource interface {
	FindByID(ctx context.Context, id string) (*job.Job, error)
	List(ctx context.Context) ([]*job.Job, error)
}

// UserSource は操作主体となる現在ユーザーを解決します。
type UserSource interface {
	Current(ctx context.Context) (*user.User, error)
}

// Service は応募のユースケースをまとめます。
type Service struct {
	repo  Repository
	jobs  JobSource
	users UserSource
	clock Clock
}

// UseCase は応募ユースケースの公開インターフェースです。
type UseCase interface {
	Apply(ctx context.Context, in ApplyInput) (*ApplyResult, error)
	UpdateStatus(ctx context.Context, in UpdateStatusInput) (*Application, error)
	MyApplications(ctx context.Context) ([]*Application, error)
	Inbox(ctx context.Context) ([]*Application, error)
	CountsByJob(ctx context.Context) (map[string]int, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, jobs JobSource, users UserSource, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, jobs: jobs, users: users, clock: clock}
}

// ApplyInput は応募時の入力です。
type ApplyInput struct {
	JobID string
	CVID  string
}

// ApplyResult は応募操作の結果です。Duplicate が true の場合、
// 同一 (jobId, applicantEmail) の既存応募が返され、コレクションは変化していません。
type ApplyResult struct {
	Application *Application
	Duplicate   bool
}

// UpdateStatusInput は選考状態更新時の入力です。
type UpdateStatusInput struct {
	ID     string
	Status Status
}

// Apply は現在ユーザーとして求人へ応募します。求人タイトルと会社名は
// 応募時点のスナップショットとして複製されます。同一求人への再応募は
// 何も追加せず既存の応募を返します。
func (s *Service) Apply(ctx context.Context, in ApplyInput) (*ApplyResult, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.JobID) == "" {
		return nil, ErrJobNotFound
	}
	if strings.TrimSpace(in.CVID) == "" {
		return nil, ErrInvalidCVID
	}

	existing, err := s.repo.FindByJobAndApplicant(ctx, in.JobID, actor.Email)
	if err != nil && !errors.Is(err, ErrApplicationNotFound) {
		return nil, err
	}
	if existing != nil {
		return &ApplyResult{Application: existing, Duplicate: true}, nil
	}

	j, err := s.jobs.FindByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	now := s.clock.Now()
	a := &Application{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		JobID:          j.ID,
		JobTitle:       j.Title,
		Company:        j.Company,
		ApplicantName:  actor.Name,
		ApplicantEmail: actor.Email,
		CVID:           in.CVID,
		Status:         StatusSent,
		Date:           now,
	}

	created, err := s.repo.Insert(ctx, a)
	if err != nil {
		return nil, err
	}

	return &ApplyResult{Application: created}, nil
}

// UpdateStatus は応募の選考状態を変更します。HR ユーザーのみが実行でき、
// 遷移先の値は自由形式です(空値のみ拒否)。
func (s *Service) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*Application, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != user.RoleHR {
		return nil, ErrNotHR
	}

	if strings.TrimSpace(in.ID) == "" {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(string(in.Status)) == "" {
		return nil, ErrInvalidStatus
	}

	existing, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	existing.Status = in.Status
	return s.repo.Update(ctx, existing)
}

// MyApplications は現在ユーザーが応募者である応募を返します。
func (s *Service) MyApplications(ctx context.Context) ([]*Application, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]*Application, 0, len(all))
	for _, a := range all {
		if a.ApplicantEmail == actor.Email {
			mine = append(mine, a)
		}
	}
	return mine, nil
}

// Inbox は現在の HR ユーザーが所有する求人への応募を返します。
// 求人コレクションとの結合が必要です(この規模では全走査で十分)。
func (s *Service) Inbox(ctx context.Context) ([]*Application, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != user.RoleHR {
		return nil, ErrNotHR
	}

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		if j.HREmail == actor.Email {
			owned[j.ID] = true
		}
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	inbox := make([]*Application, 0, len(all))
	for _, a := range all {
		if owned[a.JobID] {
			inbox = append(inbox, a)
		}
	}
	return inbox, nil
}

// CountsByJob は求人 ID ごとの応募数を畳み込んで返します。
func (s *Service) CountsByJob(ctx context.Context) (map[string]int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(all))
	for _, a := range all {
		counts[a.JobID]++
	}
	return counts, nil
}
