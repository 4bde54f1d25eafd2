package dashboard

import (
	"context"

	"github.com/careerhub-dev/careerhub/internal/core/application"
	"github.com/careerhub-dev/careerhub/internal/core/job"
)

// Summary はダッシュボードに表示する集計値です。
type Summary struct {
	ActiveJobs          int `json:"activeJobs"`
	PendingApplications int `json:"pendingApplications"`
	InterviewsToday     int `json:"interviewsToday"`
}

// JobSource は求人一覧を提供します。
type JobSource interface {
	List(ctx context.Context) ([]*job.Job, error)
}

// ApplicationSource は応募一覧を提供します。
type ApplicationSource interface {
	List(ctx context.Context) ([]*application.Application, error)
}

// InterviewSource は所有予定のうち面接の件数を提供します。
type InterviewSource interface {
	InterviewCount(ctx context.Context) (int, error)
}

// Service はダッシュボード集計のユースケースです。集計は永続化されず、
// 要求のたびに元コレクションから導出されます。
type Service struct {
	jobs         JobSource
	applications ApplicationSource
	interviews   InterviewSource
}

// UseCase はダッシュボードユースケースの公開インターフェースです。
type UseCase interface {
	Summary(ctx context.Context) (Summary, error)
}

// NewService は Service を生成します。
func NewService(jobs JobSource, applications ApplicationSource, interviews InterviewSource) *Service {
	return &Service{jobs: jobs, applications: applications, interviews: interviews}
}

// Summary は求人総数、選考待ち応募数、面接件数をまとめて返します。
// 求人は状態を持たないため、総数がそのまま「有効求人数」になります。
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	apps, err := s.applications.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	pending := 0
	for _, a := range apps {
		if a.Status == application.StatusSent {
			pending++
		}
	}

	interviews, err := s.interviews.InterviewCount(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		ActiveJobs:          len(jobs),
		PendingApplications: pending,
		InterviewsToday:     interviews,
	}, nil
}
