package event

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

// Service はカレンダーのユースケースをまとめます。
type Service struct {
	repo  Repository
	users UserSource
	clock Clock
}

// UseCase はカレンダーユースケースの公開インターフェースです。
type UseCase interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*CalendarEvent, error)
	OwnerScoped(ctx context.Context) ([]*CalendarEvent, error)
	InterviewCount(ctx context.Context) (int, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, users UserSource, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, users: users, clock: clock}
}

// CreateEventInput は予定作成時の入力です。
type CreateEventInput struct {
	Title string
	Date  string
	Time  string
	Type  Type
}

// CreateEvent は現在ユーザーを所有者とする予定を作成します。
func (s *Service) CreateEvent(ctx context.Context, in CreateEventInput) (*CalendarEvent, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		return nil, ErrInvalidDate
	}

	eventTime := strings.TrimSpace(in.Time)
	if eventTime == "" {
		return nil, ErrInvalidTime
	}

	if !isValidType(in.Type) {
		return nil, ErrInvalidType
	}

	now := s.clock.Now()
	e := &CalendarEvent{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		Title:      title,
		Date:       date,
		Time:       eventTime,
		Type:       in.Type,
		OwnerEmail: actor.Email,
	}

	return s.repo.Insert(ctx, e)
}

// OwnerScoped は現在ユーザーが所有する予定だけを返します。
func (s *Service) OwnerScoped(ctx context.Context) ([]*CalendarEvent, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]*CalendarEvent, 0, len(all))
	for _, e := range all {
		if e.OwnerEmail == actor.Email {
			owned = append(owned, e)
		}
	}
	return owned, nil
}

// InterviewCount は所有予定のうち Interview 種別の件数を返します。
// ラベル上は「今日の面接」として扱われますが、日付では絞り込みません。
func (s *Service) InterviewCount(ctx context.Context) (int, error) {
	owned, err := s.OwnerScoped(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, e := range owned {
		if e.Type == TypeInterview {
			count++
		}
	}
	return count, nil
}

func isValidType(t Type) bool {
	switch t {
	case TypeInterview, TypeMeeting, TypeDeadline, TypeFocusBlock:
		return true
	default:
		return false
	}
}
