package post

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

// Service はコミュニティフィードのユースケースをまとめます。
type Service struct {
	repo  Repository
	users UserSource
	clock Clock
}

// UseCase はコミュニティユースケースの公開インターフェースです。
type UseCase interface {
	CreatePost(ctx context.Context, in CreatePostInput) (*Post, error)
	Feed(ctx context.Context) ([]*Post, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, users UserSource, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, users: users, clock: clock}
}

// CreatePostInput は投稿作成時の入力です。
type CreatePostInput struct {
	Content   string
	Tags      []string
	Anonymous bool
}

// CreatePost は現在ユーザーの役割に固定された Audience で投稿を作成します。
// Anonymous の場合、表示名は AnonymousAuthor に置き換えられます。
func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (*Post, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrInvalidContent
	}

	author := actor.Name
	if in.Anonymous {
		author = AnonymousAuthor
	}

	now := s.clock.Now()
	p := &Post{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Author:    author,
		Role:      string(actor.Role),
		Content:   content,
		Tags:      in.Tags,
		Audience:  AudienceFor(string(actor.Role)),
		CreatedAt: now,
	}

	return s.repo.Insert(ctx, p)
}

// Feed は現在ユーザーの役割に対応する Audience の投稿だけを返します。
func (s *Service) Feed(ctx context.Context) ([]*Post, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	audience := AudienceFor(string(actor.Role))
	feed := make([]*Post, 0, len(all))
	for _, p := range all {
		if p.Audience == audience {
			feed = append(feed, p)
		}
	}
	return feed, nil
}
