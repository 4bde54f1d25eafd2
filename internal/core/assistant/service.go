package assistant

import (
	"context"

	"github.com/careerhub-dev/careerhub/internal/core/event"
)

// EventSource は現在ユーザーが所有する予定の一覧を提供します。
type EventSource interface {
	OwnerScoped(ctx context.Context) ([]*event.CalendarEvent, error)
}

// Service はカレンダーの面接予定を引き当てて定型返答を組み立てます。
type Service struct {
	events EventSource
}

// UseCase はアシスタントユースケースの公開インターフェースです。
type UseCase interface {
	Respond(ctx context.Context, message string) (string, error)
}

// NewService は Service を生成します。
func NewService(events EventSource) *Service {
	return &Service{events: events}
}

// Respond はメッセージに対する返答を返します。面接テンプレートの場合のみ
// 予定の取得が必要になりますが、分岐判定の前に一度だけ読み込みます。
func (s *Service) Respond(ctx context.Context, message string) (string, error) {
	owned, err := s.events.OwnerScoped(ctx)
	if err != nil {
		return "", err
	}

	interviews := make([]Interview, 0, len(owned))
	for _, e := range owned {
		if e.Type == event.TypeInterview {
			interviews = append(interviews, Interview{Title: e.Title, Time: e.Time})
		}
	}

	return Respond(message, interviews), nil
}
