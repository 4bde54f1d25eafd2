package event

import "context"

// Repository は予定コレクションの永続化を行うインターフェースです。
type Repository interface {
	Insert(ctx context.Context, event *CalendarEvent) (*CalendarEvent, error)
	List(ctx context.Context) ([]*CalendarEvent, error)
}
