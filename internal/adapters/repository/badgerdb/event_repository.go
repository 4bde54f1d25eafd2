package badgerdb

import (
	"context"

	"github.com/careerhub-dev/careerhub/internal/core/event"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

const eventsSlotKey = "events"

// EventRepository は予定コレクションを events スロットに保持します。
// 所有者によるスコープはサービス側で行われ、スロットには全件が入ります。
type EventRepository struct {
	slot *store.Slot[[]event.CalendarEvent]
}

// NewEventRepository は EventRepository を生成します。
func NewEventRepository(s *store.Store) *EventRepository {
	return &EventRepository{slot: store.NewSlot(s, eventsSlotKey, []event.CalendarEvent{})}
}

// Insert は予定をコレクションの先頭に追加します。
func (r *EventRepository) Insert(_ context.Context, e *event.CalendarEvent) (*event.CalendarEvent, error) {
	clone := *e
	if _, err := r.slot.Update(func(events []event.CalendarEvent) []event.CalendarEvent {
		return append([]event.CalendarEvent{clone}, events...)
	}); err != nil {
		return nil, err
	}
	result := clone
	return &result, nil
}

// List は予定を保存順(新しいものが先頭)で返します。
func (r *EventRepository) List(_ context.Context) ([]*event.CalendarEvent, error) {
	events := r.slot.Current()
	out := make([]*event.CalendarEvent, 0, len(events))
	for i := range events {
		clone := events[i]
		out = append(out, &clone)
	}
	return out, nil
}
