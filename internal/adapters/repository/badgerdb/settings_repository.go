package badgerdb

import (
	"context"
	"sync"

	"github.com/careerhub-dev/careerhub/internal/core/settings"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

const settingsSlotPrefix = "settings:"

// SettingsRepository は設定をメールアドレスごとのスロットに保持します。
// 未保存のユーザーには既定値が返り、既定値の書き込みは行われません。
type SettingsRepository struct {
	store *store.Store

	mu    sync.Mutex
	slots map[string]*store.Slot[settings.Settings]
}

// NewSettingsRepository は SettingsRepository を生成します。
func NewSettingsRepository(s *store.Store) *SettingsRepository {
	return &SettingsRepository{store: s, slots: map[string]*store.Slot[settings.Settings]{}}
}

func (r *SettingsRepository) slotFor(email string) *store.Slot[settings.Settings] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot, ok := r.slots[email]; ok {
		return slot
	}
	slot := store.NewSlot(r.store, settingsSlotPrefix+email, settings.DefaultSettings())
	r.slots[email] = slot
	return slot
}

// Get はユーザーの設定を返します。
func (r *SettingsRepository) Get(_ context.Context, email string) (settings.Settings, error) {
	return r.slotFor(email).Current(), nil
}

// Save はユーザーの設定を丸ごと置換します。
func (r *SettingsRepository) Save(_ context.Context, email string, s settings.Settings) error {
	return r.slotFor(email).Replace(s)
}
