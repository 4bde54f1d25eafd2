package badgerdb

import (
	"context"
	"sync"

	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

const savedJobsSlotPrefix = "savedJobs:"

// SavedJobsRepository は保存済み求人 ID 集合をメールアドレスごとの
// スロットに保持します。スロットは初回アクセス時に遅延生成されます。
type SavedJobsRepository struct {
	store *store.Store

	mu    sync.Mutex
	slots map[string]*store.Slot[[]string]
}

// NewSavedJobsRepository は SavedJobsRepository を生成します。
func NewSavedJobsRepository(s *store.Store) *SavedJobsRepository {
	return &SavedJobsRepository{store: s, slots: map[string]*store.Slot[[]string]{}}
}

func (r *SavedJobsRepository) slotFor(ownerEmail string) *store.Slot[[]string] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot, ok := r.slots[ownerEmail]; ok {
		return slot
	}
	slot := store.NewSlot(r.store, savedJobsSlotPrefix+ownerEmail, []string{})
	r.slots[ownerEmail] = slot
	return slot
}

// IDs は保存済み求人 ID を保存順で返します。
func (r *SavedJobsRepository) IDs(_ context.Context, ownerEmail string) ([]string, error) {
	ids := r.slotFor(ownerEmail).Current()
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

// ReplaceIDs は保存済み求人 ID 集合を丸ごと置換します。
func (r *SavedJobsRepository) ReplaceIDs(_ context.Context, ownerEmail string, ids []string) error {
	clone := make([]string, len(ids))
	copy(clone, ids)
	return r.slotFor(ownerEmail).Replace(clone)
}
