package badgerdb

import (
	"context"

	"github.com/careerhub-dev/careerhub/internal/core/cv"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

const cvsSlotKey = "cvs"

// CVRepository は履歴書コレクションを cvs スロットに保持します。
type CVRepository struct {
	slot *store.Slot[[]cv.CV]
}

// NewCVRepository は CVRepository を生成します。
func NewCVRepository(s *store.Store) *CVRepository {
	return &CVRepository{slot: store.NewSlot(s, cvsSlotKey, []cv.CV{})}
}

// Insert は履歴書をコレクションの先頭に追加します。
func (r *CVRepository) Insert(_ context.Context, c *cv.CV) (*cv.CV, error) {
	clone := *c
	if _, err := r.slot.Update(func(cvs []cv.CV) []cv.CV {
		return append([]cv.CV{clone}, cvs...)
	}); err != nil {
		return nil, err
	}
	result := clone
	return &result, nil
}

// Remove は ID が一致する履歴書を取り除きます。
func (r *CVRepository) Remove(_ context.Context, id string) error {
	found := false
	if _, err := r.slot.Update(func(cvs []cv.CV) []cv.CV {
		next := make([]cv.CV, 0, len(cvs))
		for _, c := range cvs {
			if c.ID == id {
				found = true
				continue
			}
			next = append(next, c)
		}
		return next
	}); err != nil {
		return err
	}
	if !found {
		return cv.ErrCVNotFound
	}
	return nil
}

// List は履歴書を保存順(新しいものが先頭)で返します。
func (r *CVRepository) List(_ context.Context) ([]*cv.CV, error) {
	cvs := r.slot.Current()
	out := make([]*cv.CV, 0, len(cvs))
	for i := range cvs {
		clone := cvs[i]
		out = append(out, &clone)
	}
	return out, nil
}

// FindByID は ID で履歴書を取得します。
func (r *CVRepository) FindByID(_ context.Context, id string) (*cv.CV, error) {
	for _, c := range r.slot.Current() {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, cv.ErrCVNotFound
}
