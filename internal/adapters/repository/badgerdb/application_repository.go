package badgerdb

import (
	"context"

	"github.com/careerhub-dev/careerhub/internal/core/application"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

const applicationsSlotKey = "applications"

// ApplicationRepository は応募コレクションを applications スロットに保持します。
type ApplicationRepository struct {
	slot *store.Slot[[]application.Application]
}

// NewApplicationRepository は ApplicationRepository を生成します。
func NewApplicationRepository(s *store.Store) *ApplicationRepository {
	return &ApplicationRepository{slot: store.NewSlot(s, applicationsSlotKey, []application.Application{})}
}

// Insert は応募をコレクションの先頭に追加します。
func (r *ApplicationRepository) Insert(_ context.Context, a *application.Application) (*application.Application, error) {
	clone := *a
	if _, err := r.slot.Update(func(apps []application.Application) []application.Application {
		return append([]application.Application{clone}, apps...)
	}); err != nil {
		return nil, err
	}
	result := clone
	return &result, nil
}

// Update は同一 ID の応募を置換します。
func (r *ApplicationRepository) Update(_ context.Context, a *application.Application) (*application.Application, error) {
	clone := *a
	found := false
	if _, err := r.slot.Update(func(apps []application.Application) []application.Application {
		next := make([]application.Application, len(apps))
		copy(next, apps)
		for i := range next {
			if next[i].ID == clone.ID {
				next[i] = clone
				found = true
			}
		}
		return next
	}); err != nil {
		return nil, err
	}
	if !found {
		return nil, application.ErrApplicationNotFound
	}
	result := clone
	return &result, nil
}

// List は応募を保存順(新しいものが先頭)で返します。
func (r *ApplicationRepository) List(_ context.Context) ([]*application.Application, error) {
	apps := r.slot.Current()
	out := make([]*application.Application, 0, len(apps))
	for i := range apps {
		clone := apps[i]
		out = append(out, &clone)
	}
	return out, nil
}

// FindByID は ID で応募を取得します。
func (r *ApplicationRepository) FindByID(_ context.Context, id string) (*application.Application, error) {
	for _, a := range r.slot.Current() {
		if a.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, application.ErrApplicationNotFound
}

// FindByJobAndApplicant は求人と応募者の組で応募を検索します。
func (r *ApplicationRepository) FindByJobAndApplicant(_ context.Context, jobID, applicantEmail string) (*application.Application, error) {
	for _, a := range r.slot.Current() {
		if a.JobID == jobID && a.ApplicantEmail == applicantEmail {
			clone := a
			return &clone, nil
		}
	}
	return nil, application.ErrApplicationNotFound
}
