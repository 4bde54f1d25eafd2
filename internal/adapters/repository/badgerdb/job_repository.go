package badgerdb

import (
	"context"

	"github.com/careerhub-dev/careerhub/internal/core/job"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

const jobsSlotKey = "jobs"

// JobRepository は求人コレクションを jobs スロットに保持します。
type JobRepository struct {
	slot *store.Slot[[]job.Job]
}

// NewJobRepository は JobRepository を生成します。
func NewJobRepository(s *store.Store) *JobRepository {
	return &JobRepository{slot: store.NewSlot(s, jobsSlotKey, []job.Job{})}
}

// Insert は求人をコレクションの先頭に追加します。
func (r *JobRepository) Insert(_ context.Context, j *job.Job) (*job.Job, error) {
	clone := *j
	if _, err := r.slot.Update(func(jobs []job.Job) []job.Job {
		return append([]job.Job{clone}, jobs...)
	}); err != nil {
		return nil, err
	}
	result := clone
	return &result, nil
}

// List は求人を保存順(新しいものが先頭)で返します。
func (r *JobRepository) List(_ context.Context) ([]*job.Job, error) {
	jobs := r.slot.Current()
	out := make([]*job.Job, 0, len(jobs))
	for i := range jobs {
		clone := jobs[i]
		out = append(out, &clone)
	}
	return out, nil
}

// FindByID は ID で求人を取得します。
func (r *JobRepository) FindByID(_ context.Context, id string) (*job.Job, error) {
	for _, j := range r.slot.Current() {
		if j.ID == id {
			clone := j
			return &clone, nil
		}
	}
	return nil, job.ErrJobNotFound
}
