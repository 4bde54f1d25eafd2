package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/careerhub-dev/careerhub/internal/core/user"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type stubUsers struct {
	user *user.User
	err  error
}

func (s stubUsers) Current(_ context.Context) (*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	copy := *s.user
	return &copy, nil
}

type fakeRepo struct {
	jobs []*Job
}

func (r *fakeRepo) Insert(_ context.Context, j *Job) (*Job, error) {
	copy := *j
	r.jobs = append([]*Job{&copy}, r.jobs...)
	result := copy
	return &result, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*Job, error) {
	out := make([]*Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		copy := *j
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Job, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			copy := *j
			return &copy, nil
		}
	}
	return nil, ErrJobNotFound
}

type fakeSaved struct {
	ids map[string][]string
}

func newFakeSaved() *fakeSaved {
	return &fakeSaved{ids: make(map[string][]string)}
}

func (r *fakeSaved) IDs(_ context.Context, ownerEmail string) ([]string, error) {
	return append([]string(nil), r.ids[ownerEmail]...), nil
}

func (r *fakeSaved) ReplaceIDs(_ context.Context, ownerEmail string, ids []string) error {
	r.ids[ownerEmail] = append([]string(nil), ids...)
	return nil
}

func hrUser() *user.User {
	return &user.User{Email: "hr@co.com", Name: "Hana", Role: user.RoleHR}
}

func employeeUser() *user.User {
	return &user.User{Email: "e@co.com", Name: "Eiji", Role: user.RoleEmployee}
}

func TestService_PostJob_Success(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	svc := NewService(repo, newFakeSaved(), stubUsers{user: hrUser()}, stubClock{now: now})

	created, err := svc.PostJob(context.Background(), PostJobInput{
		Title:   "  UX Designer ",
		Company: "Co",
		Type:    TypeFullTime,
		Salary:  "¥6M",
	})
	if err != nil {
		t.Fatalf("PostJob returned error: %v", err)
	}

	if created.Title != "UX Designer" {
		t.Errorf("expected trimmed title, got %q", created.Title)
	}

	wantID := "1785578400000"
	if created.ID != wantID {
		t.Errorf("expected creation-timestamp id %s, got %s", wantID, created.ID)
	}

	if created.HREmail != "hr@co.com" || created.HRName != "Hana" {
		t.Errorf("expected owner fields from actor, got %s/%s", created.HREmail, created.HRName)
	}
}

func TestService_PostJob_NewestFirst(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	clk := &mutableClock{now: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)}
	svc := NewService(repo, newFakeSaved(), stubUsers{user: hrUser()}, clk)

	if _, err := svc.PostJob(context.Background(), PostJobInput{Title: "First", Company: "Co", Type: TypeContract}); err != nil {
		t.Fatalf("PostJob returned error: %v", err)
	}

	clk.now = clk.now.Add(time.Minute)
	if _, err := svc.PostJob(context.Background(), PostJobInput{Title: "Second", Company: "Co", Type: TypeContract}); err != nil {
		t.Fatalf("PostJob returned error: %v", err)
	}

	jobs, err := svc.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}

	if len(jobs) != 2 || jobs[0].Title != "Second" {
		t.Fatalf("expected newest job first, got %+v", jobs)
	}
}

type mutableClock struct {
	now time.Time
}

func (c *mutableClock) Now() time.Time {
	return c.now
}

func TestService_PostJob_RequiresHRRole(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{}, newFakeSaved(), stubUsers{user: employeeUser()}, nil)

	_, err := svc.PostJob(context.Background(), PostJobInput{Title: "T", Company: "C", Type: TypeFullTime})
	if !errors.Is(err, ErrNotHR) {
		t.Fatalf("expected ErrNotHR, got %v", err)
	}
}

func TestService_PostJob_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{}, newFakeSaved(), stubUsers{user: hrUser()}, nil)
	ctx := context.Background()

	if _, err := svc.PostJob(ctx, PostJobInput{Company: "C", Type: TypeFullTime}); !errors.Is(err, ErrInvalidTitle) {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}

	if _, err := svc.PostJob(ctx, PostJobInput{Title: "T", Type: TypeFullTime}); !errors.Is(err, ErrInvalidCompany) {
		t.Fatalf("expected ErrInvalidCompany, got %v", err)
	}

	if _, err := svc.PostJob(ctx, PostJobInput{Title: "T", Company: "C", Type: Type("Freelance")}); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestService_SaveJob_Dedupes(t *testing.T) {
	t.Parallel()

	saved := newFakeSaved()
	svc := NewService(&fakeRepo{}, saved, stubUsers{user: employeeUser()}, nil)
	ctx := context.Background()

	ids, err := svc.SaveJob(ctx, "100")
	if err != nil {
		t.Fatalf("SaveJob returned error: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 saved id, got %d", len(ids))
	}

	ids, err = svc.SaveJob(ctx, "100")
	if err != nil {
		t.Fatalf("SaveJob returned error: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("duplicate save must be a no-op, got %d ids", len(ids))
	}

	ids, err = svc.SaveJob(ctx, "200")
	if err != nil {
		t.Fatalf("SaveJob returned error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "200" {
		t.Fatalf("expected newest id first, got %v", ids)
	}
}

func TestService_SaveJob_ScopedPerUser(t *testing.T) {
	t.Parallel()

	saved := newFakeSaved()
	ctx := context.Background()

	if _, err := NewService(&fakeRepo{}, saved, stubUsers{user: employeeUser()}, nil).SaveJob(ctx, "100"); err != nil {
		t.Fatalf("SaveJob returned error: %v", err)
	}

	ids, err := NewService(&fakeRepo{}, saved, stubUsers{user: hrUser()}, nil).SavedIDs(ctx)
	if err != nil {
		t.Fatalf("SavedIDs returned error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("saved jobs must be keyed per user, got %v", ids)
	}
}

func TestService_UnsaveJob(t *testing.T) {
	t.Parallel()

	saved := newFakeSaved()
	svc := NewService(&fakeRepo{}, saved, stubUsers{user: employeeUser()}, nil)
	ctx := context.Background()

	if _, err := svc.SaveJob(ctx, "100"); err != nil {
		t.Fatalf("SaveJob returned error: %v", err)
	}

	ids, err := svc.UnsaveJob(ctx, "100")
	if err != nil {
		t.Fatalf("UnsaveJob returned error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty ids, got %v", ids)
	}

	// 未保存 ID の削除は何も変更しない。
	if _, err := svc.UnsaveJob(ctx, "999"); err != nil {
		t.Fatalf("UnsaveJob returned error: %v", err)
	}
}

func TestService_SavedJobs_SkipsMissingReferences(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{jobs: []*Job{{ID: "100", Title: "Live"}}}
	saved := newFakeSaved()
	saved.ids["e@co.com"] = []string{"100", "404"}

	svc := NewService(repo, saved, stubUsers{user: employeeUser()}, nil)

	jobs, err := svc.SavedJobs(context.Background())
	if err != nil {
		t.Fatalf("SavedJobs returned error: %v", err)
	}

	if len(jobs) != 1 || jobs[0].ID != "100" {
		t.Fatalf("expected dangling reference to be skipped, got %+v", jobs)
	}
}

func TestService_GetJob_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{}, newFakeSaved(), stubUsers{user: hrUser()}, nil)

	if _, err := svc.GetJob(context.Background(), "missing"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
