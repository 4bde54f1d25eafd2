package cv

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fakeRepo struct {
	cvs []*CV
}

func (r *fakeRepo) Insert(_ context.Context, c *CV) (*CV, error) {
	copy := *c
	r.cvs = append([]*CV{&copy}, r.cvs...)
	result := copy
	return &result, nil
}

func (r *fakeRepo) Remove(_ context.Context, id string) error {
	for i, c := range r.cvs {
		if c.ID == id {
			r.cvs = append(r.cvs[:i], r.cvs[i+1:]...)
			return nil
		}
	}
	return ErrCVNotFound
}

func (r *fakeRepo) List(_ context.Context) ([]*CV, error) {
	out := make([]*CV, 0, len(r.cvs))
	for _, c := range r.cvs {
		copy := *c
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*CV, error) {
	for _, c := range r.cvs {
		if c.ID == id {
			copy := *c
			return &copy, nil
		}
	}
	return nil, ErrCVNotFound
}

func TestService_AddCV_Success(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	svc := NewService(repo, stubClock{now: now})

	created, err := svc.AddCV(context.Background(), AddCVInput{Name: " Designer CV ", Tag: "design", Link: "https://example.com/cv.pdf"})
	if err != nil {
		t.Fatalf("AddCV returned error: %v", err)
	}

	if created.Name != "Designer CV" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
	if created.UpdatedAt != now {
		t.Errorf("expected UpdatedAt from clock, got %v", created.UpdatedAt)
	}
}

func TestService_AddCV_RequiresName(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{}, nil)

	if _, err := svc.AddCV(context.Background(), AddCVInput{Name: "  "}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestService_RemoveCV(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{cvs: []*CV{{ID: "C1", Name: "CV"}}}
	svc := NewService(repo, nil)

	if err := svc.RemoveCV(context.Background(), "C1"); err != nil {
		t.Fatalf("RemoveCV returned error: %v", err)
	}

	if len(repo.cvs) != 0 {
		t.Fatalf("expected empty collection, got %d", len(repo.cvs))
	}

	if err := svc.RemoveCV(context.Background(), "C1"); !errors.Is(err, ErrCVNotFound) {
		t.Fatalf("expected ErrCVNotFound, got %v", err)
	}
}

func TestService_ListCVs_NewestFirst(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	clk := &mutableClock{now: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)}
	svc := NewService(repo, clk)
	ctx := context.Background()

	if _, err := svc.AddCV(ctx, AddCVInput{Name: "First"}); err != nil {
		t.Fatalf("AddCV returned error: %v", err)
	}

	clk.now = clk.now.Add(time.Second)
	if _, err := svc.AddCV(ctx, AddCVInput{Name: "Second"}); err != nil {
		t.Fatalf("AddCV returned error: %v", err)
	}

	cvs, err := svc.ListCVs(ctx)
	if err != nil {
		t.Fatalf("ListCVs returned error: %v", err)
	}

	if len(cvs) != 2 || cvs[0].Name != "Second" {
		t.Fatalf("expected newest cv first, got %+v", cvs)
	}
}

func TestService_GetCV(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{cvs: []*CV{{ID: "C1", Name: "Designer CV"}}}
	svc := NewService(repo, nil)
	ctx := context.Background()

	found, err := svc.GetCV(ctx, "C1")
	if err != nil {
		t.Fatalf("GetCV returned error: %v", err)
	}
	if found.Name != "Designer CV" {
		t.Errorf("expected stored cv, got %+v", found)
	}

	if _, err := svc.GetCV(ctx, "missing"); !errors.Is(err, ErrCVNotFound) {
		t.Fatalf("expected ErrCVNotFound, got %v", err)
	}
}

type mutableClock struct {
	now time.Time
}

func (c *mutableClock) Now() time.Time {
	return c.now
}
