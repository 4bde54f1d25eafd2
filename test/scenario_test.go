package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/careerhub-dev/careerhub/internal/adapters/repository/badgerdb"
	"github.com/careerhub-dev/careerhub/internal/core/application"
	"github.com/careerhub-dev/careerhub/internal/core/assistant"
	"github.com/careerhub-dev/careerhub/internal/core/cv"
	"github.com/careerhub-dev/careerhub/internal/core/dashboard"
	"github.com/careerhub-dev/careerhub/internal/core/event"
	"github.com/careerhub-dev/careerhub/internal/core/job"
	"github.com/careerhub-dev/careerhub/internal/core/onboarding"
	"github.com/careerhub-dev/careerhub/internal/core/user"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	s.now = s.now.Add(time.Millisecond)
	return s.now
}

func openStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(store.InMemoryConfig())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return s
}

// onboard はフローを最後まで進めて指定役割のユーザーを永続化します。
func onboard(t *testing.T, ctx context.Context, users user.Repository, clock user.Clock, email, name string, role user.Role) {
	t.Helper()

	flow, err := onboarding.NewService(ctx, users, clock)
	if err != nil {
		t.Fatalf("failed to initialize onboarding: %v", err)
	}

	if _, err := flow.SignIn(ctx, onboarding.SignInInput{Email: email}); err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if _, err := flow.CompleteProfile(ctx, onboarding.CompleteProfileInput{
		Name: name, Bio: "bio", Gender: "other",
	}); err != nil {
		t.Fatalf("CompleteProfile error: %v", err)
	}
	if _, err := flow.SelectRole(ctx, onboarding.SelectRoleInput{Role: role}); err != nil {
		t.Fatalf("SelectRole error: %v", err)
	}
}

func TestApplyFlowScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := openStore(t)
	clock := &stubClock{now: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}

	userRepo := badgerdb.NewUserRepository(kv)
	jobRepo := badgerdb.NewJobRepository(kv)
	savedRepo := badgerdb.NewSavedJobsRepository(kv)
	applicationRepo := badgerdb.NewApplicationRepository(kv)
	cvRepo := badgerdb.NewCVRepository(kv)

	// HR ユーザーとして求人を公開する
	onboard(t, ctx, userRepo, clock, "hr@co.com", "Dana", user.RoleHR)

	jobSvc := job.NewService(jobRepo, savedRepo, userRepo, clock)
	posted, err := jobSvc.PostJob(ctx, job.PostJobInput{
		Title: "UX Designer", Company: "Co", Type: job.TypeFullTime,
	})
	if err != nil {
		t.Fatalf("PostJob error: %v", err)
	}

	// 従業員に切り替えて履歴書を登録し応募する
	if err := userRepo.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	onboard(t, ctx, userRepo, clock, "e@co.com", "Eli", user.RoleEmployee)

	cvSvc := cv.NewService(cvRepo, clock)
	myCV, err := cvSvc.AddCV(ctx, cv.AddCVInput{Name: "Designer CV"})
	if err != nil {
		t.Fatalf("AddCV error: %v", err)
	}

	applicationSvc := application.NewService(applicationRepo, jobRepo, userRepo, clock)
	result, err := applicationSvc.Apply(ctx, application.ApplyInput{JobID: posted.ID, CVID: myCV.ID})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if result.Duplicate {
		t.Fatal("first apply reported as duplicate")
	}
	if result.Application.Status != application.StatusSent {
		t.Errorf("expected status sent, got %q", result.Application.Status)
	}

	apps, err := applicationRepo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected exactly one application, got %d", len(apps))
	}

	// 再応募はコレクションを変化させない
	again, err := applicationSvc.Apply(ctx, application.ApplyInput{JobID: posted.ID, CVID: myCV.ID})
	if err != nil {
		t.Fatalf("second Apply error: %v", err)
	}
	if !again.Duplicate {
		t.Error("second apply not reported as duplicate")
	}

	apps, err = applicationRepo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected collection length unchanged, got %d", len(apps))
	}
}

func TestAssistantScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := openStore(t)
	clock := &stubClock{now: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}

	userRepo := badgerdb.NewUserRepository(kv)
	eventRepo := badgerdb.NewEventRepository(kv)

	onboard(t, ctx, userRepo, clock, "hr@co.com", "Dana", user.RoleHR)

	eventSvc := event.NewService(eventRepo, userRepo, clock)
	assistantSvc := assistant.NewService(eventSvc)

	reply, err := assistantSvc.Respond(ctx, "any interviews?")
	if err != nil {
		t.Fatalf("Respond error: %v", err)
	}
	if !strings.Contains(reply, "no interviews") {
		t.Errorf("expected no-interviews reply, got %q", reply)
	}

	if _, err := eventSvc.CreateEvent(ctx, event.CreateEventInput{
		Title: "Sync", Date: "2026-08-28", Time: "10:00", Type: event.TypeInterview,
	}); err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}

	reply, err = assistantSvc.Respond(ctx, "any interviews?")
	if err != nil {
		t.Fatalf("Respond error: %v", err)
	}
	for _, fragment := range []string{"1", "Sync", "10:00"} {
		if !strings.Contains(reply, fragment) {
			t.Errorf("expected reply to contain %q, got %q", fragment, reply)
		}
	}
}

func TestDashboardScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := openStore(t)
	clock := &stubClock{now: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}

	userRepo := badgerdb.NewUserRepository(kv)
	jobRepo := badgerdb.NewJobRepository(kv)
	savedRepo := badgerdb.NewSavedJobsRepository(kv)
	applicationRepo := badgerdb.NewApplicationRepository(kv)
	eventRepo := badgerdb.NewEventRepository(kv)

	onboard(t, ctx, userRepo, clock, "hr@co.com", "Dana", user.RoleHR)

	jobSvc := job.NewService(jobRepo, savedRepo, userRepo, clock)
	if _, err := jobSvc.PostJob(ctx, job.PostJobInput{Title: "UX Designer", Company: "Co", Type: job.TypeFullTime}); err != nil {
		t.Fatalf("PostJob error: %v", err)
	}

	eventSvc := event.NewService(eventRepo, userRepo, clock)
	if _, err := eventSvc.CreateEvent(ctx, event.CreateEventInput{
		Title: "Final round", Date: "2001-01-01", Time: "10:00", Type: event.TypeInterview,
	}); err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}

	dashboardSvc := dashboard.NewService(jobRepo, applicationRepo, eventSvc)
	summary, err := dashboardSvc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}

	// 過去日付の面接でも件数に含まれる
	want := dashboard.Summary{ActiveJobs: 1, PendingApplications: 0, InterviewsToday: 1}
	if summary != want {
		t.Errorf("expected %+v, got %+v", want, summary)
	}
}
