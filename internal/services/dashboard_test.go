package services

import (
	"context"
	"testing"
	"time"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

func dashboardFixture(t *testing.T) (DashboardService, ProgressService) {
	t.Helper()
	store := catalog.NewMemoryStore([]types.Module{
		{ID: "m1", Title: "Box Breathing", DurationMinutes: 5, ContentType: types.TypeQuickSkill, AgeLevel: types.AgeMiddle, EnergyLevel: types.EnergyCalm, IsPublished: true},
		{ID: "m2", Title: "Shake It Out", DurationMinutes: 8, ContentType: types.TypeQuickSkill, AgeLevel: types.AgeMiddle, EnergyLevel: types.EnergyActive, IsPublished: true},
		{ID: "m3", Title: "Draft", DurationMinutes: 20, ContentType: types.TypeSkillJourney, AgeLevel: types.AgeHigh, EnergyLevel: types.EnergyFocused},
	}, nil)
	progress := NewProgressService(logger.Nop(), store, catalog.NewMemoryProgressLog())
	feedback := NewFeedbackService(logger.Nop(), nil)
	team := NewTeamInterestService(logger.Nop(), nil)
	return NewDashboardService(logger.Nop(), store, progress, feedback, team), progress
}

func TestTeacherStats(t *testing.T) {
	svc, progress := dashboardFixture(t)

	for i := 0; i < 3; i++ {
		if _, err := progress.Complete("m1", "Room 4"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := progress.Complete("m2", "Room 4"); err != nil {
		t.Fatal(err)
	}

	stats := svc.TeacherStats()
	if stats.SessionsCompleted != 4 {
		t.Fatalf("sessions = %d, want 4", stats.SessionsCompleted)
	}
	if stats.TotalMinutes != 3*5+8 {
		t.Fatalf("minutes = %d, want 23", stats.TotalMinutes)
	}
	if stats.ModulesEngaged != 2 {
		t.Fatalf("modules engaged = %d, want 2", stats.ModulesEngaged)
	}
	if len(stats.TopModules) != 2 || stats.TopModules[0].ModuleID != "m1" || stats.TopModules[0].Count != 3 {
		t.Fatalf("top modules = %+v", stats.TopModules)
	}
	if stats.TopModules[0].Title != "Box Breathing" {
		t.Fatalf("top module title = %q", stats.TopModules[0].Title)
	}
	if stats.EngagementByType[types.TypeQuickSkill] != 4 {
		t.Fatalf("engagement = %+v", stats.EngagementByType)
	}
}

func TestTeacherStatsEmpty(t *testing.T) {
	svc, _ := dashboardFixture(t)

	stats := svc.TeacherStats()
	if stats.SessionsCompleted != 0 || stats.TotalMinutes != 0 || stats.ModulesEngaged != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(stats.TopModules) != 0 {
		t.Fatalf("top modules = %+v", stats.TopModules)
	}
}

func TestAdminOverviewDegradesWithoutDatabase(t *testing.T) {
	svc, _ := dashboardFixture(t)

	overview := svc.AdminOverview(context.Background())
	if overview.TotalModules != 3 {
		t.Fatalf("total modules = %d, want 3", overview.TotalModules)
	}
	if overview.PublishedModules != 2 {
		t.Fatalf("published modules = %d, want 2", overview.PublishedModules)
	}
	if len(overview.Feedback) != 0 || len(overview.TeamInterest) != 0 {
		t.Fatalf("expected empty lists, got %+v / %+v", overview.Feedback, overview.TeamInterest)
	}
}

func TestMergeFeedbackDeduplicatesByMessage(t *testing.T) {
	state := "calm"
	db := []*types.Feedback{
		{ID: 1, Message: "loved it", EmotionalState: &state, CreatedAt: time.Now()},
	}
	local := []types.LocalFeedback{
		{LocalID: "local-1", Message: "loved it", Status: types.SubmissionPending},
		{LocalID: "local-2", Message: "too short", Status: types.SubmissionFailed},
	}

	merged := mergeFeedback(db, local)
	if len(merged) != 2 {
		t.Fatalf("merged len = %d, want 2", len(merged))
	}
	if merged[0].ID != "1" || merged[0].Status != types.SubmissionConfirmed {
		t.Fatalf("db row = %+v", merged[0])
	}
	if merged[1].ID != "local-2" || merged[1].Status != types.SubmissionFailed {
		t.Fatalf("local row = %+v", merged[1])
	}
}

func TestMergeTeamInterestDeduplicatesByEmail(t *testing.T) {
	db := []*types.TeamInterest{
		{ID: 7, Name: "Dana", Email: "dana@school.org", Role: "teacher", WantsUpdates: true},
	}
	local := []types.LocalTeamInterest{
		{LocalID: "local-1", Name: "Dana D", Email: "dana@school.org", Status: types.SubmissionConfirmed},
		{LocalID: "local-2", Name: "Sam", Email: "sam@school.org", Status: types.SubmissionPending},
	}

	merged := mergeTeamInterest(db, local)
	if len(merged) != 2 {
		t.Fatalf("merged len = %d, want 2", len(merged))
	}
	if merged[0].ID != "7" || merged[0].Status != types.SubmissionConfirmed {
		t.Fatalf("db row = %+v", merged[0])
	}
	if merged[1].Email != "sam@school.org" || merged[1].Status != types.SubmissionPending {
		t.Fatalf("local row = %+v", merged[1])
	}
}
