package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

// TeacherStats aggregates classroom engagement from the progress log.
type TeacherStats struct {
	SessionsCompleted int                       `json:"sessionsCompleted"`
	TotalMinutes      int                       `json:"totalMinutes"`
	ModulesEngaged    int                       `json:"modulesEngaged"`
	TopModules        []ModuleCompletionCount   `json:"topModules"`
	EngagementByType  map[types.ContentType]int `json:"engagementByType"`
}

type ModuleCompletionCount struct {
	ModuleID string `json:"moduleId"`
	Title    string `json:"title"`
	Count    int    `json:"count"`
}

// MergedFeedback is a feedback row from either the database or the optimistic
// in-memory list, for the admin view.
type MergedFeedback struct {
	ID             string                 `json:"id"`
	Message        string                 `json:"message"`
	EmotionalState *string                `json:"emotionalState"`
	Status         types.SubmissionStatus `json:"status"`
	CreatedAt      time.Time              `json:"createdAt"`
}

type MergedTeamInterest struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	Organization string                 `json:"organization"`
	WantsUpdates bool                   `json:"wantsUpdates"`
	Status       types.SubmissionStatus `json:"status"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// AdminOverview is the admin dashboard payload.
type AdminOverview struct {
	TotalModules     int                  `json:"totalModules"`
	PublishedModules int                  `json:"publishedModules"`
	Feedback         []MergedFeedback     `json:"feedback"`
	TeamInterest     []MergedTeamInterest `json:"teamInterest"`
}

type DashboardService interface {
	TeacherStats() TeacherStats
	// AdminOverview fetches the persisted feedback and lead lists
	// concurrently and merges the optimistic in-memory records in,
	// deduplicating feedback by message and leads by email. Database errors
	// degrade to the in-memory lists alone.
	AdminOverview(ctx context.Context) AdminOverview
}

type dashboardService struct {
	log      *logger.Logger
	store    catalog.Store
	progress ProgressService
	feedback FeedbackService
	team     TeamInterestService
}

func NewDashboardService(log *logger.Logger, store catalog.Store, progress ProgressService, feedback FeedbackService, team TeamInterestService) DashboardService {
	return &dashboardService{
		log:      log.With("service", "DashboardService"),
		store:    store,
		progress: progress,
		feedback: feedback,
		team:     team,
	}
}

func (ds *dashboardService) TeacherStats() TeacherStats {
	stats := TeacherStats{EngagementByType: map[types.ContentType]int{}}

	byModule := map[string]int{}
	for _, p := range ds.progress.List() {
		if !p.Completed {
			continue
		}
		stats.SessionsCompleted++
		stats.TotalMinutes += p.TimeWatchedMinutes
		byModule[p.ModuleID]++
		if m, ok := ds.store.Get(p.ModuleID); ok {
			stats.EngagementByType[m.ContentType]++
		}
	}
	stats.ModulesEngaged = len(byModule)

	counts := make([]ModuleCompletionCount, 0, len(byModule))
	for id, n := range byModule {
		title := id
		if m, ok := ds.store.Get(id); ok {
			title = m.Title
		}
		counts = append(counts, ModuleCompletionCount{ModuleID: id, Title: title, Count: n})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > 5 {
		counts = counts[:5]
	}
	stats.TopModules = counts
	return stats
}

func (ds *dashboardService) AdminOverview(ctx context.Context) AdminOverview {
	modules := ds.store.Modules()
	overview := AdminOverview{TotalModules: len(modules)}
	for _, m := range modules {
		if m.IsPublished {
			overview.PublishedModules++
		}
	}

	var dbFeedback []*types.Feedback
	var dbTeam []*types.TeamInterest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := ds.feedback.List(gctx)
		if err != nil {
			return fmt.Errorf("list feedback: %w", err)
		}
		dbFeedback = rows
		return nil
	})
	g.Go(func() error {
		rows, err := ds.team.List(gctx)
		if err != nil {
			return fmt.Errorf("list team interest: %w", err)
		}
		dbTeam = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		ds.log.Warn("admin overview using in-memory lists only", "error", err)
		dbFeedback = nil
		dbTeam = nil
	}

	overview.Feedback = mergeFeedback(dbFeedback, ds.feedback.LocalRecords())
	overview.TeamInterest = mergeTeamInterest(dbTeam, ds.team.LocalRecords())
	return overview
}

func mergeFeedback(db []*types.Feedback, local []types.LocalFeedback) []MergedFeedback {
	out := []MergedFeedback{}
	seen := map[string]bool{}
	for _, row := range db {
		seen[row.Message] = true
		out = append(out, MergedFeedback{
			ID:             fmt.Sprintf("%d", row.ID),
			Message:        row.Message,
			EmotionalState: row.EmotionalState,
			Status:         types.SubmissionConfirmed,
			CreatedAt:      row.CreatedAt,
		})
	}
	for _, record := range local {
		if seen[record.Message] {
			continue
		}
		out = append(out, MergedFeedback{
			ID:             record.LocalID,
			Message:        record.Message,
			EmotionalState: record.EmotionalState,
			Status:         record.Status,
			CreatedAt:      record.CreatedAt,
		})
	}
	return out
}

func mergeTeamInterest(db []*types.TeamInterest, local []types.LocalTeamInterest) []MergedTeamInterest {
	out := []MergedTeamInterest{}
	seen := map[string]bool{}
	for _, row := range db {
		seen[row.Email] = true
		out = append(out, MergedTeamInterest{
			ID:           fmt.Sprintf("%d", row.ID),
			Name:         row.Name,
			Email:        row.Email,
			Role:         row.Role,
			Organization: row.Organization,
			WantsUpdates: row.WantsUpdates,
			Status:       types.SubmissionConfirmed,
			CreatedAt:    row.CreatedAt,
		})
	}
	for _, record := range local {
		if seen[record.Email] {
			continue
		}
		out = append(out, MergedTeamInterest{
			ID:           record.LocalID,
			Name:         record.Name,
			Email:        record.Email,
			Role:         record.Role,
			Organization: record.Organization,
			WantsUpdates: record.WantsUpdates,
			Status:       record.Status,
			CreatedAt:    record.CreatedAt,
		})
	}
	return out
}
