package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/repos"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

// FeedbackService fronts the feedback gateway and the optimistic in-memory
// list the reflection form pushes to.
type FeedbackService interface {
	Submit(ctx context.Context, message string, emotionalState *string) (*types.Feedback, error)
	List(ctx context.Context) ([]*types.Feedback, error)
	// SubmitLocal appends a pending record, then forwards to the gateway in
	// the background. The forward deliberately outlives the request; failures
	// mark the record failed but are never surfaced to the submitter.
	SubmitLocal(message string, emotionalState *string) (types.LocalFeedback, error)
	LocalRecords() []types.LocalFeedback
}

type feedbackService struct {
	log  *logger.Logger
	repo repos.FeedbackRepo

	mu    sync.RWMutex
	local []types.LocalFeedback
}

// NewFeedbackService accepts a nil repo when the database is not configured;
// gateway operations then fail and local submissions settle as failed.
func NewFeedbackService(log *logger.Logger, repo repos.FeedbackRepo) FeedbackService {
	return &feedbackService{
		log:  log.With("service", "FeedbackService"),
		repo: repo,
	}
}

func (fs *feedbackService) Submit(ctx context.Context, message string, emotionalState *string) (*types.Feedback, error) {
	if message == "" {
		return nil, &ValidationError{Msg: "Message is required"}
	}
	if fs.repo == nil {
		return nil, fmt.Errorf("feedback store unavailable")
	}
	row := &types.Feedback{Message: message, EmotionalState: emotionalState}
	created, err := fs.repo.Create(ctx, nil, []*types.Feedback{row})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (fs *feedbackService) List(ctx context.Context) ([]*types.Feedback, error) {
	if fs.repo == nil {
		return nil, fmt.Errorf("feedback store unavailable")
	}
	return fs.repo.List(ctx, nil)
}

func (fs *feedbackService) SubmitLocal(message string, emotionalState *string) (types.LocalFeedback, error) {
	if message == "" {
		return types.LocalFeedback{}, &ValidationError{Msg: "Message is required"}
	}
	record := types.LocalFeedback{
		LocalID:        uuid.NewString(),
		Message:        message,
		EmotionalState: emotionalState,
		Status:         types.SubmissionPending,
		CreatedAt:      time.Now(),
	}
	fs.mu.Lock()
	fs.local = append(fs.local, record)
	fs.mu.Unlock()

	go fs.forward(record.LocalID, message, emotionalState)
	return record, nil
}

func (fs *feedbackService) forward(localID, message string, emotionalState *string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := types.SubmissionConfirmed
	if _, err := fs.Submit(ctx, message, emotionalState); err != nil {
		fs.log.Debug("feedback forward failed", "error", err)
		status = types.SubmissionFailed
	}
	fs.setStatus(localID, status)
}

func (fs *feedbackService) setStatus(localID string, status types.SubmissionStatus) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i := range fs.local {
		if fs.local[i].LocalID == localID {
			fs.local[i].Status = status
			return
		}
	}
}

func (fs *feedbackService) LocalRecords() []types.LocalFeedback {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]types.LocalFeedback, len(fs.local))
	copy(out, fs.local)
	return out
}
