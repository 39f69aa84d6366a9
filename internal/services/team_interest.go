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

// TeamInterestInput is the union of the two historical body shapes for a lead
// submission. Canonicalize maps the endpoint-variant aliases (interestType,
// position, comments, contactPermission) onto the canonical columns; the
// canonical field wins when both are set.
type TeamInterestInput struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	InterestType      string `json:"interestType"`
	Organization      string `json:"organization"`
	Position          string `json:"position"`
	Contribution      string `json:"contribution"`
	Comments          string `json:"comments"`
	Excitement        string `json:"excitement"`
	Skills            string `json:"skills"`
	Phone             string `json:"phone"`
	WantsUpdates      bool   `json:"wantsUpdates"`
	ContactPermission bool   `json:"contactPermission"`
}

func (in TeamInterestInput) Canonicalize() types.TeamInterest {
	row := types.TeamInterest{
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		Organization: in.Organization,
		Contribution: in.Contribution,
		Excitement:   in.Excitement,
		Skills:       in.Skills,
		Phone:        in.Phone,
		WantsUpdates: in.WantsUpdates || in.ContactPermission,
	}
	if row.Role == "" {
		row.Role = in.InterestType
	}
	if row.Contribution == "" {
		row.Contribution = in.Comments
	}
	if row.Skills == "" {
		row.Skills = in.Position
	}
	return row
}

// TeamInterestService fronts the team-interest gateway and the optimistic
// in-memory list behind the public lead-capture form.
type TeamInterestService interface {
	Submit(ctx context.Context, in TeamInterestInput) (*types.TeamInterest, error)
	List(ctx context.Context) ([]*types.TeamInterest, error)
	SubmitLocal(in TeamInterestInput) (types.LocalTeamInterest, error)
	LocalRecords() []types.LocalTeamInterest
}

type teamInterestService struct {
	log  *logger.Logger
	repo repos.TeamInterestRepo

	mu    sync.RWMutex
	local []types.LocalTeamInterest
}

func NewTeamInterestService(log *logger.Logger, repo repos.TeamInterestRepo) TeamInterestService {
	return &teamInterestService{
		log:  log.With("service", "TeamInterestService"),
		repo: repo,
	}
}

func validateLead(in TeamInterestInput) error {
	if in.Name == "" || in.Email == "" {
		return &ValidationError{Msg: "Name and email are required"}
	}
	return nil
}

func (ts *teamInterestService) Submit(ctx context.Context, in TeamInterestInput) (*types.TeamInterest, error) {
	if err := validateLead(in); err != nil {
		return nil, err
	}
	if ts.repo == nil {
		return nil, fmt.Errorf("team interest store unavailable")
	}
	row := in.Canonicalize()
	created, err := ts.repo.Create(ctx, nil, []*types.TeamInterest{&row})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (ts *teamInterestService) List(ctx context.Context) ([]*types.TeamInterest, error) {
	if ts.repo == nil {
		return nil, fmt.Errorf("team interest store unavailable")
	}
	return ts.repo.List(ctx, nil)
}

func (ts *teamInterestService) SubmitLocal(in TeamInterestInput) (types.LocalTeamInterest, error) {
	if err := validateLead(in); err != nil {
		return types.LocalTeamInterest{}, err
	}
	row := in.Canonicalize()
	record := types.LocalTeamInterest{
		LocalID:      uuid.NewString(),
		Name:         row.Name,
		Email:        row.Email,
		Role:         row.Role,
		Organization: row.Organization,
		Contribution: row.Contribution,
		Excitement:   row.Excitement,
		Skills:       row.Skills,
		WantsUpdates: row.WantsUpdates,
		Phone:        row.Phone,
		Status:       types.SubmissionPending,
		CreatedAt:    time.Now(),
	}
	ts.mu.Lock()
	ts.local = append(ts.local, record)
	ts.mu.Unlock()

	go ts.forward(record.LocalID, in)
	return record, nil
}

func (ts *teamInterestService) forward(localID string, in TeamInterestInput) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := types.SubmissionConfirmed
	if _, err := ts.Submit(ctx, in); err != nil {
		ts.log.Debug("team interest forward failed", "error", err)
		status = types.SubmissionFailed
	}
	ts.setStatus(localID, status)
}

func (ts *teamInterestService) setStatus(localID string, status types.SubmissionStatus) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for i := range ts.local {
		if ts.local[i].LocalID == localID {
			ts.local[i].Status = status
			return
		}
	}
}

func (ts *teamInterestService) LocalRecords() []types.LocalTeamInterest {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	out := make([]types.LocalTeamInterest, len(ts.local))
	copy(out, ts.local)
	return out
}
