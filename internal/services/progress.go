package services

import (
	"fmt"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

// ProgressService records module completions. One record per completion
// action; idempotency is the caller's responsibility.
type ProgressService interface {
	Complete(moduleID string, groupName string) (types.Progress, error)
	List() []types.Progress
}

type progressService struct {
	log   *logger.Logger
	store catalog.Store
	plog  catalog.ProgressLog
}

func NewProgressService(log *logger.Logger, store catalog.Store, plog catalog.ProgressLog) ProgressService {
	return &progressService{
		log:   log.With("service", "ProgressService"),
		store: store,
		plog:  plog,
	}
}

func (ps *progressService) Complete(moduleID string, groupName string) (types.Progress, error) {
	m, ok := ps.store.Get(moduleID)
	if !ok {
		return types.Progress{}, fmt.Errorf("%w: %q", ErrModuleNotFound, moduleID)
	}
	if groupName == "" {
		groupName = "Classroom"
	}
	record := ps.plog.Append(types.Progress{
		ModuleID:           m.ID,
		GroupName:          groupName,
		Completed:          true,
		TimeWatchedMinutes: m.DurationMinutes,
	})
	return record, nil
}

func (ps *progressService) List() []types.Progress {
	return ps.plog.List()
}
