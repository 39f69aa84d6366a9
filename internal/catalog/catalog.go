package catalog

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saladbowl/saladbowl-backend/internal/types"
)

// Store is the catalog contract. The in-memory implementation below is the
// only one in use; keeping the interface narrow means a database-backed
// variant can slot in without touching the services.
type Store interface {
	Modules() []types.Module
	Get(id string) (types.Module, bool)
	Insert(m types.Module)
	Update(id string, mutate func(*types.Module)) bool
	Delete(id string) bool
	Journeys() []types.Journey
}

// ProgressLog holds completion records. Append-only.
type ProgressLog interface {
	Append(p types.Progress) types.Progress
	List() []types.Progress
}

type memoryStore struct {
	mu       sync.RWMutex
	modules  []types.Module
	journeys []types.Journey
}

// NewMemoryStore builds a catalog from the given seed. Module order is
// preserved as given; it is the catalog order every listing follows.
func NewMemoryStore(modules []types.Module, journeys []types.Journey) Store {
	s := &memoryStore{
		modules:  make([]types.Module, len(modules)),
		journeys: make([]types.Journey, len(journeys)),
	}
	copy(s.modules, modules)
	copy(s.journeys, journeys)
	return s
}

func (s *memoryStore) Modules() []types.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Module, len(s.modules))
	copy(out, s.modules)
	return out
}

func (s *memoryStore) Get(id string) (types.Module, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.modules {
		if m.ID == id {
			return m, true
		}
	}
	return types.Module{}, false
}

func (s *memoryStore) Insert(m types.Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modules = append(s.modules, m)
}

func (s *memoryStore) Update(id string, mutate func(*types.Module)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.modules {
		if s.modules[i].ID == id {
			mutate(&s.modules[i])
			return true
		}
	}
	return false
}

func (s *memoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.modules {
		if s.modules[i].ID == id {
			s.modules = append(s.modules[:i], s.modules[i+1:]...)
			return true
		}
	}
	return false
}

func (s *memoryStore) Journeys() []types.Journey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Journey, len(s.journeys))
	copy(out, s.journeys)
	return out
}

type memoryProgressLog struct {
	mu      sync.RWMutex
	records []types.Progress
}

func NewMemoryProgressLog() ProgressLog {
	return &memoryProgressLog{}
}

func (l *memoryProgressLog) Append(p types.Progress) types.Progress {
	l.mu.Lock()
	defer l.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	l.records = append(l.records, p)
	return p
}

func (l *memoryProgressLog) List() []types.Progress {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]types.Progress, len(l.records))
	copy(out, l.records)
	return out
}
