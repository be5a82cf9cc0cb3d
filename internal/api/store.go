package api

import (
	"sort"
	"sync"
	"time"

	"github.com/attachlab/ecr/internal/services"
)

// memoryStore is the in-memory Store used by default and in tests. The
// mutex guards the maps; the session service serializes mutations of the
// assessments themselves.
type memoryStore struct {
	mu          sync.RWMutex
	assessments map[string]*services.Assessment
	results     []*services.ArchivedResult
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{assessments: map[string]*services.Assessment{}}
}

func (s *memoryStore) PutAssessment(a *services.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments[a.ID] = a
	return nil
}

func (s *memoryStore) GetAssessment(id string) (*services.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assessments[id], nil
}

func (s *memoryStore) DeleteAssessment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assessments, id)
	return nil
}

func (s *memoryStore) ArchiveResult(rec *services.ArchivedResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, rec)
	return nil
}

func (s *memoryStore) ListResults() ([]*services.ArchivedResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*services.ArchivedResult, len(s.results))
	copy(out, s.results)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out, nil
}

func (s *memoryStore) DeleteResultsBefore(cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	kept := make([]*services.ArchivedResult, 0, len(s.results))
	for _, r := range s.results {
		if r.CompletedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.results = kept
	return removed, nil
}

func (s *memoryStore) DeleteIdleAssessments(cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, a := range s.assessments {
		if !a.IsCompleted && a.UpdatedAt.Before(cutoff) {
			delete(s.assessments, id)
			removed++
		}
	}
	return removed, nil
}
