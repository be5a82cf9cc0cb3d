package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Assessment is one test-taking session: 36 optional answers plus
// lifecycle timestamps and, once completed and scored, the attached result.
type Assessment struct {
	ID          string       `json:"id"`
	Responses   *ResponseSet `json:"responses"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	IsCompleted bool         `json:"is_completed"`
	Result      *Result      `json:"result,omitempty"`
}

// ArchivedResult is the durable record written when a result is attached
// to a completed assessment. Immutable once stored.
type ArchivedResult struct {
	AssessmentID string          `json:"assessment_id"`
	Anxious      float64         `json:"anxious"`
	Avoidant     float64         `json:"avoidant"`
	Style        AttachmentStyle `json:"style"`
	Result       *Result         `json:"result"`
	CompletedAt  time.Time       `json:"completed_at"`
	ArchivedAt   time.Time       `json:"archived_at"`
}

// clone copies the assessment and its response set so mutations never
// touch the published object. Result and CompletedAt are replaced
// wholesale on write, never mutated through, so sharing them is safe.
func (a *Assessment) clone() *Assessment {
	out := *a
	if a.Responses != nil {
		rs := *a.Responses
		out.Responses = &rs
	}
	return &out
}

// SessionStore abstracts persistence for assessment sessions and archived
// results.
type SessionStore interface {
	PutAssessment(a *Assessment) error
	GetAssessment(id string) (*Assessment, error)
	DeleteAssessment(id string) error
	ArchiveResult(rec *ArchivedResult) error
}

// SessionService manages assessment sessions keyed by id. One session per
// issued id; starting a new assessment never disturbs others. A single
// mutex serializes mutating calls, and every mutation goes through a
// private copy that replaces the stored assessment, so concurrent readers
// never observe a half-applied write.
type SessionService struct {
	store SessionStore
	mu    sync.Mutex
	now   func() time.Time
	idGen func() string
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: newAssessmentID,
	}
}

// newAssessmentID builds a time-prefixed id with a random suffix, unique
// per session with overwhelming probability.
func newAssessmentID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ecr_%d_%s", time.Now().UnixMilli(), suffix)
}

// Start creates a fresh assessment with an empty response set.
func (s *SessionService) Start() (*Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	a := &Assessment{
		ID:        s.idGen(),
		Responses: &ResponseSet{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.PutAssessment(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns the assessment with the given id.
func (s *SessionService) Get(id string) (*Assessment, error) {
	a, err := s.store.GetAssessment(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewNotFoundError("no active assessment")
	}
	return a, nil
}

// RecordResponse stores one answer on the assessment, refreshes UpdatedAt
// and recomputes completion. Invalid question ids or values fail without
// mutating the session.
func (s *SessionService) RecordResponse(id string, questionID, value int) (*Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	a = a.clone()
	if !a.Responses.Set(questionID, value) {
		return nil, NewInvalidError("question id must be 1..36 and value 1..7")
	}
	a.UpdatedAt = s.now()
	a.IsCompleted = a.Responses.IsComplete()
	if err := s.store.PutAssessment(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Complete forces the assessment into the completed state and stamps
// CompletedAt. It does not score; the caller runs CalculateResult and then
// AttachResult.
func (s *SessionService) Complete(id string) (*Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	a = a.clone()
	now := s.now()
	a.IsCompleted = true
	a.CompletedAt = &now
	a.UpdatedAt = now
	if err := s.store.PutAssessment(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AttachResult binds a computed result to a completed assessment and
// archives it. A result can only be attached once.
func (s *SessionService) AttachResult(id string, res *Result) (*Assessment, error) {
	if res == nil {
		return nil, NewInvalidError("result is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	a = a.clone()
	if !a.IsCompleted {
		return nil, NewConflictError("assessment is not completed")
	}
	if a.Result != nil {
		return nil, NewConflictError("result already attached")
	}
	a.Result = res
	a.UpdatedAt = s.now()
	if err := s.store.PutAssessment(a); err != nil {
		return nil, err
	}
	completedAt := a.UpdatedAt
	if a.CompletedAt != nil {
		completedAt = *a.CompletedAt
	}
	rec := &ArchivedResult{
		AssessmentID: a.ID,
		Anxious:      res.Anxious,
		Avoidant:     res.Avoidant,
		Style:        res.Style,
		Result:       res,
		CompletedAt:  completedAt,
		ArchivedAt:   s.now(),
	}
	if err := s.store.ArchiveResult(rec); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset discards the assessment with the given id. No-op when it does not
// exist.
func (s *SessionService) Reset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.DeleteAssessment(id)
}

// Progress returns the answered percentage, or 0 when the assessment does
// not exist.
func (s *SessionService) Progress(id string) int {
	a, err := s.store.GetAssessment(id)
	if err != nil || a == nil {
		return 0
	}
	return a.Responses.ProgressPercent()
}

// NextUnanswered returns the 0-based index of the next unanswered item,
// or 0 when the assessment does not exist (resume from the first item).
func (s *SessionService) NextUnanswered(id string) int {
	a, err := s.store.GetAssessment(id)
	if err != nil || a == nil {
		return 0
	}
	return a.Responses.NextUnansweredIndex()
}
