package services

import (
	"sync"
	"testing"
	"time"

	"github.com/attachlab/ecr/internal/catalog"
)

type stubSessionStore struct {
	mu          sync.Mutex
	assessments map[string]*Assessment
	archived    []*ArchivedResult
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{assessments: map[string]*Assessment{}}
}

func (s *stubSessionStore) PutAssessment(a *Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments[a.ID] = a
	return nil
}

func (s *stubSessionStore) GetAssessment(id string) (*Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assessments[id], nil
}

func (s *stubSessionStore) DeleteAssessment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assessments, id)
	return nil
}

func (s *stubSessionStore) ArchiveResult(rec *ArchivedResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archived = append(s.archived, rec)
	return nil
}

func newTestService(store *stubSessionStore) *SessionService {
	svc := NewSessionService(store)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	return svc
}

func TestStartCreatesEmptyAssessment(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestService(store)
	a, err := svc.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if a.ID == "" {
		t.Fatal("empty assessment id")
	}
	if a.IsCompleted || a.Result != nil || a.CompletedAt != nil {
		t.Fatalf("fresh assessment not empty: %+v", a)
	}
	if a.Responses.AnsweredCount() != 0 {
		t.Fatal("fresh assessment has answers")
	}
	if !a.CreatedAt.Equal(a.UpdatedAt) {
		t.Fatal("createdAt and updatedAt must match at start")
	}

	b, err := svc.Start()
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if b.ID == a.ID {
		t.Fatal("assessment ids must be unique")
	}
	// Keyed sessions: starting a new assessment leaves others intact.
	if got, _ := store.GetAssessment(a.ID); got == nil {
		t.Fatal("first session vanished after second Start")
	}
}

func TestRecordResponseLifecycle(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestService(store)
	a, _ := svc.Start()

	if _, err := svc.RecordResponse(a.ID, 1, 4); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if svc.Progress(a.ID) != 3 { // round(1/36*100)
		t.Fatalf("progress %d, want 3", svc.Progress(a.ID))
	}

	// Invalid input is a routine failure and leaves the session unchanged.
	if _, err := svc.RecordResponse(a.ID, 37, 4); err == nil {
		t.Fatal("question id 37 must fail")
	} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalid {
		t.Fatalf("want invalid ServiceError, got %v", err)
	}
	got, _ := store.GetAssessment(a.ID)
	if got.Responses.AnsweredCount() != 1 {
		t.Fatal("failed RecordResponse mutated the response set")
	}

	// Missing session is reported, not fatal.
	if _, err := svc.RecordResponse("ecr_missing", 1, 4); err == nil {
		t.Fatal("missing session must fail")
	} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorNotFound {
		t.Fatalf("want not_found ServiceError, got %v", err)
	}

	for id := 1; id <= catalog.TotalQuestions; id++ {
		if _, err := svc.RecordResponse(a.ID, id, 4); err != nil {
			t.Fatalf("RecordResponse(%d): %v", id, err)
		}
	}
	got, _ = store.GetAssessment(a.ID)
	if !got.IsCompleted {
		t.Fatal("IsCompleted must track all-36-present")
	}
	if svc.Progress(a.ID) != 100 {
		t.Fatalf("progress %d, want 100", svc.Progress(a.ID))
	}
}

func TestCompleteAndAttachResult(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestService(store)
	a, _ := svc.Start()
	for id := 1; id <= catalog.TotalQuestions; id++ {
		svc.RecordResponse(a.ID, id, 4)
	}

	completed, err := svc.Complete(a.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !completed.IsCompleted || completed.CompletedAt == nil {
		t.Fatalf("Complete did not stamp state: %+v", completed)
	}
	if completed.Result != nil {
		t.Fatal("Complete must not score")
	}

	res, err := CalculateResult(completed.Responses)
	if err != nil {
		t.Fatalf("CalculateResult: %v", err)
	}
	attached, err := svc.AttachResult(a.ID, res)
	if err != nil {
		t.Fatalf("AttachResult: %v", err)
	}
	if attached.Result == nil || attached.Result.Style != StyleDisorganized {
		t.Fatalf("result not attached: %+v", attached.Result)
	}
	if len(store.archived) != 1 {
		t.Fatalf("archived %d records, want 1", len(store.archived))
	}
	if store.archived[0].AssessmentID != a.ID || store.archived[0].Style != StyleDisorganized {
		t.Fatalf("archive record %+v", store.archived[0])
	}

	// Attaching twice is a conflict.
	if _, err := svc.AttachResult(a.ID, res); err == nil {
		t.Fatal("second AttachResult must fail")
	} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorConflict {
		t.Fatalf("want conflict ServiceError, got %v", err)
	}
}

func TestAttachResultRequiresCompletion(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestService(store)
	a, _ := svc.Start()
	res, _ := CalculateResult(a.Responses)
	if _, err := svc.AttachResult(a.ID, res); err == nil {
		t.Fatal("AttachResult on an incomplete assessment must fail")
	}
	if _, err := svc.AttachResult(a.ID, nil); err == nil {
		t.Fatal("nil result must fail")
	}
}

func TestCompleteMissingSession(t *testing.T) {
	svc := newTestService(newStubSessionStore())
	if _, err := svc.Complete("nope"); err == nil {
		t.Fatal("Complete without a session must fail")
	}
}

func TestResetAndProgress(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestService(store)
	a, _ := svc.Start()
	svc.RecordResponse(a.ID, 1, 4)

	if err := svc.Reset(a.ID); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got, _ := store.GetAssessment(a.ID); got != nil {
		t.Fatal("Reset did not discard the session")
	}
	// Reset of a missing session is a no-op.
	if err := svc.Reset(a.ID); err != nil {
		t.Fatalf("second Reset: %v", err)
	}
	if svc.Progress(a.ID) != 0 {
		t.Fatal("progress of a missing session must be 0")
	}
	if svc.NextUnanswered(a.ID) != 0 {
		t.Fatal("next index of a missing session must be 0")
	}
}

func TestConcurrentAnswersAndReads(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestService(store)
	a, _ := svc.Start()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for id := 1; id <= catalog.TotalQuestions; id++ {
			if _, err := svc.RecordResponse(a.ID, id, 4); err != nil {
				t.Errorf("RecordResponse(%d): %v", id, err)
			}
		}
	}()

	// Readers must only ever see consistent snapshots while the writer
	// fills the sheet.
	for i := 0; i < 200; i++ {
		got, err := svc.Get(a.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if n := got.Responses.AnsweredCount(); n < 0 || n > catalog.TotalQuestions {
			t.Fatalf("answered count %d out of range", n)
		}
		if p := svc.Progress(a.ID); p < 0 || p > 100 {
			t.Fatalf("progress %d out of range", p)
		}
		if idx := svc.NextUnanswered(a.ID); idx < 0 || idx >= catalog.TotalQuestions {
			t.Fatalf("next index %d out of range", idx)
		}
	}
	wg.Wait()

	got, _ := store.GetAssessment(a.ID)
	if !got.IsCompleted || got.Responses.AnsweredCount() != catalog.TotalQuestions {
		t.Fatalf("final state inconsistent: %+v", got)
	}
}

func TestNextUnansweredResume(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestService(store)
	a, _ := svc.Start()
	svc.RecordResponse(a.ID, 1, 3)
	svc.RecordResponse(a.ID, 2, 3)
	svc.RecordResponse(a.ID, 5, 3)
	if got := svc.NextUnanswered(a.ID); got != 2 {
		t.Fatalf("NextUnanswered=%d, want 2", got)
	}
}
