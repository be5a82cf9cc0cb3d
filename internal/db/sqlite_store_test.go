package db

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/attachlab/ecr/internal/services"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	sqliteDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqliteDB.Close() })
	if err := RunMigrations(sqliteDB, ""); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	store, err := NewSQLiteStore(sqliteDB)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestAssessmentPersistence(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a := &services.Assessment{
		ID:        "ecr_test_1",
		Responses: &services.ResponseSet{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.Responses.Set(1, 7)
	a.Responses.Set(36, 2)
	if err := store.PutAssessment(a); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.GetAssessment(a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("assessment not found after put")
	}
	if v, ok := got.Responses.At(0); !ok || v != 7 {
		t.Fatalf("slot 0 = (%d,%v)", v, ok)
	}
	if v, ok := got.Responses.At(35); !ok || v != 2 {
		t.Fatalf("slot 35 = (%d,%v)", v, ok)
	}
	if !got.CreatedAt.Equal(now) || got.IsCompleted || got.CompletedAt != nil || got.Result != nil {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	// Upsert keeps one row per id.
	done := now.Add(time.Hour)
	a.IsCompleted = true
	a.CompletedAt = &done
	a.UpdatedAt = done
	if err := store.PutAssessment(a); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, _ = store.GetAssessment(a.ID)
	if !got.IsCompleted || got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
		t.Fatalf("upsert mismatch: %+v", got)
	}

	if err := store.DeleteAssessment(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := store.GetAssessment(a.ID); got != nil {
		t.Fatal("assessment survived delete")
	}
	// Missing ids read as nil, not as an error.
	if got, err := store.GetAssessment("nope"); err != nil || got != nil {
		t.Fatalf("missing id = (%v,%v)", got, err)
	}
}

func TestResultArchive(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, style := range []services.AttachmentStyle{services.StyleSecure, services.StyleAnxious} {
		rec := &services.ArchivedResult{
			AssessmentID: "ecr_test_" + string(style),
			Anxious:      2.0 + float64(i),
			Avoidant:     2.0,
			Style:        style,
			Result: &services.Result{
				Anxious: 2.0 + float64(i), Avoidant: 2.0, Style: style,
				Statistics: services.Statistics{TotalQuestions: 36, AnsweredQuestions: 36, CompletionRate: 100},
			},
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
			ArchivedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.ArchiveResult(rec); err != nil {
			t.Fatalf("archive: %v", err)
		}
	}

	results, err := store.ListResults()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("listed %d results, want 2", len(results))
	}
	// Newest first.
	if results[0].Style != services.StyleAnxious {
		t.Fatalf("order wrong: first is %s", results[0].Style)
	}
	if results[0].Result == nil || results[0].Result.Statistics.CompletionRate != 100 {
		t.Fatalf("payload lost: %+v", results[0].Result)
	}

	removed, err := store.DeleteResultsBefore(base.Add(30 * time.Minute))
	if err != nil {
		t.Fatalf("delete before: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed %d, want 1", removed)
	}
	results, _ = store.ListResults()
	if len(results) != 1 || results[0].Style != services.StyleAnxious {
		t.Fatalf("wrong survivor: %+v", results)
	}
}

func TestDeleteIdleAssessments(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	put := func(id string, updated time.Time, completed bool) {
		a := &services.Assessment{
			ID:          id,
			Responses:   &services.ResponseSet{},
			CreatedAt:   base,
			UpdatedAt:   updated,
			IsCompleted: completed,
		}
		if err := store.PutAssessment(a); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	put("stale", base, false)
	put("fresh", base.Add(2*time.Hour), false)
	put("done", base, true)

	removed, err := store.DeleteIdleAssessments(base.Add(time.Hour))
	if err != nil {
		t.Fatalf("delete idle: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed %d, want 1", removed)
	}
	if got, _ := store.GetAssessment("stale"); got != nil {
		t.Fatal("stale session survived")
	}
	if got, _ := store.GetAssessment("fresh"); got == nil {
		t.Fatal("fresh session purged")
	}
	// Completed sessions are never idle-purged.
	if got, _ := store.GetAssessment("done"); got == nil {
		t.Fatal("completed session purged")
	}
}
