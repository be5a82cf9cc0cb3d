// Package db provides the SQLite-backed Store. The logical model stays the
// same as the in-memory store: sessions are replaceable and discardable,
// archived results immutable.
package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/attachlab/ecr/internal/api"
	"github.com/attachlab/ecr/internal/services"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func NewStore(db *sql.DB) (api.Store, error) {
	return NewSQLiteStore(db)
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func toNullUnixNano(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func fromNullUnixNano(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := time.Unix(0, n.Int64).UTC()
	return &t
}

func boolToInt64(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func (s *SQLiteStore) PutAssessment(a *services.Assessment) error {
	responses, err := encodeJSON(a.Responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}
	var result sql.NullString
	if a.Result != nil {
		payload, err := encodeJSON(a.Result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		result = sql.NullString{String: payload, Valid: true}
	}
	_, err = s.db.Exec(`
		INSERT INTO assessments (id, responses, created_at, updated_at, completed_at, is_completed, result)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			responses = excluded.responses,
			updated_at = excluded.updated_at,
			completed_at = excluded.completed_at,
			is_completed = excluded.is_completed,
			result = excluded.result`,
		a.ID, responses, a.CreatedAt.UnixNano(), a.UpdatedAt.UnixNano(),
		toNullUnixNano(a.CompletedAt), boolToInt64(a.IsCompleted), result)
	if err != nil {
		return fmt.Errorf("put assessment: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetAssessment(id string) (*services.Assessment, error) {
	row := s.db.QueryRow(`
		SELECT id, responses, created_at, updated_at, completed_at, is_completed, result
		FROM assessments WHERE id = ?`, id)

	var (
		a           services.Assessment
		responses   string
		createdAt   int64
		updatedAt   int64
		completedAt sql.NullInt64
		isCompleted int64
		result      sql.NullString
	)
	err := row.Scan(&a.ID, &responses, &createdAt, &updatedAt, &completedAt, &isCompleted, &result)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}

	a.Responses = &services.ResponseSet{}
	if err := json.Unmarshal([]byte(responses), a.Responses); err != nil {
		return nil, fmt.Errorf("decode responses for %s: %w", a.ID, err)
	}
	a.CreatedAt = time.Unix(0, createdAt).UTC()
	a.UpdatedAt = time.Unix(0, updatedAt).UTC()
	a.CompletedAt = fromNullUnixNano(completedAt)
	a.IsCompleted = isCompleted != 0
	if result.Valid {
		a.Result = &services.Result{}
		if err := json.Unmarshal([]byte(result.String), a.Result); err != nil {
			// A corrupt result payload should not make the whole session
			// unreadable.
			log.Printf("sqlite store: decode result for %s: %v", a.ID, err)
			a.Result = nil
		}
	}
	return &a, nil
}

func (s *SQLiteStore) DeleteAssessment(id string) error {
	if _, err := s.db.Exec(`DELETE FROM assessments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ArchiveResult(rec *services.ArchivedResult) error {
	payload, err := encodeJSON(rec.Result)
	if err != nil {
		return fmt.Errorf("encode result payload: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO results (assessment_id, anxious, avoidant, style, payload, completed_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.AssessmentID, rec.Anxious, rec.Avoidant, string(rec.Style),
		payload, rec.CompletedAt.UnixNano(), rec.ArchivedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("archive result: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListResults() ([]*services.ArchivedResult, error) {
	rows, err := s.db.Query(`
		SELECT assessment_id, anxious, avoidant, style, payload, completed_at, archived_at
		FROM results ORDER BY completed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []*services.ArchivedResult
	for rows.Next() {
		var (
			rec         services.ArchivedResult
			style       string
			payload     string
			completedAt int64
			archivedAt  int64
		)
		if err := rows.Scan(&rec.AssessmentID, &rec.Anxious, &rec.Avoidant, &style, &payload, &completedAt, &archivedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		rec.Style = services.AttachmentStyle(style)
		rec.CompletedAt = time.Unix(0, completedAt).UTC()
		rec.ArchivedAt = time.Unix(0, archivedAt).UTC()
		rec.Result = &services.Result{}
		if err := json.Unmarshal([]byte(payload), rec.Result); err != nil {
			log.Printf("sqlite store: decode archived result for %s: %v", rec.AssessmentID, err)
			rec.Result = nil
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) DeleteResultsBefore(cutoff time.Time) (int, error) {
	res, err := s.db.Exec(`DELETE FROM results WHERE completed_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("delete results: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete results rows affected: %w", err)
	}
	return int(n), nil
}

func (s *SQLiteStore) DeleteIdleAssessments(cutoff time.Time) (int, error) {
	res, err := s.db.Exec(`DELETE FROM assessments WHERE is_completed = 0 AND updated_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("delete idle assessments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete idle assessments rows affected: %w", err)
	}
	return int(n), nil
}
