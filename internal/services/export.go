package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// ResultRow is one archived result flattened for CSV export.
type ResultRow struct {
	AssessmentID      string
	Anxious           float64
	Avoidant          float64
	Style             string
	AnsweredQuestions int
	CompletionRate    int
	CompletedAt       string // ISO8601 suggested; string for CSV simplicity
}

// ExportResultsCSV renders archived results into CSV, one row per
// completed assessment.
func ExportResultsCSV(rows []ResultRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"assessment_id", "anxious", "avoidant", "style", "answered_questions", "completion_rate", "completed_at"})
	for _, r := range rows {
		rec := []string{
			r.AssessmentID,
			strconv.FormatFloat(r.Anxious, 'f', 1, 64),
			strconv.FormatFloat(r.Avoidant, 'f', 1, 64),
			r.Style,
			strconv.Itoa(r.AnsweredQuestions),
			strconv.Itoa(r.CompletionRate),
			r.CompletedAt,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
