package api

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/attachlab/ecr/internal/catalog"
	"github.com/attachlab/ecr/internal/middleware"
	"github.com/attachlab/ecr/internal/services"
)

const (
	sessionTokenTTL = 24 * time.Hour
	adminTokenTTL   = 12 * time.Hour
)

// Router wires the assessment engine to HTTP. Each started assessment gets
// a bearer token scoped to its id; admin routes require the admin grant.
type Router struct {
	store     Store
	sessions  *services.SessionService
	adminHash []byte
}

// NewRouter builds a router over the given store. adminHash is the bcrypt
// hash of the admin password; nil disables the admin surface.
func NewRouter(store Store, adminHash []byte) *Router {
	return &Router{
		store:     store,
		sessions:  services.NewSessionService(store),
		adminHash: adminHash,
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/assessments", rt.handleStart)
	mux.HandleFunc("GET /api/assessments/{id}", rt.handleState)
	mux.HandleFunc("POST /api/assessments/{id}/answers", rt.handleAnswer)
	mux.HandleFunc("POST /api/assessments/{id}/complete", rt.handleComplete)
	mux.HandleFunc("GET /api/assessments/{id}/result", rt.handleResult)
	mux.HandleFunc("DELETE /api/assessments/{id}", rt.handleReset)
	mux.HandleFunc("GET /api/questions", rt.handleQuestions)
	mux.HandleFunc("POST /api/score/preview", rt.handlePreview)
	mux.HandleFunc("POST /api/admin/login", rt.handleAdminLogin)
	mux.HandleFunc("GET /api/admin/results", rt.handleAdminResults)
	mux.HandleFunc("GET /api/admin/export", rt.handleAdminExport)
	mux.HandleFunc("POST /api/admin/cleanup", rt.handleAdminCleanup)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok {
		status := http.StatusInternalServerError
		switch se.Code {
		case services.ErrorInvalid:
			status = http.StatusBadRequest
		case services.ErrorNotFound:
			status = http.StatusNotFound
		case services.ErrorConflict:
			status = http.StatusConflict
		case services.ErrorUnauthorized:
			status = http.StatusUnauthorized
		case services.ErrorForbidden:
			status = http.StatusForbidden
		}
		writeError(w, status, se.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// requireSession checks that the request's session token grants access to
// the assessment named in the path.
func (rt *Router) requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	granted, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "session token required")
		return "", false
	}
	if granted != id {
		writeError(w, http.StatusForbidden, "token does not grant access to this assessment")
		return "", false
	}
	return id, true
}

func (rt *Router) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !middleware.IsAdmin(r.Context()) {
		writeError(w, http.StatusUnauthorized, "admin token required")
		return false
	}
	return true
}

// POST /api/assessments
func (rt *Router) handleStart(w http.ResponseWriter, r *http.Request) {
	a, err := rt.sessions.Start()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	token, err := middleware.SignSessionToken(a.ID, sessionTokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"assessment_id":   a.ID,
		"token":           token,
		"total_questions": catalog.TotalQuestions,
		"created_at":      a.CreatedAt,
	})
}

// GET /api/assessments/{id}
func (rt *Router) handleState(w http.ResponseWriter, r *http.Request) {
	id, ok := rt.requireSession(w, r)
	if !ok {
		return
	}
	a, err := rt.sessions.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"assessment_id": a.ID,
		"progress":      a.Responses.ProgressPercent(),
		"answered":      a.Responses.AnsweredCount(),
		"next_index":    a.Responses.NextUnansweredIndex(),
		"is_completed":  a.IsCompleted,
		"created_at":    a.CreatedAt,
		"updated_at":    a.UpdatedAt,
	})
}

// POST /api/assessments/{id}/answers
func (rt *Router) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := rt.requireSession(w, r)
	if !ok {
		return
	}
	var req struct {
		QuestionID int `json:"question_id"`
		Value      int `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := rt.sessions.RecordResponse(id, req.QuestionID, req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":           true,
		"progress":     a.Responses.ProgressPercent(),
		"next_index":   a.Responses.NextUnansweredIndex(),
		"is_completed": a.IsCompleted,
	})
}

// POST /api/assessments/{id}/complete
// Completing is the one place lifecycle and scoring meet: the handler
// completes the session, runs the scoring engine, and attaches the result.
func (rt *Router) handleComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := rt.requireSession(w, r)
	if !ok {
		return
	}
	a, err := rt.sessions.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if a.Result != nil {
		// Already scored; return the attached result without restamping
		// the completion timestamps.
		rt.writeResult(w, r, a)
		return
	}
	a, err = rt.sessions.Complete(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := services.CalculateResult(a.Responses)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	a, err = rt.sessions.AttachResult(id, res)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rt.writeResult(w, r, a)
}

// GET /api/assessments/{id}/result
func (rt *Router) handleResult(w http.ResponseWriter, r *http.Request) {
	id, ok := rt.requireSession(w, r)
	if !ok {
		return
	}
	a, err := rt.sessions.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if a.Result == nil {
		writeError(w, http.StatusNotFound, "result not available; complete the assessment first")
		return
	}
	rt.writeResult(w, r, a)
}

func (rt *Router) writeResult(w http.ResponseWriter, r *http.Request, a *services.Assessment) {
	locale := middleware.LocaleFromContext(r.Context())
	res := a.Result
	writeJSON(w, http.StatusOK, map[string]any{
		"assessment_id": a.ID,
		"result":        res,
		"summary":       services.SummaryFor(res, locale),
		"explanations": []services.DimensionExplanation{
			services.ExplainDimension(catalog.Anxiety, res.Anxious, locale),
			services.ExplainDimension(catalog.Avoidance, res.Avoidant, locale),
		},
		"completed_at": a.CompletedAt,
	})
}

// DELETE /api/assessments/{id}
func (rt *Router) handleReset(w http.ResponseWriter, r *http.Request) {
	id, ok := rt.requireSession(w, r)
	if !ok {
		return
	}
	if err := rt.sessions.Reset(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/questions?lang=xx
func (rt *Router) handleQuestions(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	type outItem struct {
		ID            int    `json:"id"`
		Dimension     string `json:"dimension"`
		ReverseScored bool   `json:"reverse_scored"`
		Stem          string `json:"stem"`
	}
	items := catalog.OrderedItems()
	out := make([]outItem, 0, len(items))
	for _, q := range items {
		stem := q.StemI18n[locale]
		if stem == "" {
			stem = q.StemI18n["en"]
		}
		out = append(out, outItem{ID: q.ID, Dimension: string(q.Dimension), ReverseScored: q.Reverse, Stem: stem})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"scale":        catalog.Info(),
		"items":        out,
		"scale_labels": catalog.ScaleLabels(locale),
	})
}

// POST /api/score/preview
// Pure scoring entry point: feeds a raw 36-slot response array through the
// scoring engine without touching any session. Wrong-length arrays fail
// loudly per the engine contract.
func (rt *Router) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Responses []*int `json:"responses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rs, err := services.ResponseSetFromValues(req.Responses)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := services.CalculateResult(rs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"result":  res,
		"summary": services.SummaryFor(res, locale),
	})
}

// POST /api/admin/login
func (rt *Router) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if len(rt.adminHash) == 0 {
		writeError(w, http.StatusForbidden, "admin surface is disabled")
		return
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := bcrypt.CompareHashAndPassword(rt.adminHash, []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := middleware.SignAdminToken(adminTokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue admin token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}

// GET /api/admin/results
func (rt *Router) handleAdminResults(w http.ResponseWriter, r *http.Request) {
	if !rt.requireAdmin(w, r) {
		return
	}
	results, err := rt.store.ListResults()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results, "count": len(results)})
}

// GET /api/admin/export
func (rt *Router) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	if !rt.requireAdmin(w, r) {
		return
	}
	results, err := rt.store.ListResults()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rows := make([]services.ResultRow, 0, len(results))
	for _, rec := range results {
		row := services.ResultRow{
			AssessmentID: rec.AssessmentID,
			Anxious:      rec.Anxious,
			Avoidant:     rec.Avoidant,
			Style:        string(rec.Style),
			CompletedAt:  rec.CompletedAt.Format(time.RFC3339),
		}
		if rec.Result != nil {
			row.AnsweredQuestions = rec.Result.Statistics.AnsweredQuestions
			row.CompletionRate = rec.Result.Statistics.CompletionRate
		}
		rows = append(rows, row)
	}
	b, err := services.ExportResultsCSV(rows)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=results.csv")
	_, _ = w.Write(b)
}

// POST /api/admin/cleanup
// Retention pass: drops archived results completed before the cutoff and
// purges unfinished sessions idle since then.
func (rt *Router) handleAdminCleanup(w http.ResponseWriter, r *http.Request) {
	if !rt.requireAdmin(w, r) {
		return
	}
	var req struct {
		Before time.Time `json:"before"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Before.IsZero() {
		writeError(w, http.StatusBadRequest, "before timestamp required")
		return
	}
	removedResults, err := rt.store.DeleteResultsBefore(req.Before)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	removedSessions, err := rt.store.DeleteIdleAssessments(req.Before)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"removed_results":  removedResults,
		"removed_sessions": removedSessions,
	})
}
