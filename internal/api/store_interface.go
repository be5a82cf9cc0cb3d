package api

import (
	"time"

	"github.com/attachlab/ecr/internal/services"
)

// Store is the persistence surface the HTTP layer needs. It is a superset
// of services.SessionStore so any implementation can back the session
// service directly; the extra methods serve the admin surface.
type Store interface {
	services.SessionStore

	// ListResults returns archived results, newest first.
	ListResults() ([]*services.ArchivedResult, error)
	// DeleteResultsBefore removes archived results completed before cutoff
	// and returns the removed count.
	DeleteResultsBefore(cutoff time.Time) (int, error)
	// DeleteIdleAssessments removes unfinished sessions not touched since
	// cutoff and returns the removed count.
	DeleteIdleAssessments(cutoff time.Time) (int, error)
}
