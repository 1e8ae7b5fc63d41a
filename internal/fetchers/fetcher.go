package fetchers

import (
	"context"
	"fmt"

	"github.com/avolkov/salarystats/internal/models"
)

// Fetcher is the interface that all job-board adapters must implement.
type Fetcher interface {
	// Name returns the platform name.
	Name() string

	// Fetch retrieves every page of search results for one term,
	// accumulating listings into a single bucket.
	Fetch(ctx context.Context, term string) (models.Vacancies, error)

	// Estimate maps one listing to a ruble salary estimate. The second
	// return value is false when the listing carries no usable salary:
	// foreign currency, missing currency, or no bounds.
	Estimate(v models.Vacancy) (int, bool)
}

// UpstreamError reports a failed search call: a non-2xx status, or a reply
// missing a field the pagination loop cannot proceed without.
type UpstreamError struct {
	Platform   string
	Term       string
	StatusCode int
	Reason     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: search %q failed (status %d): %s",
		e.Platform, e.Term, e.StatusCode, e.Reason)
}

func newStatusError(platform, term string, status int, body string) *UpstreamError {
	return &UpstreamError{
		Platform:   platform,
		Term:       term,
		StatusCode: status,
		Reason:     fmt.Sprintf("upstream returned %s", truncate(body, 200)),
	}
}

func newMissingFieldError(platform, term string, status int, field string) *UpstreamError {
	return &UpstreamError{
		Platform:   platform,
		Term:       term,
		StatusCode: status,
		Reason:     fmt.Sprintf("response is missing the %q field", field),
	}
}

// averageSalary applies the shared estimation heuristic to a pair of
// optional salary bounds. A bound of 0 counts as not provided.
func averageSalary(from, to int) (int, bool) {
	switch {
	case from == 0 && to == 0:
		return 0, false
	case from == 0:
		return to * 8 / 10, true
	case to == 0:
		return from * 12 / 10, true
	default:
		return from + (to-from)/2, true
	}
}

func truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}
