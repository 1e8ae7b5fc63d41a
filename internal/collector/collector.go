package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avolkov/salarystats/internal/fetchers"
	"github.com/avolkov/salarystats/internal/models"
	"github.com/avolkov/salarystats/internal/stats"
)

// Collector runs the fetch-then-aggregate pipeline for one platform.
type Collector struct {
	languages []string
}

// New creates a collector for the given list of search terms.
func New(languages []string) *Collector {
	return &Collector{languages: languages}
}

// Run fetches every configured language on one platform — all pages of a
// term before moving to the next — then aggregates salary statistics with
// the platform's estimator. A failed term aborts the whole run; no partial
// report is returned.
func (c *Collector) Run(ctx context.Context, fetcher fetchers.Fetcher) (*stats.Report, error) {
	results := models.NewResultSet()

	for _, language := range c.languages {
		start := time.Now()

		bucket, err := fetcher.Fetch(ctx, language)
		if err != nil {
			return nil, fmt.Errorf("collect %s statistics: %w", fetcher.Name(), err)
		}

		slog.Info("collected term",
			"platform", fetcher.Name(),
			"term", language,
			"found", bucket.Found,
			"items", len(bucket.Items),
			"duration", time.Since(start),
		)

		results.Add(language, bucket)
	}

	return stats.Aggregate(results, fetcher.Estimate), nil
}
