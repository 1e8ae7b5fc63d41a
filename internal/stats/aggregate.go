package stats

import (
	"github.com/avolkov/salarystats/internal/models"
)

// Estimator maps one listing to a ruble salary estimate; false means the
// listing carries no usable salary and is excluded from averaging.
type Estimator func(v models.Vacancy) (int, bool)

// LanguageStats summarizes the listings collected for one search term.
type LanguageStats struct {
	// VacanciesFound is copied verbatim from the bucket's total.
	VacanciesFound int
	// VacanciesProcessed counts listings with a usable salary estimate.
	VacanciesProcessed int
	// AverageSalary is the integer-truncated mean of the estimates, or 0
	// when no listing had a usable salary.
	AverageSalary int
	// NoSalaryData distinguishes "no listing had a salary" from a real
	// zero average.
	NoSalaryData bool
}

// Report holds per-term statistics in the term order of the result set it
// was built from.
type Report struct {
	terms  []string
	byTerm map[string]LanguageStats
}

// Terms returns the report's terms in order.
func (r *Report) Terms() []string {
	terms := make([]string, len(r.terms))
	copy(terms, r.terms)
	return terms
}

// Get returns the statistics for a term and whether the term is present.
func (r *Report) Get(term string) (LanguageStats, bool) {
	s, ok := r.byTerm[term]
	return s, ok
}

// Len returns the number of terms in the report.
func (r *Report) Len() int {
	return len(r.terms)
}

// Aggregate walks every bucket of the result set, applies the estimator to
// each listing, and produces per-term statistics. The input is not mutated
// and term order is preserved.
func Aggregate(rs *models.ResultSet, estimate Estimator) *Report {
	report := &Report{
		byTerm: make(map[string]LanguageStats, rs.Len()),
	}

	for _, term := range rs.Terms() {
		bucket, _ := rs.Get(term)

		var sum, processed int
		for _, v := range bucket.Items {
			salary, ok := estimate(v)
			if !ok {
				continue
			}
			sum += salary
			processed++
		}

		termStats := LanguageStats{
			VacanciesFound:     bucket.Found,
			VacanciesProcessed: processed,
		}
		if processed > 0 {
			termStats.AverageSalary = sum / processed
		} else {
			termStats.NoSalaryData = true
		}

		report.terms = append(report.terms, term)
		report.byTerm[term] = termStats
	}

	return report
}
