package models

// Vacancy represents an internal job listing
// This is the unified structure used internally after decoding a platform response.
// Salary bounds of 0 mean the bound was not provided by the listing.
type Vacancy struct {
	Title      string
	Company    string
	Area       string
	URL        string
	Currency   string
	SalaryFrom int
	SalaryTo   int
}

// Vacancies is the result bucket for a single search term: the listings
// collected across all pages plus the total reported for the term.
type Vacancies struct {
	Items []Vacancy
	Found int
}

// ResultSet maps search terms to their result buckets while remembering
// insertion order, so downstream stages iterate terms in the order they
// were fetched.
type ResultSet struct {
	terms  []string
	byTerm map[string]Vacancies
}

func NewResultSet() *ResultSet {
	return &ResultSet{
		byTerm: make(map[string]Vacancies),
	}
}

// Add stores the bucket for a term. Re-adding a term overwrites its bucket
// without changing its position.
func (rs *ResultSet) Add(term string, v Vacancies) {
	if _, exists := rs.byTerm[term]; !exists {
		rs.terms = append(rs.terms, term)
	}
	rs.byTerm[term] = v
}

// Get returns the bucket for a term and whether the term is present.
func (rs *ResultSet) Get(term string) (Vacancies, bool) {
	v, ok := rs.byTerm[term]
	return v, ok
}

// Terms returns the terms in insertion order.
func (rs *ResultSet) Terms() []string {
	terms := make([]string, len(rs.terms))
	copy(terms, rs.terms)
	return terms
}

// Len returns the number of terms in the set.
func (rs *ResultSet) Len() int {
	return len(rs.terms)
}
