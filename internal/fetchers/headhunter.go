package fetchers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avolkov/salarystats/internal/models"
)

const headHunterCurrency = "RUR"

// HeadHunter fetches vacancies from the HeadHunter search API.
type HeadHunter struct {
	baseURL  string
	area     int
	pageSize int
	client   *resty.Client
}

// NewHeadHunter creates a new HeadHunter adapter. The area code selects the
// region to search in (1 is Moscow).
func NewHeadHunter(baseURL string, area, pageSize int, timeout time.Duration) *HeadHunter {
	client := resty.New()
	client.SetTimeout(timeout)

	return &HeadHunter{
		baseURL:  baseURL,
		area:     area,
		pageSize: pageSize,
		client:   client,
	}
}

// Name returns the platform name.
func (h *HeadHunter) Name() string {
	return "HeadHunter"
}

// Fetch collects every result page for one term. The page count is re-read
// from each response because the server may revise it between pages.
func (h *HeadHunter) Fetch(ctx context.Context, term string) (models.Vacancies, error) {
	var bucket models.Vacancies

	pages := 1
	for page := 0; page < pages; page++ {
		var searchResp hhSearchResponse
		res, err := h.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"text":     term,
				"area":     strconv.Itoa(h.area),
				"per_page": strconv.Itoa(h.pageSize),
				"page":     strconv.Itoa(page),
			}).
			SetResult(&searchResp).
			Get(h.baseURL)
		if err != nil {
			return models.Vacancies{}, fmt.Errorf("headhunter: request for %q failed: %w", term, err)
		}
		if res.IsError() {
			return models.Vacancies{}, newStatusError(h.Name(), term, res.StatusCode(), string(res.Body()))
		}
		if searchResp.Pages == nil {
			return models.Vacancies{}, newMissingFieldError(h.Name(), term, res.StatusCode(), "pages")
		}
		if searchResp.Found == nil {
			return models.Vacancies{}, newMissingFieldError(h.Name(), term, res.StatusCode(), "found")
		}

		for _, item := range searchResp.Items {
			bucket.Items = append(bucket.Items, item.toVacancy())
		}

		// The total for the term is the server-reported match count
		// from the first page.
		if page == 0 {
			bucket.Found = *searchResp.Found
		}
		pages = *searchResp.Pages

		slog.Debug("fetched page",
			"platform", h.Name(),
			"term", term,
			"page", page,
			"pages", pages,
			"items", len(searchResp.Items),
		)
	}

	return bucket, nil
}

// Estimate maps one listing to a ruble salary estimate. Listings priced in
// a foreign currency or without salary bounds are reported as unknown.
func (h *HeadHunter) Estimate(v models.Vacancy) (int, bool) {
	if v.Currency != headHunterCurrency {
		return 0, false
	}
	return averageSalary(v.SalaryFrom, v.SalaryTo)
}

// hhSearchResponse represents the HeadHunter API search response. The
// pagination markers are pointers so an absent field is distinguishable
// from a zero value.
type hhSearchResponse struct {
	Items []hhVacancy `json:"items"`
	Found *int        `json:"found"`
	Pages *int        `json:"pages"`
}

// hhVacancy represents a vacancy in HeadHunter search results.
type hhVacancy struct {
	Name     string     `json:"name"`
	Salary   *hhSalary  `json:"salary"`
	Employer hhEmployer `json:"employer"`
	Area     hhArea     `json:"area"`
	URL      string     `json:"alternate_url"`
}

type hhSalary struct {
	From     int    `json:"from"`
	To       int    `json:"to"`
	Currency string `json:"currency"`
}

type hhEmployer struct {
	Name string `json:"name"`
}

type hhArea struct {
	Name string `json:"name"`
}

func (v hhVacancy) toVacancy() models.Vacancy {
	out := models.Vacancy{
		Title:   v.Name,
		Company: v.Employer.Name,
		Area:    v.Area.Name,
		URL:     v.URL,
	}
	// The salary object is nullable; a missing one leaves the currency
	// empty, which the estimator rejects.
	if v.Salary != nil {
		out.Currency = v.Salary.Currency
		out.SalaryFrom = v.Salary.From
		out.SalaryTo = v.Salary.To
	}
	return out
}
