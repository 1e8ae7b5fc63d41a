package fetchers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avolkov/salarystats/internal/models"
)

const superJobCurrency = "rub"

// ErrMissingCredentials is returned when a SuperJob adapter is constructed
// without an API secret. SuperJob rejects unauthenticated search calls, so
// the check happens before any request is made.
var ErrMissingCredentials = errors.New("superjob: API secret is not set")

// SuperJob fetches vacancies from the SuperJob search API.
type SuperJob struct {
	baseURL  string
	secret   string
	town     int
	pageSize int
	client   *resty.Client
}

// NewSuperJob creates a new SuperJob adapter. The town code selects the
// city to search in (4 is Moscow).
func NewSuperJob(baseURL, secret string, town, pageSize int, timeout time.Duration) (*SuperJob, error) {
	if secret == "" {
		return nil, ErrMissingCredentials
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("X-Api-App-Id", secret)

	return &SuperJob{
		baseURL:  baseURL,
		secret:   secret,
		town:     town,
		pageSize: pageSize,
		client:   client,
	}, nil
}

// Name returns the platform name.
func (s *SuperJob) Name() string {
	return "SuperJob"
}

// Fetch collects result pages for one term until the server stops
// reporting more pages. Unlike HeadHunter, the total for the term counts
// the listings actually received rather than a server-reported figure.
func (s *SuperJob) Fetch(ctx context.Context, term string) (models.Vacancies, error) {
	var bucket models.Vacancies

	for page := 0; ; page++ {
		var searchResp sjSearchResponse
		res, err := s.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"keyword": term,
				"town":    strconv.Itoa(s.town),
				"count":   strconv.Itoa(s.pageSize),
				"page":    strconv.Itoa(page),
			}).
			SetResult(&searchResp).
			Get(s.baseURL)
		if err != nil {
			return models.Vacancies{}, fmt.Errorf("superjob: request for %q failed: %w", term, err)
		}
		if res.IsError() {
			return models.Vacancies{}, newStatusError(s.Name(), term, res.StatusCode(), string(res.Body()))
		}
		if searchResp.More == nil {
			return models.Vacancies{}, newMissingFieldError(s.Name(), term, res.StatusCode(), "more")
		}

		for _, item := range searchResp.Objects {
			bucket.Items = append(bucket.Items, item.toVacancy())
		}
		bucket.Found += len(searchResp.Objects)

		slog.Debug("fetched page",
			"platform", s.Name(),
			"term", term,
			"page", page,
			"more", *searchResp.More,
			"items", len(searchResp.Objects),
		)

		if !*searchResp.More {
			return bucket, nil
		}
	}
}

// Estimate maps one listing to a ruble salary estimate. Listings priced in
// a foreign currency or without salary bounds are reported as unknown.
func (s *SuperJob) Estimate(v models.Vacancy) (int, bool) {
	if v.Currency != superJobCurrency {
		return 0, false
	}
	return averageSalary(v.SalaryFrom, v.SalaryTo)
}

// sjSearchResponse represents the SuperJob API search response. The "more"
// marker is a pointer so an absent field is distinguishable from false.
type sjSearchResponse struct {
	Objects []sjVacancy `json:"objects"`
	Total   int         `json:"total"`
	More    *bool       `json:"more"`
}

// sjVacancy represents a vacancy in SuperJob search results. Salary bounds
// are plain integers; the API sends 0 for an unset bound.
type sjVacancy struct {
	Profession  string `json:"profession"`
	FirmName    string `json:"firm_name"`
	PaymentFrom int    `json:"payment_from"`
	PaymentTo   int    `json:"payment_to"`
	Currency    string `json:"currency"`
	Town        sjTown `json:"town"`
	Link        string `json:"link"`
}

type sjTown struct {
	Title string `json:"title"`
}

func (v sjVacancy) toVacancy() models.Vacancy {
	return models.Vacancy{
		Title:      v.Profession,
		Company:    v.FirmName,
		Area:       v.Town.Title,
		URL:        v.Link,
		Currency:   v.Currency,
		SalaryFrom: v.PaymentFrom,
		SalaryTo:   v.PaymentTo,
	}
}
