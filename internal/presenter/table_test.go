package presenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/salarystats/internal/models"
	"github.com/avolkov/salarystats/internal/stats"
)

func buildReport(t *testing.T) *stats.Report {
	t.Helper()

	rs := models.NewResultSet()
	rs.Add("Python", models.Vacancies{
		Items: []models.Vacancy{{Currency: "RUR", SalaryFrom: 100000, SalaryTo: 200000}},
		Found: 25,
	})
	rs.Add("VBA", models.Vacancies{Found: 3})

	return stats.Aggregate(rs, func(v models.Vacancy) (int, bool) {
		if v.Currency != "RUR" {
			return 0, false
		}
		return v.SalaryFrom + (v.SalaryTo-v.SalaryFrom)/2, true
	})
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "HeadHunter Moscow", buildReport(t))

	out := buf.String()
	require.Contains(t, out, "HeadHunter Moscow")
	require.Contains(t, strings.ToUpper(out), "LANGUAGE")
	require.Contains(t, strings.ToUpper(out), "VACANCIES FOUND")
	require.Contains(t, strings.ToUpper(out), "VACANCIES PROCESSED")
	require.Contains(t, strings.ToUpper(out), "AVERAGE SALARY")

	require.Contains(t, out, "Python")
	require.Contains(t, out, "25")
	require.Contains(t, out, "150000")
}

func TestRenderNoSalaryDataShowsDash(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "SuperJob Moscow", buildReport(t))

	// The VBA row has no processed listings; its average renders as a
	// dash instead of a misleading zero.
	var vbaRow string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "VBA") {
			vbaRow = line
		}
	}
	require.NotEmpty(t, vbaRow)
	require.Contains(t, vbaRow, "-")
}
