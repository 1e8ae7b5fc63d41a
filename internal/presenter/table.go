package presenter

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/avolkov/salarystats/internal/stats"
)

// Render writes the report as a console table with the given title. Terms
// with no salary data show a dash instead of a zero average.
func Render(w io.Writer, title string, report *stats.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)

	t.AppendHeader(table.Row{
		"Language",
		"Vacancies found",
		"Vacancies processed",
		"Average salary",
	})

	for _, term := range report.Terms() {
		s, _ := report.Get(term)

		average := strconv.Itoa(s.AverageSalary)
		if s.NoSalaryData {
			average = "-"
		}

		t.AppendRow(table.Row{term, s.VacanciesFound, s.VacanciesProcessed, average})
	}

	t.Render()
}
