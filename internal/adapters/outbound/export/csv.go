// Package export writes audit results in machine-readable formats for
// spreadsheets and downstream tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/a11yscan/a11yscan/internal/domain/report"
)

var csvHeader = []string{"page", "outcome", "http_status", "rule", "severity", "selector", "description", "help_url"}

// WriteCSV writes one row per violation. Pages with no violations still get
// a row so a failed or clean page is visible in the sheet.
func WriteCSV(w io.Writer, r *report.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range r.Pages {
		status := ""
		if p.HTTPStatus != 0 {
			status = strconv.Itoa(p.HTTPStatus)
		}
		if len(p.Violations) == 0 {
			row := []string{p.URL, string(p.Outcome), status, "", "", "", p.Detail, ""}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
			continue
		}
		for _, v := range p.Violations {
			row := []string{p.URL, string(p.Outcome), status, v.RuleID, string(v.Severity), v.Selector, v.Description, v.HelpURL}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
