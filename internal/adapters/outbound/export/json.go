package export

import (
	"encoding/json"
	"io"

	"github.com/a11yscan/a11yscan/internal/domain/report"
)

// WriteJSON writes the whole report as one indented JSON document.
func WriteJSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteNDJSON streams one JSON object per page, newline-delimited, for
// loading into log pipelines without buffering the whole report.
func WriteNDJSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	for _, p := range r.Pages {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}
