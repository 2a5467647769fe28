// Package export snapshots the task list as JSON, CSV, or PDF.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"ticklist/internal/task"
)

type Exporter struct {
	store *task.Store
}

func NewExporter(store *task.Store) *Exporter {
	return &Exporter{store: store}
}

// Export renders the current list in the requested format and returns the
// bytes plus the content type to serve them under.
func (e *Exporter) Export(format string) ([]byte, string, error) {
	all := e.store.List()

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		b, err := json.MarshalIndent(all, "", "  ")
		return b, "application/json; charset=utf-8", err

	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "title", "completed", "completed_time", "modified_time"})
		for _, t := range all {
			_ = w.Write([]string{
				fmt.Sprint(t.ID),
				t.Title,
				fmt.Sprint(t.Completed),
				t.CompletedTime,
				t.ModifiedTime,
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", err
		}
		return []byte(b.String()), "text/csv; charset=utf-8", nil

	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task List")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range all {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s", mark, t.Title)
			if t.CompletedTime != "" {
				line += "  (done " + t.CompletedTime + ")"
			}
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "application/pdf", nil

	default:
		return nil, "", fmt.Errorf("unsupported export format: %q", format)
	}
}

// ServeHTTP handles GET /api/tasks/export?format=json|csv|pdf.
func (e *Exporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	b, contentType, err := e.Export(format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(b)
}
