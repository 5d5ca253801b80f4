package constellation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/litescript/ls-skygeom/internal/astro"
)

// ClassificationExport is the JSON-serializable form of a batch
// classification.
type ClassificationExport struct {
	Targets []TargetExport `json:"targets"`
	Counts  map[string]int `json:"counts"`
}

// TargetExport is a JSON-friendly classification result.
type TargetExport struct {
	Name          string  `json:"name"`
	RA            float64 `json:"ra"`
	Dec           float64 `json:"dec"`
	Mag           float64 `json:"mag"`
	Constellation string  `json:"constellation,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// ExportClassification converts results to an exportable format. Targets
// that fell outside every boundary are counted under "none".
func ExportClassification(results []Result) *ClassificationExport {
	export := &ClassificationExport{Counts: make(map[string]int)}
	for _, r := range results {
		c := astro.FromPoint(r.Target.Point)
		te := TargetExport{
			Name:          r.Target.Name,
			RA:            c.RAdeg,
			Dec:           c.DecDeg,
			Mag:           r.Target.Mag,
			Constellation: r.ID(),
		}
		if r.Err != nil {
			te.Error = r.Err.Error()
		}
		export.Targets = append(export.Targets, te)

		key := r.ID()
		if key == "" {
			key = "none"
		}
		export.Counts[key]++
	}
	return export
}

// WriteJSON writes the export as indented JSON.
func (e *ClassificationExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummaryTable writes a text table of classified targets, followed by
// per-constellation counts.
func WriteSummaryTable(w io.Writer, results []Result) {
	fmt.Fprintf(w, "Constellation lookup for %d targets\n", len(results))
	fmt.Fprintln(w, strings.Repeat("─", 72))

	if len(results) == 0 {
		fmt.Fprintln(w, "No targets")
		return
	}

	fmt.Fprintf(w, "%-16s %-12s %-11s %5s  %-6s %s\n", "Name", "RA", "Dec", "Mag", "Con", "Note")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, r := range results {
		c := astro.FromPoint(r.Target.Point)
		con, note := r.ID(), ""
		if r.Err != nil {
			con = "-"
			note = shortError(r.Err)
		}
		fmt.Fprintf(w, "%-16s %-12s %-11s %5.2f  %-6s %s\n",
			truncateStr(r.Target.Name, 16),
			astro.FormatRA(c.RAdeg),
			astro.FormatDec(c.DecDeg),
			r.Target.Mag,
			con,
			note,
		)
	}

	counts := Tally(results)
	ids := make([]string, 0, len(counts))
	for id := range counts {
		if id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	fmt.Fprintln(w)
	for _, id := range ids {
		fmt.Fprintf(w, "%-6s %d\n", id, counts[id])
	}
	fmt.Fprintf(w, "\nTotal: %d located, %d unresolved\n", len(results)-counts[""], counts[""])
}

func shortError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "outside all boundaries"
	default:
		return err.Error()
	}
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
