package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skygeom/internal/astro"
	"github.com/litescript/ls-skygeom/internal/constellation"
)

// Styles for the catalog table
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	unresolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// CatalogModel lists every catalog star with the constellation it was
// classified into.
type CatalogModel struct {
	width   int
	height  int
	cursor  int
	results []constellation.Result
	lastErr error
}

// NewCatalogModel creates an empty catalog view.
func NewCatalogModel() CatalogModel {
	return CatalogModel{}
}

// Init implements the Bubble Tea model interface.
func (m CatalogModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m CatalogModel) SetSize(width, height int) CatalogModel {
	m.width = width
	m.height = height
	return m
}

// SetResults replaces the classification results shown.
func (m CatalogModel) SetResults(results []constellation.Result) CatalogModel {
	m.results = results
	m.lastErr = nil
	if m.cursor >= len(results) {
		m.cursor = max(len(results)-1, 0)
	}
	return m
}

// SetError sets the last error for display.
func (m CatalogModel) SetError(err error) CatalogModel {
	m.lastErr = err
	return m
}

// Update handles messages.
func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if len(m.results) > 0 {
				m.cursor = len(m.results) - 1
			}
		case "enter":
			if r := m.Selected(); r != nil {
				coord := astro.FromPoint(r.Target.Point)
				return m, func() tea.Msg {
					return CatalogOpenTargetMsg{Coord: coord}
				}
			}
		}
	}

	return m, nil
}

// Selected returns the result under the cursor, if any.
func (m CatalogModel) Selected() *constellation.Result {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return nil
	}
	r := m.results[m.cursor]
	return &r
}

// View renders the catalog table.
func (m CatalogModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if m.results == nil && m.lastErr == nil {
		b.WriteString("Classifying catalog...\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render("Catalog Stars"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-18s %-12s %-12s %5s  %s", "Star", "RA", "Dec", "Mag", "Constellation")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.results) == 0 {
		b.WriteString("  No targets\n")
		return b.String()
	}

	maxRows := m.height - 6
	if maxRows < 5 {
		maxRows = 5
	}

	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := min(startIdx+maxRows, len(m.results))

	for i := startIdx; i < endIdx; i++ {
		r := m.results[i]
		c := astro.FromPoint(r.Target.Point)
		row := fmt.Sprintf("%-18s %-12s %-12s %5.2f  %s",
			truncate(r.Target.Name, 18),
			astro.FormatRA(c.RAdeg),
			astro.FormatDec(c.DecDeg),
			r.Target.Mag,
			resultLabel(r),
		)

		switch {
		case i == m.cursor:
			b.WriteString(selectedRowStyle.Render(row))
		case r.Err != nil:
			b.WriteString(unresolvedStyle.Render(row))
		default:
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if len(m.results) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d stars", startIdx+1, endIdx, len(m.results)))
	}

	return b.String()
}

func resultLabel(r constellation.Result) string {
	switch {
	case r.Err == nil:
		return fmt.Sprintf("%s (%s)", r.Entry.Name(), r.ID())
	case errors.Is(r.Err, constellation.ErrNotFound):
		return "-"
	case errors.Is(r.Err, constellation.ErrAmbiguous):
		return "ambiguous"
	default:
		return "error"
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
