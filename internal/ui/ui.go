// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skygeom/internal/astro"
	"github.com/litescript/ls-skygeom/internal/config"
	"github.com/litescript/ls-skygeom/internal/constellation"
	"github.com/litescript/ls-skygeom/internal/logging"
	"github.com/litescript/ls-skygeom/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSky ViewMode = iota
	ViewCatalog
)

// Msg types for Bubble Tea
type (
	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// ClassifiedMsg carries the result of classifying the star catalog.
	ClassifiedMsg struct {
		Results []constellation.Result
		Err     error
	}

	// CatalogOpenTargetMsg requests centering the sky view on a target.
	CatalogOpenTargetMsg struct {
		Coord astro.SkyCoord
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	registry *constellation.Registry
	catalog  astro.StarCatalog
	workers  int
	log      *logging.Logger

	// UI state
	viewMode    ViewMode
	width       int
	height      int
	ready       bool
	classifying bool
	animTick    int // Animation tick for shimmer effects

	// Sub-models
	skyView     SkyViewModel
	catalogView CatalogModel
}

// New creates a new root UI model.
func New(reg *constellation.Registry, catalog astro.StarCatalog, cfg config.Config, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		registry:    reg,
		catalog:     catalog,
		workers:     cfg.Workers,
		log:         log.With("ui"),
		viewMode:    ViewSky,
		classifying: true,
		skyView:     NewSkyViewModel(reg, catalog, cfg.Chart.WidthDeg, cfg.Chart.HeightDeg),
		catalogView: NewCatalogModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		animTickCmd(),
		classifyCmd(m.registry, m.catalog, m.workers, m.log),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewSky
		case "2":
			m.viewMode = ViewCatalog

		case "tab":
			// Cycle through views
			m.viewMode = (m.viewMode + 1) % 2

		default:
			// Pass to active view
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~10 lines, footer ~2 lines
		contentHeight := msg.Height - 13
		m.skyView = m.skyView.SetSize(msg.Width, contentHeight)
		m.catalogView = m.catalogView.SetSize(msg.Width, contentHeight)

	case AnimTickMsg:
		m.animTick++
		cmds = append(cmds, animTickCmd())

	case animTickMsg:
		var cmd tea.Cmd
		m.skyView, cmd = m.skyView.Update(msg)
		cmds = append(cmds, cmd)

	case ClassifiedMsg:
		m.classifying = false
		if msg.Err != nil {
			m.catalogView = m.catalogView.SetError(msg.Err)
		} else {
			m.catalogView = m.catalogView.SetResults(msg.Results)
		}

	case CatalogOpenTargetMsg:
		var cmd tea.Cmd
		m.viewMode = ViewSky
		m.skyView, cmd = m.skyView.CenterOn(msg.Coord)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSky:
		m.skyView, cmd = m.skyView.Update(msg)
	case ViewCatalog:
		m.catalogView, cmd = m.catalogView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSky:
		content = m.skyView.View()
	case ViewCatalog:
		content = m.catalogView.View()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	header := m.renderHeader()
	footer := m.renderFooter()

	return header + "\n" + content + "\n" + footer
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// ASCII art with smooth truecolor gradient
	logo := []string{
		`  ██╗     ███████╗      ███████╗██╗  ██╗██╗   ██╗ ██████╗ ███████╗ ██████╗ ███╗   ███╗`,
		`  ██║     ██╔════╝      ██╔════╝██║ ██╔╝╚██╗ ██╔╝██╔════╝ ██╔════╝██╔═══██╗████╗ ████║`,
		`  ██║     ███████╗█████╗███████╗█████╔╝  ╚████╔╝ ██║  ███╗█████╗  ██║   ██║██╔████╔██║`,
		`  ██║     ╚════██║╚════╝╚════██║██╔═██╗   ╚██╔╝  ██║   ██║██╔══╝  ██║   ██║██║╚██╔╝██║`,
		`  ███████╗███████║      ███████║██║  ██╗   ██║   ╚██████╔╝███████╗╚██████╔╝██║ ╚═╝ ██║`,
		`  ╚══════╝╚══════╝      ╚══════╝╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚══════╝ ╚═════╝ ╚═╝     ╚═╝`,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		lineLen := len(runes)

		for col, r := range runes {
			color := gradientColor(col, row, lineLen, len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	tagline := fmt.Sprintf("  Constellation Boundaries · Spherical Geometry | v%s", version.Version)
	b.WriteString(muted.Render(tagline))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient.
// Creates a nebula effect: blue -> purple -> magenta -> pink
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Blue (#3B82F6) -> Purple (#8B5CF6) -> Magenta (#D946EF) -> Pink (#EC4899)
	var r, g, b float64
	switch {
	case xRatio < 0.33:
		t := xRatio / 0.33
		r = lerp(59, 139, t)
		g = lerp(130, 92, t)
		b = 246
	case xRatio < 0.66:
		t := (xRatio - 0.33) / 0.33
		r = lerp(139, 217, t)
		g = lerp(92, 70, t)
		b = lerp(246, 239, t)
	default:
		t := (xRatio - 0.66) / 0.34
		r = lerp(217, 236, t)
		g = lerp(70, 72, t)
		b = lerp(239, 153, t)
	}

	// Vertical fade: brighter at top, darker toward bottom
	brightness := 1.0 - (yRatio * 0.5)

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r*brightness), clampByte(g*brightness), clampByte(b*brightness))
}

func clampByte(v float64) int {
	return max(0, min(255, int(v)))
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Sky", "[2] Catalog"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	if m.registry != nil {
		status = dimStyle.Render(fmt.Sprintf("%d boundaries", m.registry.Len()))
	}
	if m.classifying {
		status = accentStyle.Render(spinner) + " " + m.renderShimmerText("Classifying catalog...")
	}

	var help string
	switch m.viewMode {
	case ViewCatalog:
		help = dimStyle.Render("↑↓: navigate | enter: show on chart | tab: switch view | q: quit")
	default:
		help = dimStyle.Render("arrows/hjkl: move | shift: ×5 | n/p: next/prev star | b: boundaries | q: quit")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// classifyCmd classifies every catalog star in the background.
func classifyCmd(reg *constellation.Registry, catalog astro.StarCatalog, workers int, log *logging.Logger) tea.Cmd {
	return func() tea.Msg {
		targets := make([]constellation.Target, len(catalog.Stars))
		for i, s := range catalog.Stars {
			targets[i] = constellation.Target{Name: s.Name, Point: s.Point(), Mag: s.Mag}
		}
		results, err := constellation.Classify(context.Background(), reg, targets, workers, log)
		return ClassifiedMsg{Results: results, Err: err}
	}
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	textLen := len(runes)
	if textLen == 0 {
		return ""
	}

	// Padding for smooth entry/exit
	pos := m.animTick % (textLen + 8)

	var result strings.Builder
	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}

		var r8, g8, b8 int
		switch {
		case dist <= 1:
			r8, g8, b8 = 180, 160, 220
		case dist <= 3:
			r8, g8, b8 = 140, 120, 180
		case dist <= 5:
			r8, g8, b8 = 110, 90, 150
		default:
			r8, g8, b8 = 80, 70, 120
		}

		hexColor := fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor))
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
