package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r2"

	"github.com/litescript/ls-skygeom/internal/astro"
	"github.com/litescript/ls-skygeom/internal/constellation"
	"github.com/litescript/ls-skygeom/internal/planar"
	"github.com/litescript/ls-skygeom/internal/sphere"
)

const (
	// Cursor steps in degrees
	stepSmall = 1.0
	stepLarge = 5.0

	// Animation
	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	// Boundary edges are drawn as this many samples per degree of arc
	edgeSamplesPerDeg = 2

	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '·' // mag > 3.0
	glyphCursor      = '✛'
	glyphBoundary    = '░'
	glyphBoundaryHit = '▒'

	// Star colors
	colorStarBright  = "255" // bright white
	colorStarMedium  = "250" // medium gray
	colorStarDim     = "244" // dim gray
	colorCursor      = "229" // bright gold
	colorBoundary    = "60"  // muted purple
	colorBoundaryHit = "135" // violet, boundary of the constellation under the cursor
	colorBackground  = "236"
)

// SkyViewModel renders a chart of the sky around a movable RA/Dec cursor,
// with constellation boundaries and the constellation under the cursor.
type SkyViewModel struct {
	width  int
	height int

	// Field of view in degrees
	fovRA  float64
	fovDec float64

	// Cursor position (center of view)
	cursor astro.SkyCoord

	// Animation state for star jumps
	animating  bool
	animStart  time.Time
	animFrom   astro.SkyCoord
	animTarget astro.SkyCoord

	// Star focus for n/p jumps, -1 when the cursor was moved freely
	starIdx int
	stars   []astro.Star // sorted by RA

	showBounds bool
	registry   *constellation.Registry

	// Lookup result for the current cursor position
	located *constellation.Entry
	locErr  error
}

// NewSkyViewModel creates a sky view centered on Betelgeuse.
func NewSkyViewModel(reg *constellation.Registry, catalog astro.StarCatalog, fovRA, fovDec float64) SkyViewModel {
	m := SkyViewModel{
		fovRA:      fovRA,
		fovDec:     fovDec,
		cursor:     astro.SkyCoord{RAdeg: 88.793, DecDeg: 7.407},
		starIdx:    -1,
		stars:      catalog.SortedByRA().Stars,
		showBounds: true,
		registry:   reg,
	}
	return m.locate()
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// Cursor returns the current cursor position.
func (m SkyViewModel) Cursor() astro.SkyCoord {
	return m.cursor
}

// Located returns the constellation under the cursor and the lookup error,
// if any.
func (m SkyViewModel) Located() (*constellation.Entry, error) {
	return m.located, m.locErr
}

// animTickMsg is sent during animation
type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			return m.move(0, stepSmall), nil
		case "down", "j":
			return m.move(0, -stepSmall), nil
		case "left", "h":
			// RA increases to the east, which is left on a sky chart.
			return m.move(stepSmall, 0), nil
		case "right", "l":
			return m.move(-stepSmall, 0), nil
		case "shift+up", "K":
			return m.move(0, stepLarge), nil
		case "shift+down", "J":
			return m.move(0, -stepLarge), nil
		case "shift+left", "H":
			return m.move(stepLarge, 0), nil
		case "shift+right", "L":
			return m.move(-stepLarge, 0), nil
		case "n":
			return m.focusNext()
		case "p":
			return m.focusPrev()
		case "b":
			m.showBounds = !m.showBounds
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

func (m SkyViewModel) move(dRA, dDec float64) SkyViewModel {
	m.animating = false
	m.starIdx = -1
	m.cursor = m.cursor.Offset(dRA, dDec)
	return m.locate()
}

// locate refreshes the constellation lookup for the cursor.
func (m SkyViewModel) locate() SkyViewModel {
	m.located, m.locErr = nil, nil
	if m.registry == nil {
		return m
	}
	m.located, m.locErr = m.registry.Locate(m.cursor.Point())
	return m
}

func (m SkyViewModel) focusNext() (SkyViewModel, tea.Cmd) {
	if len(m.stars) == 0 {
		return m, nil
	}
	if m.starIdx < 0 {
		// First star east of the cursor
		m.starIdx = len(m.stars) - 1
		for i, s := range m.stars {
			if s.RAdeg > m.cursor.RAdeg {
				m.starIdx = i - 1
				break
			}
		}
	}
	m.starIdx = (m.starIdx + 1) % len(m.stars)
	return m.startAnimation()
}

func (m SkyViewModel) focusPrev() (SkyViewModel, tea.Cmd) {
	if len(m.stars) == 0 {
		return m, nil
	}
	if m.starIdx < 0 {
		// First star west of the cursor
		m.starIdx = 0
		for i := len(m.stars) - 1; i >= 0; i-- {
			if m.stars[i].RAdeg < m.cursor.RAdeg {
				m.starIdx = i + 1
				break
			}
		}
	}
	m.starIdx--
	if m.starIdx < 0 {
		m.starIdx = len(m.stars) - 1
	}
	return m.startAnimation()
}

func (m SkyViewModel) startAnimation() (SkyViewModel, tea.Cmd) {
	s := m.stars[m.starIdx]
	return m.animateTo(astro.SkyCoord{RAdeg: s.RAdeg, DecDeg: s.DecDeg})
}

// CenterOn moves the cursor to c with the same animation as a star jump.
func (m SkyViewModel) CenterOn(c astro.SkyCoord) (SkyViewModel, tea.Cmd) {
	m.starIdx = -1
	for i, s := range m.stars {
		if math.Abs(s.RAdeg-c.RAdeg) < 1e-6 && math.Abs(s.DecDeg-c.DecDeg) < 1e-6 {
			m.starIdx = i
			break
		}
	}
	return m.animateTo(c)
}

func (m SkyViewModel) animateTo(c astro.SkyCoord) (SkyViewModel, tea.Cmd) {
	m.animating = true
	m.animFrom = m.cursor
	m.animTarget = c
	m.animStart = time.Now()

	return m, animTick()
}

func (m SkyViewModel) updateAnimation() (SkyViewModel, tea.Cmd) {
	elapsed := time.Since(m.animStart)
	t := float64(elapsed) / float64(animDuration)

	if t >= 1.0 {
		// Animation complete
		m.animating = false
		m.cursor = m.animTarget
		return m.locate(), nil
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	m.cursor = astro.SkyCoord{
		RAdeg:  astro.NormalizeRA(lerpAngle(m.animFrom.RAdeg, m.animTarget.RAdeg, t)),
		DecDeg: lerp(m.animFrom.DecDeg, m.animTarget.DecDeg, t),
	}
	return m, animTick()
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky view requires larger terminal"
	}

	// Reserve lines for header and status
	viewHeight := m.height - 4
	viewWidth := m.width

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSkyCanvas(viewWidth, viewHeight))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m SkyViewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")) // violet
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))               // muted purple
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0c8ff"))       // soft purple

	title := titleStyle.Render("Sky Chart")
	pos := accentStyle.Render(m.cursor.String())

	bounds := dimStyle.Render("Boundaries: off")
	if m.showBounds {
		bounds = accentStyle.Render("Boundaries: on")
	}
	fov := dimStyle.Render(fmt.Sprintf("FOV %.0f°×%.0f°", m.fovRA, m.fovDec))

	return fmt.Sprintf("%s | %s | %s | %s", title, pos, bounds, fov)
}

// LocationLabel describes the lookup result for the cursor.
func (m SkyViewModel) LocationLabel() string {
	switch {
	case m.locErr == nil && m.located != nil:
		return fmt.Sprintf("%s (%s)", m.located.Name(), m.located.ID())
	case errors.Is(m.locErr, constellation.ErrNotFound):
		return "outside known boundaries"
	case errors.Is(m.locErr, constellation.ErrAmbiguous):
		return "overlapping boundaries"
	case errors.Is(m.locErr, sphere.ErrPointOnBoundary):
		return "on a boundary"
	case m.locErr != nil:
		return "undetermined: " + m.locErr.Error()
	default:
		return ""
	}
}

func (m SkyViewModel) renderStatus() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorCursor))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0c8ff"))

	status := accentStyle.Render(">>> " + m.LocationLabel())
	if m.starIdx >= 0 && !m.animating {
		s := m.stars[m.starIdx]
		status += "\n" + dimStyle.Render(fmt.Sprintf("    %s  mag %.2f  %s", s.Name, s.Mag, s.Con))
	}
	return status
}

// chartRect is the visible part of the chart plane, in degrees offset from
// the cursor.
func (m SkyViewModel) chartRect() planar.Rectangle {
	return planar.NewRectangle(
		r2.Point{X: -m.fovRA / 2, Y: -m.fovDec / 2},
		r2.Point{X: m.fovRA / 2, Y: m.fovDec / 2},
	)
}

// chartPoint maps RA/Dec to the chart plane: X grows westward (decreasing
// RA) and Y northward, both in degrees from the cursor.
func (m SkyViewModel) chartPoint(ra, dec float64) r2.Point {
	return r2.Point{
		X: -normalizeAngle(ra - m.cursor.RAdeg),
		Y: dec - m.cursor.DecDeg,
	}
}

// projectToScreen converts RA/Dec to screen coordinates relative to the
// cursor.
func (m SkyViewModel) projectToScreen(ra, dec float64, width, height int) (int, int, bool) {
	p := m.chartPoint(ra, dec)
	if !m.chartRect().ContainsPoint(p) {
		return 0, 0, false
	}
	return m.chartToScreen(p, width, height)
}

func (m SkyViewModel) chartToScreen(p r2.Point, width, height int) (int, int, bool) {
	// X: -fovRA/2..+fovRA/2 -> 0..width
	// Y: +fovDec/2..-fovDec/2 -> 0..height (north up)
	// The west and south borders land on the last column and row.
	x := int((p.X + m.fovRA/2) / m.fovRA * float64(width))
	y := int((m.fovDec/2 - p.Y) / m.fovDec * float64(height))
	if x == width {
		x = width - 1
	}
	if y == height {
		y = height - 1
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

func (m SkyViewModel) renderSkyCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = colorBackground
		}
	}

	if m.showBounds && m.registry != nil {
		for _, e := range m.registry.All() {
			glyph, color := glyphBoundary, lipgloss.Color(colorBoundary)
			if e == m.located {
				glyph, color = glyphBoundaryHit, colorBoundaryHit
			}
			for _, edge := range m.visibleEdges(e.Polygon) {
				m.drawEdge(canvas, colors, width, height, edge, glyph, color)
			}
		}
	}

	for _, star := range m.stars {
		x, y, visible := m.projectToScreen(star.RAdeg, star.DecDeg, width, height)
		if !visible {
			continue
		}
		glyph, color := starGlyph(star.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color
	}

	if x, y, ok := m.chartToScreen(r2.Point{}, width, height); ok {
		canvas[y][x] = glyphCursor
		colors[y][x] = colorCursor
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// visibleEdges returns the polygon edges whose chart projection touches the
// viewport. Edges that wrap around the back of the chart are dropped.
func (m SkyViewModel) visibleEdges(p *sphere.Polygon) []sphere.Arc {
	rect := m.chartRect()
	var out []sphere.Arc
	for i := 0; i < p.NumEdges(); i++ {
		e := p.Edge(i)
		a := m.chartPoint(e.Start().Degrees())
		b := m.chartPoint(e.End().Degrees())
		if math.Abs(a.X-b.X) > 180 {
			continue
		}
		if rect.Overlaps(planar.Segment{Start: a, End: b}) {
			out = append(out, e)
		}
	}
	return out
}

// drawEdge plots samples along a great-circle arc.
func (m SkyViewModel) drawEdge(canvas [][]rune, colors [][]lipgloss.Color, width, height int, e sphere.Arc, glyph rune, color lipgloss.Color) {
	n := int(e.Length().Degrees()*edgeSamplesPerDeg) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		v := e.Start().Vector().Mul(1 - t).Add(e.End().Vector().Mul(t))
		p, err := sphere.PointFromVector(v)
		if err != nil {
			continue
		}
		c := astro.FromPoint(p)
		x, y, ok := m.projectToScreen(c.RAdeg, c.DecDeg, width, height)
		if !ok || canvas[y][x] != ' ' {
			continue
		}
		canvas[y][x] = glyph
		colors[y][x] = color
	}
}

// starGlyph returns the appropriate glyph and color for a star based on its magnitude.
// Brighter stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking shortest path
func lerpAngle(a, b, t float64) float64 {
	diff := normalizeAngle(b - a)
	return a + diff*t
}

// lerp linear interpolation
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Init returns nil cmd
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}
