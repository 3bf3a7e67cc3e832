package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/litescript/ls-planisphere/internal/astro"
	"github.com/litescript/ls-planisphere/internal/body"
	"github.com/litescript/ls-planisphere/internal/projection"
	"github.com/litescript/ls-planisphere/internal/sky"
	"github.com/litescript/ls-planisphere/internal/state"
)

const (
	// Field of view in degrees
	defaultFOV = 120.0
	minFOV     = 10.0
	maxFOV     = 300.0
	zoomFactor = 1.25

	// Terminal cells are about twice as tall as they are wide.
	cellAspect = 0.5

	panStep = 5.0 // degrees
	// Objects within this many columns of the cursor can be selected.
	pickRadius = 2.0

	// Animation
	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	// Solar-system glyphs
	glyphSun    = '☼'
	glyphPlanet = '●'
	glyphCursor = '+'

	colorSun      = "#FFD54A"
	colorMoon     = "#E6E6F0"
	colorPlanet   = "#E8C07D"
	colorFocused  = "229" // bright gold
	colorHorizon  = "60"  // muted purple
	colorAsterism = "238"
	colorCardinal = "252"
	colorSky      = "236"
	colorGround   = "234"

	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '·' // mag 3.0-4.0
	glyphStarVeryDim = '·' // mag > 4.0
)

// LabelMode controls how object labels are displayed.
type LabelMode int

const (
	LabelNone     LabelMode = iota // No labels
	LabelFocused                   // Only the selected object
	LabelAll                       // Every object on screen
	labelModeCount
)

func (l LabelMode) String() string {
	switch l {
	case LabelNone:
		return "off"
	case LabelFocused:
		return "focus"
	default:
		return "all"
	}
}

// Controller is the state the sky view reads snapshots from and drives.
// *state.Manager implements it.
type Controller interface {
	Center() astro.Horizontal
	SetCenter(astro.Horizontal)
	Rebuild(t time.Time) (*sky.ObservedSky, error)
	Snapshot() state.Snapshot
}

// SkyViewModel renders the stereographic sky around the viewing direction
// and lets the user pan, zoom, step time and pick objects.
type SkyViewModel struct {
	ctrl Controller
	now  func() time.Time
	loc  *time.Location

	width  int
	height int

	fov    float64       // degrees across the canvas width
	offset time.Duration // from the wall clock

	// Cursor cell relative to the canvas centre.
	cursorX, cursorY int

	labelMode     LabelMode
	showAsterisms bool

	sky      *sky.ObservedSky
	selected body.Object

	// Animation of the viewing direction
	animating   bool
	animStartAz float64
	animStartEl float64
	animTargAz  float64
	animTargEl  float64
	animStart   time.Time
}

// NewSkyViewModel creates a sky view driven by ctrl.
func NewSkyViewModel(ctrl Controller) SkyViewModel {
	return SkyViewModel{
		ctrl:          ctrl,
		now:           time.Now,
		loc:           time.Local,
		fov:           defaultFOV,
		labelMode:     LabelFocused,
		showAsterisms: true,
	}
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	m.selected = m.pick()
	return m
}

// SetFOV sets the field of view in degrees, clamped to the supported range.
func (m SkyViewModel) SetFOV(deg float64) SkyViewModel {
	m.fov = math.Max(minFOV, math.Min(maxFOV, deg))
	m.selected = m.pick()
	return m
}

// SetLocation sets the time zone times are shown in.
func (m SkyViewModel) SetLocation(loc *time.Location) SkyViewModel {
	if loc != nil {
		m.loc = loc
	}
	return m
}

// Instant returns the time the view is showing.
func (m SkyViewModel) Instant() time.Time {
	return m.now().Add(m.offset)
}

// Selected returns the object nearest the cursor, if any.
func (m SkyViewModel) Selected() (body.Object, bool) {
	return m.selected, m.selected != nil
}

// UpdateData updates with a new state snapshot.
func (m SkyViewModel) UpdateData(snapshot state.Snapshot) SkyViewModel {
	if snapshot.Sky != nil {
		m.sky = snapshot.Sky
	}
	m.selected = m.pick()
	return m
}

// rebuild asks the controller for a snapshot at the view's instant.
func (m SkyViewModel) rebuild() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	ctrl, at := m.ctrl, m.Instant()
	return func() tea.Msg {
		if _, err := ctrl.Rebuild(at); err != nil {
			return ErrorMsg{Error: err}
		}
		return SnapshotMsg{Snapshot: ctrl.Snapshot()}
	}
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
		case "left":
			return m.pan(-panStep, 0)
		case "right":
			return m.pan(panStep, 0)
		case "up":
			return m.pan(0, panStep)
		case "down":
			return m.pan(0, -panStep)
		case "h":
			m = m.moveCursor(-1, 0)
		case "l":
			m = m.moveCursor(1, 0)
		case "k":
			m = m.moveCursor(0, -1)
		case "j":
			m = m.moveCursor(0, 1)
		case "esc":
			m.cursorX, m.cursorY = 0, 0
			m.selected = m.pick()
		case "+", "=":
			m = m.SetFOV(m.fov / zoomFactor)
		case "-", "_":
			m = m.SetFOV(m.fov * zoomFactor)
		case "]":
			return m.step(time.Hour)
		case "[":
			return m.step(-time.Hour)
		case "}":
			return m.step(24 * time.Hour)
		case "{":
			return m.step(-24 * time.Hour)
		case "0":
			m.offset = 0
			return m, m.rebuild()
		case "n":
			m.labelMode = (m.labelMode + 1) % labelModeCount
		case "c":
			m.showAsterisms = !m.showAsterisms
		case "enter", " ":
			return m.centerOnSelected()
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

func (m SkyViewModel) center() astro.Horizontal {
	if m.ctrl == nil {
		return astro.Horizontal{}
	}
	return m.ctrl.Center()
}

// setCenter hands a new viewing direction to the controller and rebuilds.
func (m SkyViewModel) setCenter(azDeg, altDeg float64) tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	azDeg = math.Mod(azDeg, 360)
	if azDeg < 0 {
		azDeg += 360
	}
	altDeg = math.Max(-90, math.Min(90, altDeg))
	c, err := astro.NewHorizontalDeg(azDeg, altDeg)
	if err != nil {
		return nil
	}
	m.ctrl.SetCenter(c)
	return m.rebuild()
}

func (m SkyViewModel) pan(dAz, dAlt float64) (SkyViewModel, tea.Cmd) {
	c := m.center()
	m.animating = false
	return m, m.setCenter(c.AzDeg()+dAz, c.AltDeg()+dAlt)
}

func (m SkyViewModel) step(d time.Duration) (SkyViewModel, tea.Cmd) {
	m.offset += d
	return m, m.rebuild()
}

func (m SkyViewModel) moveCursor(dx, dy int) SkyViewModel {
	w, h := m.canvasSize()
	m.cursorX = max(-w/2, min(w/2-1, m.cursorX+dx))
	m.cursorY = max(-h/2, min(h/2-1, m.cursorY+dy))
	m.selected = m.pick()
	return m
}

func (m SkyViewModel) centerOnSelected() (SkyViewModel, tea.Cmd) {
	if m.sky == nil || m.selected == nil {
		return m, nil
	}
	h, ok := m.sky.Horizontal(m.selected)
	if !ok {
		return m, nil
	}

	c := m.center()
	m.animating = true
	m.animStartAz = c.AzDeg()
	m.animStartEl = c.AltDeg()
	m.animTargAz = h.AzDeg()
	m.animTargEl = h.AltDeg()
	m.animStart = time.Now()
	// The object moves to the centre, and so does the cursor.
	m.cursorX, m.cursorY = 0, 0

	return m, animTick()
}

func (m SkyViewModel) updateAnimation() (SkyViewModel, tea.Cmd) {
	elapsed := time.Since(m.animStart)
	t := float64(elapsed) / float64(animDuration)

	if t >= 1.0 {
		// Animation complete
		m.animating = false
		return m, m.setCenter(m.animTargAz, m.animTargEl)
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	// Interpolate azimuth with wrap-around handling
	az := lerpAngle(m.animStartAz, m.animTargAz, t)
	el := lerp(m.animStartEl, m.animTargEl, t)

	return m, tea.Batch(m.setCenter(az, el), animTick())
}

// canvasSize returns the sky canvas dimensions in cells. The header and
// two status lines take the rest.
func (m SkyViewModel) canvasSize() (int, int) {
	return m.width, max(0, m.height-3)
}

// screen maps plane points to canvas cells for one projection and canvas
// size.
type screen struct {
	proj          projection.Stereographic
	width, height int
	scale         float64 // columns per plane unit
}

func (m SkyViewModel) screen() screen {
	w, h := m.canvasSize()
	proj := projection.NewStereographic(m.center())
	if m.sky != nil {
		proj = m.sky.Projection()
	}
	return newScreen(proj, w, h, m.fov)
}

func newScreen(proj projection.Stereographic, width, height int, fovDeg float64) screen {
	return screen{
		proj:   proj,
		width:  width,
		height: height,
		scale:  float64(width) / proj.ApplyToAngle(astro.DegToRad(fovDeg)),
	}
}

// cell returns the canvas cell of p. finite is false for the antipode and
// other points with no usable image; the cell may lie off the canvas.
func (s screen) cell(p r2.Vec) (x, y int, finite bool) {
	fx := float64(s.width)/2 + p.X*s.scale
	fy := float64(s.height)/2 - p.Y*s.scale*cellAspect
	if projection.IsAntipode(p) || math.IsNaN(fx) || math.IsNaN(fy) ||
		math.Abs(fx) > 1e6 || math.Abs(fy) > 1e6 {
		return 0, 0, false
	}
	return int(math.Floor(fx)), int(math.Floor(fy)), true
}

func (s screen) onCanvas(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// plane returns the plane point at the centre of cell (x, y).
func (s screen) plane(x, y int) r2.Vec {
	return r2.Vec{
		X: (float64(x) + 0.5 - float64(s.width)/2) / s.scale,
		Y: (float64(s.height)/2 - float64(y) - 0.5) / (s.scale * cellAspect),
	}
}

// pick returns the object nearest the cursor within pickRadius columns.
func (m SkyViewModel) pick() body.Object {
	if m.sky == nil || m.width == 0 {
		return nil
	}
	s := m.screen()
	if s.width == 0 || s.height == 0 {
		return nil
	}
	p := s.plane(s.width/2+m.cursorX, s.height/2+m.cursorY)
	obj, ok := m.sky.ObjectClosestTo(p, pickRadius/s.scale)
	if !ok {
		return nil
	}
	return obj
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	w, h := m.canvasSize()
	if w < 20 || h < 10 {
		return "Sky view requires larger terminal"
	}
	if m.sky == nil {
		return "Computing sky..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSkyCanvas())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m SkyViewModel) renderHeader() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0c8ff"))

	c := m.sky.Projection().Center()
	at := m.sky.Instant().In(m.loc)
	timeStr := at.Format("2006-01-02 15:04 MST")
	if m.offset != 0 {
		timeStr += fmt.Sprintf(" (%+.0fh)", m.offset.Hours())
	}

	asterisms := "off"
	if m.showAsterisms {
		asterisms = "on"
	}

	return strings.Join([]string{
		accentStyle.Render(timeStr),
		dimStyle.Render(fmt.Sprintf("Az:%.0f° Alt:%.0f°", c.AzDeg(), c.AltDeg())),
		dimStyle.Render(fmt.Sprintf("FOV:%.0f°", m.fov)),
		dimStyle.Render("Labels: " + m.labelMode.String()),
		dimStyle.Render("Lines: " + asterisms),
	}, " | ")
}

func (m SkyViewModel) renderStatus() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0c8ff"))
	if m.selected == nil {
		return dimStyle.Render("No object under cursor") + "\n"
	}

	h, _ := m.sky.Horizontal(m.selected)
	fromCenter := astro.RadToDeg(h.AngularDistanceTo(m.sky.Projection().Center()))
	eq := m.selected.Equatorial()

	line1 := fmt.Sprintf(">>> %s | Az:%.1f° Alt:%.1f° (%s) | mag %.2f | %.0f° from centre",
		m.selected.Info(),
		h.AzDeg(), h.AltDeg(), h.AzOctantName("N", "E", "S", "W"),
		m.selected.Magnitude(),
		fromCenter,
	)
	line2 := fmt.Sprintf("    RA %s  Dec %s", astro.FormatRA(eq.RA()), astro.FormatDec(eq.Dec()))
	if st, ok := m.selected.(body.Star); ok {
		line2 += fmt.Sprintf("  HIP %d  %d K", st.HipparcosID(), st.ColorTemperature())
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFocused))
	return accentStyle.Render(line1) + "\n" + dimStyle.Render(line2)
}

// objectPos tracks an object's cell for label rendering
type objectPos struct {
	x, y       int
	name       string
	isFocused  bool
	labelStart int // calculated label start position
	labelEnd   int // calculated label end position
}

// canvas is a grid of glyphs with foreground colours and a ground mask.
type canvas struct {
	runes  [][]rune
	colors [][]lipgloss.Color
	ground [][]bool
}

func newCanvas(width, height int) canvas {
	c := canvas{
		runes:  make([][]rune, height),
		colors: make([][]lipgloss.Color, height),
		ground: make([][]bool, height),
	}
	for y := 0; y < height; y++ {
		c.runes[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		c.ground[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			c.runes[y][x] = ' '
			c.colors[y][x] = colorSky
		}
	}
	return c
}

func (c canvas) set(s screen, x, y int, r rune, color lipgloss.Color) {
	if s.onCanvas(x, y) {
		c.runes[y][x] = r
		c.colors[y][x] = color
	}
}

// setBlank writes r only where nothing has been drawn yet.
func (c canvas) setBlank(s screen, x, y int, r rune, color lipgloss.Color) {
	if s.onCanvas(x, y) && c.runes[y][x] == ' ' {
		c.runes[y][x] = r
		c.colors[y][x] = color
	}
}

func (m SkyViewModel) renderSkyCanvas() string {
	s := m.screen()
	c := newCanvas(s.width, s.height)

	m.drawGround(c, s)
	m.drawHorizon(c, s)
	if m.showAsterisms {
		m.drawAsterisms(c, s)
	}

	var positions []objectPos
	track := func(o body.Object, p r2.Vec) (int, int, bool) {
		x, y, ok := s.cell(p)
		if !ok || !s.onCanvas(x, y) {
			return 0, 0, false
		}
		positions = append(positions, objectPos{x: x, y: y, name: o.Name(), isFocused: o == m.selected})
		return x, y, true
	}

	// Faint first so that brighter objects win shared cells.
	stars := m.sky.Stars()
	starPos := m.sky.StarPositions()
	for i, st := range stars {
		if x, y, ok := track(st, starPos[i]); ok {
			c.set(s, x, y, starGlyph(st.Magnitude()), starColor(st.ColorTemperature()))
		}
	}
	planetPos := m.sky.PlanetPositions()
	for i, p := range m.sky.Planets() {
		if x, y, ok := track(p, planetPos[i]); ok {
			c.set(s, x, y, glyphPlanet, colorPlanet)
		}
	}
	if x, y, ok := track(m.sky.Moon(), m.sky.MoonPosition()); ok {
		c.set(s, x, y, moonGlyph(m.sky.Moon()), colorMoon)
	}
	if x, y, ok := track(m.sky.Sun(), m.sky.SunPosition()); ok {
		c.set(s, x, y, glyphSun, colorSun)
	}

	// Selected object and cursor
	for _, pos := range positions {
		if pos.isFocused {
			c.colors[pos.y][pos.x] = colorFocused
		}
	}
	c.setBlank(s, s.width/2+m.cursorX, s.height/2+m.cursorY, glyphCursor, colorFocused)

	m.renderLabels(c, s, positions)

	// Render canvas to string
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			style := lipgloss.NewStyle().Foreground(c.colors[y][x])
			if c.ground[y][x] {
				style = style.Background(lipgloss.Color(colorGround))
			}
			b.WriteString(style.Render(string(c.runes[y][x])))
		}
		if y < s.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// drawGround marks every cell whose direction lies below the horizon.
func (m SkyViewModel) drawGround(c canvas, s screen) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c.ground[y][x] = s.proj.InverseApply(s.plane(x, y)).Alt() < 0
		}
	}
}

// drawHorizon draws the image of the 0° parallel and the compass points on
// it.
func (m SkyViewModel) drawHorizon(c canvas, s screen) {
	horizon, _ := astro.NewHorizontalDeg(0, 0)
	center := s.proj.CircleCenterForParallel(horizon)
	radius := s.proj.CircleRadiusForParallel(horizon)

	if math.IsInf(radius, 0) || math.IsNaN(radius) || math.IsInf(center.Y, 0) {
		// Centre on the horizon: the parallel is the x axis.
		for x := 0; x < s.width; x++ {
			_, y, _ := s.cell(r2.Vec{})
			c.setBlank(s, x, y, '─', colorHorizon)
		}
	} else {
		radius = math.Abs(radius)
		n := int(2*math.Pi*radius*s.scale) + 64
		if n > 20000 {
			n = 20000
		}
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			p := r2.Add(center, r2.Scale(radius, r2.Vec{X: math.Cos(a), Y: math.Sin(a)}))
			if x, y, ok := s.cell(p); ok {
				c.setBlank(s, x, y, '·', colorHorizon)
			}
		}
	}

	for az := 0.0; az < 360; az += 45 {
		h, _ := astro.NewHorizontalDeg(az, 0)
		x, y, ok := s.cell(s.proj.Apply(h))
		if !ok {
			continue
		}
		for i, r := range h.AzOctantName("N", "E", "S", "W") {
			c.set(s, x+i, y, r, colorCardinal)
		}
	}
}

// drawAsterisms joins consecutive stars of every asterism.
func (m SkyViewModel) drawAsterisms(c canvas, s screen) {
	for i := range m.sky.Asterisms() {
		idx := m.sky.AsterismIndices(i)
		for j := 1; j < len(idx); j++ {
			x0, y0, ok0 := s.cell(m.sky.StarPosition(idx[j-1]))
			x1, y1, ok1 := s.cell(m.sky.StarPosition(idx[j]))
			if !ok0 || !ok1 {
				continue
			}
			// Both ends far off the canvas on the same side: nothing to draw.
			if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
				(x0 >= s.width && x1 >= s.width) || (y0 >= s.height && y1 >= s.height) {
				continue
			}
			drawLine(x0, y0, x1, y1, 4*(s.width+s.height), func(x, y int) {
				c.setBlank(s, x, y, '·', colorAsterism)
			})
		}
	}
}

// drawLine plots the cells of a Bresenham line, stopping after limit
// points.
func drawLine(x0, y0, x1, y1, limit int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for n := 0; n < limit; n++ {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// renderLabels draws object labels on the canvas based on label mode.
// The selected object's label takes priority in overlapping regions.
func (m SkyViewModel) renderLabels(c canvas, s screen, positions []objectPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	// Calculate label positions (to the right of the glyph with 1-char gap)
	for i := range positions {
		pos := &positions[i]
		pos.labelStart = pos.x + 2
		// Focused labels have "◄ " prefix (2 extra chars)
		labelLen := len([]rune(pos.name))
		if pos.isFocused {
			labelLen += 2
		}
		pos.labelEnd = pos.labelStart + labelLen
	}

	// Track which x positions on each row are claimed by the focused label
	focusedClaims := make(map[int]map[int]bool) // y -> x -> claimed
	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		if focusedClaims[pos.y] == nil {
			focusedClaims[pos.y] = make(map[int]bool)
		}
		for x := pos.labelStart; x < pos.labelEnd; x++ {
			focusedClaims[pos.y][x] = true
		}
	}

	for _, pos := range positions {
		showLabel := false
		switch m.labelMode {
		case LabelFocused:
			showLabel = pos.isFocused
		case LabelAll:
			showLabel = true
		}
		if !showLabel {
			continue
		}

		labelColor := lipgloss.Color(colorHorizon)
		labelText := pos.name
		if pos.isFocused {
			labelColor = colorFocused
			labelText = "◄ " + pos.name
		}

		for i, r := range []rune(labelText) {
			x := pos.labelStart + i
			if !s.onCanvas(x, pos.y) {
				continue
			}
			if !pos.isFocused && focusedClaims[pos.y][x] {
				continue
			}
			// Unfocused labels never cover other glyphs.
			if !pos.isFocused && c.runes[pos.y][x] != ' ' && c.colors[pos.y][x] != colorAsterism && c.colors[pos.y][x] != colorHorizon {
				continue
			}
			c.runes[pos.y][x] = r
			c.colors[pos.y][x] = labelColor
		}
	}
}

// starGlyph returns the glyph for a star based on its magnitude.
// Brighter stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) rune {
	switch {
	case mag < 1.5:
		return glyphStarBright
	case mag < 3.0:
		return glyphStarMedium
	case mag < 4.0:
		return glyphStarDim
	default:
		return glyphStarVeryDim
	}
}

// moonGlyph picks a glyph for the Moon's phase.
func moonGlyph(moon body.Moon) rune {
	switch p := moon.Phase(); {
	case p < 0.03:
		return '○'
	case p > 0.97:
		return '●'
	case moon.Waxing():
		return '◐'
	default:
		return '◑'
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

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Init returns nil cmd
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}
