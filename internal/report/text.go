package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planisphere/internal/almanac"
)

// styles holds the text styles of one writer. The renderer picks the colour
// profile of the destination, so output to a file or pipe is plain.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	dim     lipgloss.Style
	caution lipgloss.Style
	warning lipgloss.Style
	event   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true),
		header:  r.NewStyle().Bold(true),
		dim:     r.NewStyle().Foreground(lipgloss.Color("60")),
		caution: r.NewStyle().Foreground(lipgloss.Color("#F4A261")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#E84A27")),
		event:   r.NewStyle().Foreground(lipgloss.Color("#7B2CBF")),
	}
}

const rule = 78

// WriteText writes a text table of the summary to w.
func (s *Summary) WriteText(w io.Writer) {
	st := newStyles(w)
	loc := s.location
	if loc == nil {
		loc = time.UTC
	}
	clock := func(t *time.Time) string {
		if t == nil {
			return "--:--"
		}
		return t.In(loc).Format("15:04")
	}

	name := s.Observer.Name
	if name == "" {
		name = "Observer"
	}
	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("%s (%.4f°, %.4f°) @ %s",
		name, s.Observer.Lat, s.Observer.Lon, s.Timestamp.In(loc).Format(time.RFC3339))))
	fmt.Fprintf(w, "Local sidereal time %s   Sunrise %s   Sunset %s\n",
		s.LST, clock(s.Sunrise), clock(s.Sunset))
	fmt.Fprintln(w, strings.Repeat("─", rule))

	fmt.Fprintln(w, st.header.Render(fmt.Sprintf("%-10s %-13s %-14s %7s %6s %-3s %5s %-6s %-6s %s",
		"Body", "RA", "Dec", "Az", "Alt", "Dir", "Mag", "Rise", "Set", "Glare")))

	line := func(r BodyRow, glare string) {
		text := fmt.Sprintf("%-10s %-13s %-14s %6.1f° %5.1f° %-3s %5.1f %-6s %-6s %s",
			truncateStr(r.Name, 10), r.RA, r.Dec, r.Azimuth, r.Altitude, r.Direction,
			r.Magnitude, clock(r.Rise), clock(r.Set), glare)
		switch {
		case r.Altitude <= almanac.MinAltitude:
			text = st.dim.Render(text)
		case r.Glare == almanac.GlareWarning.String():
			text = st.warning.Render(text)
		case r.Glare == almanac.GlareCaution.String():
			text = st.caution.Render(text)
		}
		fmt.Fprintln(w, text)
	}

	line(s.Sun, "")
	line(s.Moon.BodyRow, "")
	for _, p := range s.Planets {
		line(p, p.Glare)
	}

	fmt.Fprintf(w, "\nMoon: %s, %.0f%% lit, %.0f° from the Sun\n",
		s.Moon.PhaseName, s.Moon.Phase*100, s.Moon.Elongation)

	fmt.Fprintln(w)
	if len(s.Stars) == 0 {
		fmt.Fprintln(w, st.dim.Render("No catalogued stars above the horizon"))
	} else {
		fmt.Fprintln(w, st.header.Render(fmt.Sprintf("Brightest stars above the horizon (%d)", len(s.Stars))))
		for _, r := range s.Stars {
			fmt.Fprintf(w, "  %-12s %5.2f  %6.1f° %5.1f° %-3s %s\n",
				truncateStr(r.Name, 12), r.Magnitude, r.Azimuth, r.Altitude, r.Direction, r.Tier)
		}
	}

	if len(s.Events) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.header.Render("Events"))
		for _, e := range s.Events {
			fmt.Fprintln(w, st.event.Render(fmt.Sprintf("  %s %-8s %-4s az %.0f°",
				e.Timestamp.In(loc).Format("15:04:05"), e.Body, e.Type, e.Azimuth)))
		}
	}
}

// WriteClosest writes a one-line description of the object nearest a plane
// point, or that there is none.
func WriteClosest(w io.Writer, r *BodyRow, x, y, maxDistance float64) {
	if r == nil {
		fmt.Fprintf(w, "No object within %.4g of (%.4g, %.4g)\n", maxDistance, x, y)
		return
	}
	fmt.Fprintf(w, "%s at (%.4f, %.4f): az %.1f° alt %.1f° (%s), mag %.2f\n",
		r.Name, r.X, r.Y, r.Azimuth, r.Altitude, r.Direction, r.Magnitude)
}

func truncateStr(s string, maxLen int) string {
	if len([]rune(s)) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen-1]) + "…"
}
