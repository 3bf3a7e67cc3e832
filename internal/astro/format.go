package astro

import (
	"fmt"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// FormatRA formats a right ascension in radians as hours, minutes and
// seconds, e.g. 6ʰ45ᵐ8.9ˢ.
func FormatRA(ra float64) string {
	return fmt.Sprintf("%.1s", sexa.FmtRA(unit.RA(ra)))
}

// FormatDec formats a declination (or any signed angle) in radians as
// degrees, minutes and seconds of arc, e.g. -16°42′58.0″.
func FormatDec(dec float64) string {
	return fmt.Sprintf("%.1s", sexa.FmtAngle(unit.Angle(dec)))
}
