// Package astro provides the bright-star catalog and helpers for reading and
// writing equatorial coordinates.
package astro

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"

	"github.com/litescript/ls-skygeom/internal/sphere"
)

// ErrInvalidCoord is returned when a coordinate string cannot be parsed or is
// out of range.
var ErrInvalidCoord = errors.New("invalid coordinate")

// SkyCoord is a position in equatorial coordinates (J2000).
type SkyCoord struct {
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Point converts c to a point on the celestial sphere.
func (c SkyCoord) Point() sphere.Point {
	return sphere.PointFromDegrees(c.RAdeg, c.DecDeg)
}

// FromPoint returns the equatorial coordinates of p.
func FromPoint(p sphere.Point) SkyCoord {
	ra, dec := p.Degrees()
	return SkyCoord{RAdeg: ra, DecDeg: dec}
}

// String formats c as "05h55m10.3s +07°24'25"".
func (c SkyCoord) String() string {
	return FormatRA(c.RAdeg) + " " + FormatDec(c.DecDeg)
}

// Offset returns c moved by dRA and dDec degrees. RA wraps into [0, 360) and
// Dec is clamped to the poles.
func (c SkyCoord) Offset(dRA, dDec float64) SkyCoord {
	return SkyCoord{
		RAdeg:  NormalizeRA(c.RAdeg + dRA),
		DecDeg: math.Max(-90, math.Min(90, c.DecDeg+dDec)),
	}
}

// Separation returns the angular distance between c and o.
func (c SkyCoord) Separation(o SkyCoord) s1.Angle {
	return c.Point().Distance(o.Point())
}

// NormalizeRA wraps ra into [0, 360).
func NormalizeRA(ra float64) float64 {
	ra = math.Mod(ra, 360)
	if ra < 0 {
		ra += 360
	}
	if ra >= 360 {
		ra = 0
	}
	return ra
}

// FormatRA formats an RA in degrees as hours, minutes and seconds.
func FormatRA(deg float64) string {
	// Work in tenths of a second of time so rounding carries correctly.
	tenths := int64(math.Round(NormalizeRA(deg) / 15 * 36000))
	tenths %= 24 * 36000
	h := tenths / 36000
	m := tenths / 600 % 60
	s := tenths % 600
	return fmt.Sprintf("%02dh%02dm%02d.%ds", h, m, s/10, s%10)
}

// FormatDec formats a Dec in degrees as signed degrees, arcminutes and
// arcseconds.
func FormatDec(deg float64) string {
	sign := '+'
	if deg < 0 {
		sign = '-'
		deg = -deg
	}
	secs := int64(math.Round(deg * 3600))
	return fmt.Sprintf("%c%02d°%02d'%02d\"", sign, secs/3600, secs/60%60, secs%60)
}

// ParseRADec parses a coordinate pair separated by a comma or whitespace.
// Each part is either decimal degrees ("88.793") or sexagesimal, with RA in
// hours ("5h55m10s" or "5:55:10") and Dec in degrees ("+7d24m25s" or
// "+7:24:25").
func ParseRADec(s string) (SkyCoord, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(parts) != 2 {
		return SkyCoord{}, fmt.Errorf("%w: %q: want \"RA,Dec\"", ErrInvalidCoord, s)
	}
	ra, err := parseRA(parts[0])
	if err != nil {
		return SkyCoord{}, err
	}
	dec, err := parseDec(parts[1])
	if err != nil {
		return SkyCoord{}, err
	}
	return SkyCoord{RAdeg: ra, DecDeg: dec}, nil
}

func parseRA(s string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || v >= 360 || math.IsNaN(v) {
			return 0, fmt.Errorf("%w: RA %v out of range [0, 360)", ErrInvalidCoord, v)
		}
		return v, nil
	}
	h, err := parseSexagesimal(s, "hms")
	if err != nil {
		return 0, err
	}
	if h < 0 || h >= 24 {
		return 0, fmt.Errorf("%w: RA %q out of range [0h, 24h)", ErrInvalidCoord, s)
	}
	return h * 15, nil
}

func parseDec(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if v, err = parseSexagesimal(s, "d°'\"ms"); err != nil {
			return 0, err
		}
	}
	if v < -90 || v > 90 || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: Dec %v out of range [-90, 90]", ErrInvalidCoord, v)
	}
	return v, nil
}

// parseSexagesimal parses "a:b:c" or "a<u>b<u>c<u>" where the separators are
// any of the runes in units. The result is a + b/60 + c/3600 with the sign of
// a applied to the whole value.
func parseSexagesimal(s, units string) (float64, error) {
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimLeft(s, "+-")
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ':' || strings.ContainsRune(units, r)
	})
	if len(fields) == 0 || len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	v := 0.0
	scale := 1.0
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || x < 0 || (i > 0 && x >= 60) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
		}
		v += x / scale
		scale *= 60
	}
	if neg {
		v = -v
	}
	return v, nil
}
