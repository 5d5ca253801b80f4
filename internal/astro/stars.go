package astro

import (
	"sort"
	"strings"

	"github.com/litescript/ls-skygeom/internal/sphere"
)

// Star represents a cataloged star with position and brightness.
type Star struct {
	Name   string  // Common name (e.g., "Sirius", "Vega")
	Con    string  // IAU constellation abbreviation (e.g., "CMa")
	RAdeg  float64 // Right Ascension in degrees (J2000)
	DecDeg float64 // Declination in degrees (J2000)
	Mag    float64 // Apparent visual magnitude (lower = brighter)
}

// Point returns the star's position on the celestial sphere.
func (s Star) Point() sphere.Point {
	return sphere.PointFromDegrees(s.RAdeg, s.DecDeg)
}

// StarCatalog holds a collection of stars.
type StarCatalog struct {
	Stars []Star
}

// DefaultStarCatalog returns a catalog of bright named stars, plus a few
// fainter ones marking the far-south polar region.
// Coordinates are J2000 epoch.
// Data sourced from Yale Bright Star Catalog and IAU star names.
func DefaultStarCatalog() StarCatalog {
	return StarCatalog{
		Stars: append([]Star(nil), defaultStars...),
	}
}

// Find returns the star with the given name, ignoring case.
func (c StarCatalog) Find(name string) (Star, bool) {
	for _, s := range c.Stars {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Star{}, false
}

// Brighter returns the stars with magnitude at most maxMag, in catalog order.
func (c StarCatalog) Brighter(maxMag float64) StarCatalog {
	var out []Star
	for _, s := range c.Stars {
		if s.Mag <= maxMag {
			out = append(out, s)
		}
	}
	return StarCatalog{Stars: out}
}

// SortedByRA returns a copy of the catalog ordered by right ascension, ties
// broken by name.
func (c StarCatalog) SortedByRA() StarCatalog {
	out := append([]Star(nil), c.Stars...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].RAdeg != out[j].RAdeg {
			return out[i].RAdeg < out[j].RAdeg
		}
		return out[i].Name < out[j].Name
	})
	return StarCatalog{Stars: out}
}

// defaultStars contains bright stars across both hemispheres.
// Ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	// Magnitude < 0.5
	{"Sirius", "CMa", 101.287, -16.716, -1.46},
	{"Canopus", "Car", 95.988, -52.696, -0.74},
	{"Arcturus", "Boo", 213.915, 19.182, -0.05},
	{"Vega", "Lyr", 279.235, 38.784, 0.03},
	{"Capella", "Aur", 79.172, 45.998, 0.08},
	{"Rigel", "Ori", 78.634, -8.202, 0.13},
	{"Procyon", "CMi", 114.826, 5.225, 0.34},
	{"Achernar", "Eri", 24.429, -57.237, 0.46},
	{"Betelgeuse", "Ori", 88.793, 7.407, 0.50},
	{"Hadar", "Cen", 210.956, -60.373, 0.61},

	// Magnitude 0.5-1.5
	{"Altair", "Aql", 297.696, 8.868, 0.76},
	{"Acrux", "Cru", 186.650, -63.099, 0.76},
	{"Aldebaran", "Tau", 68.980, 16.509, 0.85},
	{"Antares", "Sco", 247.352, -26.432, 0.96},
	{"Spica", "Vir", 201.298, -11.161, 0.97},
	{"Pollux", "Gem", 116.329, 28.026, 1.14},
	{"Fomalhaut", "PsA", 344.413, -29.622, 1.16},
	{"Deneb", "Cyg", 310.358, 45.280, 1.25},
	{"Mimosa", "Cru", 191.930, -59.689, 1.25},
	{"Regulus", "Leo", 152.093, 11.967, 1.35},

	// Magnitude 1.5-2.0
	{"Adhara", "CMa", 104.656, -28.972, 1.50},
	{"Castor", "Gem", 113.650, 31.889, 1.58},
	{"Gacrux", "Cru", 187.791, -57.113, 1.63},
	{"Shaula", "Sco", 263.402, -37.104, 1.63},
	{"Bellatrix", "Ori", 81.283, 6.350, 1.64},
	{"Elnath", "Tau", 81.573, 28.608, 1.65},
	{"Alnilam", "Ori", 84.053, -1.202, 1.69},
	{"Alnitak", "Ori", 85.190, -1.943, 1.77},
	{"Alioth", "UMa", 193.507, 55.960, 1.77},
	{"Dubhe", "UMa", 165.932, 61.751, 1.79},
	{"Mirfak", "Per", 51.081, 49.861, 1.79},
	{"Kaus Australis", "Sgr", 276.043, -34.384, 1.85},
	{"Alkaid", "UMa", 206.885, 49.313, 1.86},
	{"Sargas", "Sco", 264.330, -42.998, 1.87},
	{"Atria", "TrA", 252.166, -69.028, 1.92},
	{"Peacock", "Pav", 306.412, -56.735, 1.94},
	{"Polaris", "UMi", 37.954, 89.264, 2.02},

	// Magnitude 2.0-3.0
	{"Saiph", "Ori", 86.939, -9.670, 2.07},
	{"Kochab", "UMi", 222.676, 74.156, 2.08},
	{"Sadr", "Cyg", 305.557, 40.257, 2.23},
	{"Schedar", "Cas", 10.127, 56.537, 2.24},
	{"Caph", "Cas", 2.295, 59.150, 2.28},
	{"Dschubba", "Sco", 240.083, -22.622, 2.29},
	{"Mintaka", "Ori", 83.002, -0.299, 2.23},
	{"Gamma Cas", "Cas", 14.177, 60.717, 2.47},
	{"Gienah Cygni", "Cyg", 311.553, 33.970, 2.48},
	{"Wei", "Sco", 252.541, -34.293, 2.29},
	{"Acrab", "Sco", 241.359, -19.806, 2.62},
	{"Ruchbah", "Cas", 21.454, 60.235, 2.68},
	{"Delta Cyg", "Cyg", 296.244, 45.131, 2.87},
	{"Albireo", "Cyg", 292.680, 27.960, 3.05},
	{"Pherkad", "UMi", 230.182, 71.834, 3.00},
	{"Meissa", "Ori", 83.784, 9.934, 3.33},
	{"Sheliak", "Lyr", 282.520, 33.363, 3.52},
	{"Sulafat", "Lyr", 284.736, 32.690, 3.24},
	{"Segin", "Cas", 28.599, 63.670, 3.37},
	{"Delta Cru", "Cru", 183.786, -58.749, 2.79},
	{"Yildun", "UMi", 263.054, 86.586, 4.36},

	// Far-south circumpolar
	{"Nu Octantis", "Oct", 325.369, -77.390, 3.76},
	{"Beta Octantis", "Oct", 341.513, -81.382, 4.13},
	{"Delta Octantis", "Oct", 216.730, -83.668, 4.31},
	{"Sigma Octantis", "Oct", 317.195, -88.956, 5.47},
}
