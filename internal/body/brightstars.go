package body

import (
	"fmt"
	"io"

	"github.com/litescript/ls-planisphere/internal/astro"
)

// brightStar is one row of the built-in table.
type brightStar struct {
	hip    int
	name   string
	raDeg  float64 // J2000
	decDeg float64 // J2000
	mag    float64
	bv     float64 // B−V colour index
}

// brightStars holds the brightest named stars, brightest first. Positions
// are J2000; data from the Hipparcos and Yale Bright Star catalogues.
var brightStars = []brightStar{
	// Magnitude < 0.5
	{32349, "Sirius", 101.287, -16.716, -1.46, 0.00},
	{30438, "Canopus", 95.988, -52.696, -0.74, 0.15},
	{71683, "Rigil Kentaurus", 219.902, -60.834, -0.27, 0.71},
	{69673, "Arcturus", 213.915, 19.182, -0.05, 1.23},
	{91262, "Vega", 279.235, 38.784, 0.03, 0.00},
	{24608, "Capella", 79.172, 45.998, 0.08, 0.80},
	{24436, "Rigel", 78.634, -8.202, 0.13, -0.03},
	{37279, "Procyon", 114.826, 5.225, 0.34, 0.42},
	{7588, "Achernar", 24.429, -57.237, 0.46, -0.16},

	// Magnitude 0.5-1.5
	{27989, "Betelgeuse", 88.793, 7.407, 0.50, 1.85},
	{68702, "Hadar", 210.956, -60.373, 0.61, -0.23},
	{97649, "Altair", 297.696, 8.868, 0.76, 0.22},
	{60718, "Acrux", 186.650, -63.099, 0.76, -0.24},
	{21421, "Aldebaran", 68.980, 16.509, 0.85, 1.54},
	{80763, "Antares", 247.352, -26.432, 0.96, 1.83},
	{65474, "Spica", 201.298, -11.161, 0.97, -0.13},
	{37826, "Pollux", 116.329, 28.026, 1.14, 1.00},
	{113368, "Fomalhaut", 344.413, -29.622, 1.16, 0.09},
	{102098, "Deneb", 310.358, 45.280, 1.25, 0.09},
	{62434, "Mimosa", 191.930, -59.689, 1.25, -0.24},
	{49669, "Regulus", 152.093, 11.967, 1.35, -0.09},

	// Magnitude 1.5-2.0
	{33579, "Adhara", 104.656, -28.972, 1.50, -0.21},
	{36850, "Castor", 113.650, 31.889, 1.58, 0.03},
	{61084, "Gacrux", 187.791, -57.113, 1.63, 1.60},
	{85927, "Shaula", 263.402, -37.104, 1.63, -0.23},
	{25336, "Bellatrix", 81.283, 6.350, 1.64, -0.22},
	{25428, "Elnath", 81.573, 28.608, 1.65, -0.13},
	{45238, "Miaplacidus", 138.300, -69.717, 1.68, 0.07},
	{26311, "Alnilam", 84.053, -1.202, 1.69, -0.18},
	{109268, "Alnair", 332.058, -46.961, 1.74, -0.13},
	{26727, "Alnitak", 85.190, -1.943, 1.77, -0.20},
	{62956, "Alioth", 193.507, 55.960, 1.77, -0.02},
	{54061, "Dubhe", 165.932, 61.751, 1.79, 1.07},
	{15863, "Mirfak", 51.081, 49.861, 1.79, 0.48},
	{34444, "Wezen", 107.098, -26.393, 1.84, 0.68},
	{90185, "Kaus Australis", 276.043, -34.384, 1.85, -0.03},
	{41037, "Avior", 125.629, -59.509, 1.86, 1.20},
	{67301, "Alkaid", 206.885, 49.313, 1.86, -0.10},
	{86228, "Sargas", 264.330, -42.998, 1.87, 0.40},
	{28360, "Menkalinan", 89.882, 44.948, 1.90, 0.08},
	{82273, "Atria", 252.166, -69.028, 1.92, 1.44},
	{31681, "Alhena", 99.428, 16.399, 1.93, 0.00},
	{100751, "Peacock", 306.412, -56.735, 1.94, -0.12},
	{30324, "Mirzam", 95.675, -17.956, 1.98, -0.24},
	{46390, "Alphard", 141.897, -8.659, 2.00, 1.44},

	// Magnitude 2.0-2.5
	{11767, "Polaris", 37.954, 89.264, 2.02, 0.64},
	{9884, "Hamal", 31.793, 23.463, 2.00, 1.15},
	{3419, "Diphda", 10.897, -17.987, 2.02, 1.02},
	{92855, "Nunki", 283.816, -26.297, 2.02, -0.13},
	{68933, "Menkent", 211.671, -36.370, 2.06, 1.01},
	{65378, "Mizar", 200.981, 54.925, 2.04, 0.06},
	{677, "Alpheratz", 2.097, 29.091, 2.06, -0.04},
	{5447, "Mirach", 17.433, 35.621, 2.05, 1.58},
	{72607, "Kochab", 222.676, 74.156, 2.08, 1.47},
	{86032, "Rasalhague", 263.734, 12.560, 2.08, 0.16},
	{50583, "Algieba", 154.993, 19.842, 2.08, 1.13},
	{27366, "Saiph", 86.939, -9.670, 2.09, -0.17},
	{14576, "Algol", 47.042, 40.957, 2.12, -0.05},
	{57632, "Denebola", 177.265, 14.572, 2.13, 0.09},
	{3179, "Schedar", 10.127, 56.537, 2.23, 1.17},
	{76267, "Alphecca", 233.672, 26.715, 2.23, -0.02},
	{25930, "Mintaka", 83.002, -0.299, 2.23, -0.22},
	{100453, "Sadr", 305.557, 40.257, 2.23, 0.67},
	{87833, "Eltanin", 269.152, 51.489, 2.23, 1.52},
	{746, "Caph", 2.295, 59.150, 2.27, 0.38},
	{53910, "Merak", 165.460, 56.382, 2.37, -0.02},
	{72105, "Izar", 221.247, 27.074, 2.37, 0.97},
	{107315, "Enif", 326.046, 9.875, 2.39, 1.53},
	{113881, "Scheat", 345.944, 28.083, 2.42, 1.67},
	{58001, "Phecda", 178.458, 53.695, 2.44, 0.04},
	{4427, "Navi", 14.177, 60.717, 2.47, -0.15},
	{113963, "Markab", 346.190, 15.205, 2.49, -0.04},

	// Magnitude 2.5 and fainter
	{105199, "Alderamin", 319.645, 62.586, 2.51, 0.22},
	{54872, "Zosma", 168.527, 20.524, 2.56, 0.12},
	{6686, "Ruchbah", 21.454, 60.235, 2.68, 0.13},
	{97278, "Tarazed", 296.565, 10.613, 2.72, 1.51},
	{59747, "Imai", 183.786, -58.749, 2.79, -0.23},
	{1067, "Algenib", 3.309, 15.184, 2.83, -0.23},
	{17702, "Alcyone", 56.871, 24.105, 2.87, -0.09},
	{95947, "Albireo", 292.680, 27.960, 3.18, 1.13},
	{59774, "Megrez", 183.857, 57.033, 3.31, 0.08},
	{8886, "Segin", 28.599, 63.670, 3.37, -0.15},
	{26207, "Meissa", 83.784, 9.934, 3.39, -0.16},
	{68756, "Thuban", 211.097, 64.376, 3.65, -0.05},
}

// asterismDef names an asterism by the Hipparcos numbers of its stars.
type asterismDef struct {
	name string
	hips []int
}

var brightAsterisms = []asterismDef{
	{"Orion", []int{27989, 26207, 25336, 25930, 26311, 26727, 27366, 24436, 25930, 25336, 27989, 26727}},
	{"Ursa Major", []int{67301, 65378, 62956, 59774, 54061, 53910, 58001, 59774}},
	{"Cassiopeia", []int{746, 3179, 4427, 6686, 8886}},
	{"Summer Triangle", []int{91262, 102098, 97649, 91262}},
	{"Crux", []int{61084, 59747, 60718, 62434, 61084}},
}

// BrightStarLoader adds the built-in bright-star table and its asterisms to
// a builder. The reader is not consulted.
type BrightStarLoader struct{}

var _ Loader = BrightStarLoader{}

// Load implements Loader.
func (BrightStarLoader) Load(_ io.Reader, b *CatalogueBuilder) error {
	byHip := make(map[int]Star, len(brightStars))
	for _, row := range brightStars {
		eq, err := astro.NewEquatorialDeg(row.raDeg, row.decDeg)
		if err != nil {
			return fmt.Errorf("bright star %s: %w", row.name, err)
		}
		s, err := NewStar(row.hip, row.name, eq, row.mag, row.bv)
		if err != nil {
			return fmt.Errorf("bright star %s: %w", row.name, err)
		}
		b.AddStar(s)
		byHip[row.hip] = s
	}

	for _, def := range brightAsterisms {
		stars := make([]Star, 0, len(def.hips))
		for _, hip := range def.hips {
			s, ok := byHip[hip]
			if !ok {
				return fmt.Errorf("asterism %q, HIP %d: %w", def.name, hip, ErrUnknownStar)
			}
			stars = append(stars, s)
		}
		b.AddAsterism(NewAsterism(def.name, stars...))
	}
	return nil
}

// DefaultCatalogue builds the catalogue of built-in bright stars.
func DefaultCatalogue() (*Catalogue, error) {
	b, err := NewCatalogueBuilder().Load(nil, BrightStarLoader{})
	if err != nil {
		return nil, err
	}
	return b.Build()
}
