package astro

import (
	"math"
	"testing"
	"time"
)

func TestEclipticToEquatorial(t *testing.T) {
	conv := NewEclipticToEquatorial(time.Date(2009, time.July, 6, 0, 0, 0, 0, time.UTC))

	ecl, err := NewEcliptic(MustDMSToRad(139, 41, 10), MustDMSToRad(4, 52, 31))
	if err != nil {
		t.Fatal(err)
	}
	eq := conv.Apply(ecl)

	if math.Abs(eq.RAHr()-9.581478) > 1e-6 {
		t.Errorf("RA = %.7fh, want 9.581478h", eq.RAHr())
	}
	if math.Abs(eq.DecDeg()-19.535003) > 1e-6 {
		t.Errorf("Dec = %.7f°, want 19.535003°", eq.DecDeg())
	}
	if got := RadToDeg(conv.Obliquity()); math.Abs(got-23.438) > 1e-3 {
		t.Errorf("Obliquity = %v°, want ≈ 23.438°", got)
	}
}

func TestEquatorialToHorizontal_KnownValue(t *testing.T) {
	// Hour angle 5h51m44s, declination 23°13′10″, latitude 52°N.
	lat := DegToRad(52)
	conv := EquatorialToHorizontal{
		lst:    HrToRad(5 + 51.0/60 + 44.0/3600),
		sinLat: math.Sin(lat),
		cosLat: math.Cos(lat),
	}
	eq, err := NewEquatorial(0, MustDMSToRad(23, 13, 10))
	if err != nil {
		t.Fatal(err)
	}
	h := conv.Apply(eq)

	if math.Abs(h.AzDeg()-283.271027) > 1e-5 {
		t.Errorf("Az = %.6f°, want 283.271027°", h.AzDeg())
	}
	if math.Abs(h.AltDeg()-19.334345) > 1e-5 {
		t.Errorf("Alt = %.6f°, want 19.334345°", h.AltDeg())
	}
}

func TestEquatorialToHorizontal(t *testing.T) {
	at := time.Date(2024, time.June, 21, 4, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		lat    float64
		lon    float64
		raDeg  float64
		decDeg float64
		check  func(t *testing.T, h Horizontal)
	}{
		{
			name: "Polaris altitude tracks latitude",
			lat:  45, lon: -75,
			raDeg: 37.95, decDeg: 89.264,
			check: func(t *testing.T, h Horizontal) {
				if math.Abs(h.AltDeg()-45) > 1.5 {
					t.Errorf("Polaris alt = %.2f°, want ≈ 45°", h.AltDeg())
				}
			},
		},
		{
			name: "southern star invisible from the far north",
			lat:  70, lon: 20,
			raDeg: 95.99, decDeg: -52.7,
			check: func(t *testing.T, h Horizontal) {
				if h.AltDeg() > 0 {
					t.Errorf("Canopus alt = %.2f°, want below horizon", h.AltDeg())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, err := NewGeographicDeg(tt.lon, tt.lat)
			if err != nil {
				t.Fatal(err)
			}
			eq, err := NewEquatorialDeg(tt.raDeg, tt.decDeg)
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, NewEquatorialToHorizontal(at, where).Apply(eq))
		})
	}
}

func TestEquatorialToHorizontal_Zenith(t *testing.T) {
	at := time.Date(2024, time.June, 21, 4, 0, 0, 0, time.UTC)
	where, _ := NewGeographicDeg(10, 40)
	conv := NewEquatorialToHorizontal(at, where)

	// A target on the local meridian with dec = lat is at the zenith.
	eq, err := NewEquatorial(conv.LocalSiderealTime(), where.Lat())
	if err != nil {
		t.Fatal(err)
	}
	if h := conv.Apply(eq); math.Abs(h.AltDeg()-90) > 1e-5 {
		t.Errorf("zenith alt = %v°, want 90°", h.AltDeg())
	}

	// Celestial pole seen from the geographic pole: azimuth is undefined
	// and reported as north.
	pole := EquatorialToHorizontal{lst: 1, sinLat: 1, cosLat: math.Cos(math.Pi / 2)}
	eq, _ = NewEquatorialDeg(123, 90)
	h := pole.Apply(eq)
	if h.Az() != 0 {
		t.Errorf("pole zenith az = %v, want 0 (north)", h.Az())
	}
	if math.Abs(h.AltDeg()-90) > 1e-9 {
		t.Errorf("pole zenith alt = %v°, want 90°", h.AltDeg())
	}
}

func TestEquatorialToHorizontal_Poles(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		azFor func(H float64) float64
	}{
		{"north pole", 90, func(H float64) float64 { return Normalize(H + math.Pi) }},
		{"south pole", -90, func(H float64) float64 { return Normalize(-H) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat := DegToRad(tt.lat)
			conv := EquatorialToHorizontal{lst: 2, sinLat: math.Sin(lat), cosLat: math.Cos(lat)}
			for _, ra := range []float64{0, 1, 2.5, 4, 5.9} {
				eq, err := NewEquatorial(ra, DegToRad(20))
				if err != nil {
					t.Fatal(err)
				}
				h := conv.Apply(eq)
				if math.IsNaN(h.Az()) || math.IsNaN(h.Alt()) {
					t.Fatalf("ra=%v produced NaN", ra)
				}
				H := Normalize(conv.lst - ra)
				if d := angleDiff(h.Az(), tt.azFor(H)); d > 1e-9 {
					t.Errorf("ra=%v: az = %v, want %v", ra, h.Az(), tt.azFor(H))
				}
				wantAlt := DegToRad(20)
				if tt.lat < 0 {
					wantAlt = -wantAlt
				}
				if math.Abs(h.Alt()-wantAlt) > 1e-9 {
					t.Errorf("ra=%v: alt = %v, want %v", ra, h.Alt(), wantAlt)
				}
			}
		})
	}
}

func TestEquatorialToHorizontal_Range(t *testing.T) {
	where, _ := NewGeographicDeg(-70.4, -24.6)
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for h := 0; h < 24; h++ {
		conv := NewEquatorialToHorizontal(base.Add(time.Duration(h)*time.Hour), where)
		for ra := 0.0; ra < 360; ra += 30 {
			for dec := -90.0; dec <= 90; dec += 15 {
				eq, _ := NewEquatorialDeg(ra, dec)
				hz := conv.Apply(eq)
				if hz.AzDeg() < 0 || hz.AzDeg() >= 360 {
					t.Fatalf("az %v out of range", hz.AzDeg())
				}
				if hz.AltDeg() < -90 || hz.AltDeg() > 90 {
					t.Fatalf("alt %v out of range", hz.AltDeg())
				}
			}
		}
	}
}

func TestConversionStrings(t *testing.T) {
	at := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	where, _ := NewGeographicDeg(6.57, 46.52)
	if NewEclipticToEquatorial(at).String() == "" || NewEquatorialToHorizontal(at, where).String() == "" {
		t.Error("conversion String() is empty")
	}
}
