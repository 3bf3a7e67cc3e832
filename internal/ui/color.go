package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Black-body colour anchors in kelvin, sampled from the CIE 1964 10°
// observer table. Temperatures in between are blended in Lab space.
var blackBodyAnchors = []struct {
	kelvin int
	hex    string
}{
	{1000, "#ff3800"},
	{1500, "#ff6d00"},
	{2000, "#ff8912"},
	{2500, "#ffa148"},
	{3000, "#ffb46b"},
	{3500, "#ffc38a"},
	{4000, "#ffd1a3"},
	{4500, "#ffdbba"},
	{5000, "#ffe4ce"},
	{5500, "#ffecdf"},
	{6000, "#fff3ef"},
	{6500, "#fff9fd"},
	{7000, "#f5f3ff"},
	{8000, "#e3e9ff"},
	{9000, "#d6e1ff"},
	{10000, "#ccdbff"},
	{12000, "#bfd3ff"},
	{15000, "#b3ccff"},
	{20000, "#a8c5ff"},
	{30000, "#9fbfff"},
	{40000, "#9bbcff"},
}

const (
	colorTableMin  = 1000
	colorTableMax  = 40000
	colorTableStep = 100
)

// starColors maps a temperature bucket to its colour. Built once at init
// and never modified.
var starColors = buildStarColors()

func buildStarColors() []lipgloss.Color {
	anchors := make([]colorful.Color, len(blackBodyAnchors))
	for i, a := range blackBodyAnchors {
		c, err := colorful.Hex(a.hex)
		if err != nil {
			panic(fmt.Sprintf("ui: bad black-body colour %q: %v", a.hex, err))
		}
		anchors[i] = c
	}

	n := (colorTableMax-colorTableMin)/colorTableStep + 1
	table := make([]lipgloss.Color, n)
	for i := range table {
		k := colorTableMin + i*colorTableStep
		// First anchor at or above k.
		j := sort.Search(len(blackBodyAnchors), func(j int) bool { return blackBodyAnchors[j].kelvin >= k })
		if j == 0 || blackBodyAnchors[j].kelvin == k {
			table[i] = lipgloss.Color(anchors[j].Hex())
			continue
		}
		lo, hi := blackBodyAnchors[j-1], blackBodyAnchors[j]
		t := float64(k-lo.kelvin) / float64(hi.kelvin-lo.kelvin)
		table[i] = lipgloss.Color(anchors[j-1].BlendLab(anchors[j], t).Clamped().Hex())
	}
	return table
}

// starColor returns the colour of a black body at kelvin, clamped to the
// table's range.
func starColor(kelvin int) lipgloss.Color {
	switch {
	case kelvin <= colorTableMin:
		return starColors[0]
	case kelvin >= colorTableMax:
		return starColors[len(starColors)-1]
	}
	i := (kelvin - colorTableMin + colorTableStep/2) / colorTableStep
	return starColors[i]
}

// Title gradient: blue, purple, magenta, pink.
var titleGradient = []colorful.Color{
	{R: 59.0 / 255, G: 130.0 / 255, B: 246.0 / 255},
	{R: 139.0 / 255, G: 92.0 / 255, B: 246.0 / 255},
	{R: 217.0 / 255, G: 70.0 / 255, B: 239.0 / 255},
	{R: 236.0 / 255, G: 72.0 / 255, B: 153.0 / 255},
}

// gradientColor returns the title colour at column col of a text width
// columns wide.
func gradientColor(col, width int) lipgloss.Color {
	if width <= 1 {
		return lipgloss.Color(titleGradient[0].Hex())
	}
	x := float64(col) / float64(width-1) * float64(len(titleGradient)-1)
	i := int(x)
	if i >= len(titleGradient)-1 {
		return lipgloss.Color(titleGradient[len(titleGradient)-1].Hex())
	}
	return lipgloss.Color(titleGradient[i].BlendLab(titleGradient[i+1], x-float64(i)).Clamped().Hex())
}
