package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Heat scale for the countries screen: few dishes render muted, many render
// in the full accent. A terminal stand-in for a map choropleth.
var (
	heatLow, _  = colorful.Hex("#8C8278")
	heatHigh, _ = colorful.Hex("#D4A15F")
)

// HeatColor blends the palette between count 0 and the busiest country.
func HeatColor(count, maxCount int) lipgloss.Color {
	if maxCount <= 0 {
		return lipgloss.Color(heatLow.Hex())
	}
	t := float64(count) / float64(maxCount)
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(heatLow.BlendLab(heatHigh, t).Clamped().Hex())
}
