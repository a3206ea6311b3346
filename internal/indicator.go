package internal

import (
	"fmt"
	"math"
)

// Color is a host theme color id; the zero value leaves the indicator uncolored
type Color string

const (
	ColorUnset   Color = ""
	ColorNormal  Color = "charts.green"
	ColorWarning Color = "charts.yellow"
	ColorDanger  Color = "charts.red"
)

const (
	indicatorIcon  = "🧠"
	stalledGlyph   = "⊘"
	indicatorTitle = "BrainDrain"
)

// Indicator is what the status renderer is asked to draw
type Indicator struct {
	Text    string `json:"text" yaml:"text"`
	Color   Color  `json:"color,omitempty" yaml:"color,omitempty"`
	Tooltip string `json:"tooltip" yaml:"tooltip"`
	Visible bool   `json:"visible" yaml:"visible"`
}

// HiddenIndicator is rendered when a poll cycle fails
func HiddenIndicator() Indicator {
	return Indicator{Visible: false}
}

// BandColor returns the palette color for a band
func BandColor(band SeverityBand) Color {
	switch band {
	case BandNormal:
		return ColorNormal
	case BandWarning:
		return ColorWarning
	case BandDanger:
		return ColorDanger
	default:
		return ColorUnset
	}
}

// RenderIndicator formats a DisplayState for the status renderer
func RenderIndicator(state DisplayState) Indicator {
	if state.Freshness == FreshnessAbsent || state.Percentage == nil {
		return Indicator{
			Text:    fmt.Sprintf("%s 0%%", indicatorIcon),
			Color:   ColorUnset,
			Tooltip: fmt.Sprintf("%s — No active Claude Code session", indicatorTitle),
			Visible: true,
		}
	}

	pct := *state.Percentage
	if state.Freshness == FreshnessStale {
		minutes := int(math.Round(state.AgeSeconds / 60))
		return Indicator{
			Text:    fmt.Sprintf("%s %d%% %s", indicatorIcon, pct, stalledGlyph),
			Color:   ColorUnset,
			Tooltip: fmt.Sprintf("%s — %d%% (paused, last update %dm ago)", indicatorTitle, pct, minutes),
			Visible: true,
		}
	}

	return Indicator{
		Text:    fmt.Sprintf("%s %d%%", indicatorIcon, pct),
		Color:   BandColor(state.Band),
		Tooltip: fmt.Sprintf("%s — %d%% (%s)", indicatorTitle, pct, state.Band),
		Visible: true,
	}
}
