package internal

import (
	"math"
	"time"
)

// StaleAfterSeconds is the age beyond which a snapshot is no longer treated as current
const StaleAfterSeconds = 300

// Freshness describes how much the displayed percentage can be trusted
type Freshness string

const (
	FreshnessAbsent Freshness = "absent"
	FreshnessLive   Freshness = "live"
	FreshnessStale  Freshness = "stale"
)

// SeverityBand is the usage level relative to the configured thresholds
type SeverityBand string

const (
	BandNone    SeverityBand = "none"
	BandNormal  SeverityBand = "normal"
	BandWarning SeverityBand = "warning"
	BandDanger  SeverityBand = "danger"
)

// DisplayState is one poll cycle's verdict
type DisplayState struct {
	Percentage *int         `json:"percentage" yaml:"percentage"`
	Freshness  Freshness    `json:"freshness" yaml:"freshness"`
	Band       SeverityBand `json:"severity_band" yaml:"severity_band"`
	AgeSeconds float64      `json:"age_seconds,omitempty" yaml:"age_seconds,omitempty"`
}

// HasPercentage reports whether a percentage is available
func (d DisplayState) HasPercentage() bool {
	return d.Percentage != nil
}

// Classify turns the selected snapshot into a DisplayState. Thresholds are not
// validated; when warning >= danger the danger check still runs first.
func Classify(snap *Snapshot, now time.Time, warningThreshold, dangerThreshold float64) DisplayState {
	if snap == nil {
		return DisplayState{Freshness: FreshnessAbsent, Band: BandNone}
	}

	pct := roundPercentage(snap.UsedPercentage)
	age := snap.AgeSeconds(now)
	state := DisplayState{Percentage: &pct, AgeSeconds: age}

	if age > StaleAfterSeconds {
		state.Freshness = FreshnessStale
		state.Band = BandNone
		return state
	}

	state.Freshness = FreshnessLive
	state.Band = Band(pct, warningThreshold, dangerThreshold)
	return state
}

// Band maps a live percentage onto a severity band
func Band(pct int, warningThreshold, dangerThreshold float64) SeverityBand {
	p := float64(pct)
	switch {
	case p >= dangerThreshold:
		return BandDanger
	case p >= warningThreshold:
		return BandWarning
	default:
		return BandNormal
	}
}

// roundPercentage rounds half up and does not clamp: writer drift past 100 is shown as-is.
func roundPercentage(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(v + 0.5))
}
