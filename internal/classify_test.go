package internal

import (
	"testing"
	"time"
)

func TestClassify_Absent(t *testing.T) {
	state := Classify(nil, time.Now(), 60, 80)

	if state.Freshness != FreshnessAbsent {
		t.Errorf("Freshness = %q, want absent", state.Freshness)
	}
	if state.HasPercentage() {
		t.Errorf("Percentage = %d, want none", *state.Percentage)
	}
	if state.Band != BandNone {
		t.Errorf("Band = %q, want none", state.Band)
	}
}

func TestClassify(t *testing.T) {
	now := time.Unix(2100, 0)

	tests := []struct {
		name          string
		used          float64
		timestamp     float64
		warning       float64
		danger        float64
		wantPct       int
		wantFreshness Freshness
		wantBand      SeverityBand
	}{
		{"normal", 30, 2000, 60, 80, 30, FreshnessLive, BandNormal},
		{"warning boundary", 60, 2000, 60, 80, 60, FreshnessLive, BandWarning},
		{"just below warning", 59.4, 2000, 60, 80, 59, FreshnessLive, BandNormal},
		{"rounds up into warning", 59.5, 2000, 60, 80, 60, FreshnessLive, BandWarning},
		{"danger boundary is inclusive", 80, 2000, 60, 80, 80, FreshnessLive, BandDanger},
		{"danger", 90, 2000, 60, 80, 90, FreshnessLive, BandDanger},
		{"over 100 is not clamped", 104.2, 2000, 60, 80, 104, FreshnessLive, BandDanger},
		{"negative is not clamped", -3, 2000, 60, 80, -3, FreshnessLive, BandNormal},
		{"exactly 300s old is live", 50, 1800, 60, 80, 50, FreshnessLive, BandNormal},
		{"301s old is stale", 50, 1799, 60, 80, 50, FreshnessStale, BandNone},
		{"stale suppresses danger", 95, 1000, 60, 80, 95, FreshnessStale, BandNone},
		{"future timestamp is live", 50, 2500, 60, 80, 50, FreshnessLive, BandNormal},
		{"misconfigured thresholds check danger first", 70, 2000, 90, 50, 70, FreshnessLive, BandDanger},
		{"equal thresholds", 70, 2000, 70, 70, 70, FreshnessLive, BandDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &Snapshot{SessionID: "s", UsedPercentage: tt.used, Timestamp: tt.timestamp}
			state := Classify(snap, now, tt.warning, tt.danger)

			if !state.HasPercentage() {
				t.Fatal("Percentage = none, want a value")
			}
			if *state.Percentage != tt.wantPct {
				t.Errorf("Percentage = %d, want %d", *state.Percentage, tt.wantPct)
			}
			if state.Freshness != tt.wantFreshness {
				t.Errorf("Freshness = %q, want %q", state.Freshness, tt.wantFreshness)
			}
			if state.Band != tt.wantBand {
				t.Errorf("Band = %q, want %q", state.Band, tt.wantBand)
			}
		})
	}
}

func TestClassify_Scenario(t *testing.T) {
	snap := &Snapshot{SessionID: "s2", WorkingDirectory: "/proj/sub", UsedPercentage: 90, Timestamp: 2000}

	state := Classify(snap, time.Unix(2100, 0), 60, 80)

	if state.AgeSeconds != 100 {
		t.Errorf("AgeSeconds = %v, want 100", state.AgeSeconds)
	}
	if state.Freshness != FreshnessLive || *state.Percentage != 90 || state.Band != BandDanger {
		t.Errorf("Classify() = %+v (pct %d), want live/90/danger", state, *state.Percentage)
	}
}

func TestRoundPercentage(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{42.5, 43},
		{99.99, 100},
		{-2.5, -2},
	}

	for _, tt := range tests {
		if got := roundPercentage(tt.in); got != tt.want {
			t.Errorf("roundPercentage(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
