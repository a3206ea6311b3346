package internal

import (
	"time"
)

// CreateTestSnapshot creates a snapshot written at the given time
func CreateTestSnapshot(sessionID, cwd string, usedPercentage float64, writtenAt time.Time) *Snapshot {
	return &Snapshot{
		WorkingDirectory:    cwd,
		UsedPercentage:      usedPercentage,
		RemainingPercentage: 100 - usedPercentage,
		TotalInputTokens:    12000,
		TotalOutputTokens:   3400,
		ContextWindowSize:   DefaultContextWindowSize,
		Model:               "claude-sonnet",
		SessionID:           sessionID,
		Timestamp:           float64(writtenAt.Unix()),
	}
}

// CreateTestStatus classifies snap at now with the default thresholds
func CreateTestStatus(workspace string, snap *Snapshot, now time.Time) *Status {
	state := Classify(snap, now, DefaultWarningThreshold, DefaultDangerThreshold)
	return &Status{
		Workspace: workspace,
		Snapshot:  snap,
		State:     state,
		Indicator: RenderIndicator(state),
		CheckedAt: now,
	}
}
