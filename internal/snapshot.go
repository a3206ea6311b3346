package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"
)

// Defaults applied when the bridge omits a field under partial failure
const (
	DefaultRemainingPercentage = 100
	DefaultContextWindowSize   = 200000
	DefaultModel               = "unknown"
)

// Snapshot is one session's last-reported context usage, as written by the bridge
type Snapshot struct {
	WorkingDirectory    string  `json:"cwd" yaml:"cwd"`
	UsedPercentage      float64 `json:"used_percentage" yaml:"used_percentage"`
	RemainingPercentage float64 `json:"remaining_percentage" yaml:"remaining_percentage"`
	TotalInputTokens    int64   `json:"total_input_tokens" yaml:"total_input_tokens"`
	TotalOutputTokens   int64   `json:"total_output_tokens" yaml:"total_output_tokens"`
	ContextWindowSize   int64   `json:"context_window_size" yaml:"context_window_size"`
	Model               string  `json:"model" yaml:"model"`
	SessionID           string  `json:"session_id" yaml:"session_id"`
	Timestamp           float64 `json:"timestamp" yaml:"timestamp"` // epoch seconds
}

// rawSnapshot distinguishes absent fields from zero values
type rawSnapshot struct {
	WorkingDirectory    *string  `json:"cwd"`
	UsedPercentage      *float64 `json:"used_percentage"`
	RemainingPercentage *float64 `json:"remaining_percentage"`
	TotalInputTokens    *int64   `json:"total_input_tokens"`
	TotalOutputTokens   *int64   `json:"total_output_tokens"`
	ContextWindowSize   *int64   `json:"context_window_size"`
	Model               *string  `json:"model"`
	SessionID           *string  `json:"session_id"`
	Timestamp           *float64 `json:"timestamp"`
}

// ReadSnapshot reads and validates the snapshot file at path
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return ParseSnapshot(path, data)
}

// ParseSnapshot decodes snapshot JSON. path is only used for error reporting.
func ParseSnapshot(path string, data []byte) (*Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ParseError{Path: path, Field: typeErr.Field, Err: err}
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	if raw.SessionID == nil || *raw.SessionID == "" {
		return nil, &ParseError{Path: path, Field: "session_id", Err: errors.New("missing required field")}
	}
	if raw.Timestamp == nil {
		return nil, &ParseError{Path: path, Field: "timestamp", Err: errors.New("missing required field")}
	}
	if math.IsNaN(*raw.Timestamp) || math.IsInf(*raw.Timestamp, 0) {
		return nil, &ParseError{Path: path, Field: "timestamp", Err: fmt.Errorf("not a finite number: %v", *raw.Timestamp)}
	}

	snap := &Snapshot{
		RemainingPercentage: DefaultRemainingPercentage,
		ContextWindowSize:   DefaultContextWindowSize,
		Model:               DefaultModel,
		SessionID:           *raw.SessionID,
		Timestamp:           *raw.Timestamp,
	}
	if raw.WorkingDirectory != nil {
		snap.WorkingDirectory = *raw.WorkingDirectory
	}
	if raw.UsedPercentage != nil {
		snap.UsedPercentage = *raw.UsedPercentage
	}
	if raw.RemainingPercentage != nil {
		snap.RemainingPercentage = *raw.RemainingPercentage
	}
	if raw.TotalInputTokens != nil {
		snap.TotalInputTokens = *raw.TotalInputTokens
	}
	if raw.TotalOutputTokens != nil {
		snap.TotalOutputTokens = *raw.TotalOutputTokens
	}
	if raw.ContextWindowSize != nil {
		snap.ContextWindowSize = *raw.ContextWindowSize
	}
	if raw.Model != nil {
		snap.Model = *raw.Model
	}

	return snap, nil
}

// GetTimestamp returns the snapshot's write time
func (s *Snapshot) GetTimestamp() time.Time {
	sec, frac := math.Modf(s.Timestamp)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// AgeSeconds returns how many seconds before now the snapshot was written
func (s *Snapshot) AgeSeconds(now time.Time) float64 {
	return float64(now.UnixNano())/float64(time.Second) - s.Timestamp
}

// TotalTokens returns input plus output tokens
func (s *Snapshot) TotalTokens() int64 {
	return s.TotalInputTokens + s.TotalOutputTokens
}
