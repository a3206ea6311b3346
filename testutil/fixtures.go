package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SnapshotFixture builds the JSON document the bridge writes for one session
func SnapshotFixture(sessionID, cwd string, timestamp, usedPercentage float64) map[string]interface{} {
	return map[string]interface{}{
		"cwd":                  cwd,
		"used_percentage":      usedPercentage,
		"remaining_percentage": 100 - usedPercentage,
		"total_input_tokens":   12000,
		"total_output_tokens":  3400,
		"context_window_size":  200000,
		"model":                "claude-sonnet",
		"session_id":           sessionID,
		"timestamp":            timestamp,
	}
}

// WriteSnapshotFixture writes fields as <dir>/<name>.json and returns the path
func WriteSnapshotFixture(t *testing.T, dir, name string, fields map[string]interface{}) string {
	t.Helper()
	return WriteRawFixture(t, dir, name+".json", JSONMarshal(t, fields))
}

// WriteRawFixture writes data verbatim to <dir>/<filename> and returns the path
func WriteRawFixture(t *testing.T, dir, filename string, data []byte) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
	return path
}

// CreateStoreFixture writes one snapshot per entry and returns the store directory
func CreateStoreFixture(t *testing.T, snapshots ...map[string]interface{}) string {
	t.Helper()
	dir := filepath.Join(CreateTempDir(t), "braindrain")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create store directory: %v", err)
	}
	for _, snap := range snapshots {
		id, _ := snap["session_id"].(string)
		WriteSnapshotFixture(t, dir, id, snap)
	}
	return dir
}

// CreateClaudeDirFixture creates an empty ~/.claude-like directory
func CreateClaudeDirFixture(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(CreateTempDir(t), ".claude")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create claude directory: %v", err)
	}
	return dir
}
