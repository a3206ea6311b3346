package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the well-known locations under ~/.claude
type Paths struct {
	ClaudeDir    string // ~/.claude
	StoreDir     string // per-session snapshots written by the bridge
	ScriptsDir   string
	BridgeScript string
	SettingsFile string // Claude Code settings.json
	ConfigFile   string // braindrain.yaml
}

// DetectPaths resolves the standard locations from the user's home directory
func DetectPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get home directory: %w", err)
	}
	return PathsFor(filepath.Join(home, ".claude")), nil
}

// PathsFor lays out the standard locations under claudeDir
func PathsFor(claudeDir string) Paths {
	scriptsDir := filepath.Join(claudeDir, "scripts")
	return Paths{
		ClaudeDir:    claudeDir,
		StoreDir:     filepath.Join(claudeDir, "braindrain"),
		ScriptsDir:   scriptsDir,
		BridgeScript: filepath.Join(scriptsDir, "context-bridge.sh"),
		SettingsFile: filepath.Join(claudeDir, "settings.json"),
		ConfigFile:   filepath.Join(claudeDir, "braindrain.yaml"),
	}
}

// GetPaths returns the detected paths with an optional custom store directory
func GetPaths(customStore string) (Paths, error) {
	paths, err := DetectPaths()
	if err != nil {
		return Paths{}, err
	}
	if customStore != "" {
		paths.StoreDir = ExpandHome(customStore)
	}
	return paths, nil
}

// BridgeInstalled reports whether the bridge script exists
func (p Paths) BridgeInstalled() bool {
	info, err := os.Stat(p.BridgeScript)
	return err == nil && !info.IsDir()
}
