package internal

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/braindrain/testutil"
)

func TestPathsFor(t *testing.T) {
	paths := PathsFor("/home/me/.claude")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ClaudeDir", paths.ClaudeDir, "/home/me/.claude"},
		{"StoreDir", paths.StoreDir, "/home/me/.claude/braindrain"},
		{"ScriptsDir", paths.ScriptsDir, "/home/me/.claude/scripts"},
		{"BridgeScript", paths.BridgeScript, "/home/me/.claude/scripts/context-bridge.sh"},
		{"SettingsFile", paths.SettingsFile, "/home/me/.claude/settings.json"},
		{"ConfigFile", paths.ConfigFile, "/home/me/.claude/braindrain.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestGetPaths(t *testing.T) {
	home := testutil.CreateTempDir(t)
	t.Setenv("HOME", home)

	paths, err := GetPaths("")
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}
	if paths.StoreDir != filepath.Join(home, ".claude", "braindrain") {
		t.Errorf("StoreDir = %q", paths.StoreDir)
	}

	paths, err = GetPaths("~/snapshots")
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}
	if paths.StoreDir != filepath.Join(home, "snapshots") {
		t.Errorf("StoreDir = %q, want the expanded custom store", paths.StoreDir)
	}
	if paths.ClaudeDir != filepath.Join(home, ".claude") {
		t.Errorf("ClaudeDir = %q, custom store must not move it", paths.ClaudeDir)
	}
}

func TestBridgeInstalled(t *testing.T) {
	claudeDir := testutil.CreateClaudeDirFixture(t)
	paths := PathsFor(claudeDir)

	if paths.BridgeInstalled() {
		t.Error("BridgeInstalled() = true before install")
	}
	testutil.WriteRawFixture(t, paths.ScriptsDir, "context-bridge.sh", []byte("#!/bin/bash\n"))
	if !paths.BridgeInstalled() {
		t.Error("BridgeInstalled() = false with the script present")
	}
}
