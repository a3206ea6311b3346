package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/braindrain/testutil"
)

func readSettings(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}
	var settings map[string]interface{}
	testutil.JSONUnmarshal(t, data, &settings)
	return settings
}

func TestBridgeScript(t *testing.T) {
	script := BridgeScript("/home/me/.claude/braindrain")

	if !strings.HasPrefix(script, "#!/bin/bash\n") {
		t.Error("BridgeScript() is missing the shebang")
	}
	if !strings.Contains(script, "STORE_DIR='/home/me/.claude/braindrain'\n") {
		t.Error("BridgeScript() does not embed the store directory")
	}
	for _, field := range []string{"used_percentage", "remaining_percentage", "context_window_size", "session_id", "timestamp"} {
		if !strings.Contains(script, "'"+field+"'") {
			t.Errorf("BridgeScript() does not write %s", field)
		}
	}
}

func TestBridgeScript_QuotesStoreDir(t *testing.T) {
	tests := []struct {
		name     string
		storeDir string
		want     string
	}{
		{"plain", "/tmp/store", `STORE_DIR='/tmp/store'`},
		{"dollar", "/tmp/$HOME/store", `STORE_DIR='/tmp/$HOME/store'`},
		{"backtick", "/tmp/`id`/store", "STORE_DIR='/tmp/`id`/store'"},
		{"double quote", `/tmp/a"b`, `STORE_DIR='/tmp/a"b'`},
		{"single quote", "/tmp/it's", `STORE_DIR='/tmp/it'\''s'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if script := BridgeScript(tt.storeDir); !strings.Contains(script, tt.want+"\n") {
				t.Errorf("BridgeScript(%q) does not contain %s", tt.storeDir, tt.want)
			}
		})
	}
}

func TestInstallBridge_FreshInstall(t *testing.T) {
	paths := PathsFor(testutil.CreateClaudeDirFixture(t))

	result, err := InstallBridge(paths)
	if err != nil {
		t.Fatalf("InstallBridge() error = %v", err)
	}
	if result.Status != InstallInstalled {
		t.Errorf("Status = %q, want %q", result.Status, InstallInstalled)
	}

	info, err := os.Stat(paths.BridgeScript)
	if err != nil {
		t.Fatalf("bridge script not written: %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("bridge script mode = %v, want 0755", info.Mode().Perm())
	}
	if !paths.BridgeInstalled() {
		t.Error("BridgeInstalled() = false after install")
	}

	statusLine, ok := readSettings(t, paths.SettingsFile)["statusLine"].(map[string]interface{})
	if !ok {
		t.Fatal("settings.json has no statusLine object")
	}
	if statusLine["type"] != "command" || statusLine["command"] != paths.BridgeScript {
		t.Errorf("statusLine = %v, want command %s", statusLine, paths.BridgeScript)
	}
}

func TestInstallBridge_Idempotent(t *testing.T) {
	paths := PathsFor(testutil.CreateClaudeDirFixture(t))

	if _, err := InstallBridge(paths); err != nil {
		t.Fatalf("first InstallBridge() error = %v", err)
	}
	before, _ := os.ReadFile(paths.SettingsFile)

	result, err := InstallBridge(paths)
	if err != nil {
		t.Fatalf("second InstallBridge() error = %v", err)
	}
	if result.Status != InstallUnchanged {
		t.Errorf("Status = %q, want %q", result.Status, InstallUnchanged)
	}
	after, _ := os.ReadFile(paths.SettingsFile)
	if string(before) != string(after) {
		t.Error("settings.json changed on an unchanged install")
	}
}

func TestInstallBridge_ReplacesOtherCommand(t *testing.T) {
	claudeDir := testutil.CreateClaudeDirFixture(t)
	paths := PathsFor(claudeDir)
	testutil.WriteRawFixture(t, claudeDir, "settings.json", []byte(`{
  "model": "opus",
  "statusLine": {"type": "command", "command": "/usr/local/bin/other-status"}
}`))

	result, err := InstallBridge(paths)
	if err != nil {
		t.Fatalf("InstallBridge() error = %v", err)
	}
	if result.Status != InstallUpdated {
		t.Errorf("Status = %q, want %q", result.Status, InstallUpdated)
	}
	if result.PreviousCommand != "/usr/local/bin/other-status" {
		t.Errorf("PreviousCommand = %q", result.PreviousCommand)
	}

	settings := readSettings(t, paths.SettingsFile)
	if settings["model"] != "opus" {
		t.Errorf("unrelated setting lost: model = %v", settings["model"])
	}
	if cmd, _ := StatusLineCommand(paths.SettingsFile); cmd != paths.BridgeScript {
		t.Errorf("StatusLineCommand() = %q, want %q", cmd, paths.BridgeScript)
	}
}

func TestInstallBridge_CorruptSettings(t *testing.T) {
	claudeDir := testutil.CreateClaudeDirFixture(t)
	paths := PathsFor(claudeDir)
	testutil.WriteRawFixture(t, claudeDir, "settings.json", []byte("{not json"))

	result, err := InstallBridge(paths)
	if err != nil {
		t.Fatalf("InstallBridge() error = %v", err)
	}
	if result.Status != InstallInstalled {
		t.Errorf("Status = %q, want %q", result.Status, InstallInstalled)
	}
	if cmd, _ := StatusLineCommand(paths.SettingsFile); cmd != paths.BridgeScript {
		t.Errorf("StatusLineCommand() = %q, want %q", cmd, paths.BridgeScript)
	}
}

func TestInstallBridge_UnwritableScriptsDir(t *testing.T) {
	claudeDir := testutil.CreateClaudeDirFixture(t)
	paths := PathsFor(claudeDir)
	// a file occupying the scripts directory path
	testutil.WriteRawFixture(t, claudeDir, "scripts", []byte("x"))

	_, err := InstallBridge(paths)
	var installErr *InstallError
	if !errors.As(err, &installErr) {
		t.Fatalf("InstallBridge() error = %v, want *InstallError", err)
	}
}

func TestStatusLineCommand(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"missing file", "", "", false},
		{"no statusLine", `{"model":"opus"}`, "", false},
		{"statusLine without command", `{"statusLine":{"type":"static"}}`, "", false},
		{"configured", `{"statusLine":{"type":"command","command":"/bin/status"}}`, "/bin/status", false},
		{"null document", `null`, "", false},
		{"malformed", `{"statusLine":`, "", true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "missing.json")
			if tt.content != "" {
				path = testutil.WriteRawFixture(t, dir, fmt.Sprintf("settings-%d.json", i), []byte(tt.content))
			}

			got, err := StatusLineCommand(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("StatusLineCommand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !IsSkippable(err) {
				t.Errorf("StatusLineCommand() error = %v, want a parse error", err)
			}
			if got != tt.want {
				t.Errorf("StatusLineCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}
