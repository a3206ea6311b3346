package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// InstallStatus describes what InstallBridge changed in settings.json
type InstallStatus string

const (
	InstallUnchanged InstallStatus = "unchanged"
	InstallInstalled InstallStatus = "installed"
	InstallUpdated   InstallStatus = "updated"
)

// InstallResult reports the outcome of InstallBridge
type InstallResult struct {
	Status          InstallStatus
	ScriptPath      string
	SettingsPath    string
	PreviousCommand string // set when an existing statusLine command was replaced
}

// bridgeScriptTemplate receives the statusline JSON on stdin and writes the
// context_window fields to <store>/<session_id>.json.
const bridgeScriptTemplate = `#!/bin/bash
# braindrain context bridge: Claude Code statusLine command.
# Writes a per-session context usage snapshot for braindrain to read.

STORE_DIR=%s

input=$(cat)

session_id=$(echo "$input" | python3 -c "import sys,json; print(json.load(sys.stdin).get('session_id',''))" 2>/dev/null)

if [ -z "$session_id" ]; then
  exit 0
fi

mkdir -p "$STORE_DIR"

echo "$input" | python3 -c "
import sys, json, time

data = json.load(sys.stdin)
cw = data.get('context_window') or {}
model = data.get('model')
if isinstance(model, dict):
    model = model.get('id', 'unknown')

print(json.dumps({
    'cwd': data.get('cwd', ''),
    'used_percentage': cw.get('used_percentage', 0),
    'remaining_percentage': cw.get('remaining_percentage', 100),
    'total_input_tokens': cw.get('total_input_tokens', 0),
    'total_output_tokens': cw.get('total_output_tokens', 0),
    'context_window_size': cw.get('context_window_size', 200000),
    'model': model or 'unknown',
    'session_id': data.get('session_id', ''),
    'timestamp': time.time(),
}, indent=2))
" > "$STORE_DIR/$session_id.json" 2>/dev/null
`

// BridgeScript returns the bridge script writing into storeDir
func BridgeScript(storeDir string) string {
	return fmt.Sprintf(bridgeScriptTemplate, shellQuote(storeDir))
}

// shellQuote single-quotes s for bash; nothing inside single quotes is expanded
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// InstallBridge writes the bridge script and points Claude Code's statusLine at it
func InstallBridge(paths Paths) (*InstallResult, error) {
	result := &InstallResult{
		ScriptPath:   paths.BridgeScript,
		SettingsPath: paths.SettingsFile,
	}

	if err := os.MkdirAll(filepath.Dir(paths.BridgeScript), 0755); err != nil {
		return nil, &InstallError{Path: filepath.Dir(paths.BridgeScript), Op: "mkdir", Err: err}
	}
	if err := os.WriteFile(paths.BridgeScript, []byte(BridgeScript(paths.StoreDir)), 0755); err != nil {
		return nil, &InstallError{Path: paths.BridgeScript, Op: "write", Err: err}
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(paths.BridgeScript, 0755); err != nil {
		return nil, &InstallError{Path: paths.BridgeScript, Op: "chmod", Err: err}
	}

	settings, err := loadSettings(paths.SettingsFile)
	if err != nil {
		LogWarn("Replacing unreadable settings %s: %v", paths.SettingsFile, err)
		settings = map[string]interface{}{}
	}

	current := statusLineCommand(settings)
	if current == paths.BridgeScript {
		result.Status = InstallUnchanged
		return result, nil
	}

	settings["statusLine"] = map[string]interface{}{
		"type":    "command",
		"command": paths.BridgeScript,
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, &InstallError{Path: paths.SettingsFile, Op: "marshal", Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(paths.SettingsFile), 0755); err != nil {
		return nil, &InstallError{Path: filepath.Dir(paths.SettingsFile), Op: "mkdir", Err: err}
	}
	if err := os.WriteFile(paths.SettingsFile, append(data, '\n'), 0644); err != nil {
		return nil, &InstallError{Path: paths.SettingsFile, Op: "write", Err: err}
	}

	if current == "" {
		result.Status = InstallInstalled
	} else {
		result.Status = InstallUpdated
		result.PreviousCommand = current
	}
	return result, nil
}

// StatusLineCommand returns the statusLine command configured in settings.json, if any
func StatusLineCommand(settingsPath string) (string, error) {
	settings, err := loadSettings(settingsPath)
	if err != nil {
		return "", err
	}
	return statusLineCommand(settings), nil
}

// loadSettings reads settings.json. A missing file is an empty object.
func loadSettings(path string) (map[string]interface{}, error) {
	settings := map[string]interface{}{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if settings == nil {
		settings = map[string]interface{}{}
	}
	return settings, nil
}

func statusLineCommand(settings map[string]interface{}) string {
	statusLine, ok := settings["statusLine"].(map[string]interface{})
	if !ok {
		return ""
	}
	command, _ := statusLine["command"].(string)
	return command
}
