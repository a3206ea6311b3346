package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestReadError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := &ReadError{
		Path: "/store/s1.json",
		Err:  originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "read error") {
		t.Errorf("ReadError.Error() should contain 'read error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "/store/s1.json") {
		t.Errorf("ReadError.Error() should contain path, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("ReadError.Unwrap() should return original error")
	}
}

func TestParseError(t *testing.T) {
	originalErr := errors.New("missing required field")

	tests := []struct {
		name     string
		err      *ParseError
		contains []string
	}{
		{
			name:     "with field",
			err:      &ParseError{Path: "/store/s1.json", Field: "timestamp", Err: originalErr},
			contains: []string{"parse error", "/store/s1.json", "[timestamp]"},
		},
		{
			name:     "without field",
			err:      &ParseError{Path: "/store/s2.json", Err: originalErr},
			contains: []string{"parse error", "/store/s2.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errorMsg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(errorMsg, want) {
					t.Errorf("ParseError.Error() = %q, should contain %q", errorMsg, want)
				}
			}
			if !errors.Is(tt.err, originalErr) {
				t.Error("ParseError.Unwrap() should return original error")
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := &StoreError{Dir: "/store", Op: "list", Err: originalErr}

	if !strings.Contains(err.Error(), "store error: list /store") {
		t.Errorf("StoreError.Error() = %q", err.Error())
	}
	if !errors.Is(err, originalErr) {
		t.Error("StoreError.Unwrap() should return original error")
	}
}

func TestConfigInstallExportErrors(t *testing.T) {
	originalErr := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", &ConfigError{Path: "/c.yaml", Err: originalErr}, "config error /c.yaml"},
		{"install", &InstallError{Path: "/s.json", Op: "write", Err: originalErr}, "install error: write /s.json"},
		{"export", &ExportError{Format: "yaml", Err: originalErr}, "export error [yaml]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.want) {
				t.Errorf("Error() = %q, should contain %q", tt.err.Error(), tt.want)
			}
			if !errors.Is(tt.err, originalErr) {
				t.Error("Unwrap() should return original error")
			}
		})
	}
}

func TestIsSkippable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"read error", &ReadError{Path: "p", Err: errors.New("x")}, true},
		{"parse error", &ParseError{Path: "p", Err: errors.New("x")}, true},
		{"wrapped parse error", fmt.Errorf("loading: %w", &ParseError{Path: "p", Err: errors.New("x")}), true},
		{"store error", &StoreError{Dir: "d", Op: "list", Err: errors.New("x")}, false},
		{"plain error", errors.New("x"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSkippable(tt.err); got != tt.want {
				t.Errorf("IsSkippable() = %v, want %v", got, tt.want)
			}
		})
	}
}
