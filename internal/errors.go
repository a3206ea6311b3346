package internal

import (
	"errors"
	"fmt"
)

// ReadError represents a snapshot file that could not be opened or read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError represents a snapshot whose content is not a valid Snapshot
type ParseError struct {
	Path  string
	Field string // empty when the document itself is malformed
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse error %s [%s]: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("parse error %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StoreError represents a failure to scan the snapshot store directory itself
type StoreError struct {
	Dir string
	Op  string // "stat", "list"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Dir, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConfigError represents errors loading the configuration file
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// InstallError represents errors installing the bridge script or patching settings
type InstallError struct {
	Path string
	Op   string // "mkdir", "write", "marshal"
	Err  error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// ExportError represents errors writing a status in a given format
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s]: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// IsSkippable reports whether err only disqualifies a single snapshot file.
func IsSkippable(err error) bool {
	var readErr *ReadError
	var parseErr *ParseError
	return errors.As(err, &readErr) || errors.As(err, &parseErr)
}
