package internal

import (
	"os"
	"path/filepath"
)

// WorkspaceProvider supplies the root of the active project, or "" when none is open
type WorkspaceProvider interface {
	WorkspaceRoot() (string, error)
}

// StaticWorkspace is a fixed workspace root
type StaticWorkspace string

// WorkspaceRoot returns the fixed root
func (s StaticWorkspace) WorkspaceRoot() (string, error) {
	return string(s), nil
}

// WorkingDirWorkspace treats the process working directory as the workspace
type WorkingDirWorkspace struct{}

// WorkspaceRoot returns the current working directory
func (WorkingDirWorkspace) WorkspaceRoot() (string, error) {
	return os.Getwd()
}

// ResolveWorkspace returns a provider for path, or for the working directory when path is empty.
// Relative paths are made absolute since snapshots carry absolute cwds.
func ResolveWorkspace(path string) (WorkspaceProvider, error) {
	if path == "" {
		return WorkingDirWorkspace{}, nil
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return nil, err
	}
	return StaticWorkspace(abs), nil
}
