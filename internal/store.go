package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SnapshotExt is the extension of snapshot files in the store
const SnapshotExt = ".json"

// Store reads the per-session snapshot files written by the bridge
type Store struct {
	dir string
}

// NewStore creates a Store over dir. The directory may not exist yet.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store directory
func (s *Store) Dir() string {
	return s.dir
}

// Exists reports whether the store directory has been created
func (s *Store) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// SnapshotPath returns the file that holds sessionID's snapshot
func (s *Store) SnapshotPath(sessionID string) string {
	return filepath.Join(s.dir, sessionID+SnapshotExt)
}

// Files returns the snapshot file paths in name order. A missing store is empty.
func (s *Store) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &StoreError{Dir: s.dir, Op: "list", Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SnapshotExt) {
			continue
		}
		files = append(files, filepath.Join(s.dir, entry.Name()))
	}
	return files, nil
}

// Load reads a single session's snapshot by ID
func (s *Store) Load(sessionID string) (*Snapshot, error) {
	return ReadSnapshot(s.SnapshotPath(sessionID))
}

// LoadAll reads every valid snapshot, newest first, and counts the files skipped as unreadable or invalid
func (s *Store) LoadAll() ([]*Snapshot, int, error) {
	files, err := s.Files()
	if err != nil {
		return nil, 0, err
	}

	snapshots := make([]*Snapshot, 0, len(files))
	skipped := 0
	for _, file := range files {
		snap, err := ReadSnapshot(file)
		if err != nil {
			if !IsSkippable(err) {
				return nil, skipped, err
			}
			LogDebug("Skipping snapshot: %v", err)
			skipped++
			continue
		}
		snapshots = append(snapshots, snap)
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp > snapshots[j].Timestamp
	})
	return snapshots, skipped, nil
}

// SelectSession returns the most recent snapshot whose working directory is
// workspaceRoot or nested under it. It returns nil when no workspace is open,
// the store does not exist, or nothing matches. Corrupt files are skipped.
// Among equal timestamps the first file in name order wins.
func (s *Store) SelectSession(workspaceRoot string) (*Snapshot, error) {
	if workspaceRoot == "" {
		return nil, nil
	}

	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	var best *Snapshot
	for _, file := range files {
		snap, err := ReadSnapshot(file)
		if err != nil {
			if !IsSkippable(err) {
				return nil, err
			}
			LogDebug("Skipping snapshot: %v", err)
			continue
		}
		if !MatchesWorkspace(snap.WorkingDirectory, workspaceRoot) {
			continue
		}
		if best == nil || snap.Timestamp > best.Timestamp {
			best = snap
		}
	}
	return best, nil
}

// SelectSession is a convenience wrapper for NewStore(storeDir).SelectSession(workspaceRoot)
func SelectSession(storeDir, workspaceRoot string) (*Snapshot, error) {
	return NewStore(storeDir).SelectSession(workspaceRoot)
}

// MatchesWorkspace reports whether cwd equals root or lies beneath it.
// The separator-qualified prefix keeps /proj2 from matching /proj. A root that
// already ends in a separator, such as /, is its own prefix.
func MatchesWorkspace(cwd, root string) bool {
	if root == "" {
		return false
	}
	if cwd == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(cwd, prefix)
}
