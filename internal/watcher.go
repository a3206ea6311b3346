package internal

import (
	"context"
	"os"
	"time"
)

// DefaultConfigCheckInterval is how often the watcher stats the config file
const DefaultConfigCheckInterval = 2 * time.Second

// ConfigWatcher reports configuration changes by polling the config file's modification time
type ConfigWatcher struct {
	path           string
	paths          Paths
	overrides      Overrides
	interval       time.Duration
	followLogLevel bool

	last    Config
	modTime time.Time
	exists  bool
}

// NewConfigWatcher creates a watcher whose baseline is current
func NewConfigWatcher(path string, paths Paths, overrides Overrides, current Config) *ConfigWatcher {
	w := &ConfigWatcher{
		path:      path,
		paths:     paths,
		overrides: overrides,
		interval:  DefaultConfigCheckInterval,
		last:      current,
	}
	w.modTime, w.exists = w.stat()
	return w
}

// SetCheckInterval changes how often the file is checked
func (w *ConfigWatcher) SetCheckInterval(d time.Duration) {
	if d > 0 {
		w.interval = d
	}
}

func (w *ConfigWatcher) stat() (time.Time, bool) {
	if w.path == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// FollowLogLevel makes reloads apply a changed log_level to the global logger
func (w *ConfigWatcher) FollowLogLevel(enabled bool) {
	w.followLogLevel = enabled
}

// Check reloads the config if the file changed. It returns the new config and
// true only when the effective values differ from the last reported ones.
func (w *ConfigWatcher) Check() (Config, bool) {
	modTime, exists := w.stat()
	if exists == w.exists && modTime.Equal(w.modTime) {
		return w.last, false
	}
	w.modTime, w.exists = modTime, exists

	cfg, err := LoadConfig(w.path, w.paths)
	if err != nil {
		LogWarn("Ignoring config change: %v", err)
		return w.last, false
	}
	cfg = w.overrides.Apply(cfg)
	if cfg == w.last {
		return w.last, false
	}
	if w.followLogLevel && cfg.LogLevel != w.last.LogLevel {
		if err := ApplyLogLevel(cfg.LogLevel); err != nil {
			LogWarn("Ignoring log_level: %v", err)
		}
	}
	w.last = cfg
	return cfg, true
}

// Watch checks the file until ctx is done, sending each effective change.
// The returned channel is closed when watching stops.
func (w *ConfigWatcher) Watch(ctx context.Context) <-chan Config {
	changes := make(chan Config)
	go func() {
		defer close(changes)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cfg, changed := w.Check()
				if !changed {
					continue
				}
				LogDebug("Config changed: %+v", cfg)
				select {
				case changes <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return changes
}
