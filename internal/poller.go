package internal

import (
	"context"
	"fmt"
	"time"
)

// Renderer draws the status indicator
type Renderer interface {
	Render(Indicator)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(Indicator)

// Render calls f
func (f RendererFunc) Render(ind Indicator) {
	f(ind)
}

// Status is the full result of one poll cycle
type Status struct {
	Workspace string       `json:"workspace" yaml:"workspace"`
	Snapshot  *Snapshot    `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`
	State     DisplayState `json:"state" yaml:"state"`
	Indicator Indicator    `json:"indicator" yaml:"indicator"`
	CheckedAt time.Time    `json:"checked_at" yaml:"checked_at"`
}

// Poller owns the poll schedule and hands each tick's indicator to its renderer.
// Ticks run on the goroutine calling Run (or Tick), never concurrently.
type Poller struct {
	workspace WorkspaceProvider
	renderer  Renderer
	now       func() time.Time
	cfg       Config
}

// NewPoller creates a poller. It does not start polling until Run or Tick is called.
func NewPoller(cfg Config, workspace WorkspaceProvider, renderer Renderer) *Poller {
	return &Poller{
		workspace: workspace,
		renderer:  renderer,
		now:       time.Now,
		cfg:       cfg,
	}
}

// SetClock replaces the time source
func (p *Poller) SetClock(now func() time.Time) {
	p.now = now
}

// Reconfigure replaces the configuration used by subsequent ticks
func (p *Poller) Reconfigure(cfg Config) {
	p.cfg = cfg
}

// Poll runs one selection and classification cycle without rendering
func (p *Poller) Poll() (status *Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			status, err = nil, fmt.Errorf("poll panicked: %v", r)
		}
	}()

	root := ""
	if p.workspace != nil {
		root, err = p.workspace.WorkspaceRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve workspace: %w", err)
		}
	}

	snap, err := NewStore(p.cfg.StoreDir).SelectSession(root)
	if err != nil {
		return nil, err
	}

	now := p.now()
	state := Classify(snap, now, p.cfg.WarningThreshold, p.cfg.DangerThreshold)
	return &Status{
		Workspace: root,
		Snapshot:  snap,
		State:     state,
		Indicator: RenderIndicator(state),
		CheckedAt: now,
	}, nil
}

// Tick runs one cycle and hands the result to the renderer. Any failure hides
// the indicator for this tick; the next tick retries independently.
func (p *Poller) Tick() Indicator {
	ind := HiddenIndicator()
	status, err := p.Poll()
	if err != nil {
		LogDebug("Poll failed, hiding indicator: %v", err)
	} else {
		ind = status.Indicator
	}

	p.render(ind)
	return ind
}

func (p *Poller) render(ind Indicator) {
	if p.renderer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			LogError("Renderer panicked: %v", r)
		}
	}()
	p.renderer.Render(ind)
}

// Run ticks immediately and then on the configured interval until ctx is done.
// A config received on changes cancels the current schedule, applies the
// config, ticks, and arms a new schedule, so at most one ticker is ever live.
func (p *Poller) Run(ctx context.Context, changes <-chan Config) error {
	p.Tick()
	ticker := time.NewTicker(p.cfg.Interval())
	defer func() { ticker.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Tick()
		case cfg, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			ticker.Stop()
			p.Reconfigure(cfg)
			LogInfo("Configuration changed, polling every %s", p.cfg.Interval())
			p.Tick()
			ticker = time.NewTicker(p.cfg.Interval())
		}
	}
}
