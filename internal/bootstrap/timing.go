// Package bootstrap wires tabcast together: instance lock, logger, journal,
// surface host, controllers and the control socket.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tabcast/internal/logging"
)

// Startup phases reported by Run.
const (
	PhaseConfig  = "config"
	PhaseJournal = "journal"
	PhaseHost    = "host"
	PhaseHotkey  = "hotkey"
	PhaseReady   = "first_layout"
)

// Phase is one measured step.
type Phase struct {
	Name     string
	Duration time.Duration
}

// StartupTimer records how long each startup phase took. Safe for
// concurrent use.
type StartupTimer struct {
	mu     sync.Mutex
	now    func() time.Time
	start  time.Time
	last   time.Time
	phases []Phase
}

// NewStartupTimer starts timing now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	t := now()
	return &StartupTimer{now: now, start: t, last: t}
}

// Mark closes the phase that began at the previous mark.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.phases = append(t.phases, Phase{Name: name, Duration: now.Sub(t.last)})
	t.last = now
}

// Since records the time elapsed from start, for phases that end on
// another goroutine.
func (t *StartupTimer) Since(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Duration: t.now().Sub(t.start)})
}

// Phases returns the recorded phases in order.
func (t *StartupTimer) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Phase, len(t.phases))
	copy(out, t.phases)
	return out
}

// Log writes one debug event with every phase.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", t.now().Sub(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.Name, p.Duration)
	}
	event.Msg("startup timing")
}
