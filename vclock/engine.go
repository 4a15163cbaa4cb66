package vclock

import (
	"sync"
	"time"

	"github.com/lixenwraith/warpclock/constants"
)

// Snapshot is an immutable observation of the engine at one instant
type Snapshot struct {
	DisplayTime time.Time
	RealTime    time.Time
	Rate        float64
	Running     bool
}

// Engine drives the virtual display timeline.
//
// It owns an anchor pair (real instant, display instant), a rate, and
// a running flag, and refreshes a subscribable snapshot on a fixed
// ticker while running. Anchors are re-based to "now" on every rate
// change or reset so the displayed time never jumps at the moment of
// the change. Stopping freezes the displayed time at the stop instant
// without touching the anchors; the real-time gap accumulated while
// stopped therefore reappears, multiplied by the rate, on the first
// snapshot after Start. That jump matches the observed reference
// behavior and is kept as-is.
//
// The engine performs no rate validation: range policy lives at the
// settings boundary, the mapping tolerates any finite rate.
type Engine struct {
	mu sync.Mutex

	clock    TimeProvider
	interval time.Duration

	realAnchor    time.Time
	displayAnchor time.Time
	rate          float64

	running   bool
	stoppedAt time.Time // mapping input while stopped (frozen display)
	destroyed bool
	stopChan  chan struct{} // per-run, closed exactly once by Stop/Destroy

	store *SnapshotStore
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithTimeProvider replaces the real clock, for deterministic tests
func WithTimeProvider(tp TimeProvider) Option {
	return func(e *Engine) { e.clock = tp }
}

// WithInterval overrides the snapshot refresh interval
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

// New creates a running engine: both anchors set to the current real
// instant, an initial snapshot in the store, and the refresh loop
// started
func New(initialRate float64, opts ...Option) *Engine {
	e := &Engine{
		clock:    NewMonotonicTimeProvider(),
		interval: constants.FrameUpdateInterval,
		rate:     initialRate,
		running:  true,
	}
	for _, opt := range opts {
		opt(e)
	}

	now := e.clock.Now()
	e.realAnchor = now
	e.displayAnchor = now
	e.store = NewSnapshotStore(Snapshot{
		DisplayTime: now,
		RealTime:    now,
		Rate:        initialRate,
		Running:     true,
	})

	e.stopChan = make(chan struct{})
	go e.loop(e.stopChan)
	return e
}

// View returns the read-only subscribable state of the engine
func (e *Engine) View() StateView {
	return e.store
}

// Snapshot computes a fresh observation against the current real
// instant (or against the stop instant while stopped - the frozen
// value, never a stale cache)
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// SetRate re-anchors both anchors to the current real instant and
// stores the new rate, so the transition is continuous. A snapshot is
// published immediately; the running state is unchanged.
func (e *Engine) SetRate(rate float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rebaseLocked()
	e.rate = rate
	e.publishLocked()
}

// Reset re-anchors both anchors to the current real instant, leaving
// the rate unchanged: display time and real time coincide again and
// drift resumes at the current rate. Publishes immediately.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rebaseLocked()
	e.publishLocked()
}

// Start resumes the refresh loop. No-op if already running or
// destroyed. Anchors are untouched, so the displayed time jumps by the
// stopped gap times the rate.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed || e.running {
		return
	}
	e.running = true
	e.stoppedAt = time.Time{}
	e.stopChan = make(chan struct{})
	go e.loop(e.stopChan)
	e.publishLocked()
}

// Stop freezes the displayed time at the current instant and cancels
// the refresh loop, including any pending tick. No-op if already
// stopped.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed || !e.running {
		return
	}
	e.running = false
	e.stoppedAt = e.clock.Now()
	close(e.stopChan)
	e.stopChan = nil
	e.publishLocked()
}

// Destroy cancels any active scheduling unconditionally and is safe to
// call any number of times. No snapshot is published after the first
// call.
func (e *Engine) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.stopChan != nil {
		close(e.stopChan)
		e.stopChan = nil
	}
}

// loop publishes snapshots at the refresh interval until its stop
// channel closes. Each run of the engine gets its own channel, so a
// stale loop can never outlive the Stop that cancelled it.
func (e *Engine) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

// tick publishes a fresh snapshot unless the engine was stopped or
// destroyed after this tick was scheduled
func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed || !e.running {
		return
	}
	e.store.Publish(e.snapshotLocked())
}

// rebaseLocked sets both anchors to the current real instant. While
// stopped the freeze point moves with them, so the frozen display
// equals real time until the next Start.
func (e *Engine) rebaseLocked() {
	now := e.clock.Now()
	e.realAnchor = now
	e.displayAnchor = now
	if !e.running {
		e.stoppedAt = now
	}
}

func (e *Engine) publishLocked() {
	if e.destroyed {
		return
	}
	e.store.Publish(e.snapshotLocked())
}

func (e *Engine) snapshotLocked() Snapshot {
	now := e.clock.Now()
	at := now
	if !e.running {
		at = e.stoppedAt
	}
	return Snapshot{
		DisplayTime: DisplayTime(e.realAnchor, e.displayAnchor, at, e.rate),
		RealTime:    now,
		Rate:        e.rate,
		Running:     e.running,
	}
}
