package render

import (
	"context"
	"sync"
	"time"
)

// CopyState enumerates the states of the code-block copy affordance.
type CopyState int

const (
	// StateIdle is the resting state.
	StateIdle CopyState = iota
	// StateCopied indicates a recent successful clipboard write.
	StateCopied
)

// String implements fmt.Stringer.
func (s CopyState) String() string {
	switch s {
	case StateCopied:
		return "copied"
	default:
		return "idle"
	}
}

// Clipboard writes text to the host clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a function to the Clipboard interface.
type ClipboardFunc func(ctx context.Context, text string) error

// WriteText implements Clipboard.
func (f ClipboardFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

const defaultResetDelay = 2 * time.Second

// CopyButtonConfig configures the copy affordance.
type CopyButtonConfig struct {
	// Clipboard receives the copied text. Required for Copy to do anything.
	Clipboard Clipboard
	// ResetDelay is how long the Copied state lingers before reverting to
	// Idle. Defaults to two seconds.
	ResetDelay time.Duration
	// OnChange observes state transitions. It runs with the button's lock
	// held and must not call back into the button.
	OnChange func(CopyState)
}

// CopyButton is the interactive affordance behind a code block's copy
// control. Copy is fire-and-forget: clipboard failures are swallowed and the
// state only advances on success. The revert timer is a scoped resource,
// cancelled on re-trigger and on Close so it can never act on stale state.
type CopyButton struct {
	clipboard Clipboard
	delay     time.Duration
	onChange  func(CopyState)

	mu     sync.Mutex
	state  CopyState
	timer  *time.Timer
	gen    uint64
	closed bool
}

// NewCopyButton constructs a CopyButton from the supplied configuration.
func NewCopyButton(cfg CopyButtonConfig) *CopyButton {
	delay := cfg.ResetDelay
	if delay <= 0 {
		delay = defaultResetDelay
	}
	return &CopyButton{
		clipboard: cfg.Clipboard,
		delay:     delay,
		onChange:  cfg.OnChange,
	}
}

// State returns the current state.
func (b *CopyButton) State() CopyState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Copy writes text to the clipboard. On success the state moves to
// StateCopied and reverts to StateIdle after the configured delay; a
// re-trigger cancels the pending revert before arming a new one. Failures
// leave the state untouched and are not reported.
func (b *CopyButton) Copy(ctx context.Context, text string) {
	if b.clipboard == nil {
		return
	}
	if err := b.clipboard.WriteText(ctx, text); err != nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.cancelTimerLocked()
	b.setStateLocked(StateCopied)

	gen := b.gen
	b.timer = time.AfterFunc(b.delay, func() { b.revert(gen) })
}

// Close cancels any pending revert. The button drops further transitions
// once closed.
func (b *CopyButton) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.cancelTimerLocked()
}

func (b *CopyButton) revert(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// A newer Copy or a Close superseded this timer.
	if b.closed || gen != b.gen {
		return
	}
	b.timer = nil
	b.setStateLocked(StateIdle)
}

// cancelTimerLocked stops a pending revert and bumps the generation so an
// already-fired timer goroutine becomes a no-op.
func (b *CopyButton) cancelTimerLocked() {
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *CopyButton) setStateLocked(next CopyState) {
	if b.state == next {
		return
	}
	b.state = next
	if b.onChange != nil {
		b.onChange(next)
	}
}
