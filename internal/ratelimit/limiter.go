package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Policy holds the pacing rules applied to outbound automation actions.
type Policy struct {
	// MinInterval is the minimum spacing between two consecutive actions.
	MinInterval time.Duration

	// MaxActionsPerWindow caps how many actions may run inside one Window.
	MaxActionsPerWindow int

	// Cooldown is the forced pause once the window cap is reached.
	Cooldown time.Duration

	// Window is the measurement window for MaxActionsPerWindow.
	Window time.Duration
}

// DefaultPolicy returns the pacing used for campaign automation: at least 5s
// between actions, at most 10 actions per minute, 60s cooldown at the cap.
func DefaultPolicy() Policy {
	return Policy{
		MinInterval:         5 * time.Second,
		MaxActionsPerWindow: 10,
		Cooldown:            60 * time.Second,
		Window:              time.Minute,
	}
}

// Limiter enforces a Policy by sleeping before each action. It is advisory
// self-throttling for a single process, not a distributed limiter.
type Limiter struct {
	policy Policy
	now    func() time.Time
	sleep  func(context.Context, time.Duration) error

	mu          sync.Mutex
	last        time.Time
	windowStart time.Time
	count       int
}

// New creates a limiter backed by the real clock.
func New(policy Policy) *Limiter {
	return NewWithClock(policy, time.Now, sleepFor)
}

// NewWithClock creates a limiter with an injected clock and sleep function,
// used by tests to run against virtual time.
func NewWithClock(policy Policy, now func() time.Time,
	sleep func(context.Context, time.Duration) error) *Limiter {
	if policy.Window <= 0 {
		policy.Window = time.Minute
	}
	return &Limiter{policy: policy, now: now, sleep: sleep}
}

// Wait blocks until the next action is allowed to start. It returns early
// with the context error if the context is cancelled mid-wait.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if !l.last.IsZero() {
		if since := now.Sub(l.last); since < l.policy.MinInterval {
			if err := l.sleep(ctx, l.policy.MinInterval-since); err != nil {
				return err
			}
			now = l.now()
		}
	}

	if l.windowStart.IsZero() || now.Sub(l.windowStart) >= l.policy.Window {
		l.windowStart = now
		l.count = 0
	}

	if l.policy.MaxActionsPerWindow > 0 && l.count >= l.policy.MaxActionsPerWindow {
		if err := l.sleep(ctx, l.policy.Cooldown); err != nil {
			return err
		}
		now = l.now()
		l.windowStart = now
		l.count = 0
	}

	l.count++
	l.last = now
	return nil
}

func sleepFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
