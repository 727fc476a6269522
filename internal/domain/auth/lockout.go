package auth

import (
	"sync"
	"time"
)

const (
	lockoutFreeAttempts = 5
	lockoutBaseDelay    = 30 * time.Second
	lockoutMaxDelay     = 300 * time.Second

	lockoutStaleAfter      = time.Hour
	lockoutCleanupInterval = 10 * time.Minute
)

type attemptState struct {
	failures    int
	lastFailure time.Time
	lockedUntil time.Time
}

// Lockout tracks failed login attempts per key (username+IP) and locks the
// key with an exponentially growing delay: the 5th failure locks for 30s,
// every further failure doubles the delay, capped at 300s. A success clears
// the key.
type Lockout struct {
	mu       sync.Mutex
	attempts map[string]*attemptState
	now      func() time.Time
}

func NewLockout() *Lockout {
	l := &Lockout{
		attempts: make(map[string]*attemptState),
		now:      time.Now,
	}
	go l.cleanup()
	return l
}

// newLockoutWithClock is the test constructor; it skips the cleanup loop.
func newLockoutWithClock(now func() time.Time) *Lockout {
	return &Lockout{
		attempts: make(map[string]*attemptState),
		now:      now,
	}
}

// Check reports whether the key is currently locked and for how much longer.
func (l *Lockout) Check(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.attempts[key]
	if !ok {
		return false, 0
	}

	now := l.now()
	if now.Before(state.lockedUntil) {
		return true, state.lockedUntil.Sub(now)
	}
	return false, 0
}

// RecordFailure registers a failed attempt and returns the lock state after
// it. Failures one through four are free; the fifth starts the schedule.
func (l *Lockout) RecordFailure(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.attempts[key]
	if !ok {
		state = &attemptState{}
		l.attempts[key] = state
	}

	now := l.now()

	// An expired lock resets the counter, matching the page-reload reset of
	// the original client-side counter.
	if !state.lockedUntil.IsZero() && now.After(state.lockedUntil) {
		state.failures = 0
		state.lockedUntil = time.Time{}
	}

	state.failures++
	state.lastFailure = now

	if state.failures < lockoutFreeAttempts {
		return false, 0
	}

	delay := lockoutBaseDelay
	for i := lockoutFreeAttempts; i < state.failures; i++ {
		delay *= 2
		if delay >= lockoutMaxDelay {
			delay = lockoutMaxDelay
			break
		}
	}

	state.lockedUntil = now.Add(delay)
	return true, delay
}

// RecordSuccess clears the key.
func (l *Lockout) RecordSuccess(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}

func (l *Lockout) cleanup() {
	ticker := time.NewTicker(lockoutCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := l.now()
		for key, state := range l.attempts {
			if now.After(state.lockedUntil) && now.Sub(state.lastFailure) > lockoutStaleAfter {
				delete(l.attempts, key)
			}
		}
		l.mu.Unlock()
	}
}
