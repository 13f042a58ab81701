// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cooldown

import (
	"sync"
	"time"
)

const (
	// DefaultWindow is the minimum time between two experience grants for one user.
	DefaultWindow = time.Minute
	// DefaultSweepFactor is how many windows a record survives before Sweep drops it.
	DefaultSweepFactor = 10
)

// Gate tracks when each user was last granted experience.
//
// Admit only reads. The timestamp is written by Record, which the caller
// invokes once the whole event has been processed.
type Gate struct {
	window      time.Duration
	sweepFactor int

	mu          sync.RWMutex
	lastGranted map[int64]time.Time
}

// NewGate creates a gate. Non-positive arguments fall back to the defaults.
func NewGate(window time.Duration, sweepFactor int) *Gate {
	if window <= 0 {
		window = DefaultWindow
	}
	if sweepFactor <= 0 {
		sweepFactor = DefaultSweepFactor
	}
	return &Gate{
		window:      window,
		sweepFactor: sweepFactor,
		lastGranted: make(map[int64]time.Time),
	}
}

// Window returns the configured cooldown window.
func (g *Gate) Window() time.Duration {
	return g.window
}

// Admit reports whether userID may be granted experience at now.
// Users without a record are always admitted.
func (g *Gate) Admit(userID int64, now time.Time) bool {
	g.mu.RLock()
	last, ok := g.lastGranted[userID]
	g.mu.RUnlock()

	if !ok {
		return true
	}
	return !now.Before(last.Add(g.window))
}

// Record stores now as the last grant time of userID.
func (g *Gate) Record(userID int64, now time.Time) {
	g.mu.Lock()
	g.lastGranted[userID] = now
	g.mu.Unlock()
}

// Sweep removes records older than sweepFactor windows and returns how many
// were removed. A swept user is treated as first-time on the next event,
// which is safe because the record was already far outside the window.
func (g *Gate) Sweep(now time.Time) int {
	cutoff := now.Add(-time.Duration(g.sweepFactor) * g.window)

	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for userID, last := range g.lastGranted {
		if last.Before(cutoff) {
			delete(g.lastGranted, userID)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked users.
func (g *Gate) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.lastGranted)
}
