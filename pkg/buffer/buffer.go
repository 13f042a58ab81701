// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package buffer

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Delta is experience granted to one user that has not been persisted yet.
type Delta struct {
	UserID  int64
	GroupID int64
	// Name is the display name most recently seen for the user.
	Name   string
	Amount int64
}

type entry struct {
	userID  int64
	groupID int64
	name    atomic.Pointer[string]
	amount  atomic.Int64
}

// Buffer accumulates deltas per user between flushes.
//
// Increments for existing users only take the read lock and update the entry
// atomically, so callers for different users never wait on each other. The
// write lock is taken to create an entry and by Drain to swap the map out.
type Buffer struct {
	mu      sync.RWMutex
	entries map[int64]*entry
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{entries: make(map[int64]*entry)}
}

// Accumulate adds amount to the pending delta of userID, creating it when
// none exists. The group of an existing delta is kept; the name is replaced.
// It returns the group the amount is credited to.
func (b *Buffer) Accumulate(userID, groupID int64, name string, amount int64) int64 {
	b.mu.RLock()
	if e, ok := b.entries[userID]; ok {
		e.add(name, amount)
		b.mu.RUnlock()
		return e.groupID
	}
	b.mu.RUnlock()

	b.mu.Lock()
	e, ok := b.entries[userID]
	if !ok {
		e = &entry{userID: userID, groupID: groupID}
		b.entries[userID] = e
	}
	e.add(name, amount)
	b.mu.Unlock()

	return e.groupID
}

// PendingGroup returns the group the pending delta of userID is credited
// to, and false when the user has no pending delta.
func (b *Buffer) PendingGroup(userID int64) (int64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[userID]
	if !ok {
		return 0, false
	}
	return e.groupID, true
}

func (e *entry) add(name string, amount int64) {
	if name != "" {
		e.name.Store(&name)
	}
	e.amount.Add(amount)
}

// Drain swaps the buffer for an empty one and returns the collected deltas
// ordered by user id. Increments arriving after the swap land in the new map.
func (b *Buffer) Drain() []Delta {
	b.mu.Lock()
	drained := b.entries
	b.entries = make(map[int64]*entry, len(drained))
	b.mu.Unlock()

	deltas := make([]Delta, 0, len(drained))
	for _, e := range drained {
		d := Delta{
			UserID:  e.userID,
			GroupID: e.groupID,
			Amount:  e.amount.Load(),
		}
		if name := e.name.Load(); name != nil {
			d.Name = *name
		}
		deltas = append(deltas, d)
	}

	sort.Slice(deltas, func(i, j int) bool {
		return deltas[i].UserID < deltas[j].UserID
	})
	return deltas
}

// Restore merges deltas back into the buffer, used when a failed batch is
// kept for the next flush. Entries created since the drain keep their group
// and name.
func (b *Buffer) Restore(deltas []Delta) {
	if len(deltas) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, d := range deltas {
		e, ok := b.entries[d.UserID]
		if !ok {
			e = &entry{userID: d.UserID, groupID: d.GroupID}
			if d.Name != "" {
				name := d.Name
				e.name.Store(&name)
			}
			b.entries[d.UserID] = e
		}
		e.amount.Add(d.Amount)
	}
}

// Count returns the number of users with a pending delta.
func (b *Buffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}
