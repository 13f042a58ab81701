// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package buffer

import (
	"sync"
	"testing"
)

func TestBuffer_Accumulate(t *testing.T) {
	b := New()

	b.Accumulate(1, 100, "alice", 1)
	b.Accumulate(1, 200, "alice#2", 2)
	b.Accumulate(2, 100, "bob", 5)

	if b.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", b.Count())
	}

	deltas := b.Drain()
	expected := []Delta{
		{UserID: 1, GroupID: 100, Name: "alice#2", Amount: 3},
		{UserID: 2, GroupID: 100, Name: "bob", Amount: 5},
	}

	if len(deltas) != len(expected) {
		t.Fatalf("Drain() returned %d deltas, expected %d", len(deltas), len(expected))
	}
	for i := range expected {
		if deltas[i] != expected[i] {
			t.Errorf("Drain()[%d] = %+v, expected %+v", i, deltas[i], expected[i])
		}
	}
}

func TestBuffer_CreditedGroup(t *testing.T) {
	b := New()

	if _, ok := b.PendingGroup(1); ok {
		t.Error("PendingGroup() without a pending delta reported one")
	}
	if got := b.Accumulate(1, 100, "alice", 1); got != 100 {
		t.Errorf("first Accumulate() credited group %d, expected 100", got)
	}
	if got := b.Accumulate(1, 200, "alice", 1); got != 100 {
		t.Errorf("Accumulate() in another group credited %d, expected 100", got)
	}
	if group, ok := b.PendingGroup(1); !ok || group != 100 {
		t.Errorf("PendingGroup() = (%d, %v), expected (100, true)", group, ok)
	}

	_ = b.Drain()
	if _, ok := b.PendingGroup(1); ok {
		t.Error("PendingGroup() after Drain reported a pending delta")
	}
}

func TestBuffer_EmptyNameKeepsPrevious(t *testing.T) {
	b := New()

	b.Accumulate(1, 100, "alice", 1)
	b.Accumulate(1, 100, "", 1)

	deltas := b.Drain()
	if deltas[0].Name != "alice" {
		t.Errorf("Name = %q, expected %q", deltas[0].Name, "alice")
	}
}

func TestBuffer_DrainEmpties(t *testing.T) {
	b := New()

	b.Accumulate(1, 100, "alice", 1)
	_ = b.Drain()

	if b.Count() != 0 {
		t.Errorf("Count() after Drain = %d, expected 0", b.Count())
	}
	if deltas := b.Drain(); len(deltas) != 0 {
		t.Errorf("second Drain() returned %d deltas, expected 0", len(deltas))
	}

	b.Accumulate(1, 100, "alice", 1)
	deltas := b.Drain()
	if len(deltas) != 1 || deltas[0].Amount != 1 {
		t.Errorf("Drain() after new increment = %+v, expected a fresh delta of 1", deltas)
	}
}

func TestBuffer_ConcurrentAccumulateNoLostUpdates(t *testing.T) {
	b := New()

	const (
		users      = 16
		goroutines = 64
		increments = 500
	)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				b.Accumulate(int64(g%users), 1, "user", 1)
			}
		}(g)
	}
	wg.Wait()

	perUser := int64(goroutines / users * increments)
	for _, d := range b.Drain() {
		if d.Amount != perUser {
			t.Errorf("user %d amount = %d, expected %d", d.UserID, d.Amount, perUser)
		}
	}
}

func TestBuffer_ConcurrentDrainKeepsEveryIncrement(t *testing.T) {
	b := New()

	const (
		goroutines = 32
		increments = 1000
	)

	var total int64
	var mu sync.Mutex
	done := make(chan struct{})

	collect := func() {
		var sum int64
		for _, d := range b.Drain() {
			sum += d.Amount
		}
		mu.Lock()
		total += sum
		mu.Unlock()
	}

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				collect()
			}
		}
	}()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				b.Accumulate(7, 1, "same-user", 1)
			}
		}()
	}
	wg.Wait()
	close(done)
	collect()

	mu.Lock()
	defer mu.Unlock()
	if total != goroutines*increments {
		t.Errorf("total drained = %d, expected %d", total, goroutines*increments)
	}
}

func TestBuffer_Restore(t *testing.T) {
	b := New()

	b.Accumulate(1, 100, "alice-new", 2)
	b.Restore([]Delta{
		{UserID: 1, GroupID: 300, Name: "alice-old", Amount: 3},
		{UserID: 2, GroupID: 100, Name: "bob", Amount: 4},
	})

	deltas := b.Drain()
	if len(deltas) != 2 {
		t.Fatalf("Drain() returned %d deltas, expected 2", len(deltas))
	}
	if deltas[0] != (Delta{UserID: 1, GroupID: 100, Name: "alice-new", Amount: 5}) {
		t.Errorf("restored delta = %+v", deltas[0])
	}
	if deltas[1] != (Delta{UserID: 2, GroupID: 100, Name: "bob", Amount: 4}) {
		t.Errorf("restored delta = %+v", deltas[1])
	}
}
