package batch

import (
	"testing"
	"time"
)

func fixedClock(start time.Time) (*time.Time, func() time.Time) {
	now := start
	return &now, func() time.Time { return now }
}

func TestTrackerTerminalStatesAreMonotonic(t *testing.T) {
	tr := NewTracker(2)
	tr.Seed([]string{"a.png", "b.png"})

	tr.Apply(FileUpdate{Path: "a.png", State: StateProcessing})
	tr.Apply(FileUpdate{Path: "a.png", State: StateCompleted})
	tr.Apply(FileUpdate{Path: "a.png", State: StateFailed, Err: "late"})

	items := tr.Items()
	if items[0].State != StateCompleted || items[0].Err != "" {
		t.Fatalf("terminal state overwritten: %#v", items[0])
	}
	if tr.Completed() != 1 || tr.Failed() != 0 {
		t.Fatalf("counts drifted: completed=%d failed=%d", tr.Completed(), tr.Failed())
	}
}

func TestTrackerCancelPendingCoversRemainder(t *testing.T) {
	tr := NewTracker(3)
	tr.Seed([]string{"a.png", "b.png", "c.png"})

	tr.Apply(FileUpdate{Path: "a.png", State: StateProcessing})
	tr.Apply(FileUpdate{Path: "a.png", State: StateCompleted})
	tr.Apply(FileUpdate{Path: "b.png", State: StateProcessing})

	tr.CancelPending()

	if tr.Terminal() != tr.Total() {
		t.Fatalf("terminal %d != total %d", tr.Terminal(), tr.Total())
	}
	items := tr.Items()
	if items[0].State != StateCompleted {
		t.Fatalf("completed item was cancelled: %#v", items[0])
	}
	if items[1].State != StateCancelled || items[2].State != StateCancelled {
		t.Fatalf("pending items not cancelled: %#v", items)
	}
	if tr.Cancelled() != 2 {
		t.Fatalf("expected 2 cancelled, got %d", tr.Cancelled())
	}
}

func TestTrackerTotalGrowsWithObservedFiles(t *testing.T) {
	tr := NewTracker(1)
	tr.Apply(FileUpdate{Path: "a.png", State: StateProcessing, Total: 1})
	tr.Apply(FileUpdate{Path: "b.png", State: StateProcessing, Total: 2})

	if tr.Total() != 2 {
		t.Fatalf("expected total 2, got %d", tr.Total())
	}
}

func TestTrackerETAUnavailableBeforeFirstTerminal(t *testing.T) {
	tr := NewTracker(3)
	tr.Apply(FileUpdate{Path: "a.png", State: StateProcessing})

	if _, ok := tr.ETA(); ok {
		t.Fatal("expected no ETA before the first terminal state")
	}
}

func TestTrackerETAFromRollingAverage(t *testing.T) {
	tr := NewTracker(4)
	now, clock := fixedClock(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))
	tr.now = clock

	tr.Apply(FileUpdate{Path: "a.png", State: StateProcessing})
	*now = now.Add(2 * time.Second)
	tr.Apply(FileUpdate{Path: "a.png", State: StateCompleted})

	eta, ok := tr.ETA()
	if !ok {
		t.Fatal("expected ETA after first completion")
	}
	// 2s per file, 3 files remaining, nothing in flight.
	if eta != 6*time.Second {
		t.Fatalf("expected 6s, got %s", eta)
	}

	// Time already spent on the in-flight file is subtracted.
	tr.Apply(FileUpdate{Path: "b.png", State: StateProcessing})
	*now = now.Add(1 * time.Second)
	eta, ok = tr.ETA()
	if !ok {
		t.Fatal("expected ETA")
	}
	// avg is now 3s/1 done... elapsed 3s over 1 terminal = 3s; 3 remaining
	// gives 9s, minus 1s in flight.
	if eta != 8*time.Second {
		t.Fatalf("expected 8s, got %s", eta)
	}
}

func TestTrackerETANeverNegative(t *testing.T) {
	tr := NewTracker(2)
	now, clock := fixedClock(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))
	tr.now = clock

	tr.Apply(FileUpdate{Path: "a.png", State: StateProcessing})
	*now = now.Add(100 * time.Millisecond)
	tr.Apply(FileUpdate{Path: "a.png", State: StateCompleted})

	// In-flight file has been running far longer than the average predicts.
	tr.Apply(FileUpdate{Path: "b.png", State: StateProcessing})
	*now = now.Add(time.Minute)

	eta, ok := tr.ETA()
	if !ok {
		t.Fatal("expected ETA")
	}
	if eta < 0 {
		t.Fatalf("ETA went negative: %s", eta)
	}
}
