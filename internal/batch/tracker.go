package batch

import "time"

// minSecondsPerFile floors the rolling average so a burst of instant files
// cannot produce a runaway ETA on the next slow one.
const minSecondsPerFile = 0.1

// Item is the presentation-facing projection of one file in a batch.
type Item struct {
	Path  string
	State State
	Err   string
}

// Tracker folds FileUpdate transitions into per-file states, running counts
// and an ETA. It is not safe for concurrent use; the presentation context
// that drains the update channel owns it.
type Tracker struct {
	order []string
	items map[string]*Item

	total     int
	completed int
	skipped   int
	failed    int
	cancelled int

	started      time.Time
	currentStart time.Time
	inFlight     bool

	now func() time.Time
}

func NewTracker(total int) *Tracker {
	return &Tracker{
		items: make(map[string]*Item),
		total: total,
		now:   time.Now,
	}
}

// Seed registers the planned file list up front so every file shows as
// Waiting before its first update arrives.
func (t *Tracker) Seed(paths []string) {
	for _, path := range paths {
		if _, ok := t.items[path]; ok {
			continue
		}
		t.items[path] = &Item{Path: path}
		t.order = append(t.order, path)
	}
	if len(t.order) > t.total {
		t.total = len(t.order)
	}
}

// Apply folds one transition in. Terminal states are monotonic: once a file
// reaches one, later updates for it are ignored.
func (t *Tracker) Apply(update FileUpdate) {
	if t.started.IsZero() {
		t.started = t.now()
	}
	if update.Total > t.total {
		t.total = update.Total
	}

	item, ok := t.items[update.Path]
	if !ok {
		item = &Item{Path: update.Path}
		t.items[update.Path] = item
		t.order = append(t.order, update.Path)
		if len(t.order) > t.total {
			t.total = len(t.order)
		}
	}
	if item.State.Terminal() {
		return
	}

	switch update.State {
	case StateProcessing:
		item.State = StateProcessing
		t.currentStart = t.now()
		t.inFlight = true
	case StateCompleted:
		item.State = StateCompleted
		t.completed++
		t.inFlight = false
	case StateSkipped:
		item.State = StateSkipped
		t.skipped++
		t.inFlight = false
	case StateFailed:
		item.State = StateFailed
		item.Err = update.Err
		t.failed++
		t.inFlight = false
	case StateCancelled:
		item.State = StateCancelled
		t.cancelled++
		t.inFlight = false
	}
}

// CancelPending marks every non-terminal item Cancelled. Called when a
// canceled batch winds down so terminal+cancelled still covers every file.
func (t *Tracker) CancelPending() {
	for _, path := range t.order {
		item := t.items[path]
		if !item.State.Terminal() {
			item.State = StateCancelled
			item.Err = ""
			t.cancelled++
			t.inFlight = false
		}
	}
}

// Terminal is the count of files that reached any terminal state.
func (t *Tracker) Terminal() int {
	return t.completed + t.skipped + t.failed + t.cancelled
}

func (t *Tracker) Total() int     { return t.total }
func (t *Tracker) Completed() int { return t.completed }
func (t *Tracker) Skipped() int   { return t.skipped }
func (t *Tracker) Failed() int    { return t.failed }
func (t *Tracker) Cancelled() int { return t.cancelled }

// Percent is the terminal share of the batch in [0, 1].
func (t *Tracker) Percent() float64 {
	if t.total == 0 {
		return 0
	}
	ratio := float64(t.Terminal()) / float64(t.total)
	if ratio > 1 {
		return 1
	}
	return ratio
}

// ETA estimates the remaining wall-clock time from the rolling average
// seconds-per-file, reduced by the time already spent on the in-flight file.
// ok is false until the first file reaches a terminal state.
func (t *Tracker) ETA() (eta time.Duration, ok bool) {
	done := t.Terminal()
	if done == 0 || t.started.IsZero() {
		return 0, false
	}

	avg := t.now().Sub(t.started).Seconds() / float64(done)
	if avg < minSecondsPerFile {
		avg = minSecondsPerFile
	}

	remaining := t.total - done
	if remaining < 0 {
		remaining = 0
	}

	estimate := avg * float64(remaining)
	if t.inFlight && !t.currentStart.IsZero() {
		estimate -= t.now().Sub(t.currentStart).Seconds()
	}
	if estimate < 0 {
		estimate = 0
	}

	return time.Duration(estimate * float64(time.Second)), true
}

// Items returns the per-file projections in input order.
func (t *Tracker) Items() []Item {
	items := make([]Item, 0, len(t.order))
	for _, path := range t.order {
		items = append(items, *t.items[path])
	}
	return items
}
