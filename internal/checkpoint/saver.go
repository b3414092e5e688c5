package checkpoint

import (
	"context"
	"time"
)

// TimedSaver rate-limits checkpoint persistence to one save per interval of
// wall-clock time. The stage loops call MaybeSave between items; the driver
// calls Flush at stage boundaries. Saves happen inline on the calling
// goroutine, never from a background timer, so an in-flight item is never
// interrupted by persistence.
type TimedSaver struct {
	store    *Store
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewTimedSaver creates a saver whose first time-gated save becomes eligible
// one interval after construction. A non-positive interval saves on every
// call.
func NewTimedSaver(store *Store, interval time.Duration) *TimedSaver {
	s := &TimedSaver{store: store, interval: interval, now: time.Now}
	s.last = s.now()
	return s
}

// MaybeSave persists doc when at least one interval has elapsed since the
// previous save. It reports whether a save happened.
func (s *TimedSaver) MaybeSave(ctx context.Context, doc *Document) (bool, error) {
	if s.interval > 0 && s.now().Sub(s.last) < s.interval {
		return false, nil
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return false, err
	}
	s.last = s.now()
	return true, nil
}

// Flush persists doc unconditionally and resets the save timer.
func (s *TimedSaver) Flush(ctx context.Context, doc *Document) error {
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}
	s.last = s.now()
	return nil
}
