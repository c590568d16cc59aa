package store

import (
	"time"

	"restodash/internal/models"
)

// Toasts returns the currently live toasts, oldest first.
func (s *Store) Toasts() []models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	toasts := make([]models.Toast, len(s.toasts))
	copy(toasts, s.toasts)
	return toasts
}

// AddToast appends a transient toast and schedules its removal after
// duration (<= 0 means the default). Removal fires whether or not any screen
// ever showed the toast.
func (s *Store) AddToast(message, toastType string, duration time.Duration) models.Toast {
	s.mu.Lock()

	if duration <= 0 {
		duration = s.toastDuration
	}
	s.toastSeq++
	toast := models.Toast{
		ID:      s.toastSeq,
		Message: message,
		Type:    toastType,
	}
	s.toasts = append(s.toasts, toast)
	s.expiries.Enqueue(&models.Expiry{
		At:      s.now().Add(duration),
		ToastID: toast.ID,
	})
	s.mu.Unlock()

	// Nudge the sweeper in case this expiry is now the earliest.
	select {
	case s.wake <- struct{}{}:
	default:
	}
	return toast
}

// RemoveToast dismisses a toast early. Unknown ids are a no-op; the queued
// expiry for a dismissed toast fires later against nothing.
func (s *Store) RemoveToast(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeToastLocked(id)
}

func (s *Store) removeToastLocked(id int64) {
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// SweepToasts removes every toast whose expiry is at or before now and
// returns how many were dropped. The background sweeper calls this with the
// real clock; tests call it directly with a simulated instant.
func (s *Store) SweepToasts(now time.Time) int {
	due := s.expiries.PopDue(now)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range due {
		s.removeToastLocked(e.ToastID)
	}
	return len(due)
}

// runSweeper waits out the earliest pending expiry and sweeps. It wakes
// early when a new toast arrives and exits when the store closes.
func (s *Store) runSweeper() {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		var wait <-chan time.Time
		if next := s.expiries.Peek(); next != nil {
			d := time.Until(next.At)
			if d < 0 {
				d = 0
			}
			timer.Reset(d)
			wait = timer.C
		}

		select {
		case <-wait:
			s.SweepToasts(s.now())
		case <-s.wake:
			if wait != nil && !timer.Stop() {
				<-timer.C
			}
		case <-s.done:
			if wait != nil && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			return
		}
	}
}
