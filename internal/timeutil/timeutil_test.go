package timeutil

import (
	"math/rand"
	"testing"
	"time"
)

func newTestSampler(seed int64) *Sampler {
	now := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)
	return NewSampler(rand.New(rand.NewSource(seed)), now)
}

func TestPastTimestampBounds(t *testing.T) {
	s := newTestSampler(1)
	now := s.Now()

	// The min bound is the OLDER one: min=730/max=365 means "between
	// two years and one year ago", not the other way around.
	oldest := now.AddDate(0, 0, -731)
	newest := now.AddDate(0, 0, -365)

	for i := 0; i < 1000; i++ {
		ts := s.PastTimestamp(730, 365)
		if ts.Before(oldest) {
			t.Fatalf("timestamp %v older than the 730-day bound %v", ts, oldest)
		}
		if ts.After(newest) {
			t.Fatalf("timestamp %v newer than the 365-day bound %v", ts, newest)
		}
	}
}

func TestPastTimestampStrictlyPast(t *testing.T) {
	s := newTestSampler(2)
	for i := 0; i < 1000; i++ {
		if ts := s.PastTimestamp(0, 0); !ts.Before(s.Now()) {
			t.Fatalf("zero-offset timestamp %v not strictly before now %v", ts, s.Now())
		}
	}
}

func TestPastTimestampCoversRange(t *testing.T) {
	s := newTestSampler(3)
	days := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		ts := s.PastTimestamp(10, 5)
		days[int(s.Now().Sub(ts).Hours()/24)] = true
	}
	for d := 5; d <= 10; d++ {
		if !days[d] {
			t.Errorf("day offset %d never sampled", d)
		}
	}
}

func TestTimestampAfterStrictlyAfter(t *testing.T) {
	s := newTestSampler(4)
	ref := s.Now().AddDate(0, 0, -30)

	for _, window := range []int{0, 1, 10, 60} {
		for i := 0; i < 1000; i++ {
			ts := s.TimestampAfter(ref, window)
			if !ts.After(ref) {
				t.Fatalf("window %d: %v not strictly after %v", window, ts, ref)
			}
			max := window
			if max < 1 {
				max = 1
			}
			if ts.After(ref.AddDate(0, 0, max)) {
				t.Fatalf("window %d: %v exceeds the %d-day bound", window, ts, max)
			}
		}
	}
}

func TestDueDateOverdueBranch(t *testing.T) {
	s := newTestSampler(5)
	today := Date(s.Now())
	ref := s.Now().AddDate(0, 0, -100)

	for i := 0; i < 500; i++ {
		due := s.DueDate(ref, 1)
		if !due.Before(today) {
			t.Fatalf("overdue due date %v not before today %v", due, today)
		}
		if due.Before(Date(ref.AddDate(0, 0, -30))) {
			t.Fatalf("overdue due date %v more than 30 days before the reference", due)
		}
	}
}

func TestDueDateFutureBranch(t *testing.T) {
	s := newTestSampler(6)
	today := Date(s.Now())
	ref := s.Now().AddDate(0, 0, -100)

	for i := 0; i < 500; i++ {
		due := s.DueDate(ref, 0)
		if due.Before(today) {
			t.Fatalf("non-overdue due date %v is before today %v", due, today)
		}
		if due.After(today.AddDate(0, 0, 60)) {
			t.Fatalf("non-overdue due date %v beyond the 60-day horizon", due)
		}
	}
}

func TestMaybeCompletedAt(t *testing.T) {
	s := newTestSampler(7)
	created := s.Now().AddDate(0, 0, -50)

	for i := 0; i < 200; i++ {
		if got := s.MaybeCompletedAt(created, 0); got != nil {
			t.Fatalf("rate 0 produced a completion timestamp %v", *got)
		}
	}
	for i := 0; i < 200; i++ {
		got := s.MaybeCompletedAt(created, 1)
		if got == nil {
			t.Fatal("rate 1 produced no completion timestamp")
		}
		if !got.After(created) {
			t.Fatalf("completion %v not strictly after creation %v", *got, created)
		}
	}
}

func TestMaybeCompletedAtRateRoughlyHolds(t *testing.T) {
	s := newTestSampler(8)
	created := s.Now().AddDate(0, 0, -50)

	const n = 5000
	completed := 0
	for i := 0; i < n; i++ {
		if s.MaybeCompletedAt(created, 0.7) != nil {
			completed++
		}
	}
	ratio := float64(completed) / n
	if ratio < 0.65 || ratio > 0.75 {
		t.Errorf("completion ratio %.3f too far from 0.7", ratio)
	}
}

func TestFormatLayoutsSortLexicographically(t *testing.T) {
	a := time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)
	b := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	if FormatTimestamp(a) >= FormatTimestamp(b) {
		t.Errorf("timestamp layout broke ordering: %q >= %q", FormatTimestamp(a), FormatTimestamp(b))
	}
	if FormatDate(a) >= FormatDate(b) {
		t.Errorf("date layout broke ordering: %q >= %q", FormatDate(a), FormatDate(b))
	}
}
