// Package timeutil provides the timestamp sampling used by the dataset
// pipeline. All methods draw from a caller-owned rand source and measure
// against a "now" fixed at construction, so a seeded run is reproducible.
package timeutil

import (
	"math/rand"
	"time"
)

// Storage layouts. Timestamps and dates are bound as strings in these
// layouts so chronological order matches lexicographic order on every
// supported provider.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

type Sampler struct {
	rng *rand.Rand
	now time.Time
}

func NewSampler(rng *rand.Rand, now time.Time) *Sampler {
	return &Sampler{rng: rng, now: now.UTC().Truncate(time.Second)}
}

// Now returns the fixed reference instant for this run.
func (s *Sampler) Now() time.Time {
	return s.now
}

// PastTimestamp returns a timestamp between oldestDaysAgo and
// newestDaysAgo days back from now. The bounds count backward:
// oldestDaysAgo is the larger number. A random sub-day component is
// shaved off on top of the day offset; the result is always strictly
// in the past.
func (s *Sampler) PastTimestamp(oldestDaysAgo, newestDaysAgo int) time.Time {
	days := newestDaysAgo
	if oldestDaysAgo > newestDaysAgo {
		days += s.rng.Intn(oldestDaysAgo - newestDaysAgo + 1)
	}

	ts := s.now.AddDate(0, 0, -days)
	ts = ts.Add(-time.Duration(s.rng.Intn(24)) * time.Hour)
	ts = ts.Add(-time.Duration(s.rng.Intn(60)) * time.Minute)
	ts = ts.Add(-time.Duration(s.rng.Intn(60)) * time.Second)
	if !ts.Before(s.now) {
		ts = s.now.Add(-time.Second)
	}
	return ts
}

// TimestampAfter returns a timestamp strictly after ref and at most
// maxDaysLater days later. The offset is at least one second, so the
// result never equals the reference, even for a zero-day window.
func (s *Sampler) TimestampAfter(ref time.Time, maxDaysLater int) time.Time {
	if maxDaysLater < 1 {
		maxDaysLater = 1
	}
	window := int64(maxDaysLater) * 24 * 60 * 60
	offset := 1 + s.rng.Int63n(window)
	return ref.Add(time.Duration(offset) * time.Second)
}

// DueDate returns a calendar date for a task created at ref. With
// probability overdueChance the date lands 1-30 days before ref, which
// is always in the past. Otherwise it lands 0-60 days from now, so a
// freshly generated dataset only contains overdue tasks that were
// meant to be overdue.
func (s *Sampler) DueDate(ref time.Time, overdueChance float64) time.Time {
	if s.rng.Float64() < overdueChance {
		return Date(ref.AddDate(0, 0, -(1 + s.rng.Intn(30))))
	}
	return Date(s.now.AddDate(0, 0, s.rng.Intn(61)))
}

// MaybeCompletedAt returns a completion timestamp strictly after
// created with probability rate, and nil otherwise.
func (s *Sampler) MaybeCompletedAt(created time.Time, rate float64) *time.Time {
	if s.rng.Float64() >= rate {
		return nil
	}
	ts := s.TimestampAfter(created, 60)
	return &ts
}

// Date truncates t to its calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
