// Package activity is the input boundary: it decodes and validates the
// weekly activity calendar and computes the aggregate statistics the
// generation core consumes. Malformed input is rejected here; the core
// itself has no error paths for well-formed data.
package activity

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// DaysPerWeek is the number of day records in every weekly bucket.
const DaysPerWeek = 7

// Day is one raw activity record.
type Day struct {
	Date  time.Time
	Count uint
}

// Week is one weekly bucket of exactly seven day records.
type Week struct {
	Days [DaysPerWeek]Day
}

// Calendar is the full input grid: N weekly buckets of seven days.
// A calendar with zero weeks is legal and degenerate, not an error.
type Calendar struct {
	Weeks []Week
}

// Stats are the aggregate statistics used by landmark gating.
type Stats struct {
	Total         uint
	LongestStreak int
	CurrentStreak int
	MostActiveDay time.Weekday
}

type dayJSON struct {
	Date  string `json:"date"`
	Count *uint  `json:"count"`
}

type weekJSON struct {
	Days []dayJSON `json:"days"`
}

type calendarJSON struct {
	Weeks []weekJSON `json:"weeks"`
}

// Load decodes a calendar from JSON and validates its shape: every week
// carries exactly seven day records, every day has a count and a parsable
// date.
func Load(r io.Reader) (*Calendar, error) {
	var raw calendarJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode calendar: %w", err)
	}

	cal := &Calendar{Weeks: make([]Week, len(raw.Weeks))}
	for wi, w := range raw.Weeks {
		if len(w.Days) != DaysPerWeek {
			return nil, fmt.Errorf("week %d: got %d day records, want %d", wi, len(w.Days), DaysPerWeek)
		}
		for di, d := range w.Days {
			if d.Count == nil {
				return nil, fmt.Errorf("week %d day %d: missing count", wi, di)
			}
			date, err := time.Parse("2006-01-02", d.Date)
			if err != nil {
				return nil, fmt.Errorf("week %d day %d: parse date %q: %w", wi, di, d.Date, err)
			}
			cal.Weeks[wi].Days[di] = Day{Date: date, Count: *d.Count}
		}
	}
	return cal, nil
}

// MaxCount returns the largest daily count in the calendar.
func MaxCount(c *Calendar) uint {
	var max uint
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			if d.Count > max {
				max = d.Count
			}
		}
	}
	return max
}

// ComputeStats derives totals, streaks, and the most active weekday.
// The current streak is the run of consecutive active days ending at the
// final day record.
func ComputeStats(c *Calendar) Stats {
	var s Stats
	var byWeekday [DaysPerWeek]uint

	run := 0
	for _, w := range c.Weeks {
		for di, d := range w.Days {
			s.Total += d.Count
			byWeekday[di] += d.Count

			if d.Count > 0 {
				run++
				if run > s.LongestStreak {
					s.LongestStreak = run
				}
			} else {
				run = 0
			}
		}
	}
	s.CurrentStreak = run

	best := 0
	for di, total := range byWeekday {
		if total > byWeekday[best] {
			best = di
		}
	}
	s.MostActiveDay = time.Weekday(best)
	return s
}
