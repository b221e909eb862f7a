// Package schedule implements the care schedule engine: pure date and
// frequency arithmetic over a plant's care tracks. Nothing here performs I/O
// and every operation returns a new value, so urgency can be classified on
// demand at render time instead of being cached or driven by timers.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/verdantapp/verdant/internal/models"
)

// Day is the fixed 86,400-second increment used for all due-date arithmetic.
// There is deliberately no timezone-aware calendar math here.
const Day = 24 * time.Hour

// DefaultWaterFrequencyDays seeds a watering track when no suggestion is
// available. Watering is never disableable, so a seed always needs a value.
const DefaultWaterFrequencyDays = 7

// ComputeNextDue returns anchor + frequencyDays days. The second return is
// false when the track is inactive: a non-positive frequency or a missing
// anchor must never produce a due date.
func ComputeNextDue(anchor time.Time, frequencyDays int) (time.Time, bool) {
	if frequencyDays <= 0 || anchor.IsZero() {
		return time.Time{}, false
	}
	return anchor.Add(time.Duration(frequencyDays) * Day), true
}

// MarkTaskDone records one completed care task: the track's anchor moves to
// now and its due date is recomputed. The other two tracks are untouched.
// Completing a disabled track is a no-op; the input is returned unchanged.
func MarkTaskDone(s models.CareSchedule, track models.Track, now time.Time) models.CareSchedule {
	state := s.Track(track)
	if !state.Enabled() {
		return s
	}

	done := now
	state.LastPerformed = &done
	if next, ok := ComputeNextDue(now, state.FrequencyDays); ok {
		state.NextDue = &next
	}
	return s.WithTrack(track, state)
}

// ScheduleEdit carries new frequency values for any subset of tracks. A nil
// field leaves that track unchanged.
type ScheduleEdit struct {
	Water     *int
	Mist      *int
	Fertilize *int
}

// ValidationError reports user input that fails a local invariant. It blocks
// the edit; callers show the message inline and keep the original state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ApplyScheduleEdit applies new frequencies to a schedule. Watering must stay
// at one day or more; anything lower fails with a ValidationError and the
// input schedule is returned untouched.
//
// Edits never move an anchor (only MarkTaskDone does): each edited track's
// due date is recomputed from its existing LastPerformed and the new
// frequency. Setting a frequency to zero disables the track and clears its
// due date while preserving the anchor, so re-enabling later resumes from the
// same point. A track enabled with no surviving anchor stays without a due
// date until it is first marked done; watering, which must always be
// actionable, falls back to a due date of now in that case.
func ApplyScheduleEdit(s models.CareSchedule, edits ScheduleEdit, now time.Time) (models.CareSchedule, error) {
	if edits.Water != nil && *edits.Water < 1 {
		return s, &ValidationError{
			Field:   "watering frequency",
			Message: "must be at least 1 day",
		}
	}

	apply := func(track models.Track, freq *int) {
		if freq == nil {
			return
		}
		state := s.Track(track)
		f := *freq
		if f < 0 {
			f = 0
		}
		state.FrequencyDays = f
		state.NextDue = nil
		if f > 0 && state.LastPerformed != nil {
			if next, ok := ComputeNextDue(*state.LastPerformed, f); ok {
				state.NextDue = &next
			}
		}
		if track == models.TrackWater && state.NextDue == nil {
			due := now
			state.NextDue = &due
		}
		s = s.WithTrack(track, state)
	}

	apply(models.TrackWater, edits.Water)
	apply(models.TrackMist, edits.Mist)
	apply(models.TrackFertilize, edits.Fertilize)
	return s, nil
}

// Kind labels a track's urgency relative to the current instant.
type Kind int

const (
	Disabled Kind = iota
	Overdue
	DueToday
	Upcoming
)

// String returns the display label for an urgency kind.
func (k Kind) String() string {
	switch k {
	case Overdue:
		return "overdue"
	case DueToday:
		return "due today"
	case Upcoming:
		return "upcoming"
	default:
		return "disabled"
	}
}

// Urgency is the derived classification for one track. Days holds days late
// for Overdue and days until due for Upcoming; it is zero otherwise.
type Urgency struct {
	Kind Kind
	Days int
}

// ClassifyUrgency classifies every track of a schedule against now. A track
// with no due date is Disabled. The result drives the urgent/upcoming badges,
// so the day math must normalize to day boundaries, never compare raw
// timestamps.
func ClassifyUrgency(s models.CareSchedule, now time.Time) map[models.Track]Urgency {
	out := make(map[models.Track]Urgency, len(models.ValidTracks))
	for _, track := range models.ValidTracks {
		out[track] = classifyTrack(s.Track(track), now)
	}
	return out
}

func classifyTrack(state models.TrackState, now time.Time) Urgency {
	if !state.Enabled() || state.NextDue == nil {
		return Urgency{Kind: Disabled}
	}
	days := DaysUntil(*state.NextDue, now)
	switch {
	case days < 0:
		return Urgency{Kind: Overdue, Days: -days}
	case days == 0:
		return Urgency{Kind: DueToday}
	default:
		return Urgency{Kind: Upcoming, Days: days}
	}
}

// DaysUntil returns the whole-day distance from now to due. Both instants are
// truncated to midnight before subtracting and the quotient rounded up, so
// "due later today" and "due at last midnight" both resolve to day zero.
func DaysUntil(due, now time.Time) int {
	diff := midnight(due).Sub(midnight(now))
	return int(math.Ceil(diff.Hours() / 24))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SeedFromSuggestion builds a schedule anchored at now from suggested
// frequencies. Watering always gets an anchor and a due date, defaulting to
// DefaultWaterFrequencyDays when unset; mist and fertilize tracks get an
// anchor only when their suggested frequency is positive.
func SeedFromSuggestion(sugg models.SuggestedFrequencies, now time.Time) models.CareSchedule {
	var s models.CareSchedule

	waterFreq := sugg.Water
	if waterFreq <= 0 {
		waterFreq = DefaultWaterFrequencyDays
	}
	anchor := now
	next, _ := ComputeNextDue(now, waterFreq)
	s = s.WithTrack(models.TrackWater, models.TrackState{
		FrequencyDays: waterFreq,
		LastPerformed: &anchor,
		NextDue:       &next,
	})

	for _, seed := range []struct {
		track models.Track
		freq  int
	}{
		{models.TrackMist, sugg.Mist},
		{models.TrackFertilize, sugg.Fertilize},
	} {
		if seed.freq <= 0 {
			continue
		}
		trackAnchor := now
		trackNext, _ := ComputeNextDue(now, seed.freq)
		s = s.WithTrack(seed.track, models.TrackState{
			FrequencyDays: seed.freq,
			LastPerformed: &trackAnchor,
			NextDue:       &trackNext,
		})
	}
	return s
}
