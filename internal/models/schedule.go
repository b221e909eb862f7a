package models

import "time"

// Track identifies one of the three independent recurring care activities.
type Track string

const (
	TrackWater     Track = "water"
	TrackMist      Track = "mist"
	TrackFertilize Track = "fertilize"
)

// ValidTracks contains all valid track values, in display order.
var ValidTracks = []Track{TrackWater, TrackMist, TrackFertilize}

// IsValidTrack checks if a string is a valid Track
func IsValidTrack(s string) bool {
	for _, track := range ValidTracks {
		if string(track) == s {
			return true
		}
	}
	return false
}

// TrackState is the schedule of a single care track. A track with a
// non-positive frequency is disabled: it carries no due date and is skipped
// by urgency classification. LastPerformed survives disabling so a later
// re-enable resumes from the same anchor.
type TrackState struct {
	FrequencyDays int
	LastPerformed *time.Time
	NextDue       *time.Time
}

// Enabled reports whether the track is active. This is the one place the
// disabled variant is decided; a zero frequency is never a "zero-day"
// schedule.
func (t TrackState) Enabled() bool {
	return t.FrequencyDays > 0
}

// CareSchedule holds the three care tracks of a plant. The layout is
// per-track flattened to preserve the persisted JSON shape; code should go
// through Track and WithTrack rather than touching fields per activity.
type CareSchedule struct {
	WaterFrequencyDays int        `json:"waterFrequencyDays"`
	LastWatered        *time.Time `json:"lastWatered,omitempty"`
	NextWatering       *time.Time `json:"nextWatering,omitempty"`

	MistFrequencyDays int        `json:"mistFrequencyDays"`
	LastMisted        *time.Time `json:"lastMisted,omitempty"`
	NextMisting       *time.Time `json:"nextMisting,omitempty"`

	FertilizeFrequencyDays int        `json:"fertilizeFrequencyDays"`
	LastFertilized         *time.Time `json:"lastFertilized,omitempty"`
	NextFertilizing        *time.Time `json:"nextFertilizing,omitempty"`
}

// Track returns the state of one care track.
func (s CareSchedule) Track(tr Track) TrackState {
	switch tr {
	case TrackWater:
		return TrackState{
			FrequencyDays: s.WaterFrequencyDays,
			LastPerformed: s.LastWatered,
			NextDue:       s.NextWatering,
		}
	case TrackMist:
		return TrackState{
			FrequencyDays: s.MistFrequencyDays,
			LastPerformed: s.LastMisted,
			NextDue:       s.NextMisting,
		}
	case TrackFertilize:
		return TrackState{
			FrequencyDays: s.FertilizeFrequencyDays,
			LastPerformed: s.LastFertilized,
			NextDue:       s.NextFertilizing,
		}
	}
	return TrackState{}
}

// WithTrack returns a copy of the schedule with one track replaced. The
// receiver is not modified.
func (s CareSchedule) WithTrack(tr Track, state TrackState) CareSchedule {
	switch tr {
	case TrackWater:
		s.WaterFrequencyDays = state.FrequencyDays
		s.LastWatered = state.LastPerformed
		s.NextWatering = state.NextDue
	case TrackMist:
		s.MistFrequencyDays = state.FrequencyDays
		s.LastMisted = state.LastPerformed
		s.NextMisting = state.NextDue
	case TrackFertilize:
		s.FertilizeFrequencyDays = state.FrequencyDays
		s.LastFertilized = state.LastPerformed
		s.NextFertilizing = state.NextDue
	}
	return s
}
