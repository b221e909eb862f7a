package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/verdantapp/verdant/internal/models"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestComputeNextDue(t *testing.T) {
	anchor := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		anchor        time.Time
		frequencyDays int
		want          time.Time
		wantOK        bool
	}{
		{
			name:          "positive frequency",
			anchor:        anchor,
			frequencyDays: 7,
			want:          anchor.Add(7 * 24 * time.Hour),
			wantOK:        true,
		},
		{
			name:          "single day",
			anchor:        anchor,
			frequencyDays: 1,
			want:          anchor.Add(24 * time.Hour),
			wantOK:        true,
		},
		{
			name:          "zero frequency",
			anchor:        anchor,
			frequencyDays: 0,
			wantOK:        false,
		},
		{
			name:          "negative frequency",
			anchor:        anchor,
			frequencyDays: -3,
			wantOK:        false,
		},
		{
			name:          "missing anchor",
			anchor:        time.Time{},
			frequencyDays: 7,
			wantOK:        false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ComputeNextDue(tc.anchor, tc.frequencyDays)
			if ok != tc.wantOK {
				t.Fatalf("ComputeNextDue ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("ComputeNextDue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeNextDue_Exact86400SecondDays(t *testing.T) {
	// Fixed-increment arithmetic: exactly f*86400 seconds, no calendar math.
	anchor := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	got, ok := ComputeNextDue(anchor, 30)
	if !ok {
		t.Fatal("expected a due date")
	}
	if diff := got.Sub(anchor); diff != 30*86400*time.Second {
		t.Errorf("due date offset = %v, want %v", diff, 30*86400*time.Second)
	}
}

func TestMarkTaskDone(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	before := now.Add(-5 * 24 * time.Hour)

	sched := models.CareSchedule{
		WaterFrequencyDays: 7,
		LastWatered:        timePtr(before),
		NextWatering:       timePtr(before.Add(7 * 24 * time.Hour)),

		MistFrequencyDays: 3,
		LastMisted:        timePtr(before),
		NextMisting:       timePtr(before.Add(3 * 24 * time.Hour)),

		FertilizeFrequencyDays: 30,
		LastFertilized:         timePtr(before),
		NextFertilizing:        timePtr(before.Add(30 * 24 * time.Hour)),
	}

	got := MarkTaskDone(sched, models.TrackWater, now)

	if got.LastWatered == nil || !got.LastWatered.Equal(now) {
		t.Errorf("LastWatered = %v, want %v", got.LastWatered, now)
	}
	wantNext := now.Add(7 * 24 * time.Hour)
	if got.NextWatering == nil || !got.NextWatering.Equal(wantNext) {
		t.Errorf("NextWatering = %v, want %v", got.NextWatering, wantNext)
	}

	// The other two tracks must be untouched.
	if !reflect.DeepEqual(got.Track(models.TrackMist), sched.Track(models.TrackMist)) {
		t.Error("mist track changed by watering")
	}
	if !reflect.DeepEqual(got.Track(models.TrackFertilize), sched.Track(models.TrackFertilize)) {
		t.Error("fertilize track changed by watering")
	}

	// Input value is not mutated.
	if !sched.LastWatered.Equal(before) {
		t.Error("input schedule was mutated")
	}
}

func TestMarkTaskDone_DisabledTrackIsNoOp(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		sched models.CareSchedule
		track models.Track
	}{
		{
			name: "zero frequency mist",
			sched: models.CareSchedule{
				WaterFrequencyDays: 7,
				MistFrequencyDays:  0,
			},
			track: models.TrackMist,
		},
		{
			name: "negative frequency fertilize",
			sched: models.CareSchedule{
				WaterFrequencyDays:     7,
				FertilizeFrequencyDays: -1,
			},
			track: models.TrackFertilize,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MarkTaskDone(tc.sched, tc.track, now)
			if !reflect.DeepEqual(got, tc.sched) {
				t.Errorf("MarkTaskDone on disabled track = %+v, want unchanged %+v", got, tc.sched)
			}
		})
	}
}

func TestApplyScheduleEdit_RejectsBadWateringFrequency(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	anchor := now.Add(-2 * 24 * time.Hour)
	sched := models.CareSchedule{
		WaterFrequencyDays: 7,
		LastWatered:        timePtr(anchor),
		NextWatering:       timePtr(anchor.Add(7 * 24 * time.Hour)),
	}

	for _, freq := range []int{0, -3} {
		edit := ScheduleEdit{Water: &freq}
		got, err := ApplyScheduleEdit(sched, edit, now)
		if err == nil {
			t.Fatalf("water frequency %d: expected error", freq)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("water frequency %d: error type %T, want *ValidationError", freq, err)
		}
		if !reflect.DeepEqual(got, sched) {
			t.Errorf("water frequency %d: schedule changed on failed edit", freq)
		}
	}
}

func TestApplyScheduleEdit_RecomputesFromExistingAnchor(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	anchor := now.Add(-2 * 24 * time.Hour)
	sched := models.CareSchedule{
		WaterFrequencyDays: 7,
		LastWatered:        timePtr(anchor),
		NextWatering:       timePtr(anchor.Add(7 * 24 * time.Hour)),
	}

	newFreq := 10
	got, err := ApplyScheduleEdit(sched, ScheduleEdit{Water: &newFreq}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Anchor never moves on edit; only the due date is recomputed.
	if !got.LastWatered.Equal(anchor) {
		t.Errorf("anchor moved: %v, want %v", got.LastWatered, anchor)
	}
	wantNext := anchor.Add(10 * 24 * time.Hour)
	if got.NextWatering == nil || !got.NextWatering.Equal(wantNext) {
		t.Errorf("NextWatering = %v, want %v", got.NextWatering, wantNext)
	}
}

func TestApplyScheduleEdit_DisableAndReEnablePreservesAnchor(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	anchor := now.Add(-4 * 24 * time.Hour)
	sched := models.CareSchedule{
		WaterFrequencyDays: 7,
		LastWatered:        timePtr(now),
		NextWatering:       timePtr(now.Add(7 * 24 * time.Hour)),
		MistFrequencyDays:  3,
		LastMisted:         timePtr(anchor),
		NextMisting:        timePtr(anchor.Add(3 * 24 * time.Hour)),
	}

	off := 0
	disabled, err := ApplyScheduleEdit(sched, ScheduleEdit{Mist: &off}, now)
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if disabled.MistFrequencyDays != 0 {
		t.Errorf("MistFrequencyDays = %d, want 0", disabled.MistFrequencyDays)
	}
	if disabled.NextMisting != nil {
		t.Errorf("NextMisting = %v, want nil on disabled track", disabled.NextMisting)
	}
	if disabled.LastMisted == nil || !disabled.LastMisted.Equal(anchor) {
		t.Error("disabling cleared the anchor")
	}

	// Re-enabling resumes from the preserved anchor.
	on := 5
	reenabled, err := ApplyScheduleEdit(disabled, ScheduleEdit{Mist: &on}, now)
	if err != nil {
		t.Fatalf("re-enable: %v", err)
	}
	wantNext := anchor.Add(5 * 24 * time.Hour)
	if reenabled.NextMisting == nil || !reenabled.NextMisting.Equal(wantNext) {
		t.Errorf("NextMisting = %v, want %v", reenabled.NextMisting, wantNext)
	}
}

func TestApplyScheduleEdit_EnableWithoutAnchorStaysUndue(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	sched := models.CareSchedule{
		WaterFrequencyDays: 7,
		LastWatered:        timePtr(now),
		NextWatering:       timePtr(now.Add(7 * 24 * time.Hour)),
	}

	freq := 3
	got, err := ApplyScheduleEdit(sched, ScheduleEdit{Fertilize: &freq}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FertilizeFrequencyDays != 3 {
		t.Errorf("FertilizeFrequencyDays = %d, want 3", got.FertilizeFrequencyDays)
	}
	// No anchor yet: no due date until the task is first marked done.
	if got.NextFertilizing != nil {
		t.Errorf("NextFertilizing = %v, want nil without an anchor", got.NextFertilizing)
	}
}

func TestApplyScheduleEdit_NegativeOptionalFrequencyDisables(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	sched := models.CareSchedule{
		WaterFrequencyDays: 7,
		MistFrequencyDays:  3,
		LastMisted:         timePtr(now),
		NextMisting:        timePtr(now.Add(3 * 24 * time.Hour)),
	}

	freq := -2
	got, err := ApplyScheduleEdit(sched, ScheduleEdit{Mist: &freq}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MistFrequencyDays != 0 {
		t.Errorf("MistFrequencyDays = %d, want 0", got.MistFrequencyDays)
	}
	if got.NextMisting != nil {
		t.Error("expected no due date on disabled track")
	}
}

func TestClassifyUrgency_DayBoundaries(t *testing.T) {
	// 15:04 local time, so "later today" and "earlier today" both exist.
	now := time.Date(2025, 6, 15, 15, 4, 0, 0, time.UTC)
	midnightToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		nextDue  time.Time
		wantKind Kind
		wantDays int
	}{
		{
			name:     "due exactly at midnight today",
			nextDue:  midnightToday,
			wantKind: DueToday,
		},
		{
			name:     "due later today",
			nextDue:  now.Add(6 * time.Hour),
			wantKind: DueToday,
		},
		{
			name:     "due earlier today",
			nextDue:  now.Add(-3 * time.Hour),
			wantKind: DueToday,
		},
		{
			name:     "yesterday at 23:59",
			nextDue:  midnightToday.Add(-time.Minute),
			wantKind: Overdue,
			wantDays: 1,
		},
		{
			name:     "three days late",
			nextDue:  now.Add(-3 * 24 * time.Hour),
			wantKind: Overdue,
			wantDays: 3,
		},
		{
			name:     "tomorrow at midnight",
			nextDue:  midnightToday.Add(24 * time.Hour),
			wantKind: Upcoming,
			wantDays: 1,
		},
		{
			name:     "in thirteen days",
			nextDue:  now.Add(13 * 24 * time.Hour),
			wantKind: Upcoming,
			wantDays: 13,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sched := models.CareSchedule{
				WaterFrequencyDays: 7,
				LastWatered:        timePtr(now.Add(-24 * time.Hour)),
				NextWatering:       timePtr(tc.nextDue),
			}
			got := ClassifyUrgency(sched, now)[models.TrackWater]
			if got.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", got.Kind, tc.wantKind)
			}
			if got.Days != tc.wantDays {
				t.Errorf("days = %d, want %d", got.Days, tc.wantDays)
			}
		})
	}
}

func TestClassifyUrgency_DisabledTracks(t *testing.T) {
	now := time.Date(2025, 6, 15, 15, 4, 0, 0, time.UTC)

	sched := models.CareSchedule{
		WaterFrequencyDays: 7,
		LastWatered:        timePtr(now),
		NextWatering:       timePtr(now.Add(7 * 24 * time.Hour)),
		MistFrequencyDays:  0,
		// Fertilize enabled but never performed: no due date yet.
		FertilizeFrequencyDays: 30,
	}

	got := ClassifyUrgency(sched, now)
	if got[models.TrackMist].Kind != Disabled {
		t.Errorf("mist kind = %v, want Disabled", got[models.TrackMist].Kind)
	}
	if got[models.TrackFertilize].Kind != Disabled {
		t.Errorf("fertilize kind = %v, want Disabled", got[models.TrackFertilize].Kind)
	}
	if got[models.TrackWater].Kind != Upcoming {
		t.Errorf("water kind = %v, want Upcoming", got[models.TrackWater].Kind)
	}
}

func TestClassifyUrgency_OverdueWateringScenario(t *testing.T) {
	// Plant watered 8 days ago on a 7-day schedule is one day late.
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	last := now.Add(-8 * 24 * time.Hour)
	next, _ := ComputeNextDue(last, 7)

	sched := models.CareSchedule{
		WaterFrequencyDays: 7,
		LastWatered:        timePtr(last),
		NextWatering:       timePtr(next),
	}

	got := ClassifyUrgency(sched, now)[models.TrackWater]
	if got.Kind != Overdue || got.Days != 1 {
		t.Errorf("water urgency = %+v, want Overdue(1)", got)
	}
}

func TestSeedFromSuggestion(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("snake plant", func(t *testing.T) {
		// suggestedWaterFrequency=21, mist not needed
		got := SeedFromSuggestion(models.SuggestedFrequencies{Water: 21, Mist: 0, Fertilize: 60}, now)

		if got.WaterFrequencyDays != 21 {
			t.Errorf("WaterFrequencyDays = %d, want 21", got.WaterFrequencyDays)
		}
		wantNext := now.Add(21 * 24 * time.Hour)
		if got.NextWatering == nil || !got.NextWatering.Equal(wantNext) {
			t.Errorf("NextWatering = %v, want %v", got.NextWatering, wantNext)
		}
		if got.MistFrequencyDays != 0 {
			t.Errorf("MistFrequencyDays = %d, want 0", got.MistFrequencyDays)
		}
		if got.NextMisting != nil || got.LastMisted != nil {
			t.Error("mist track must have no anchor and no due date")
		}
		if got.FertilizeFrequencyDays != 60 || got.NextFertilizing == nil {
			t.Errorf("fertilize track not seeded: %+v", got.Track(models.TrackFertilize))
		}
	})

	t.Run("water defaults to 7 days", func(t *testing.T) {
		got := SeedFromSuggestion(models.SuggestedFrequencies{}, now)
		if got.WaterFrequencyDays != DefaultWaterFrequencyDays {
			t.Errorf("WaterFrequencyDays = %d, want %d", got.WaterFrequencyDays, DefaultWaterFrequencyDays)
		}
		if got.LastWatered == nil || !got.LastWatered.Equal(now) {
			t.Error("watering must always be anchored at seed time")
		}
		wantNext := now.Add(7 * 24 * time.Hour)
		if got.NextWatering == nil || !got.NextWatering.Equal(wantNext) {
			t.Errorf("NextWatering = %v, want %v", got.NextWatering, wantNext)
		}
	})
}
