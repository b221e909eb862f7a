package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestHealthStatus_Constants(t *testing.T) {
	expected := []string{"Thriving", "Recovering", "Critical"}
	for i, status := range ValidHealthStatuses {
		if string(status) != expected[i] {
			t.Errorf("HealthStatus %d: got %s, want %s", i, status, expected[i])
		}
	}
}

func TestIsValidHealthStatus(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Thriving", true},
		{"Recovering", true},
		{"Critical", true},
		{"thriving", false},
		{"Dead", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidHealthStatus(tt.input); got != tt.want {
			t.Errorf("IsValidHealthStatus(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidTrack(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"water", true},
		{"mist", true},
		{"fertilize", true},
		{"Water", false},
		{"prune", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidTrack(tt.input); got != tt.want {
			t.Errorf("IsValidTrack(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTrackState_Enabled(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		state TrackState
		want  bool
	}{
		{"positive frequency", TrackState{FrequencyDays: 7}, true},
		{"zero frequency", TrackState{FrequencyDays: 0}, false},
		{"negative frequency", TrackState{FrequencyDays: -1}, false},
		{"disabled keeps anchor", TrackState{FrequencyDays: 0, LastPerformed: &now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCareSchedule_TrackRoundTrip(t *testing.T) {
	now := time.Now()
	later := now.Add(72 * time.Hour)

	var s CareSchedule
	for _, track := range ValidTracks {
		s = s.WithTrack(track, TrackState{
			FrequencyDays: 3,
			LastPerformed: &now,
			NextDue:       &later,
		})
	}

	for _, track := range ValidTracks {
		state := s.Track(track)
		if state.FrequencyDays != 3 {
			t.Errorf("%s FrequencyDays = %d, want 3", track, state.FrequencyDays)
		}
		if state.LastPerformed == nil || !state.LastPerformed.Equal(now) {
			t.Errorf("%s LastPerformed not preserved", track)
		}
		if state.NextDue == nil || !state.NextDue.Equal(later) {
			t.Errorf("%s NextDue not preserved", track)
		}
	}
}

func TestCareSchedule_WithTrackCopies(t *testing.T) {
	orig := CareSchedule{WaterFrequencyDays: 7, MistFrequencyDays: 3}

	modified := orig.WithTrack(TrackWater, TrackState{FrequencyDays: 10})
	if orig.WaterFrequencyDays != 7 {
		t.Errorf("receiver modified: WaterFrequencyDays = %d, want 7", orig.WaterFrequencyDays)
	}
	if modified.WaterFrequencyDays != 10 {
		t.Errorf("copy WaterFrequencyDays = %d, want 10", modified.WaterFrequencyDays)
	}
	if modified.MistFrequencyDays != 3 {
		t.Errorf("unrelated track changed: MistFrequencyDays = %d, want 3", modified.MistFrequencyDays)
	}
}

func TestPlant_LatestDiagnosis(t *testing.T) {
	p := Plant{}
	if p.LatestDiagnosis() != nil {
		t.Error("LatestDiagnosis() on empty history should be nil")
	}

	p.DiagnosisHistory = []DiagnosisResult{
		{Diagnosis: "newest"},
		{Diagnosis: "older"},
	}
	latest := p.LatestDiagnosis()
	if latest == nil || latest.Diagnosis != "newest" {
		t.Errorf("LatestDiagnosis() = %v, want newest entry", latest)
	}
}

// The persisted field names are load-bearing: collections written by earlier
// releases must keep parsing.
func TestPlant_WireFieldNames(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := Plant{
		ID:           "p1",
		Name:         "Monstera",
		Species:      "Monstera deliciosa",
		AcquiredDate: now,
		Status:       StatusThriving,
		Schedule: CareSchedule{
			WaterFrequencyDays: 7,
			LastWatered:        &now,
			NextWatering:       &now,
			FertilizeFrequencyDays: 30,
		},
		DiagnosisHistory: []DiagnosisResult{},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	for _, field := range []string{
		`"acquiredDate"`,
		`"waterFrequencyDays"`,
		`"lastWatered"`,
		`"nextWatering"`,
		`"mistFrequencyDays"`,
		`"fertilizeFrequencyDays"`,
		`"diagnosisHistory"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("marshalled plant missing field %s", field)
		}
	}

	var back Plant
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Schedule.WaterFrequencyDays != 7 {
		t.Errorf("WaterFrequencyDays = %d, want 7", back.Schedule.WaterFrequencyDays)
	}
	if back.Schedule.NextMisting != nil {
		t.Error("NextMisting should stay nil through the round trip")
	}
}

func TestDiagnosisResult_Suggested(t *testing.T) {
	d := DiagnosisResult{
		SuggestedWaterFrequency:     5,
		SuggestedMistFrequency:      2,
		SuggestedFertilizeFrequency: 0,
	}
	sugg := d.Suggested()
	if sugg.Water != 5 || sugg.Mist != 2 || sugg.Fertilize != 0 {
		t.Errorf("Suggested() = %+v, want {5 2 0}", sugg)
	}
}
