package garden

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/verdantapp/verdant/internal/models"
	"github.com/verdantapp/verdant/internal/schedule"
	"github.com/verdantapp/verdant/internal/store"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(t.TempDir(), logger)
	return New(st, logger, testNow)
}

func sampleDiagnosis() models.DiagnosisResult {
	return models.DiagnosisResult{
		PlantName:                   "Golden Pothos",
		ScientificName:              "Epipremnum aureum",
		Confidence:                  92.5,
		HealthStatus:                models.StatusRecovering,
		Diagnosis:                   "Overwatering",
		Reasoning:                   "Yellowing lower leaves with soft stems.",
		CarePlan:                    []string{"Let the soil dry out", "Move to brighter light"},
		SuggestedWaterFrequency:     10,
		SuggestedMistFrequency:      7,
		SuggestedFertilizeFrequency: 30,
	}
}

func TestNew_LoadsSeedCollection(t *testing.T) {
	svc := newTestService(t)
	if got := len(svc.List()); got != 2 {
		t.Fatalf("fresh garden has %d plants, want seed set of 2", got)
	}
}

func TestAddFromDiagnosis(t *testing.T) {
	svc := newTestService(t)
	result := sampleDiagnosis()

	plant, err := svc.AddFromDiagnosis(result, "data:image/jpeg;base64,xyz", "", testNow)
	if err != nil {
		t.Fatalf("AddFromDiagnosis: %v", err)
	}

	if plant.ID == "" {
		t.Error("plant was not assigned an ID")
	}
	if plant.Name != "Golden Pothos" {
		t.Errorf("Name = %q, want the identified plant name", plant.Name)
	}
	if plant.Status != models.StatusRecovering {
		t.Errorf("Status = %q, want the diagnosed status", plant.Status)
	}
	if len(plant.DiagnosisHistory) != 1 {
		t.Fatalf("history has %d entries, want 1", len(plant.DiagnosisHistory))
	}
	if plant.Schedule.WaterFrequencyDays != 10 || plant.Schedule.MistFrequencyDays != 7 {
		t.Errorf("schedule not seeded from suggestions: %+v", plant.Schedule)
	}

	// New plants are prepended.
	if got := svc.List(); got[0].ID != plant.ID {
		t.Error("new plant is not first in the collection")
	}
}

func TestAddFromDiagnosis_NicknameOverridesPlantName(t *testing.T) {
	svc := newTestService(t)

	plant, err := svc.AddFromDiagnosis(sampleDiagnosis(), "", "Goldie", testNow)
	if err != nil {
		t.Fatalf("AddFromDiagnosis: %v", err)
	}
	if plant.Name != "Goldie" {
		t.Errorf("Name = %q, want %q", plant.Name, "Goldie")
	}
}

func TestAddFromSpecies(t *testing.T) {
	svc := newTestService(t)
	sp := models.Species{
		ID:                          "snake-plant",
		CommonName:                  "Snake Plant",
		ScientificName:              "Sansevieria trifasciata",
		ImageURL:                    "https://example.com/snake.jpg",
		SuggestedWaterFrequency:     21,
		SuggestedMistFrequency:      0,
		SuggestedFertilizeFrequency: 60,
	}

	plant, err := svc.AddFromSpecies(sp, testNow)
	if err != nil {
		t.Fatalf("AddFromSpecies: %v", err)
	}

	if plant.Status != models.StatusThriving {
		t.Errorf("Status = %q, catalog plants are assumed healthy", plant.Status)
	}
	if len(plant.DiagnosisHistory) != 0 {
		t.Error("catalog plant must start with empty history")
	}
	if plant.Schedule.WaterFrequencyDays != 21 {
		t.Errorf("WaterFrequencyDays = %d, want 21", plant.Schedule.WaterFrequencyDays)
	}
	wantNext := testNow.Add(21 * 24 * time.Hour)
	if plant.Schedule.NextWatering == nil || !plant.Schedule.NextWatering.Equal(wantNext) {
		t.Errorf("NextWatering = %v, want %v", plant.Schedule.NextWatering, wantNext)
	}
	if plant.Schedule.NextMisting != nil {
		t.Error("mist disabled by suggestion, must have no due date")
	}
}

func TestMarkDone(t *testing.T) {
	svc := newTestService(t)
	later := testNow.Add(2 * time.Hour)

	// Seed Monstera is overdue for watering.
	plant, err := svc.MarkDone("Monstera", models.TrackWater, later)
	if err != nil {
		t.Fatalf("MarkDone: %v", err)
	}
	if plant.Schedule.LastWatered == nil || !plant.Schedule.LastWatered.Equal(later) {
		t.Errorf("LastWatered = %v, want %v", plant.Schedule.LastWatered, later)
	}
	wantNext := later.Add(7 * 24 * time.Hour)
	if plant.Schedule.NextWatering == nil || !plant.Schedule.NextWatering.Equal(wantNext) {
		t.Errorf("NextWatering = %v, want %v", plant.Schedule.NextWatering, wantNext)
	}

	if _, err := svc.MarkDone("no-such-plant", models.TrackWater, later); !errors.Is(err, ErrPlantNotFound) {
		t.Errorf("error = %v, want ErrPlantNotFound", err)
	}
}

func TestEditPlant_Validation(t *testing.T) {
	svc := newTestService(t)

	zero := 0
	_, err := svc.EditPlant("Monstera", nil, schedule.ScheduleEdit{Water: &zero}, testNow)
	var verr *schedule.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}

	// Failed edits leave the stored plant untouched.
	got, err := svc.Get("Monstera")
	if err != nil {
		t.Fatal(err)
	}
	if got.Schedule.WaterFrequencyDays != 7 {
		t.Errorf("WaterFrequencyDays = %d after failed edit, want 7", got.Schedule.WaterFrequencyDays)
	}

	blank := "   "
	if _, err := svc.EditPlant("Monstera", &blank, schedule.ScheduleEdit{}, testNow); !errors.As(err, &verr) {
		t.Errorf("blank name: error = %v, want ValidationError", err)
	}
}

func TestEditPlant_RenameAndRetune(t *testing.T) {
	svc := newTestService(t)

	name := "Monty"
	freq := 9
	plant, err := svc.EditPlant("Monstera", &name, schedule.ScheduleEdit{Water: &freq}, testNow)
	if err != nil {
		t.Fatalf("EditPlant: %v", err)
	}
	if plant.Name != "Monty" {
		t.Errorf("Name = %q, want Monty", plant.Name)
	}
	// Due date recomputed from the existing anchor (8 days ago), not from now.
	wantNext := testNow.Add(-8 * 24 * time.Hour).Add(9 * 24 * time.Hour)
	if plant.Schedule.NextWatering == nil || !plant.Schedule.NextWatering.Equal(wantNext) {
		t.Errorf("NextWatering = %v, want %v", plant.Schedule.NextWatering, wantNext)
	}
}

func TestAppendDiagnosis_UpdatesStatusNotSchedule(t *testing.T) {
	svc := newTestService(t)

	before, err := svc.Get("Monstera")
	if err != nil {
		t.Fatal(err)
	}

	result := sampleDiagnosis()
	result.HealthStatus = models.StatusCritical
	plant, err := svc.AppendDiagnosis("Monstera", result)
	if err != nil {
		t.Fatalf("AppendDiagnosis: %v", err)
	}

	if plant.Status != models.StatusCritical {
		t.Errorf("Status = %q, want Critical", plant.Status)
	}
	if len(plant.DiagnosisHistory) != 1 || plant.DiagnosisHistory[0].Diagnosis != result.Diagnosis {
		t.Error("diagnosis was not prepended to history")
	}
	// Schedule is not wired to diagnosis appends.
	if plant.Schedule != before.Schedule {
		t.Error("schedule changed on diagnosis append")
	}
}

func TestDelete_ClearsViewingSelection(t *testing.T) {
	svc := newTestService(t)

	plant, err := svc.Get("Monstera")
	if err != nil {
		t.Fatal(err)
	}
	if svc.Viewing() != plant.ID {
		t.Fatalf("Viewing = %q, want %q", svc.Viewing(), plant.ID)
	}

	if err := svc.Delete(plant.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if svc.Viewing() != "" {
		t.Error("viewing selection not cleared by delete")
	}
	if len(svc.List()) != 1 {
		t.Errorf("collection has %d plants after delete, want 1", len(svc.List()))
	}
	if _, err := svc.Get(plant.ID); !errors.Is(err, ErrPlantNotFound) {
		t.Errorf("deleted plant still resolvable: %v", err)
	}
}

func TestMutationsPersistAcrossReload(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	st := store.New(dir, logger)

	svc := New(st, logger, testNow)
	if _, err := svc.MarkDone("Monstera", models.TrackWater, testNow); err != nil {
		t.Fatal(err)
	}

	reloaded := New(store.New(dir, logger), logger, testNow.Add(time.Hour))
	got, err := reloaded.Get("Monstera")
	if err != nil {
		t.Fatal(err)
	}
	if got.Schedule.LastWatered == nil || !got.Schedule.LastWatered.Equal(testNow) {
		t.Errorf("LastWatered = %v after reload, want %v", got.Schedule.LastWatered, testNow)
	}
}
