// Package garden owns the plant collection lifecycle: load on start, mutate
// in response to explicit user actions, save on every change. The service is
// constructed with an injected store and used by both the CLI commands and
// the MCP tools; nothing here is a package-level singleton.
package garden

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdantapp/verdant/internal/models"
	"github.com/verdantapp/verdant/internal/schedule"
	"github.com/verdantapp/verdant/internal/store"
)

// ErrPlantNotFound is returned when a reference matches no plant in the
// collection.
var ErrPlantNotFound = errors.New("plant not found")

// Service holds the loaded collection and persists it after each mutation.
// All mutation happens on the caller's goroutine; persistence is
// last-write-wins with no write queue.
type Service struct {
	store  *store.Store
	logger *slog.Logger
	plants []models.Plant

	// viewingID tracks the plant currently being inspected. Deleting that
	// plant clears the selection.
	viewingID string
}

// New loads the collection (migrating or seeding as needed) and returns a
// ready service.
func New(st *store.Store, logger *slog.Logger, now time.Time) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		logger: logger,
		plants: st.Load(now),
	}
}

// List returns the collection in display order, newest additions first.
func (s *Service) List() []models.Plant {
	out := make([]models.Plant, len(s.plants))
	copy(out, s.plants)
	return out
}

// Get resolves a plant by ID or (case-insensitive) nickname and marks it as
// the currently viewed plant.
func (s *Service) Get(ref string) (models.Plant, error) {
	i := s.find(ref)
	if i < 0 {
		return models.Plant{}, fmt.Errorf("%w: %s", ErrPlantNotFound, ref)
	}
	s.viewingID = s.plants[i].ID
	return s.plants[i], nil
}

// Viewing returns the ID of the currently viewed plant, or "" if none.
func (s *Service) Viewing() string {
	return s.viewingID
}

func (s *Service) find(ref string) int {
	for i, p := range s.plants {
		if p.ID == ref {
			return i
		}
	}
	for i, p := range s.plants {
		if strings.EqualFold(p.Name, ref) {
			return i
		}
	}
	return -1
}

// AddFromDiagnosis creates a plant from a successful diagnosis: the history
// is seeded with that one result and the schedule from its suggested
// frequencies. The nickname defaults to the identified plant name.
func (s *Service) AddFromDiagnosis(result models.DiagnosisResult, imageURL, nickname string, now time.Time) (models.Plant, error) {
	name := strings.TrimSpace(nickname)
	if name == "" {
		name = result.PlantName
	}

	plant := models.Plant{
		ID:               uuid.NewString(),
		Name:             name,
		Species:          result.ScientificName,
		ImageURL:         imageURL,
		AcquiredDate:     now,
		Status:           result.HealthStatus,
		Schedule:         schedule.SeedFromSuggestion(result.Suggested(), now),
		DiagnosisHistory: []models.DiagnosisResult{result},
	}

	s.plants = append([]models.Plant{plant}, s.plants...)
	if err := s.persist(); err != nil {
		return models.Plant{}, err
	}
	s.logger.Info("plant added from diagnosis", "id", plant.ID, "species", plant.Species)
	return plant, nil
}

// AddFromSpecies creates a plant from a catalog entry. The plant is assumed
// healthy and has no diagnosis history; the schedule is seeded from the
// catalog's suggested frequencies.
func (s *Service) AddFromSpecies(sp models.Species, now time.Time) (models.Plant, error) {
	plant := models.Plant{
		ID:               uuid.NewString(),
		Name:             sp.CommonName,
		Species:          sp.ScientificName,
		ImageURL:         sp.ImageURL,
		AcquiredDate:     now,
		Status:           models.StatusThriving,
		Schedule:         schedule.SeedFromSuggestion(sp.Suggested(), now),
		DiagnosisHistory: []models.DiagnosisResult{},
	}

	s.plants = append([]models.Plant{plant}, s.plants...)
	if err := s.persist(); err != nil {
		return models.Plant{}, err
	}
	s.logger.Info("plant added from catalog", "id", plant.ID, "species", plant.Species)
	return plant, nil
}

// MarkDone records one completed care task for a plant. Completing a
// disabled track leaves the plant unchanged but still resolves the plant
// reference.
func (s *Service) MarkDone(ref string, track models.Track, now time.Time) (models.Plant, error) {
	i := s.find(ref)
	if i < 0 {
		return models.Plant{}, fmt.Errorf("%w: %s", ErrPlantNotFound, ref)
	}

	s.plants[i].Schedule = schedule.MarkTaskDone(s.plants[i].Schedule, track, now)
	if err := s.persist(); err != nil {
		return models.Plant{}, err
	}
	return s.plants[i], nil
}

// EditPlant renames a plant and/or changes its care frequencies. A nil name
// leaves the nickname untouched; a blank one is rejected. Validation failures
// leave the stored plant exactly as it was.
func (s *Service) EditPlant(ref string, name *string, edits schedule.ScheduleEdit, now time.Time) (models.Plant, error) {
	i := s.find(ref)
	if i < 0 {
		return models.Plant{}, fmt.Errorf("%w: %s", ErrPlantNotFound, ref)
	}

	if name != nil && strings.TrimSpace(*name) == "" {
		return models.Plant{}, &schedule.ValidationError{
			Field:   "name",
			Message: "must not be empty",
		}
	}

	edited, err := schedule.ApplyScheduleEdit(s.plants[i].Schedule, edits, now)
	if err != nil {
		return models.Plant{}, err
	}

	s.plants[i].Schedule = edited
	if name != nil {
		s.plants[i].Name = strings.TrimSpace(*name)
	}
	if err := s.persist(); err != nil {
		return models.Plant{}, err
	}
	return s.plants[i], nil
}

// AppendDiagnosis prepends a new diagnosis to a plant's history and updates
// its status from the result. The care schedule is intentionally not touched:
// status reflects the latest diagnosis only, never the schedule state.
func (s *Service) AppendDiagnosis(ref string, result models.DiagnosisResult) (models.Plant, error) {
	i := s.find(ref)
	if i < 0 {
		return models.Plant{}, fmt.Errorf("%w: %s", ErrPlantNotFound, ref)
	}

	s.plants[i].DiagnosisHistory = append([]models.DiagnosisResult{result}, s.plants[i].DiagnosisHistory...)
	s.plants[i].Status = result.HealthStatus
	if err := s.persist(); err != nil {
		return models.Plant{}, err
	}
	return s.plants[i], nil
}

// Delete removes a plant from the collection and clears the viewing
// selection if it pointed at the removed plant.
func (s *Service) Delete(ref string) error {
	i := s.find(ref)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPlantNotFound, ref)
	}

	id := s.plants[i].ID
	s.plants = append(s.plants[:i], s.plants[i+1:]...)
	if s.viewingID == id {
		s.viewingID = ""
	}
	if err := s.persist(); err != nil {
		return err
	}
	s.logger.Info("plant deleted", "id", id)
	return nil
}

func (s *Service) persist() error {
	if err := s.store.Save(s.plants); err != nil {
		return fmt.Errorf("failed to save garden: %w", err)
	}
	return nil
}
