package tools

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/verdantapp/verdant/internal/diagnose"
	"github.com/verdantapp/verdant/internal/garden"
	"github.com/verdantapp/verdant/internal/models"
	"github.com/verdantapp/verdant/internal/schedule"
)

// Handler provides the dependencies needed by tool handlers.
type Handler struct {
	Garden    *garden.Service
	Diagnoser diagnose.Diagnoser
	Logger    *slog.Logger
}

// NewHandler creates a new Handler with the given dependencies.
func NewHandler(svc *garden.Service, diagnoser diagnose.Diagnoser, logger *slog.Logger) *Handler {
	return &Handler{
		Garden:    svc,
		Diagnoser: diagnoser,
		Logger:    logger,
	}
}

// TrackUrgency is the rendered urgency of one care track.
type TrackUrgency struct {
	Track  string `json:"track"`
	State  string `json:"state"` // disabled, overdue, due today, upcoming
	Days   int    `json:"days,omitempty"`
	Label  string `json:"label"`
	DueAt  string `json:"due_at,omitempty"`
	Doable bool   `json:"doable"`
}

// PlantSummary is the dashboard-level view of a plant.
type PlantSummary struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Species    string         `json:"species"`
	Status     string         `json:"status"`
	HasOverdue bool           `json:"has_overdue"`
	Tasks      []TrackUrgency `json:"tasks"`
}

// PlantDetail is the full view of a plant.
type PlantDetail struct {
	PlantSummary
	ImageURL     string            `json:"image_url,omitempty"`
	AcquiredDate string            `json:"acquired_date"`
	Schedule     ScheduleView      `json:"schedule"`
	History      []DiagnosisOutput `json:"diagnosis_history,omitempty"`
}

// ScheduleView renders the three care tracks.
type ScheduleView struct {
	Water     TrackView `json:"water"`
	Mist      TrackView `json:"mist"`
	Fertilize TrackView `json:"fertilize"`
}

// TrackView renders one track's raw schedule state.
type TrackView struct {
	FrequencyDays int    `json:"frequency_days"`
	Enabled       bool   `json:"enabled"`
	LastPerformed string `json:"last_performed,omitempty"`
	NextDue       string `json:"next_due,omitempty"`
}

// DiagnosisOutput mirrors a diagnosis result for tool output.
type DiagnosisOutput struct {
	PlantName                   string   `json:"plant_name"`
	ScientificName              string   `json:"scientific_name"`
	Confidence                  float64  `json:"confidence"`
	HealthStatus                string   `json:"health_status"`
	Diagnosis                   string   `json:"diagnosis"`
	Reasoning                   string   `json:"reasoning"`
	CarePlan                    []string `json:"care_plan"`
	SuggestedWaterFrequency     int      `json:"suggested_water_frequency"`
	SuggestedMistFrequency      int      `json:"suggested_mist_frequency,omitempty"`
	SuggestedFertilizeFrequency int      `json:"suggested_fertilize_frequency,omitempty"`
}

// SpeciesOutput mirrors a catalog entry for tool output.
type SpeciesOutput struct {
	ID                          string   `json:"id"`
	CommonName                  string   `json:"common_name"`
	ScientificName              string   `json:"scientific_name"`
	Description                 string   `json:"description"`
	CareWater                   string   `json:"care_water"`
	CareLight                   string   `json:"care_light"`
	CareTemperature             string   `json:"care_temperature"`
	CareHumidity                string   `json:"care_humidity"`
	CommonIssues                []string `json:"common_issues,omitempty"`
	SuggestedWaterFrequency     int      `json:"suggested_water_frequency,omitempty"`
	SuggestedMistFrequency      int      `json:"suggested_mist_frequency,omitempty"`
	SuggestedFertilizeFrequency int      `json:"suggested_fertilize_frequency,omitempty"`
}

const timestampFormat = "2006-01-02T15:04:05Z"

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timestampFormat)
}

// UrgencyLabel renders a classification the way the plant cards do: "Late"
// and "Today" badges for urgent tasks, "in Nd" for upcoming ones.
func UrgencyLabel(u schedule.Urgency) string {
	switch u.Kind {
	case schedule.Overdue:
		if u.Days == 1 {
			return "1 day late"
		}
		return fmt.Sprintf("%d days late", u.Days)
	case schedule.DueToday:
		return "due today"
	case schedule.Upcoming:
		return fmt.Sprintf("in %dd", u.Days)
	default:
		return "off"
	}
}

func summarize(p models.Plant, now time.Time) PlantSummary {
	urgency := schedule.ClassifyUrgency(p.Schedule, now)

	summary := PlantSummary{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		Status:  string(p.Status),
	}
	for _, track := range models.ValidTracks {
		u := urgency[track]
		state := p.Schedule.Track(track)
		summary.Tasks = append(summary.Tasks, TrackUrgency{
			Track:  string(track),
			State:  u.Kind.String(),
			Days:   u.Days,
			Label:  UrgencyLabel(u),
			DueAt:  formatTime(state.NextDue),
			Doable: state.Enabled(),
		})
		if u.Kind == schedule.Overdue {
			summary.HasOverdue = true
		}
	}
	return summary
}

func detail(p models.Plant, now time.Time) PlantDetail {
	d := PlantDetail{
		PlantSummary: summarize(p, now),
		ImageURL:     p.ImageURL,
		AcquiredDate: p.AcquiredDate.UTC().Format(timestampFormat),
		Schedule: ScheduleView{
			Water:     trackView(p.Schedule.Track(models.TrackWater)),
			Mist:      trackView(p.Schedule.Track(models.TrackMist)),
			Fertilize: trackView(p.Schedule.Track(models.TrackFertilize)),
		},
	}
	for _, entry := range p.DiagnosisHistory {
		d.History = append(d.History, diagnosisOutput(entry))
	}
	return d
}

func trackView(state models.TrackState) TrackView {
	return TrackView{
		FrequencyDays: state.FrequencyDays,
		Enabled:       state.Enabled(),
		LastPerformed: formatTime(state.LastPerformed),
		NextDue:       formatTime(state.NextDue),
	}
}

func diagnosisOutput(d models.DiagnosisResult) DiagnosisOutput {
	return DiagnosisOutput{
		PlantName:                   d.PlantName,
		ScientificName:              d.ScientificName,
		Confidence:                  d.Confidence,
		HealthStatus:                string(d.HealthStatus),
		Diagnosis:                   d.Diagnosis,
		Reasoning:                   d.Reasoning,
		CarePlan:                    d.CarePlan,
		SuggestedWaterFrequency:     d.SuggestedWaterFrequency,
		SuggestedMistFrequency:      d.SuggestedMistFrequency,
		SuggestedFertilizeFrequency: d.SuggestedFertilizeFrequency,
	}
}

func speciesOutput(sp models.Species) SpeciesOutput {
	return SpeciesOutput{
		ID:                          sp.ID,
		CommonName:                  sp.CommonName,
		ScientificName:              sp.ScientificName,
		Description:                 sp.Description,
		CareWater:                   sp.Care.Water,
		CareLight:                   sp.Care.Light,
		CareTemperature:             sp.Care.Temperature,
		CareHumidity:                sp.Care.Humidity,
		CommonIssues:                sp.CommonIssues,
		SuggestedWaterFrequency:     sp.SuggestedWaterFrequency,
		SuggestedMistFrequency:      sp.SuggestedMistFrequency,
		SuggestedFertilizeFrequency: sp.SuggestedFertilizeFrequency,
	}
}
