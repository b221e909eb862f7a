package store

import (
	"time"

	"github.com/verdantapp/verdant/internal/models"
)

const day = 24 * time.Hour

// SeedPlants returns the fixed demo collection used when no data exists under
// either persistence file. The Monstera is deliberately overdue for watering
// and misting so the urgency badges have something to show on first run.
func SeedPlants(now time.Time) []models.Plant {
	ptr := func(t time.Time) *time.Time { return &t }

	return []models.Plant{
		{
			ID:           "1",
			Name:         "Monstera",
			Species:      "Monstera deliciosa",
			ImageURL:     "https://images.unsplash.com/photo-1614594975525-e45190c55d0b?auto=format&fit=crop&q=80&w=800",
			AcquiredDate: now,
			Status:       models.StatusThriving,
			Schedule: models.CareSchedule{
				WaterFrequencyDays: 7,
				LastWatered:        ptr(now.Add(-8 * day)),
				NextWatering:       ptr(now.Add(-1 * day)),

				MistFrequencyDays: 3,
				LastMisted:        ptr(now.Add(-4 * day)),
				NextMisting:       ptr(now.Add(-1 * day)),

				FertilizeFrequencyDays: 30,
				LastFertilized:         ptr(now),
				NextFertilizing:        ptr(now.Add(30 * day)),
			},
			DiagnosisHistory: []models.DiagnosisResult{},
		},
		{
			ID:           "2",
			Name:         "Snake Plant",
			Species:      "Sansevieria trifasciata",
			ImageURL:     "https://images.unsplash.com/photo-1593482886875-6647f38fa83f?auto=format&fit=crop&q=80&w=800",
			AcquiredDate: now.Add(-100 * day),
			Status:       models.StatusThriving,
			Schedule: models.CareSchedule{
				WaterFrequencyDays: 14,
				LastWatered:        ptr(now),
				NextWatering:       ptr(now.Add(14 * day)),

				MistFrequencyDays: 0,

				FertilizeFrequencyDays: 60,
				LastFertilized:         ptr(now.Add(-60 * day)),
				NextFertilizing:        ptr(now),
			},
			DiagnosisHistory: []models.DiagnosisResult{},
		},
	}
}
