package cmd

import (
	"fmt"
	"time"

	"github.com/verdantapp/verdant/internal/models"
	"github.com/verdantapp/verdant/internal/schedule"
)

// urgencyBadge renders one track's urgency the way the garden overview shows
// it: "late 2d", "today", "in 5d", or "off".
func urgencyBadge(u schedule.Urgency) string {
	switch u.Kind {
	case schedule.Overdue:
		return fmt.Sprintf("late %dd", u.Days)
	case schedule.DueToday:
		return "today"
	case schedule.Upcoming:
		return fmt.Sprintf("in %dd", u.Days)
	default:
		return "off"
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}

// printPlantLine prints the one-line dashboard row for a plant.
func printPlantLine(p models.Plant, now time.Time) {
	urgency := schedule.ClassifyUrgency(p.Schedule, now)
	fmt.Printf("%-14s %-22s %-10s water:%-8s mist:%-8s feed:%-8s\n",
		shortID(p.ID),
		p.Name,
		p.Status,
		urgencyBadge(urgency[models.TrackWater]),
		urgencyBadge(urgency[models.TrackMist]),
		urgencyBadge(urgency[models.TrackFertilize]),
	)
}

// shortID truncates UUIDs for display; the seed IDs are already short.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// printSchedule prints the full three-track schedule for a plant.
func printSchedule(p models.Plant, now time.Time) {
	urgency := schedule.ClassifyUrgency(p.Schedule, now)
	labels := map[models.Track]string{
		models.TrackWater:     "Water",
		models.TrackMist:      "Mist",
		models.TrackFertilize: "Fertilize",
	}
	for _, track := range models.ValidTracks {
		state := p.Schedule.Track(track)
		if !state.Enabled() {
			fmt.Printf("  %-10s off\n", labels[track])
			continue
		}
		fmt.Printf("  %-10s every %dd   last %s   next %s   (%s)\n",
			labels[track],
			state.FrequencyDays,
			formatDate(state.LastPerformed),
			formatDate(state.NextDue),
			urgencyBadge(urgency[track]),
		)
	}
}
