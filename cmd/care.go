package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/models"
)

// careCommand builds one of the water/mist/feed commands; they differ only in
// the track they complete.
func careCommand(use, short string, track models.Track) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [plant]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			svc, _, _, err := openGarden(cmd)
			if err != nil {
				exitWithError(err)
			}

			p, err := svc.MarkDone(args[0], track, time.Now())
			if err != nil {
				exitWithError(err)
			}

			state := p.Schedule.Track(track)
			if !state.Enabled() {
				fmt.Printf("%s is off for %s; nothing recorded.\n", track, p.Name)
				return
			}
			fmt.Printf("✓ %s done for %s, next due %s\n", track, p.Name, formatDate(state.NextDue))
		},
	}
}

func init() {
	rootCmd.AddCommand(careCommand("water", "Record that a plant was watered", models.TrackWater))
	rootCmd.AddCommand(careCommand("mist", "Record that a plant was misted", models.TrackMist))
	rootCmd.AddCommand(careCommand("feed", "Record that a plant was fertilized", models.TrackFertilize))
}
