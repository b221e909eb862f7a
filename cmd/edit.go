package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/schedule"
)

var editCmd = &cobra.Command{
	Use:   "edit [plant]",
	Short: "Rename a plant or change its care frequencies",
	Long: `Change a plant's nickname and/or care frequencies. Due dates are
recomputed from when each task was last performed, so editing a frequency
never resets a timer.

Watering cannot be turned off; --mist 0 and --fertilize 0 disable those
tracks while remembering when they were last done.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _, _, err := openGarden(cmd)
		if err != nil {
			exitWithError(err)
		}

		var name *string
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			name = &v
		}
		edits := schedule.ScheduleEdit{
			Water:     intFlag(cmd, "water"),
			Mist:      intFlag(cmd, "mist"),
			Fertilize: intFlag(cmd, "fertilize"),
		}
		if name == nil && edits.Water == nil && edits.Mist == nil && edits.Fertilize == nil {
			exitWithError(fmt.Errorf("nothing to change: pass --name or a frequency flag"))
		}

		now := time.Now()
		p, err := svc.EditPlant(args[0], name, edits, now)
		if err != nil {
			exitWithError(err)
		}

		fmt.Printf("✓ Updated %s\n", p.Name)
		printSchedule(p, now)
	},
}

// intFlag returns a pointer to the flag value only when the user set it, so
// untouched tracks stay untouched.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().String("name", "", "New nickname for the plant")
	editCmd.Flags().Int("water", 0, "Watering frequency in days (minimum 1)")
	editCmd.Flags().Int("mist", 0, "Misting frequency in days (0 disables)")
	editCmd.Flags().Int("fertilize", 0, "Fertilizing frequency in days (0 disables)")
}
