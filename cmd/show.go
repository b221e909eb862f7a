package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [plant]",
	Short: "Show a plant's schedule and diagnosis history",
	Long: `Display full details for one plant: the care schedule for all three
tracks and the diagnosis history, newest first. The plant can be referenced
by ID or by nickname (case-insensitive).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _, _, err := openGarden(cmd)
		if err != nil {
			exitWithError(err)
		}

		p, err := svc.Get(args[0])
		if err != nil {
			exitWithError(err)
		}

		now := time.Now()
		fmt.Printf("%s (%s)\n", p.Name, p.Species)
		fmt.Printf("  ID:       %s\n", p.ID)
		fmt.Printf("  Status:   %s\n", p.Status)
		fmt.Printf("  Acquired: %s\n", p.AcquiredDate.Local().Format("2006-01-02"))
		fmt.Println("Schedule:")
		printSchedule(p, now)

		if len(p.DiagnosisHistory) == 0 {
			return
		}
		fmt.Println("Diagnosis history:")
		for i, d := range p.DiagnosisHistory {
			fmt.Printf("  %d. %s (%.0f%% confidence) - %s\n", i+1, d.HealthStatus, d.Confidence, d.Diagnosis)
			if i == 0 {
				for _, step := range d.CarePlan {
					fmt.Printf("     - %s\n", step)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
