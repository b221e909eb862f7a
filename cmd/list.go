package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/models"
	"github.com/verdantapp/verdant/internal/schedule"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all plants with care task status",
	Long: `Display the garden overview: every plant with its health status and
per-track care urgency (late, today, in Nd, or off).`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _, _, err := openGarden(cmd)
		if err != nil {
			exitWithError(err)
		}

		overdueOnly, _ := cmd.Flags().GetBool("overdue")
		now := time.Now()

		plants := svc.List()
		if len(plants) == 0 {
			fmt.Println("The garden is empty. Add a plant with 'verdant diagnose' or 'verdant catalog add'.")
			return
		}

		shown := 0
		for _, p := range plants {
			if overdueOnly && !hasOverdue(schedule.ClassifyUrgency(p.Schedule, now)) {
				continue
			}
			printPlantLine(p, now)
			shown++
		}
		if overdueOnly && shown == 0 {
			fmt.Println("Nothing is overdue. The garden is happy.")
		}
	},
}

func hasOverdue(urgency map[models.Track]schedule.Urgency) bool {
	for _, u := range urgency {
		if u.Kind == schedule.Overdue {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("overdue", false, "Only show plants with overdue tasks")
}
