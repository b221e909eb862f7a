package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the built-in species catalog",
	Long: `The catalog holds reference entries for common houseplants: care
guidance, common issues, and suggested care frequencies for adding the
plant to the garden.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List catalog species, optionally filtered by name",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		matches := catalog.Search(query)
		if len(matches) == 0 {
			fmt.Printf("No species match %q.\n", query)
			return
		}
		for _, sp := range matches {
			fmt.Printf("%-22s %-28s %s\n", sp.ID, sp.CommonName, sp.ScientificName)
		}
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [species-id]",
	Short: "Show care guidance for a catalog species",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sp, ok := catalog.ByID(args[0])
		if !ok {
			exitWithError(fmt.Errorf("unknown species: %s (try 'verdant catalog list')", args[0]))
		}

		fmt.Printf("%s (%s)\n", sp.CommonName, sp.ScientificName)
		fmt.Printf("  %s\n", sp.Description)
		fmt.Println("Care:")
		fmt.Printf("  Water:       %s\n", sp.Care.Water)
		fmt.Printf("  Light:       %s\n", sp.Care.Light)
		fmt.Printf("  Temperature: %s\n", sp.Care.Temperature)
		fmt.Printf("  Humidity:    %s\n", sp.Care.Humidity)
		if len(sp.CommonIssues) > 0 {
			fmt.Println("Common issues:")
			for _, issue := range sp.CommonIssues {
				fmt.Printf("  - %s\n", issue)
			}
		}
		fmt.Printf("Suggested schedule: water %dd", sp.SuggestedWaterFrequency)
		if sp.SuggestedMistFrequency > 0 {
			fmt.Printf(", mist %dd", sp.SuggestedMistFrequency)
		}
		if sp.SuggestedFertilizeFrequency > 0 {
			fmt.Printf(", fertilize %dd", sp.SuggestedFertilizeFrequency)
		}
		fmt.Println()
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add [species-id]",
	Short: "Add a plant to the garden from the catalog",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sp, ok := catalog.ByID(args[0])
		if !ok {
			exitWithError(fmt.Errorf("unknown species: %s (try 'verdant catalog list')", args[0]))
		}

		svc, _, _, err := openGarden(cmd)
		if err != nil {
			exitWithError(err)
		}

		now := time.Now()
		p, err := svc.AddFromSpecies(sp, now)
		if err != nil {
			exitWithError(err)
		}

		fmt.Printf("✓ Added %s to the garden\n", p.Name)
		printSchedule(p, now)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogAddCmd)
}
