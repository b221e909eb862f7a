package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/diagnose"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [image.jpg]",
	Short: "Identify a plant and assess its health from a photo",
	Long: `Send a JPEG photo of a plant to Gemini for identification and health
assessment. The result includes the species, a health status, a diagnosis
with reasoning, a care plan, and suggested care frequencies.

With --save the plant is added to the garden with a schedule seeded from
the suggested frequencies. With --plant the diagnosis is appended to an
existing plant's history instead, updating its status.

Requires GEMINI_API_KEY (see 'verdant config').`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, cfg, logger, err := openGarden(cmd)
		if err != nil {
			exitWithError(err)
		}
		if err := cfg.RequireAPIKey(); err != nil {
			exitWithError(err)
		}

		image, err := os.ReadFile(args[0])
		if err != nil {
			exitWithError(fmt.Errorf("failed to read image: %w", err))
		}

		ctx := cmd.Context()
		client, err := diagnose.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			exitWithError(err)
		}

		fmt.Fprintln(os.Stderr, "Analyzing photo...")
		result, err := client.Diagnose(ctx, image)
		if err != nil {
			exitWithError(err)
		}

		fmt.Printf("%s (%s), %.0f%% confidence\n", result.PlantName, result.ScientificName, result.Confidence)
		fmt.Printf("Status:    %s\n", result.HealthStatus)
		fmt.Printf("Diagnosis: %s\n", result.Diagnosis)
		fmt.Printf("Reasoning: %s\n", result.Reasoning)
		fmt.Println("Care plan:")
		for _, step := range result.CarePlan {
			fmt.Printf("  - %s\n", step)
		}

		ref, _ := cmd.Flags().GetString("plant")
		save, _ := cmd.Flags().GetBool("save")
		switch {
		case ref != "":
			p, err := svc.AppendDiagnosis(ref, *result)
			if err != nil {
				exitWithError(err)
			}
			fmt.Printf("✓ Recorded for %s, status now %s\n", p.Name, p.Status)
		case save:
			nickname, _ := cmd.Flags().GetString("name")
			p, err := svc.AddFromDiagnosis(*result, "", nickname, time.Now())
			if err != nil {
				exitWithError(err)
			}
			fmt.Printf("✓ Added %s to the garden (water every %dd)\n", p.Name, p.Schedule.WaterFrequencyDays)
		}
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
	diagnoseCmd.Flags().Bool("save", false, "Add the diagnosed plant to the garden")
	diagnoseCmd.Flags().String("name", "", "Nickname for the new plant (with --save)")
	diagnoseCmd.Flags().String("plant", "", "Append the diagnosis to an existing plant by ID or nickname")
}
