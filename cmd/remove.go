package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [plant]",
	Short: "Remove a plant from the garden",
	Long: `Permanently remove a plant, including its care schedule and diagnosis
history. Asks for confirmation unless --force is set.`,
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

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Remove %s (%s)? This cannot be undone. [y/N] ", p.Name, p.Species)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Cancelled.")
				return
			}
		}

		if err := svc.Delete(p.ID); err != nil {
			exitWithError(err)
		}
		fmt.Printf("✓ Removed %s\n", p.Name)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
