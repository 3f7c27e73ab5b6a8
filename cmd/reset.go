package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, cleanup, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		confirm := func(prompt string) bool {
			if resetYes {
				return true
			}
			fmt.Print(prompt + " [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			answer := strings.ToLower(strings.TrimSpace(line))
			return answer == "y" || answer == "yes"
		}

		if repo.Reset(confirm) {
			fmt.Println("Progress erased.")
		} else {
			fmt.Println("Aborted.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
