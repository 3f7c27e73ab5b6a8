package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"parola/internal/lessons"
)

var playSeed int64

var playCmd = &cobra.Command{
	Use:   "play [lesson-id]",
	Short: "Start a drill session",
	Long:  "Start a drill session, jumping straight into the given lesson. Without an argument the lesson list is shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := ""
		if len(args) == 1 {
			if _, ok := lessons.Lookup(args[0]); !ok {
				fmt.Printf("Unknown lesson %q, starting with %q instead.\n", args[0], lessons.DefaultLessonID)
			}
			lessonID = args[0]
		}
		return runApp(cmd, lessonID, playSeed)
	},
}

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "Fix the question generator seed (0 = random)")
}
