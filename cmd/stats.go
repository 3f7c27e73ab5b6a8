package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"parola/internal/lessons"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, cleanup, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		stats := repo.GetStats()
		fmt.Printf("Level %d  (%d XP)\n", stats.Level, stats.XP)
		fmt.Printf("Lessons completed: %d/%d\n", stats.LessonsCompleted, len(lessons.All()))
		fmt.Printf("Overall accuracy:  %d%%\n", stats.OverallAccuracy)

		completed := repo.CompletedLessons()
		if len(completed) == 0 {
			return nil
		}

		ids := make([]string, 0, len(completed))
		for id := range completed {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Println()
		for _, id := range ids {
			rec := completed[id]
			title := id
			if lesson, ok := lessons.Lookup(id); ok {
				title = lesson.Title
			}
			fmt.Printf("  %-28s %d/%d  %d%%  (%d attempts)\n",
				title, rec.Score, rec.TotalQuestions, rec.Accuracy, rec.Attempts)
		}
		return nil
	},
}
