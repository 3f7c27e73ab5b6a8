package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"parola/internal/lessons"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the course lessons",
	Run: func(cmd *cobra.Command, args []string) {
		for _, lesson := range lessons.All() {
			kind := "words"
			if lesson.IsConversation() {
				kind = "conversation"
			}
			fmt.Printf("%-10s  %-14s  %s\n", lesson.ID, kind, lesson.Title)
		}
	},
}
