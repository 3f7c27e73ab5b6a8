package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"parola/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "parola",
	Short: "Italian vocabulary trainer",
	Long:  "Parola — a terminal game for drilling Italian vocabulary, one lesson at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", 0)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for PAROLA_DB, PAROLA_BACKUP, PAROLA_NO_AUDIO.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PAROLA_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PAROLA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
