package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"parola/internal/app"
	"parola/internal/audio"
	"parola/internal/progress"
	"parola/internal/store"
)

// openRepo opens both persistence backends and returns an initialized
// progress repository. The caller must call cleanup when done.
func openRepo(cmd *cobra.Command) (repo *progress.Repository, cleanup func(), err error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	primary, err := store.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	backupPath, err := store.DefaultBackupPath()
	if err != nil {
		primary.Close()
		return nil, nil, fmt.Errorf("resolve backup path: %w", err)
	}
	secondary := store.NewFileStore(backupPath)

	repo = progress.NewRepository(store.NewFacade(primary, secondary))
	repo.Initialize()
	return repo, func() { primary.Close() }, nil
}

// runApp opens the stores and launches the TUI.
func runApp(cmd *cobra.Command, lessonID string, seed int64) error {
	repo, closeRepo, err := openRepo(cmd)
	if err != nil {
		return err
	}
	defer closeRepo()

	return app.Run(app.Options{
		Progress: repo,
		Speaker:  audio.FromEnv(),
		LessonID: lessonID,
		Seed:     seed,
	})
}
