package main

import (
	"fmt"
	"os"
	"path/filepath"

	"intrack/internal/command"
	"intrack/internal/data"
	"intrack/internal/logging"
	"intrack/internal/model"
	"intrack/internal/ui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

/*

intrack - keep track of internship applications from the terminal

*/

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var prefsPath, dataPath, logPath string
	var debug bool

	cmd := &cobra.Command{
		Use:          "intrack",
		Short:        "Track internship applications",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(prefsPath, dataPath, logPath, debug)
		},
	}
	cmd.Flags().StringVar(&prefsPath, "prefs", "preferences.yaml", "Preferences file")
	cmd.Flags().StringVar(&dataPath, "data", "", "Internship data file (overrides the preferences file)")
	cmd.Flags().StringVar(&logPath, "log", filepath.Join("logs", "intrack.log"), "Log file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log model changes")
	return cmd
}

func run(prefsPath, dataPath, logPath string, debug bool) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logs, err := logging.New().FromPath(logPath).WithLevel(level).Make()
	if err != nil {
		return fmt.Errorf("failed to open the log file: %w", err)
	}
	defer logs.Close()
	log := logs.Logger

	prefs, err := data.LoadPrefs(prefsPath)
	if err != nil {
		return err
	}
	if dataPath != "" {
		prefs.SetInternshipFilePath(dataPath)
	}

	store := data.NewSQLStore()
	if err := store.OpenOrCreate(prefs.InternshipFilePath()); err != nil {
		return fmt.Errorf("failed to open %s: %w", prefs.InternshipFilePath(), err)
	}
	defer store.Close()

	mm, err := openModel(store, prefs, log)
	if err != nil {
		return err
	}

	app := ui.NewMainWindow(mm, store, log)
	log.Info().Int("internships", mm.FilteredInternshipList().Len()).Str("data", prefs.InternshipFilePath()).Msg("starting")
	if err := app.Run(); err != nil {
		return err
	}

	return data.SavePrefs(prefsPath, mm.UserPrefs())
}

// openModel builds the model from what the store holds. An unreadable store is an error, never an
// empty list.
func openModel(store data.Store, prefs model.ReadOnlyUserPrefs, log zerolog.Logger) (*model.ModelManager, error) {
	book, err := store.LoadInternships()
	if err != nil {
		return nil, fmt.Errorf("failed to read internships, leaving the data file untouched: %w", err)
	}

	mm, err := model.NewModelManager(book, prefs, model.WithLogger(log))
	if err != nil {
		return nil, err
	}

	last, err := store.LastView()
	if err == nil {
		err = command.RestoreView(mm, last.SortPrefix, last.SortOrder, last.FilterParameter, last.FilterValue)
	}
	if err != nil {
		log.Warn().Err(err).Msg("could not restore the last view")
	}
	return mm, nil
}
