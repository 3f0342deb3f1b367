package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twistylab/twisty"
	"github.com/twistylab/twisty/internal/session"
	"github.com/twistylab/twisty/internal/storage"
	"github.com/twistylab/twisty/internal/tui"
)

var (
	playMoves     int
	playNoJournal bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube",
	Long: `Start the interactive terminal cube.

Keyboard shortcuts:
  f/b/l/r/u/d - Turn a face clockwise (hold shift for counter-clockwise)
  s           - Scramble
  x           - Stop an active scramble
  0           - Reset to solved
  q/Esc       - Quit

Scrambles are journaled to the database unless --no-journal is given.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playMoves, "moves", twisty.DefaultShuffleLength, "Moves per scramble")
	playCmd.Flags().BoolVar(&playNoJournal, "no-journal", false, "Disable scramble journaling")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	var recorder *session.Recorder
	if !playNoJournal {
		db, err := openJournal()
		if err != nil {
			// Journaling is optional; play on without it.
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: journal unavailable: %v\n", err)
		} else {
			defer db.Close()
			recorder = session.NewRecorder(db)
		}
	}

	ctrl := twisty.New(twisty.WithShuffleLength(playMoves))
	return tui.Run(ctrl, recorder, playMoves)
}

// openJournal opens and migrates the journal database.
func openJournal() (*storage.DB, error) {
	var (
		db  *storage.DB
		err error
	)
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating journal schema: %w", err)
	}
	return db, nil
}
