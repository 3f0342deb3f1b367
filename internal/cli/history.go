package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/twistylab/twisty/internal/storage"
)

var (
	historyLimit int
	historyShow  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse journaled scrambles",
	Long: `List recent scramble sessions from the journal, or show the move
sequence of one session with --show.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum sessions to list")
	historyCmd.Flags().StringVar(&historyShow, "show", "", "Show the moves of one scramble ID")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	out := cmd.OutOrStdout()

	if historyShow != "" {
		moves, err := repo.Moves(historyShow)
		if err != nil {
			return err
		}
		if len(moves) == 0 {
			fmt.Fprintf(out, "No moves recorded for scramble %s\n", historyShow)
			return nil
		}
		notations := make([]string, len(moves))
		for i, m := range moves {
			notations[i] = m.Notation
		}
		fmt.Fprintf(out, "%s (%d moves):\n  %s\n", historyShow, len(moves), strings.Join(notations, " "))
		return nil
	}

	scrambles, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(scrambles) == 0 {
		fmt.Fprintln(out, "No scrambles journaled yet.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-20s  %5s  %s\n", "ID", "STARTED", "MOVES", "STATUS")
	for _, s := range scrambles {
		started := time.UnixMilli(s.StartedAtMs).Format("2006-01-02 15:04:05")
		status := "completed"
		if s.Stopped {
			status = "stopped"
		}
		fmt.Fprintf(out, "%-36s  %-20s  %5d  %s\n", s.ScrambleID, started, s.MoveCount, status)
	}
	return nil
}
