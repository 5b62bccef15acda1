package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilescore/internal/platform/tui"
	"github.com/vovakirdan/tilescore/internal/registry"
	"github.com/vovakirdan/tilescore/internal/storage"
	"github.com/vovakirdan/tilescore/internal/tiles"
)

var (
	flagScoresTUI bool
	flagClear     bool
	flagYes       bool
	flagLimit     int
	flagHistoryOf string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show verified high scores",
	Long: `Display the top verified scores for a variant (default from config).
With --tui the interactive leaderboard opens instead. --clear deletes every
record of the variant and needs --yes.

Examples:
  tilescore scores
  tilescore scores tiles_legacy --limit 20
  tilescore scores --tui
  tilescore scores tiles_legacy --clear --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "Show per-variant statistics",
	Long: `Shows submission counts, best and average verified score and the time
of the last submission, for every variant or just the one named.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent submissions",
	Long: `Lists the most recent submissions, verified or not, newest first.

Examples:
  tilescore history
  tilescore history --player ann --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded submission",
	Long: `Prints a stored submission by its record ID and replays it again to
confirm the stored score.

Example:
  tilescore show 3f0c2a9e-5d1b-4c7e-9a3f-1b2c3d4e5f60`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive leaderboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all records of the variant")
	scoresCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm --clear")
	for _, c := range []*cobra.Command{scoresCmd, historyCmd} {
		c.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	}
	historyCmd.Flags().StringVar(&flagHistoryOf, "player", "", "Only show this player's submissions")
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening scores database: %w", err)
	}
	return store, nil
}

func runScores(cmd *cobra.Command, args []string) error {
	variantID := cfg.Replay.Variant
	if len(args) == 1 {
		variantID = args[0]
	}

	variant, err := registry.Create(variantID)
	if err != nil {
		return err
	}

	if flagClear && !flagYes {
		return fmt.Errorf("refusing to clear %s without --yes", variant.ID())
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearVariant(variant.ID()); err != nil {
			return err
		}
		logger.Info("cleared records", "variant", variant.ID())
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared all records for %s.\n", variant.ID())
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, variant.ID(), width, height)
	}

	scores, err := store.TopScores(variant.ID(), flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", variant.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No verified scores yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'tilescore verify' to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, rec := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-12s  %s\n",
			i+1, rec.Score, playerName(rec.Player), rec.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(variant.ID())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBest: %d\n", best)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	all := map[string]*storage.VariantStats{}
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown variant %q (see 'tilescore list')", args[0])
		}
		st, err := store.GetVariantStats(args[0])
		if err != nil {
			return err
		}
		all[args[0]] = st
	} else if all, err = store.GetAllVariantStats(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No submissions recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-14s  %11s  %8s  %6s  %9s  %s\n",
		"Variant", "Submissions", "Verified", "Best", "Average", "Last")
	for _, id := range ids {
		st := all[id]
		last := "-"
		if !st.LastSubmitted.IsZero() {
			last = st.LastSubmitted.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(out, "  %-14s  %11d  %8d  %6d  %9.1f  %s\n",
			id, st.Submissions, st.Verified, st.HighScore, st.AvgScore, last)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	if flagLimit <= 0 {
		return errors.New("--limit must be positive")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var records []storage.Record
	if flagHistoryOf != "" {
		records, err = store.PlayerRecords(flagHistoryOf, flagLimit)
	} else {
		records, err = store.RecentRecords(flagLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No submissions recorded yet.")
		return nil
	}

	for _, rec := range records {
		status := "ok"
		if !rec.Verified {
			status = "MISMATCH"
		}
		fmt.Fprintf(out, "%s  %-14s  %-12s  claimed=%-8d replayed=%-8d %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.Variant, playerName(rec.Player),
			rec.Claimed, rec.Score, status)
		logger.Debug("record", "id", rec.ID, "seed", rec.Seed, "moves", rec.MovesHex, "len", rec.MovesLen)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.RecordByID(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no record with id %q", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Record:   %s\n", rec.ID)
	fmt.Fprintf(out, "Variant:  %s\n", rec.Variant)
	fmt.Fprintf(out, "Player:   %s\n", playerName(rec.Player))
	fmt.Fprintf(out, "Seed:     %d\n", rec.Seed)
	fmt.Fprintf(out, "Moves:    %s (%d)\n", rec.MovesHex, rec.MovesLen)
	fmt.Fprintf(out, "Claimed:  %d\n", rec.Claimed)
	fmt.Fprintf(out, "Score:    %d\n", rec.Score)
	fmt.Fprintf(out, "Verified: %v\n", rec.Verified)
	fmt.Fprintf(out, "Saved:    %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05.000"))

	variant, err := registry.Create(rec.Variant)
	if err != nil {
		logger.Warn("cannot replay record", "variant", rec.Variant, "err", err)
		return nil
	}
	moves, err := tiles.ParseMovesHex(rec.MovesHex)
	if err != nil {
		return err
	}
	if replayed := variant.Score(rec.Seed, moves, rec.MovesLen); replayed != rec.Score {
		return fmt.Errorf("stored score %d but the log replays to %d", rec.Score, replayed)
	}
	fmt.Fprintln(out, "Replay:   matches stored score")
	return nil
}
