package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilescore/internal/storage"
	"github.com/vovakirdan/tilescore/internal/verify"
)

var errMismatch = errors.New("claimed score does not match replay")

var (
	flagPlayer        string
	flagVerifyVariant string
	flagDryRun        bool
	flagWorkers       int
)

var verifyCmd = &cobra.Command{
	Use:   "verify <seed> <moves-hex> <count> <claimed>",
	Short: "Check a claimed score and record the result",
	Long: `Replays the move log and compares the result with the claimed score.
The outcome is saved to the scores database unless --dry-run is given.
Exits with status 1 when the claim does not match.

Examples:
  tilescore verify 123456789 2281 7 20 --player ann
  tilescore verify 123456789 2281 7 24 --dry-run`,
	Args: cobra.ExactArgs(4),
	RunE: runVerify,
}

var verifyBatchCmd = &cobra.Command{
	Use:   "verify-batch <file>",
	Short: "Verify a YAML list of submissions",
	Long: `Verifies every submission in a YAML file concurrently and prints one
line per submission in file order. Each entry has the fields variant,
player, seed, moves, moves_len and claimed.

Example file:
  - player: ann
    seed: 123456789
    moves: "2281"
    moves_len: 7
    claimed: 20`,
	Args: cobra.ExactArgs(1),
	RunE: runVerifyBatch,
}

func init() {
	for _, c := range []*cobra.Command{verifyCmd, verifyBatchCmd} {
		c.Flags().BoolVar(&flagDryRun, "dry-run", false, "Do not save results")
	}
	verifyCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name to record")
	verifyCmd.Flags().StringVar(&flagVerifyVariant, "variant", "", "Rule variant (default from config)")
	verifyBatchCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent verifications (0 = one per CPU)")
}

// newService builds a verification service, attaching the store unless
// this is a dry run. The returned store may be nil.
func newService() (*verify.Service, *storage.Store, error) {
	svc := verify.NewService(verify.Config{
		DefaultVariant: cfg.Replay.Variant,
		MaxMoves:       cfg.Replay.MaxMoves,
	}, logger)

	if flagDryRun {
		return svc, nil, nil
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	svc.SetResultSaver(store)
	return svc, store, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	ra, err := parseReplayArgs(args[:3])
	if err != nil {
		return err
	}
	claimed, err := parseScore(args[3])
	if err != nil {
		return err
	}

	svc, store, err := newService()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := svc.Verify(ctx, verify.Submission{
		Variant:  flagVerifyVariant,
		Player:   flagPlayer,
		Seed:     ra.seed,
		MovesHex: ra.hex,
		MovesLen: ra.count,
		Claimed:  claimed,
	})
	if err != nil {
		return err
	}

	printResult(cmd, res)
	if !res.Verified {
		return errMismatch
	}
	return nil
}

func runVerifyBatch(cmd *cobra.Command, args []string) error {
	subs, err := verify.LoadSubmissions(args[0])
	if err != nil {
		return err
	}

	svc, store, err := newService()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var verified, mismatched, failed int
	for _, item := range svc.VerifyAll(ctx, subs, flagWorkers) {
		switch {
		case item.Err != nil:
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "#%d  ERROR     %v\n", item.Index+1, item.Err)
		case item.Result.Verified:
			verified++
			fmt.Fprintf(cmd.OutOrStdout(), "#%d  VERIFIED  %s score=%d\n",
				item.Index+1, playerName(item.Result.Player), item.Result.Score)
		default:
			mismatched++
			fmt.Fprintf(cmd.OutOrStdout(), "#%d  MISMATCH  %s claimed=%d replayed=%d\n",
				item.Index+1, playerName(item.Result.Player), item.Result.Claimed, item.Result.Score)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d verified, %d mismatched, %d failed\n", verified, mismatched, failed)
	if err := ctx.Err(); err != nil {
		return err
	}
	if mismatched > 0 || failed > 0 {
		return fmt.Errorf("%d of %d submissions did not verify", mismatched+failed, len(subs))
	}
	return nil
}

func printResult(cmd *cobra.Command, res verify.Result) {
	out := cmd.OutOrStdout()
	status := "VERIFIED"
	if !res.Verified {
		status = "MISMATCH"
	}

	fmt.Fprintf(out, "%s\n", status)
	fmt.Fprintf(out, "  variant:  %s\n", res.Variant)
	fmt.Fprintf(out, "  player:   %s\n", playerName(res.Player))
	fmt.Fprintf(out, "  claimed:  %d\n", res.Claimed)
	fmt.Fprintf(out, "  replayed: %d\n", res.Score)
	if res.ID != "" {
		fmt.Fprintf(out, "  record:   %s\n", res.ID)
	}
}

func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}
