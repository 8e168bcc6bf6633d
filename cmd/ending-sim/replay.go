package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/ending-sim/internal/replay"
)

var errReplayMismatch = errors.New("replay mismatch")

// #region replay
func newReplayCmd() *cobra.Command {
	var fixturePath string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a session fixture and check every ending",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, fixturePath)
		},
	}
	cmd.Flags().StringVar(&fixturePath, "fixture", "", "path to fixture JSON")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

func runReplay(cmd *cobra.Command, path string) error {
	f, err := replay.LoadFixture(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if f.Description != "" {
		fmt.Fprintf(out, "Fixture: %s\n", f.Description)
	}
	fmt.Fprintf(out, "Sessions: %d\n\n", len(f.Sessions))

	results := replay.Replay(cmd.Context(), f)
	for _, r := range results {
		if r.Passed {
			fmt.Fprintf(out, "  PASS  %-32s %s\n", r.Name, r.Kind)
			continue
		}
		fmt.Fprintf(out, "  FAIL  %-32s %s\n", r.Name, r.Reason)
	}

	sum := replay.Summarize(results)
	fmt.Fprintf(out, "\nResult: %d/%d passed\n", sum.Passed, sum.Total)
	if sum.Failed > 0 {
		return fmt.Errorf("%w: %d of %d sessions", errReplayMismatch, sum.Failed, sum.Total)
	}
	return nil
}

// #endregion replay
