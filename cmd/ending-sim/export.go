package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/ending-sim/internal/replay"
	"github.com/danielpatrickdp/ending-sim/internal/store"
)

// #region export
type exportFlags struct {
	dbPath  string
	outPath string
	last    int
}

func newExportCmd() *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write archived sessions as a replay fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.dbPath, "db", "", "path to the session archive")
	cmd.Flags().StringVar(&f.outPath, "out", "", "fixture file to write")
	cmd.Flags().IntVar(&f.last, "last", 50, "export N most recent sessions")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runExport(cmd *cobra.Command, f exportFlags) error {
	st, err := store.Open(f.dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	recs, err := st.ListSessions(cmd.Context(), f.last)
	if err != nil {
		return err
	}

	// archive is newest first; fixtures read oldest first
	fx := &replay.Fixture{
		Description: fmt.Sprintf("exported from %s", f.dbPath),
		Sessions:    make([]replay.FixtureSession, 0, len(recs)),
	}
	for i := len(recs) - 1; i >= 0; i-- {
		fs, err := replay.FromRecord(recs[i])
		if err != nil {
			return err
		}
		fx.Sessions = append(fx.Sessions, fs)
	}

	if err := replay.WriteFixture(f.outPath, fx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sessions to %s\n", len(fx.Sessions), f.outPath)
	return nil
}

// #endregion export
