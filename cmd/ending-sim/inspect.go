package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/ending-sim/internal/store"
)

// #region inspect
type inspectFlags struct {
	dbPath  string
	last    int
	jsonOut bool
}

func newInspectCmd() *cobra.Command {
	var f inspectFlags
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List archived sessions and ending counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.dbPath, "db", "", "path to the session archive")
	cmd.Flags().IntVar(&f.last, "last", 20, "show N most recent sessions")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "output as JSON instead of table")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

type inspectRow struct {
	SessionID string `json:"session_id"`
	Mode      string `json:"mode"`
	Route     string `json:"route,omitempty"`
	Affinity  int    `json:"affinity"`
	Kind      string `json:"ending_kind"`
	Text      string `json:"ending_text"`
	CreatedAt string `json:"created_at"`
}

type inspectReport struct {
	Sessions []inspectRow      `json:"sessions"`
	Counts   []store.KindCount `json:"counts"`
}

func runInspect(cmd *cobra.Command, f inspectFlags) error {
	st, err := store.Open(f.dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	recs, err := st.ListSessions(ctx, f.last)
	if err != nil {
		return err
	}
	counts, err := st.CountByKind(ctx)
	if err != nil {
		return err
	}

	report := inspectReport{Sessions: make([]inspectRow, len(recs)), Counts: counts}
	for i, r := range recs {
		report.Sessions[i] = inspectRow{
			SessionID: r.SessionID,
			Mode:      r.Mode,
			Route:     r.Route,
			Affinity:  r.Affinity,
			Kind:      r.EndingKind,
			Text:      r.EndingText,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
	}

	out := cmd.OutOrStdout()
	if f.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if len(report.Sessions) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "no sessions found")
		return nil
	}
	fmt.Fprintf(out, "%-36s  %-7s  %-8s  %5s  %-16s  %s\n", "SESSION", "MODE", "ROUTE", "HEART", "ENDING", "CREATED")
	for _, r := range report.Sessions {
		fmt.Fprintf(out, "%-36s  %-7s  %-8s  %5d  %-16s  %s\n", r.SessionID, r.Mode, r.Route, r.Affinity, r.Kind, r.CreatedAt)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Endings:")
	for _, c := range report.Counts {
		fmt.Fprintf(out, "  %-16s %d\n", c.EndingKind, c.Count)
	}
	return nil
}

// #endregion inspect
