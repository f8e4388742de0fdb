package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"traynote/internal/config"
	"traynote/internal/history"
)

func newHistoryCommand(configFlag *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent update-check results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.HistoryDBPath(), cfg.Updates.HistoryRetention)
			if err != nil {
				return fmt.Errorf("open check history: %w", err)
			}
			defer store.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			entries, err := store.Recent(ctx, limit)
			if err != nil {
				return fmt.Errorf("load check history: %w", err)
			}
			if len(entries) == 0 {
				cmd.Println("No recorded checks yet.")
				return nil
			}

			cmd.Println(renderHistory(entries, isTerminal()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of checks to show")
	return cmd
}

// renderHistory tabulates check cycles newest first. On a terminal the
// finished column shows relative times; piped output gets absolute local
// timestamps so the table stays greppable.
func renderHistory(entries []history.Entry, tty bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Check", "Finished", "Outcome", "Updates", "Duration"})

	for _, entry := range entries {
		finished := entry.FinishedAt.Local().Format("2006-01-02 15:04:05")
		if tty {
			finished = humanize.Time(entry.FinishedAt)
		}
		tw.AppendRow(table.Row{
			shortCheckID(entry.CheckID),
			finished,
			entry.Outcome,
			entry.UpdateCount,
			entry.FinishedAt.Sub(entry.StartedAt).Round(time.Millisecond),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func shortCheckID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
