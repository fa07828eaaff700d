package commands

import (
	"log/slog"
	"os"

	"elicense-watch/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Runs a single collection pass, reports it and exits.",
	Run: func(cmd *cobra.Command, args []string) {
		svc := buildService()

		labels, err := svc.RunOnce(cmd.Context())
		if err != nil {
			serviceutil.Fatal("collection run failed", err)
		}
		if len(labels) == 0 {
			slog.Info("no eligible slots right now")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "slot"})
		for i, label := range labels {
			t.AppendRow(table.Row{i + 1, label})
		}
		t.Render()
	},
}
