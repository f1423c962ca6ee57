package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"remanifest/internal/config"
	"remanifest/internal/renamer"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func renderReport(cmd *cobra.Command, cfg *config.Config, report *renamer.Report, runErr error) error {
	switch cfg.Output.Format {
	case "json":
		return writeJSON(cmd, newReportView(report, runErr))
	case "table":
		writeTableReport(cmd.OutOrStdout(), report)
		return nil
	default:
		out := cmd.OutOrStdout()
		writePlainReport(out, report, cfg.Output.Color && shouldColorize(out))
		return nil
	}
}

func writePlainReport(out io.Writer, report *renamer.Report, colorize bool) {
	for _, outcome := range report.Outcomes {
		line := outcome.Message()
		if colorize {
			line = outcomeColor(outcome) + line + ansiReset
		}
		fmt.Fprintln(out, line)
	}
}

func writeTableReport(out io.Writer, report *renamer.Report) {
	headers := []string{"Line", "From", "To", "Status", "Reason"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}
	rows := make([][]string, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		status := "renamed"
		if !outcome.OK() {
			status = "failed"
		}
		rows = append(rows, []string{
			strconv.Itoa(outcome.Line),
			outcome.From,
			outcome.To,
			status,
			string(outcome.Reason),
		})
	}
	footer := []string{"", fmt.Sprintf("%d renamed", report.Renamed()), fmt.Sprintf("%d failed", report.Failed())}
	if report.ManifestDeleted {
		footer = append(footer, "manifest deleted")
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns, footer))
}

func outcomeColor(outcome renamer.Outcome) string {
	if outcome.OK() {
		return ansiGreen
	}
	return ansiRed
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
