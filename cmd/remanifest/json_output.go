package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"remanifest/internal/renamer"
)

type outcomeView struct {
	Line    int    `json:"line"`
	From    string `json:"from"`
	To      string `json:"to"`
	OK      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

type reportView struct {
	RunID           string        `json:"run_id"`
	Directory       string        `json:"directory"`
	Manifest        string        `json:"manifest"`
	Reverse         bool          `json:"reverse"`
	Renamed         int           `json:"renamed"`
	Failed          int           `json:"failed"`
	ManifestDeleted bool          `json:"manifest_deleted"`
	Outcomes        []outcomeView `json:"outcomes"`
	Error           string        `json:"error,omitempty"`
}

func newReportView(report *renamer.Report, runErr error) reportView {
	view := reportView{
		RunID:           report.RunID,
		Directory:       report.Directory,
		Manifest:        report.Manifest,
		Reverse:         report.Reverse,
		Renamed:         report.Renamed(),
		Failed:          report.Failed(),
		ManifestDeleted: report.ManifestDeleted,
		Outcomes:        make([]outcomeView, 0, len(report.Outcomes)),
	}
	for _, outcome := range report.Outcomes {
		item := outcomeView{
			Line:    outcome.Line,
			From:    outcome.From,
			To:      outcome.To,
			OK:      outcome.OK(),
			Reason:  string(outcome.Reason),
			Message: outcome.Message(),
		}
		if cause := outcome.Cause(); cause != nil {
			item.Error = cause.Error()
		}
		view.Outcomes = append(view.Outcomes, item)
	}
	if runErr != nil {
		view.Error = runErr.Error()
	}
	return view
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
