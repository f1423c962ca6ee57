package main

import (
	"github.com/spf13/cobra"

	"remanifest/internal/renamer"
	"remanifest/internal/textutil"
)

func runManifest(cmd *cobra.Command, ctx *commandContext, flags rootFlags, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	dir, err := renamer.ResolveDirectory(args)
	if err != nil {
		return err
	}

	form, err := textutil.ParseForm(cfg.Manifest.Normalization)
	if err != nil {
		return err
	}

	logger, err := ctx.logger()
	if err != nil {
		return err
	}

	proc := renamer.New(logger, renamer.WithLockDir(cfg.LockDir()))
	report, runErr := proc.Run(cmd.Context(), renamer.Options{
		Directory:      dir,
		Reverse:        flags.reverse,
		DeleteManifest: flags.deleteManifest,
		ManifestName:   cfg.Manifest.FileName,
		Delimiter:      cfg.Manifest.Delimiter,
		Normalization:  form,
	})

	// Nothing happened on disk when the run fails before the first line;
	// the error alone is reported.
	if runErr != nil && len(report.Outcomes) == 0 {
		return runErr
	}
	if err := renderReport(cmd, cfg, report, runErr); err != nil {
		return err
	}
	return runErr
}
