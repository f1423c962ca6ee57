package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	reverse        bool
	deleteManifest bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags
	var configFlag string
	var overrides overrideFlags

	ctx := newCommandContext(&configFlag, &overrides)

	rootCmd := &cobra.Command{
		Use:   "remanifest [path]",
		Short: "Rename files in a directory from its manifest",
		Long: "Reads <path>/manifest.txt, where every line is transformed=original, and renames\n" +
			"each transformed name back to its original name. With -r the renames run the\n" +
			"other way. The current directory is used when no path is given.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(cmd, ctx, flags, args)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.reverse, "reverse", "r", false, "Rename original names back to transformed names")
	rootCmd.Flags().BoolVarP(&flags.deleteManifest, "delete-manifest", "m", false, "Delete the manifest after processing")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&overrides.output, "output", "", "Output format: plain, table or json")
	rootCmd.PersistentFlags().StringVar(&overrides.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&overrides.noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
