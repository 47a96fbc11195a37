package cli

import (
	"fmt"

	"github.com/raatiniemi/linker/internal/version"
	"github.com/raatiniemi/linker/pkg/config"
	"github.com/raatiniemi/linker/pkg/core"
	"github.com/raatiniemi/linker/pkg/logging"
	"github.com/raatiniemi/linker/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity     int
		dryRun        bool
		configuration string
	)

	rootCmd := &cobra.Command{
		Use:     "linker",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := verbosity
			// Planned links are logged at info level
			if dryRun && level < 1 {
				level = 1
			}
			logging.SetupLogger(level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), log.Logger))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configuration)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			result, err := core.Run(cmd.Context(), cfg, core.Options{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf(MsgErrReconcile, err)
			}

			printer := output.NewPrinter(cmd.OutOrStdout(), output.FormatAuto)
			if err := printer.Print(result.Pending); err != nil {
				return fmt.Errorf(MsgErrPrintPending, err)
			}

			if result.DryRun {
				cmd.PrintErrln(MsgDryRunNotice)
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.Flags().StringVarP(&configuration, "configuration", "c", "", MsgFlagConfiguration)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	_ = rootCmd.MarkFlagRequired("configuration")
	_ = rootCmd.MarkFlagFilename("configuration", "json", "toml", "yaml", "yml")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newConfigCmd() *cobra.Command {
	var (
		configuration string
		format        string
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configuration)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			data, err := config.Encode(cfg, f)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&configuration, "configuration", "c", "", MsgFlagConfiguration)
	cmd.Flags().StringVar(&format, "format", string(config.FormatJSON), MsgFlagFormat)
	_ = cmd.MarkFlagRequired("configuration")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
