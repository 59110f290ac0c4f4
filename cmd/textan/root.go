package main

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textan/cmd/textan/commands"
	"github.com/walteh/textan/cmd/textan/opts"
	"github.com/walteh/textan/pkg/config"
	"github.com/walteh/textan/pkg/log"
	"github.com/walteh/textan/pkg/report"
	"github.com/walteh/textan/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree around a shared RootOpts
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "textan",
		Short: "Analyze text and search-and-replace within it",
		Long: `textan computes word, character and vowel statistics, transforms case,
and performs literal search-and-replace with case sensitivity and scope options.

Text is read from a file argument, from --text, or from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initRootOpts(cmd, o)
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewStatsCmd(o),
		commands.NewTransformCmd(o),
		commands.NewReplaceCmd(o),
		commands.NewAnalyzeCmd(o),
		commands.NewApplyCmd(o),
		newVersionCmd(o),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", ".textan.yaml", "config file path (yaml, hcl, toml or json)")
	cmd.PersistentFlags().StringVarP(&o.Output, "output", "o", "", "output format: text or json (overrides config)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// initRootOpts configures logging and loads the config once flags are parsed
func initRootOpts(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := setupLogging(cmd, o.Debug)

	cfg, err := config.LoadOrDefault(ctx, o.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	if o.Output != "" {
		cfg.Output = o.Output
	}

	renderer, err := report.NewRenderer(cfg.Output)
	if err != nil {
		return err
	}

	o.Config = cfg
	o.Renderer = renderer
	o.Replacer = text.NewEngine()
	o.UserLogger = log.NewUserLogger(ctx)
	// keep stdout for rendered results
	pterm.SetDefaultOutput(cmd.ErrOrStderr())

	console := log.NewWithZerolog(cmd.ErrOrStderr(), *zerolog.Ctx(ctx))
	cmd.SetContext(log.NewContext(ctx, console))

	zerolog.Ctx(ctx).Debug().Str("location", cfg.Location()).Str("config", cfg.String()).Msg("initialized")
	return nil
}

// setupLogging configures zerolog based on flags and stores the logger in the command context
func setupLogging(cmd *cobra.Command, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)
	return ctx
}
