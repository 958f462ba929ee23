package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/pathabs/internal/config"
	"github.com/roach88/pathabs/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	LogLevel string
	DB       string // default for store --db

	// Logger is built in PersistentPreRunE. Commands built without the
	// root command see a no-op logger.
	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the pathabs CLI.
// Flag defaults come from PATHABS_* environment variables. A malformed
// variable fails every command rather than falling back to defaults.
func NewRootCommand() *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	opts := &RootOptions{DB: cfg.DB}

	cmd := &cobra.Command{
		Use:   "pathabs",
		Short: "pathabs - lossless text for absolute paths",
		Long: `Serialize absolute filesystem paths to escaped text and back.

The text form is printable ASCII, survives JSON, YAML, TOML, CUE and SQL
TEXT columns unchanged, and decodes to exactly the original path even when
the path is not valid UTF-8.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", cfgErr)
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			logCfg := cfg.LoggerConfig()
			logCfg.Level = opts.LogLevel
			if opts.Verbose {
				logCfg.Level = "debug"
			}
			logger, err := logging.New(logCfg, cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid log level", err)
			}
			opts.Logger = logger
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")

	// Add subcommands
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))

	return cmd
}

// logger returns the configured logger, or a no-op logger.
func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return logging.NewNop()
	}
	return o.Logger
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
