package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/pathabs/internal/manifest"
	"github.com/roach88/pathabs/internal/pathabs"
)

// ConvertResult describes a written manifest.
type ConvertResult struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a manifest in another format",
		Long: `Load a manifest and write the same paths, in the same order, to another
file. Formats are chosen by extension (.json, .yaml, .yml, .toml, .cue).

Every entry must decode; the first bad entry aborts the conversion.

Example:
  pathabs convert paths.json paths.cue`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runConvert(opts *RootOptions, in, out string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	paths, err := loadStrict(opts, formatter, in)
	if err != nil {
		return err
	}

	if err := manifest.Write(out, paths); err != nil {
		return failDocument(formatter, err)
	}
	opts.logger().Info("manifest converted",
		zap.String("from", in),
		zap.String("to", out),
		zap.Int("count", len(paths)),
	)

	result := ConvertResult{From: in, To: out, Count: len(paths)}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote %d path(s) to %s\n", result.Count, result.To)
	return nil
}

// loadStrict loads a manifest fail-fast. Document errors exit 2, a bad
// element exits 1.
func loadStrict(opts *RootOptions, formatter *OutputFormatter, file string) ([]pathabs.Path, error) {
	result, errs := manifest.Load(file, manifest.LoadModeFailFast)
	if result == nil {
		return nil, failDocument(formatter, errs[0])
	}
	if len(errs) > 0 {
		opts.logger().Debug("manifest rejected", zap.String("manifest", file), zap.Error(errs[0]))
		var loadErr *manifest.LoadError
		if errors.As(errs[0], &loadErr) {
			return nil, formatter.Fail(ExitFailure, loadErr.Code, loadErr.Error(), nil)
		}
		return nil, formatter.Fail(ExitFailure, manifest.ErrCodeGeneric, errs[0].Error(), nil)
	}
	return result.Paths(), nil
}
