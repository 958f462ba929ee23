package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/pathabs/internal/manifest"
	"github.com/roach88/pathabs/internal/pathabs"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	CollectAll bool
}

// CheckedPath is one manifest element that decoded to an existing path.
type CheckedPath struct {
	Index int          `json:"index"`
	Path  pathabs.Path `json:"path"`
}

// CheckIssue is one manifest element that failed to decode.
type CheckIssue struct {
	Index   int    `json:"index"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CheckResult holds check results.
type CheckResult struct {
	Valid  bool          `json:"valid"`
	File   string        `json:"file"`
	Format string        `json:"format"`
	Total  int           `json:"total"`
	Paths  []CheckedPath `json:"paths"`
	Errors []CheckIssue  `json:"errors,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Verify every path in a manifest",
		Long: `Load a JSON, YAML, TOML or CUE manifest and verify that every entry of
its "paths" list decodes to an existing absolute path.

By default loading stops at the first bad entry. With --collect-all every
entry is checked and every failure is reported.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.CollectAll, "collect-all", false, "report every invalid entry instead of stopping at the first")

	return cmd
}

func runCheck(opts *CheckOptions, file string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	log := opts.logger().With(zap.String("manifest", file))

	mode := manifest.LoadModeFailFast
	if opts.CollectAll {
		mode = manifest.LoadModeCollectAll
	}

	result, errs := manifest.Load(file, mode)
	if result == nil {
		return failDocument(formatter, errs[0])
	}
	log.Debug("manifest loaded",
		zap.String("format", string(result.Format)),
		zap.Int("total", result.Total),
		zap.Int("decoded", len(result.Entries)),
		zap.Int("errors", len(errs)),
	)

	check := CheckResult{
		Valid:  len(errs) == 0,
		File:   file,
		Format: string(result.Format),
		Total:  result.Total,
		Paths:  make([]CheckedPath, len(result.Entries)),
	}
	for i, e := range result.Entries {
		check.Paths[i] = CheckedPath{Index: e.Index, Path: e.Path}
	}
	for _, err := range errs {
		check.Errors = append(check.Errors, checkIssue(err))
	}

	if check.Valid {
		return outputCheckSuccess(formatter, check)
	}
	return outputCheckFailure(formatter, check)
}

func checkIssue(err error) CheckIssue {
	var loadErr *manifest.LoadError
	if errors.As(err, &loadErr) {
		return CheckIssue{Index: loadErr.Index, Code: loadErr.Code, Message: loadErr.Message}
	}
	return CheckIssue{Index: -1, Code: manifest.ErrCodeGeneric, Message: err.Error()}
}

// failDocument reports a manifest that could not be used at all.
func failDocument(formatter *OutputFormatter, err error) error {
	var loadErr *manifest.LoadError
	if errors.As(err, &loadErr) {
		return formatter.Fail(ExitCommandError, loadErr.Code, loadErr.Message, nil)
	}
	return formatter.Fail(ExitCommandError, manifest.ErrCodeGeneric, err.Error(), nil)
}

func outputCheckSuccess(formatter *OutputFormatter, check CheckResult) error {
	if formatter.Format == "json" {
		return formatter.Success(check)
	}

	for _, p := range check.Paths {
		formatter.VerboseLog("paths[%d] %s", p.Index, p.Path)
	}
	fmt.Fprintf(formatter.Writer, "✓ %d path(s) ok in %s\n", len(check.Paths), check.File)
	return nil
}

func outputCheckFailure(formatter *OutputFormatter, check CheckResult) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   check,
			Error: &CLIError{
				Code:    check.Errors[0].Code,
				Message: check.Errors[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("check failed with %d error(s)", len(check.Errors)))
	}

	fmt.Fprintf(formatter.Writer, "✗ Check failed: %s\n", check.File)
	fmt.Fprintln(formatter.Writer)
	for _, issue := range check.Errors {
		fmt.Fprintf(formatter.Writer, "paths[%d]\n", issue.Index)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", issue.Code, issue.Message)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("check failed with %d error(s)", len(check.Errors)))
}
