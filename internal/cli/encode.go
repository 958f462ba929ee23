package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/roach88/pathabs/internal/escape"
	"github.com/roach88/pathabs/internal/native"
)

// CodecOptions holds flags for the encode and decode commands.
type CodecOptions struct {
	*RootOptions
	Stream bool
}

// CodecResult pairs one input with its converted form. JSON strings cannot
// hold arbitrary bytes, so the raw path side is also carried as base64:
// InputBytes for encode, OutputBytes for decode.
type CodecResult struct {
	Input       string `json:"input"`
	InputBytes  []byte `json:"input_bytes,omitempty"`
	Output      string `json:"output"`
	OutputBytes []byte `json:"output_bytes,omitempty"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CodecOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode [path...]",
		Short: "Escape raw paths into text",
		Long: `Escape each argument into its text form. Arguments are not checked
against the filesystem; any string can be escaped.

With --stream, stdin is escaped byte by byte to stdout.

Example:
  pathabs encode /tmp/foo.txt
  printf '/tmp/\xff' | pathabs encode --stream`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "escape stdin to stdout")

	return cmd
}

func runEncode(opts *CodecOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Stream {
		return runStream(opts, escape.NewByteEncoder(), cmd)
	}
	if len(args) == 0 {
		return formatter.Fail(ExitCommandError, "E001", "no paths given (use --stream to read stdin)", nil)
	}

	results := make([]CodecResult, len(args))
	for i, arg := range args {
		results[i] = CodecResult{Input: arg, InputBytes: []byte(arg), Output: native.Encode(native.Extract(arg))}
	}
	opts.logger().Debug("encoded paths", zap.Int("count", len(results)))
	return outputCodecResults(formatter, results)
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CodecOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode [text...]",
		Short: "Unescape text back into raw paths",
		Long: `Unescape each argument back into the raw path it encodes. Decoding is
strict: malformed, lowercase or needless escapes are syntax errors.

With --stream, stdin is unescaped to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "unescape stdin to stdout")

	return cmd
}

func runDecode(opts *CodecOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Stream {
		return runStream(opts, escape.NewByteDecoder(), cmd)
	}
	if len(args) == 0 {
		return formatter.Fail(ExitCommandError, "E001", "no text given (use --stream to read stdin)", nil)
	}

	results := make([]CodecResult, len(args))
	for i, arg := range args {
		units, err := native.Decode(arg)
		if err != nil {
			opts.logger().Debug("decode failed", zap.String("text", arg), zap.Error(err))
			return formatter.Fail(ExitCommandError, ErrCodeSyntax, err.Error(), syntaxDetails(arg, err))
		}
		raw := native.Reconstitute(units)
		results[i] = CodecResult{Input: arg, Output: raw, OutputBytes: []byte(raw)}
	}
	opts.logger().Debug("decoded texts", zap.Int("count", len(results)))
	return outputCodecResults(formatter, results)
}

// runStream copies stdin to stdout through t.
func runStream(opts *CodecOptions, t transform.Transformer, cmd *cobra.Command) error {
	n, err := io.Copy(cmd.OutOrStdout(), transform.NewReader(cmd.InOrStdin(), t))
	opts.logger().Debug("stream finished", zap.Int64("bytes", n), zap.Error(err))
	if err != nil {
		var syn *escape.SyntaxError
		if errors.As(err, &syn) {
			// Output already written cannot be enveloped; report on stderr.
			fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %v\n", ErrCodeSyntax, err)
			return WrapExitError(ExitCommandError, ErrCodeSyntax, err)
		}
		return WrapExitError(ExitCommandError, "stream failed", err)
	}
	return nil
}

func syntaxDetails(text string, err error) map[string]any {
	var syn *escape.SyntaxError
	if !errors.As(err, &syn) {
		return nil
	}
	return map[string]any{"text": text, "offset": syn.Offset}
}

func outputCodecResults(formatter *OutputFormatter, results []CodecResult) error {
	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		fmt.Fprintln(formatter.Writer, r.Output)
	}
	return nil
}
