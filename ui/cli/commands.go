// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/toeirei/quadshift/core"
	"github.com/toeirei/quadshift/internal/cipher"
	"github.com/toeirei/quadshift/internal/i18n"
	"github.com/toeirei/quadshift/internal/logging"
	"github.com/toeirei/quadshift/internal/textio"
)

// clipboardWriteAll is a package-level variable so tests can avoid touching
// the real clipboard.
var clipboardWriteAll = clipboard.WriteAll

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Plaintext file (default files.input)")
	cmd.Flags().StringP("output", "o", "", "Ciphertext file (default files.output)")
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", `Input file ("-" for stdin, ".zst" is decompressed)`)
	cmd.Flags().String("text", "", "Transform this text instead of a file")
}

// sourceFrom picks --text, then --input, then the positional argument.
func sourceFrom(cmd *cobra.Command, args []string) core.Source {
	if cmd.Flags().Changed("text") {
		text, _ := cmd.Flags().GetString("text")
		return core.Source{Text: &text}
	}
	if in, _ := cmd.Flags().GetString("input"); in != "" {
		return core.Source{Path: in}
	}
	if len(args) > 0 {
		return core.Source{Path: args[0]}
	}
	return core.Source{}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Encrypt files.input, decrypt it again and verify the round trip",
		Long: `Asks for n and m (unless given by flag or config), encrypts the input file,
writes the ciphertext to the output file, decrypts it again and reports
whether the round trip reproduced the original text.`,
		Args: cobra.NoArgs,
		RunE: runPipeline,
	}
	addParamFlags(cmd)
	addPipelineFlags(cmd)
	return cmd
}

// runPipeline is shared by the root command and `run`.
func runPipeline(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return fail(cmd, err, "")
	}

	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		input = appConfig.Files.Input
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = appConfig.Files.Output
	}
	logging.Debugf("%s", i18n.T("run.start", input, p))

	res, err := core.RunPipeline(cmd.Context(), core.PipelineRequest{
		Params:   p,
		Input:    input,
		Output:   output,
		Parallel: parallelOptions(),
	}, historyRecorder())
	if err != nil {
		return fail(cmd, err, input)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, i18n.T("run.written", res.Output, humanize.Bytes(uint64(res.Bytes))))
	if !res.Match {
		fmt.Fprintln(out, i18n.T("run.verify_mismatch"))
		fmt.Fprintln(out, i18n.T("run.verify_mismatch_at", res.Mismatch))
		return reportedError{err: errMismatch}
	}
	fmt.Fprintln(out, i18n.T("run.verify_ok"))
	return nil
}

func newTransformCmd(dir cipher.Direction) *cobra.Command {
	cmd := &cobra.Command{
		Use:   dir.String() + " [file]",
		Short: fmt.Sprintf("%s text or a file", capitalize(dir.String())),
		Long: fmt.Sprintf(`Applies the quadrant shift in the %s direction to --text, --input or the
given file. The result goes to --output, or to stdout when no output is set.`, dir),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := sourceFrom(cmd, args)
			if src.Text == nil && src.Path == "" {
				return fail(cmd, core.ErrNoInput, "")
			}
			p, err := resolveParams(cmd)
			if err != nil {
				return fail(cmd, err, "")
			}
			output, _ := cmd.Flags().GetString("output")

			data, err := core.Transform(cmd.Context(), core.TransformRequest{
				Source:    src,
				Output:    output,
				Params:    p,
				Direction: dir,
				Parallel:  parallelOptions(),
			}, historyRecorder())
			if err != nil {
				return fail(cmd, err, src.Path)
			}

			if output == "" {
				if src.Text != nil {
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
				} else if err := textio.Write(cmd.OutOrStdout(), data, false, textio.Stdio); err != nil {
					return fail(cmd, err, textio.Stdio)
				}
			}

			if copyResult, _ := cmd.Flags().GetBool("clipboard"); copyResult {
				if err := clipboardWriteAll(string(data)); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("clipboard.failed", err))
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("clipboard.copied"))
				}
			}
			return nil
		},
	}
	addParamFlags(cmd)
	addSourceFlags(cmd)
	cmd.Flags().StringP("output", "o", "", `Output file (".zst" is compressed; default stdout)`)
	cmd.Flags().Bool("clipboard", false, "Copy the result to the clipboard")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Check that decrypting the encryption reproduces the input",
		Long: `Encrypts --text, --input or the given file in memory, decrypts the result and
compares it with the original. Nothing is written. Exits with status 1 on a
mismatch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := sourceFrom(cmd, args)
			if src.Text == nil && src.Path == "" {
				return fail(cmd, core.ErrNoInput, "")
			}
			p, err := resolveParams(cmd)
			if err != nil {
				return fail(cmd, err, "")
			}
			res, err := core.Verify(cmd.Context(), src, p, parallelOptions(), historyRecorder())
			if err != nil {
				return fail(cmd, err, src.Path)
			}
			out := cmd.OutOrStdout()
			if !res.Match {
				fmt.Fprintln(out, i18n.T("run.verify_mismatch"))
				fmt.Fprintln(out, i18n.T("run.verify_mismatch_at", res.Mismatch))
				return reportedError{err: errMismatch}
			}
			fmt.Fprintln(out, i18n.T("run.verify_ok"))
			return nil
		},
	}
	addParamFlags(cmd)
	addSourceFlags(cmd)
	return cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
