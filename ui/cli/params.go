// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/quadshift/internal/cipher"
	"github.com/toeirei/quadshift/internal/i18n"
	"github.com/toeirei/quadshift/internal/tui"
	"golang.org/x/term"
)

// Overridable in tests.
var (
	isTerminal = func(r io.Reader) bool {
		f, ok := r.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
	promptForm = tui.PromptParamsWith
)

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("n", "n", 0, "Cipher parameter n (prompted when unset)")
	cmd.Flags().IntP("m", "m", 0, "Cipher parameter m (prompted when unset)")
}

// paramValue returns the flag value when set, else the configured value.
func paramValue(cmd *cobra.Command, name string, configured *int) (*int, error) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		v, err := cmd.Flags().GetInt(name)
		if err != nil {
			return nil, fmt.Errorf("%w: -%s: %v", ErrInvalidInteger, name, err)
		}
		return &v, nil
	}
	return configured, nil
}

// resolveParams takes n and m from flags, then config, then asks for
// whatever is still missing: a form on a terminal, plain line prompts
// otherwise.
func resolveParams(cmd *cobra.Command) (cipher.Params, error) {
	n, err := paramValue(cmd, "n", appConfig.Cipher.N)
	if err != nil {
		return cipher.Params{}, err
	}
	m, err := paramValue(cmd, "m", appConfig.Cipher.M)
	if err != nil {
		return cipher.Params{}, err
	}
	if n != nil && m != nil {
		return cipher.Params{N: *n, M: *m}, nil
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if isTerminal(in) {
		return promptForm(in, out, n, m)
	}
	return promptLines(bufio.NewReader(in), out, n, m)
}

func promptLines(r *bufio.Reader, out io.Writer, n, m *int) (cipher.Params, error) {
	var err error
	if n == nil {
		if n, err = promptInt(r, out, i18n.T("prompt.n")); err != nil {
			return cipher.Params{}, err
		}
	}
	if m == nil {
		if m, err = promptInt(r, out, i18n.T("prompt.m")); err != nil {
			return cipher.Params{}, err
		}
	}
	return cipher.Params{N: *n, M: *m}, nil
}

func promptInt(r *bufio.Reader, out io.Writer, prompt string) (*int, error) {
	fmt.Fprint(out, prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInteger, err)
	}
	v, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, strings.TrimSpace(line))
	}
	return &v, nil
}
