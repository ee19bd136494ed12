// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/quadshift/internal/config"
	"github.com/toeirei/quadshift/internal/i18n"
	"github.com/toeirei/quadshift/internal/logging"
)

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump debug information about config, env, flags and settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- QUADSHIFT DEBUG ---")

			if cfgFile != "" {
				fmt.Fprintf(out, "Config file (--config): %s\n", cfgFile)
			}
			if p, err := config.GetConfigPath(false); err == nil {
				fmt.Fprintf(out, "User config path: %s\n", p)
			}
			if p, err := config.GetConfigPath(true); err == nil {
				fmt.Fprintf(out, "System config path: %s\n", p)
			}

			b, err := yaml.Marshal(&appConfig)
			if err != nil {
				logging.Errorf("could not marshal effective config: %v", err)
			} else {
				fmt.Fprintln(out, "-- effective config --")
				fmt.Fprint(out, string(b))
			}
			fmt.Fprintf(out, "history enabled: %t\n", historyWanted())

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (QUADSHIFT_*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "QUADSHIFT_") {
					fmt.Fprintln(out, e)
				}
			}

			fmt.Fprintln(out, "-- locales --")
			locales := i18n.GetAvailableLocales()
			codes := make([]string, 0, len(locales))
			for code := range locales {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				marker := " "
				if code == i18n.GetLang() {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s (%s)\n", marker, code, locales[code])
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
		},
	}
}
