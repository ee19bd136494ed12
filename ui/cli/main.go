// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/quadshift/buildvars"
	"github.com/toeirei/quadshift/core"
	"github.com/toeirei/quadshift/internal/cipher"
	"github.com/toeirei/quadshift/internal/config"
	"github.com/toeirei/quadshift/internal/db"
	"github.com/toeirei/quadshift/internal/i18n"
	"github.com/toeirei/quadshift/internal/logging"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool
var noHistory bool

var appConfig config.Config

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	if verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
		if wd, wderr := os.Getwd(); wderr == nil {
			logging.Debugf("startup cwd: %s", wd)
		}
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it specifically.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			// Log a warning but don't fail, as the app can run on defaults.
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in the user's file fall back to the defaults.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.Files.Input == "" {
		appConfig.Files.Input = defaults["files.input"].(string)
	}
	if appConfig.Files.Output == "" {
		appConfig.Files.Output = defaults["files.output"].(string)
	}

	i18n.Init(appConfig.Language)

	if !verbose {
		if err := logging.SetLevel(appConfig.Log.Level); err != nil {
			logging.Warnf("ignoring log.level: %v", err)
		}
	}

	// Initialize the database if not already initialized by tests or earlier setup.
	if historyWanted() && !db.IsInitialized() {
		if _, err := db.New(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
			return errors.New(i18n.T("config.error_init_db", err))
		}
	}

	return nil
}

// historyWanted reports whether config and flags ask for run history.
func historyWanted() bool {
	return appConfig.History && !noHistory
}

// historyRecorder returns the store runs are recorded to, or nil.
func historyRecorder() core.RunRecorder {
	if !historyWanted() {
		return nil
	}
	st := db.DefaultStore()
	if st == nil {
		return nil
	}
	return st
}

func parallelOptions() cipher.ParallelOptions {
	return cipher.ParallelOptions{
		Workers:   appConfig.Parallel.Workers,
		ChunkSize: appConfig.Parallel.ChunkSize,
		Threshold: appConfig.Parallel.Threshold,
	}
}

// Execute runs the CLI entrypoint. The cmd/quadshift main package should
// call this function and handle process exit.
func Execute() error {
	defer func() {
		if err := db.CloseDB(); err != nil {
			logging.Errorf("closing history database: %v", err)
		}
	}()

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Errors already shown to the user are only propagated for the exit code.
		if !isReported(err) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), describeError(err, ""))
		}
		return err
	}
	return nil
}

func applyDefaultFlags(cmd *cobra.Command) {
	if cmd.PersistentFlags().Lookup("database.type") == nil {
		cmd.PersistentFlags().String("database.type", "sqlite", "History database type (sqlite, postgres, mysql)")
	}
	if cmd.PersistentFlags().Lookup("database.dsn") == nil {
		cmd.PersistentFlags().String("database.dsn", "./quadshift.db", "History database connection string (DSN)")
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quadshift",
		Short: "Quadshift encrypts text with a quadrant shift cipher.",
		Long: `Quadshift splits the ASCII alphabet into four quadrants (a-m, n-z, A-M, N-Z)
and rotates each letter inside its own quadrant by an amount derived from
two integer parameters n and m. Everything that is not an ASCII letter is
copied unchanged.

Running without a subcommand performs the classic run: it asks for n and m,
encrypts files.input into files.output, decrypts the result again and reports
whether the round trip reproduced the original text.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runPipeline,
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logs, DB logs)")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Output language ("en", "de")`)
	cmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history database")
	applyDefaultFlags(cmd)
	addParamFlags(cmd)
	addPipelineFlags(cmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		// version needs neither config nor database.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			resolvedVersion, resolvedCommit, resolvedDate := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", resolvedVersion)
			fmt.Fprintf(out, "commit: %s\n", resolvedCommit)
			if resolvedDate != "" {
				fmt.Fprintf(out, "built: %s\n", resolvedDate)
			}
		},
	}

	cmd.AddCommand(
		newRunCmd(),
		newTransformCmd(cipher.Encrypt),
		newTransformCmd(cipher.Decrypt),
		newVerifyCmd(),
		newHistoryCmd(),
		newMaintainCmd(),
		newDebugCmd(),
		versionCmd,
	)

	return cmd
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/quadshift" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
