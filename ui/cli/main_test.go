// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

//nolint:errcheck
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/toeirei/quadshift/internal/config"
	"github.com/toeirei/quadshift/internal/db"
	"github.com/toeirei/quadshift/internal/i18n"
	"github.com/toeirei/quadshift/internal/logging"
	"github.com/toeirei/quadshift/internal/model"
)

// setupTestEnv isolates a CLI test: a fresh working directory and config
// home, and a unique in-memory SQLite history database. It returns the
// working directory.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	// Ensure tests are isolated from any previously loaded configuration.
	viper.Reset()
	appConfig = config.Config{}

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Use a unique in-memory SQLite database per test. The file: URI with
	// mode=memory and cache=shared lets every pooled connection see it.
	dsn := fmt.Sprintf("file:memdb_%d?mode=memory&cache=shared", time.Now().UnixNano())
	t.Setenv("QUADSHIFT_DATABASE_DSN", dsn)

	i18n.Init("en")
	if err := db.InitDB("sqlite", dsn); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { _ = db.CloseDB() })
	return dir
}

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// executeCommand runs a fresh root command with args, feeding stdin and
// capturing stdout, stderr and the logger.
func executeCommand(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()

	var out, errOut bytes.Buffer
	logging.SetOutput(&errOut)
	defer logging.SetOutput(os.Stderr)

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return cmdResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRootCommandRunsClassicFlow(t *testing.T) {
	dir := setupTestEnv(t)
	writeFile(t, filepath.Join(dir, "raw_text.txt"), []byte("Hello, World! 123"))

	res := executeCommand(t, "3\n2\n")
	if res.err != nil {
		t.Fatalf("command failed: %v (stderr: %s)", res.err, res.stderr)
	}

	t.Run("prompts for both parameters", func(t *testing.T) {
		if !strings.Contains(res.stdout, "Enter value for n") || !strings.Contains(res.stdout, "Enter value for m") {
			t.Errorf("expected both prompts, got: %s", res.stdout)
		}
	})

	t.Run("reports a working round trip", func(t *testing.T) {
		if !strings.Contains(res.stdout, "✅ Encryption and decryption are working correctly!") {
			t.Errorf("expected success line, got: %s", res.stdout)
		}
	})

	t.Run("writes the ciphertext", func(t *testing.T) {
		got, err := os.ReadFile(filepath.Join(dir, "encrypted_text.txt"))
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if string(got) != "Ekeew, Nwzej! 123" {
			t.Errorf("unexpected ciphertext %q", got)
		}
	})

	t.Run("records the run", func(t *testing.T) {
		runs, err := db.ListRuns(context.Background(), 0)
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		if len(runs) != 1 || runs[0].Operation != model.OpRun || !runs[0].Verified || runs[0].N != 3 || runs[0].M != 2 {
			t.Errorf("unexpected runs: %+v", runs)
		}
	})
}

func TestRunCommand_InvalidInteger(t *testing.T) {
	dir := setupTestEnv(t)
	writeFile(t, filepath.Join(dir, "raw_text.txt"), []byte("abc"))

	res := executeCommand(t, "three\n", "run")
	if res.err == nil {
		t.Fatalf("expected an error for a non-integer n")
	}
	if !strings.Contains(res.stderr, "Please provide valid integer inputs for n and m.") {
		t.Errorf("expected invalid integer message, got: %s", res.stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "encrypted_text.txt")); !os.IsNotExist(err) {
		t.Errorf("no output must be written after invalid input")
	}
}

func TestRunCommand_EmptyStdin(t *testing.T) {
	setupTestEnv(t)
	res := executeCommand(t, "", "run")
	if res.err == nil || !strings.Contains(res.stderr, "valid integer") {
		t.Fatalf("expected invalid integer on EOF, got err=%v stderr=%s", res.err, res.stderr)
	}
}

func TestRunCommand_MissingInput(t *testing.T) {
	setupTestEnv(t)
	res := executeCommand(t, "", "run", "-n", "1", "-m", "1")
	if res.err == nil {
		t.Fatalf("expected an error for a missing input file")
	}
	if !strings.Contains(res.stderr, "Input file not found. Make sure 'raw_text.txt' exists.") {
		t.Errorf("expected not-found message, got: %s", res.stderr)
	}
}

func TestRunCommand_Undecodable(t *testing.T) {
	dir := setupTestEnv(t)
	writeFile(t, filepath.Join(dir, "raw_text.txt"), []byte{'a', 0xff, 0xfe, 'b'})

	res := executeCommand(t, "", "run", "-n", "1", "-m", "1")
	if res.err == nil || !strings.Contains(res.stderr, "Encoding issue: Non-decodable characters found.") {
		t.Fatalf("expected encoding message, got err=%v stderr=%s", res.err, res.stderr)
	}
}

func TestRunCommand_CustomPaths(t *testing.T) {
	dir := setupTestEnv(t)
	in := filepath.Join(dir, "plain.txt")
	out := filepath.Join(dir, "secret.txt.zst")
	writeFile(t, in, []byte("abcmNOPz"))

	res := executeCommand(t, "", "run", "-n", "1", "-m", "1", "-i", in, "-o", out)
	if res.err != nil {
		t.Fatalf("command failed: %v (stderr: %s)", res.err, res.stderr)
	}

	dec := executeCommand(t, "", "decrypt", "-n", "1", "-m", "1", out)
	if dec.err != nil {
		t.Fatalf("decrypt failed: %v (stderr: %s)", dec.err, dec.stderr)
	}
	if dec.stdout != "abcmNOPz" {
		t.Errorf("expected decrypted plaintext on stdout, got %q", dec.stdout)
	}
}

func TestParamsFromEnvironment(t *testing.T) {
	dir := setupTestEnv(t)
	writeFile(t, filepath.Join(dir, "raw_text.txt"), []byte("Hello, World! 123"))
	t.Setenv("QUADSHIFT_CIPHER_N", "3")
	t.Setenv("QUADSHIFT_CIPHER_M", "2")

	res := executeCommand(t, "")
	if res.err != nil {
		t.Fatalf("command failed: %v (stderr: %s)", res.err, res.stderr)
	}
	if strings.Contains(res.stdout, "Enter value") {
		t.Errorf("configured parameters must not be prompted for, got: %s", res.stdout)
	}
	got, _ := os.ReadFile(filepath.Join(dir, "encrypted_text.txt"))
	if string(got) != "Ekeew, Nwzej! 123" {
		t.Errorf("unexpected ciphertext %q", got)
	}
}

func TestParamsFlagOverridesConfig(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("QUADSHIFT_CIPHER_N", "5")
	t.Setenv("QUADSHIFT_CIPHER_M", "5")

	res := executeCommand(t, "", "encrypt", "--text", "abcmNOPz", "-n", "1", "-m", "1")
	if res.err != nil {
		t.Fatalf("command failed: %v (stderr: %s)", res.err, res.stderr)
	}
	if res.stdout != "bcdaOPQx\n" {
		t.Errorf("expected flag parameters to win, got %q", res.stdout)
	}
}

func TestOnlyMissingParameterIsPrompted(t *testing.T) {
	setupTestEnv(t)
	res := executeCommand(t, "1\n", "encrypt", "--text", "abcmNOPz", "-n", "1")
	if res.err != nil {
		t.Fatalf("command failed: %v (stderr: %s)", res.err, res.stderr)
	}
	if strings.Contains(res.stdout, "Enter value for n") || !strings.Contains(res.stdout, "Enter value for m") {
		t.Errorf("expected only the m prompt, got: %q", res.stdout)
	}
	if !strings.HasSuffix(res.stdout, "bcdaOPQx\n") {
		t.Errorf("unexpected output %q", res.stdout)
	}
}

func TestGermanPrompts(t *testing.T) {
	setupTestEnv(t)
	res := executeCommand(t, "x\n", "--language", "de", "verify", "--text", "abc")
	if !strings.Contains(res.stdout, "Wert für n eingeben") {
		t.Errorf("expected German prompt, got: %s", res.stdout)
	}
	if !strings.Contains(res.stderr, "Bitte gültige ganze Zahlen") {
		t.Errorf("expected German error, got: %s", res.stderr)
	}
}

func TestNoHistoryFlag(t *testing.T) {
	setupTestEnv(t)
	res := executeCommand(t, "", "--no-history", "encrypt", "--text", "abc", "-n", "1", "-m", "1")
	if res.err != nil {
		t.Fatalf("command failed: %v", res.err)
	}
	runs, err := db.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no recorded runs with --no-history, got %d", len(runs))
	}
}

func TestWritesDefaultConfigOnFirstRun(t *testing.T) {
	dir := setupTestEnv(t)
	res := executeCommand(t, "", "verify", "--text", "abc", "-n", "1", "-m", "1")
	if res.err != nil {
		t.Fatalf("command failed: %v", res.err)
	}
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Fatalf("config path %s escaped the test directory %s", path, dir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
	if !strings.Contains(string(data), "raw_text.txt") {
		t.Errorf("expected default files.input in written config, got:\n%s", data)
	}
}

func TestExplicitConfigFile(t *testing.T) {
	dir := setupTestEnv(t)
	cfgPath := filepath.Join(dir, "custom.yaml")
	writeFile(t, cfgPath, []byte("cipher:\n  n: 3\n  m: 2\nfiles:\n  input: in.txt\n  output: out.txt\n"))
	writeFile(t, filepath.Join(dir, "in.txt"), []byte("Hello, World! 123"))

	res := executeCommand(t, "", "--config", cfgPath)
	if res.err != nil {
		t.Fatalf("command failed: %v (stderr: %s)", res.err, res.stderr)
	}
	got, _ := os.ReadFile(filepath.Join(dir, "out.txt"))
	if string(got) != "Ekeew, Nwzej! 123" {
		t.Errorf("unexpected ciphertext %q", got)
	}
}

func TestMissingExplicitConfigFile(t *testing.T) {
	setupTestEnv(t)
	res := executeCommand(t, "", "--config", "does-not-exist.yaml", "version")
	if res.err != nil {
		t.Fatalf("version must not load config: %v", res.err)
	}
	res = executeCommand(t, "", "--config", "does-not-exist.yaml", "verify", "--text", "a", "-n", "1", "-m", "1")
	if res.err == nil {
		t.Fatalf("expected error for a missing --config file")
	}
}
