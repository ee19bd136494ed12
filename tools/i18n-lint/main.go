// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-lint checks the locale files against the source tree.
//
// It reports keys used in i18n.T() calls but missing from the primary
// locale, keys a secondary locale lacks, keys nobody uses, and messages
// whose format verbs differ between locales. Run it from the repository
// root: `go run ./tools/i18n-lint`.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

var (
	keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	verbRe    = regexp.MustCompile(`%[-+# 0-9.]*[a-zA-Z%]`)
)

func main() {
	failed, err := run(".", os.Stdout)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

// run lints root and reports whether any blocking problem was found.
// Orphaned keys are only a warning.
func run(root string, w io.Writer) (bool, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return false, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadMessages(filepath.Join(root, localesDir, primaryLocale))
	if err != nil {
		return false, fmt.Errorf("loading primary locale: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(root, localesDir, "*.yaml"))
	if err != nil {
		return false, err
	}

	failed := false
	fmt.Fprintf(w, "🔍 %d keys used, %d keys in %s\n", len(used), len(primary), primaryLocale)

	for _, k := range sortedKeys(used) {
		if _, ok := primary[k]; !ok {
			fmt.Fprintf(w, "  - Undefined: %s\n", k)
			failed = true
		}
	}
	for _, k := range sortedKeys(primary) {
		if _, ok := used[k]; !ok {
			fmt.Fprintf(w, "  - Orphaned: %s\n", k)
		}
	}

	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		other, err := loadMessages(file)
		if err != nil {
			fmt.Fprintf(w, "  - ❌ %s: %v\n", filepath.Base(file), err)
			failed = true
			continue
		}
		for _, k := range sortedKeys(primary) {
			msg, ok := other[k]
			if !ok {
				fmt.Fprintf(w, "  - Missing in %s: %s\n", filepath.Base(file), k)
				failed = true
				continue
			}
			if a, b := formatVerbs(primary[k]), formatVerbs(msg); a != b {
				fmt.Fprintf(w, "  - Verb mismatch in %s: %s (%q vs %q)\n", filepath.Base(file), k, a, b)
				failed = true
			}
		}
	}

	if failed {
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	} else {
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
	return failed, nil
}

// findUsedKeys scans non-test .go files below root for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCallRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadMessages reads a locale file into a flat key to message map.
func loadMessages(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flattenYAML("", data, out)
	return out, nil
}

// flattenYAML converts nested maps into dot-separated keys.
func flattenYAML(prefix string, node interface{}, out map[string]string) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, out)
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

// formatVerbs returns the printf verbs of msg in order, e.g. "%s %d".
func formatVerbs(msg string) string {
	return strings.Join(verbRe.FindAllString(msg, -1), " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
