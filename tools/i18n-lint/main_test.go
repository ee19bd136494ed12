// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func TestFlattenYAML(t *testing.T) {
	out := make(map[string]string)
	flattenYAML("", map[string]interface{}{
		"top":          map[string]interface{}{"sub": "value"},
		"prompt.title": "Title",
	}, out)
	if out["top.sub"] != "value" || out["prompt.title"] != "Title" {
		t.Fatalf("unexpected flattened keys: %v", out)
	}
}

func TestFormatVerbs(t *testing.T) {
	if got := formatVerbs("Removed %d runs older than %s (100%%)"); got != "%d %s %%" {
		t.Fatalf("unexpected verbs %q", got)
	}
	if got := formatVerbs("%-8s  %t"); got != "%-8s %t" {
		t.Fatalf("unexpected verbs %q", got)
	}
}

func TestFindUsedKeysSkipsTestsAndTools(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a/a.go":         `package a; func f() { _ = i18n.T("used.key", 1) }`,
		"a/a_test.go":    `package a; func g() { _ = i18n.T("test.only") }`,
		"tools/x/x.go":   `package x; func h() { _ = i18n.T("tool.key") }`,
		"_examples/e.go": `package e; func k() { _ = i18n.T("example.key") }`,
	})
	used, err := findUsedKeys(root)
	if err != nil {
		t.Fatalf("findUsedKeys failed: %v", err)
	}
	if len(used) != 1 {
		t.Fatalf("expected only used.key, got %v", used)
	}
	if _, ok := used["used.key"]; !ok {
		t.Fatalf("expected used.key, got %v", used)
	}
}

func TestRunConsistent(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":                       `package main; func f() { i18n.T("a.b", 1) }`,
		"internal/i18n/locales/en.yaml": "a.b: \"%d files\"\n",
		"internal/i18n/locales/de.yaml": "a.b: \"%d Dateien\"\n",
	})
	var buf bytes.Buffer
	failed, err := run(root, &buf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if failed {
		t.Fatalf("expected a clean run:\n%s", buf.String())
	}
}

func TestRunReportsProblems(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":                       `package main; func f() { i18n.T("a.b"); i18n.T("c.d") }`,
		"internal/i18n/locales/en.yaml": "a.b: \"%s here\"\nunused.key: x\ne.f: y\n",
		"internal/i18n/locales/de.yaml": "a.b: \"%d hier\"\nunused.key: x\n",
	})
	var buf bytes.Buffer
	failed, err := run(root, &buf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !failed {
		t.Fatalf("expected problems to be reported")
	}
	out := buf.String()
	for _, want := range []string{
		"Undefined: c.d",
		"Orphaned: unused.key",
		"Missing in de.yaml: e.f",
		"Verb mismatch in de.yaml: a.b",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRepositoryLocalesAreConsistent(t *testing.T) {
	var buf bytes.Buffer
	failed, err := run(filepath.Join("..", ".."), &buf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if failed {
		t.Fatalf("locale files are inconsistent:\n%s", buf.String())
	}
}
