package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReplaceStream(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		pattern string
		repl    string
		want    string
	}{
		{"simple", "hello world", "world", "there", "hello there"},
		{"multiple", "a.b.c.d", ".", "/", "a/b/c/d"},
		{"no match", "hello", "xyz", "!", "hello"},
		{"residual", "xa", "ab", "!", "xa"},
		{"adjacent", "aaaa", "aa", "b", "bb"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := replaceStream(&buf, strings.NewReader(tc.input), tc.pattern, tc.repl)
			if err != nil {
				t.Fatalf("replaceStream failed: %v", err)
			}
			if n != int64(len(tc.input)) {
				t.Errorf("read %d bytes, want %d", n, len(tc.input))
			}
			if buf.String() != tc.want {
				t.Errorf("got %q, want %q", buf.String(), tc.want)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	tt := []struct {
		args  []string
		check func() bool
	}{
		{
			args: []string{"-w", "40"},
			check: func() bool {
				return width == 40
			},
		},
		{
			args: []string{"--config", "testdata/fmtt.yml"},
			check: func() bool {
				return configFile == "testdata/fmtt.yml"
			},
		},
	}

	for _, v := range tt {
		err := rootCmd.ParseFlags(v.args)
		if err != nil {
			t.Fatal(err)
		}
		if !v.check() {
			t.Errorf("Parsing flag failed: %s", v.args)
		}
	}
}

func TestReplaceFlags(t *testing.T) {
	if err := replaceCmd.ParseFlags([]string{"-H"}); err != nil {
		t.Fatal(err)
	}
	if !highlight {
		t.Error("expected highlight to be set")
	}
}

func TestReplaceHighlightKeepsMatch(t *testing.T) {
	highlight = true
	defer func() { highlight = false }()

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("a TODO b"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	replaceCmd.SetOut(&buf)
	defer replaceCmd.SetOut(nil)

	if err := runReplace(replaceCmd, []string{"TODO", path}); err != nil {
		t.Fatalf("runReplace failed: %v", err)
	}
	// The match is styled, not substituted: its text must survive.
	if !strings.Contains(buf.String(), "TODO") {
		t.Errorf("highlighted output should keep the match text, got %q", buf.String())
	}
}

func TestReplaceRequiresReplacement(t *testing.T) {
	highlight = false
	if err := runReplace(replaceCmd, []string{"TODO"}); err == nil {
		t.Error("expected an error when NEW is missing without --highlight")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("FMTT_TEST_DIR", "/tmp/fmtt")
	if got := expandPath("$FMTT_TEST_DIR/notes.txt"); got != "/tmp/fmtt/notes.txt" {
		t.Errorf("got %q, want %q", got, "/tmp/fmtt/notes.txt")
	}
}
