package main

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintCommandUsage - Every command has help
// ---------------------------------------------------------------------------

func TestPrintCommandUsage(t *testing.T) {
	t.Parallel()

	for _, cmd := range commands {
		t.Run(cmd, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printCommandUsage(&buf, cmd)
			if !strings.HasPrefix(buf.String(), "Usage: logokit "+cmd) {
				t.Errorf("help for %s should start with its usage line, got %q", cmd, buf.String())
			}
		})
	}
}

func TestPrintCommandUsage_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd     string
		want    []string
		notWant []string
	}{
		{"extract", []string{"--root", "--assets", "--quiet"}, []string{"--class", "--json"}},
		{"inline", []string{"--class", "--template", "--clean-svg"}, []string{"--json"}},
		{"build", []string{"--class", "--svg"}, nil},
		{"doctor", []string{"--json", "--class"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printCommandUsage(&buf, tt.cmd)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("help for %s should mention %s", tt.cmd, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(buf.String(), w) {
					t.Errorf("help for %s should not mention %s", tt.cmd, w)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - help command
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv()
		if code := runHelp(nil, env); code != ExitSuccess {
			t.Errorf("runHelp() = %d, want 0", code)
		}
		for _, cmd := range commands {
			if !strings.Contains(stdout.String(), "  "+cmd) {
				t.Errorf("usage should list %s", cmd)
			}
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := newTestEnv()
		if code := runHelp([]string{"render"}, env); code != ExitUsage {
			t.Errorf("runHelp() = %d, want ExitUsage", code)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout should be empty, got %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "unknown command: render") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}
