package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"torus-life/internal/config"
	"torus-life/internal/pattern"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeSplit(t, args...)
	return out, err
}

// executeSplit returns stdout and stderr separately.
func executeSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "life version") {
		t.Fatalf("output = %q", out)
	}
}

func TestRunBlinker(t *testing.T) {
	out, err := execute(t, "run",
		"--pattern", "blinker", "--row", "2", "--col", "1",
		"--width", "5", "--height", "5",
		"--max-ticks", "2", "--tick-delay", "1ms")
	if err != nil {
		t.Fatal(err)
	}

	horizontal := ".....\n.....\n.OOO.\n.....\n.....\n"
	vertical := ".....\n..O..\n..O..\n..O..\n.....\n"
	want := "generation 0\n" + horizontal +
		"generation 1\n" + vertical +
		"generation 2\n" + horizontal
	if out != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunFinalOnly(t *testing.T) {
	out, err := execute(t, "run", "--pattern", "block", "--row", "1", "--col", "1",
		"--width", "4", "--height", "4", "--max-ticks", "3", "--tick-delay", "0s", "--final")
	if err != nil {
		t.Fatal(err)
	}
	want := "generation 3\n....\n.OO.\n.OO.\n....\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunPatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.cells")
	if err := os.WriteFile(path, []byte("!Name: Glider\n.O.\n..O\nOOO\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "run", "--pattern-file", path,
		"--width", "8", "--height", "8", "--max-ticks", "32", "--tick-delay", "0s", "--final")
	if err != nil {
		t.Fatal(err)
	}
	p, err := pattern.Parse("out", strings.TrimPrefix(out, "generation 32\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	if len(p.Cells) != len(want) {
		t.Fatalf("glider cells after a full lap = %v", p.Cells)
	}
	for i := range want {
		if p.Cells[i] != want[i] {
			t.Fatalf("glider cells after a full lap = %v, want %v", p.Cells, want)
		}
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	content := "grid:\n  width: 3\n  height: 3\nrun:\n  max_ticks: 1\n  tick_delay: 0s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "run", "--config", path, "--final")
	if err != nil {
		t.Fatal(err)
	}
	if out != "generation 1\n...\n...\n...\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestRunUnknownPattern(t *testing.T) {
	_, err := execute(t, "run", "--pattern", "spaceship", "--tick-delay", "0s")
	if err == nil || !strings.Contains(err.Error(), "unknown pattern") {
		t.Fatalf("err = %v, want unknown pattern", err)
	}
}

func TestRunInvalidSettings(t *testing.T) {
	_, err := execute(t, "run", "--max-ticks", "0")
	if err == nil || !strings.Contains(err.Error(), "invalid settings") {
		t.Fatalf("err = %v, want invalid settings", err)
	}
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--seeds", "6", "--workers", "3", "--top", "2",
		"--width", "10", "--height", "10", "--max-ticks", "5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Sweeping 6 seeds (3 workers, 5 ticks, 10x10)") {
		t.Fatalf("missing header in %q", out)
	}
	if strings.Count(out, "seed=") != 2 {
		t.Fatalf("want 2 ranked results in %q", out)
	}
}

func TestSweepDeterministic(t *testing.T) {
	args := []string{"sweep", "--seeds", "4", "--workers", "2", "--width", "8", "--height", "8", "--max-ticks", "4"}
	a, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	b, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	// Drop the timing line before comparing.
	strip := func(s string) string {
		lines := strings.Split(s, "\n")
		var kept []string
		for _, l := range lines {
			if !strings.HasPrefix(l, "Top ") {
				kept = append(kept, l)
			}
		}
		return strings.Join(kept, "\n")
	}
	if strip(a) != strip(b) {
		t.Fatalf("sweep output differs:\n%s\n---\n%s", a, b)
	}
}

func TestRunLogsToStderrByDefault(t *testing.T) {
	out, logs, err := executeSplit(t, "run", "--pattern", "block",
		"--width", "4", "--height", "4", "--max-ticks", "1", "--tick-delay", "0s", "--final")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "level=") {
		t.Fatalf("log records leaked into stdout: %q", out)
	}
	for _, msg := range []string{"run started", "run finished", "run complete"} {
		if !strings.Contains(logs, msg) {
			t.Errorf("stderr missing %q:\n%s", msg, logs)
		}
	}
}

func TestRunLogLevelFilters(t *testing.T) {
	_, logs, err := executeSplit(t, "run", "--pattern", "block", "--log-level", "warn",
		"--width", "4", "--height", "4", "--max-ticks", "1", "--tick-delay", "0s", "--final")
	if err != nil {
		t.Fatal(err)
	}
	if logs != "" {
		t.Fatalf("warn level should drop info records, got %q", logs)
	}
}

func TestTermDiscardsStderrLogging(t *testing.T) {
	cmd := &cobra.Command{Use: "term"}
	logger, closeLog, err := openLogger(cmd, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("term logger should discard records")
	}
}
