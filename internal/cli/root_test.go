package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ch3mestry/bioTest/internal/tui"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func stubProgram(t *testing.T) *[]tea.Model {
	t.Helper()
	var started []tea.Model
	orig := runProgram
	runProgram = func(m tea.Model) error {
		started = append(started, m)
		return nil
	}
	t.Cleanup(func() { runProgram = orig })
	return &started
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootStartsUI(t *testing.T) {
	isolateConfig(t)
	started := stubProgram(t)

	if _, err := execute(t, "--seq1", "ARND", "--seq2", "ARNE"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(*started) != 1 {
		t.Fatalf("started %d programs, want 1", len(*started))
	}
	app, ok := (*started)[0].(tui.App)
	if !ok {
		t.Fatalf("model is %T, want tui.App", (*started)[0])
	}
	if !strings.Contains(app.View(), "Длина: 4") {
		t.Errorf("prefilled pair not rendered:\n%s", app.View())
	}
}

func TestRootLoadsFASTA(t *testing.T) {
	isolateConfig(t)
	started := stubProgram(t)

	path := filepath.Join(t.TempDir(), "pair.fa")
	if err := os.WriteFile(path, []byte(">a\nARND\n>b\nARNE\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--fasta", path, "--language", "en"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	app := (*started)[0].(tui.App)
	if !strings.Contains(app.View(), "Differences: 1") {
		t.Errorf("FASTA pair not rendered in English:\n%s", app.View())
	}
}

func TestRootFASTAErrors(t *testing.T) {
	isolateConfig(t)
	stubProgram(t)

	if _, err := execute(t, "--fasta", filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Fatal("expected error for missing FASTA file")
	}
}

func TestRootRejectsConflictingFlags(t *testing.T) {
	isolateConfig(t)
	stubProgram(t)

	if _, err := execute(t, "--fasta", "x.fa", "--seq1", "ARND"); err == nil {
		t.Fatal("expected error for --fasta with --seq1")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "biotest.yaml")

	out, err := execute(t, "config", "init", "-o", path, "--language", "en", "--log-level", "debug")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config init printed %q, want %q", out, path)
	}

	out, err = execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"language: en", "log.level: debug"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output %q missing %q", out, want)
		}
	}
}

func TestRootUnknownLanguageFallsBackToRussian(t *testing.T) {
	isolateConfig(t)
	started := stubProgram(t)
	logPath := filepath.Join(t.TempDir(), "biotest.log")

	if _, err := execute(t, "--seq1", "ARND", "--seq2", "ARND", "--language", "de", "--log-file", logPath, "--log-level", "warn"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	app := (*started)[0].(tui.App)
	if !strings.Contains(app.View(), "Визуализировать") {
		t.Errorf("unknown language did not fall back to Russian:\n%s", app.View())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), `no translation for language "de"`) {
		t.Errorf("log = %q, want missing translation warning", data)
	}
}

func TestRootLogsUIFailure(t *testing.T) {
	isolateConfig(t)
	orig := runProgram
	runProgram = func(tea.Model) error { return errors.New("no tty") }
	t.Cleanup(func() { runProgram = orig })
	logPath := filepath.Join(t.TempDir(), "biotest.log")

	if _, err := execute(t, "--log-file", logPath); err == nil {
		t.Fatal("expected error when the UI fails")
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "ui stopped: no tty") {
		t.Errorf("log = %q, want UI failure", data)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
