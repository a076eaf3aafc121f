package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "gridflow/internal/sims/overflow"
)

func writeGridFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write grid file: %v", err)
	}
	return path
}

func TestRunWorkedExample(t *testing.T) {
	cfg := NewConfig()
	cfg.Rounds = 2
	cfg.Input = writeGridFile(t, "1 2 3 4\n4 3 2 1\n0 2 4 6\n")

	var out strings.Builder
	if err := Run(cfg, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "2 4 1 3\n2 0 5 4\n1 4 3 3\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunZeroRoundsEchoesInput(t *testing.T) {
	cfg := NewConfig()
	cfg.Rounds = 0
	cfg.Input = writeGridFile(t, "4 0\n0 0\n")

	var out strings.Builder
	if err := Run(cfg, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "4 0\n0 0\n" {
		t.Fatalf("output = %q, want input unchanged", out.String())
	}
}

func TestRunRejectsNegativeRounds(t *testing.T) {
	cfg := NewConfig()
	cfg.Rounds = -1
	if err := Run(cfg, &strings.Builder{}); err == nil {
		t.Fatal("expected error for negative rounds")
	}
}

func TestRunRejectsUnknownSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "nope"
	if err := Run(cfg, &strings.Builder{}); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}

func TestRunWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.Rounds = 3
	cfg.Width = 8
	cfg.Height = 6
	cfg.Scale = 2
	cfg.Chart = filepath.Join(dir, "series.png")
	cfg.Video = filepath.Join(dir, "run.avi")

	if err := Run(cfg, &strings.Builder{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, path := range []string{cfg.Chart, cfg.Video} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("missing artifact %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("artifact %s is empty", path)
		}
	}
}
