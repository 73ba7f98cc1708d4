package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsvensson/munsell/internal/engine"
)

func writeTempHCL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "munsell.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempHCL(t, `
renotation = "data/real.dat"

solver {
  threshold_chroma = 0.1
  max_iterations   = 100
  damping_floor    = 0.125
}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := engine.DefaultOptions()
	want.ThresholdChroma = 0.1
	want.MaxIterations = 100
	want.DampingFloor = 0.125
	if diff := cmp.Diff(want, cfg.Solver); diff != "" {
		t.Errorf("Solver mismatch (-want +got):\n%s", diff)
	}

	if got, want := cfg.Renotation, filepath.Join(filepath.Dir(path), "data", "real.dat"); got != want {
		t.Errorf("Renotation = %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeTempHCL(t, ""))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("empty config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAbsoluteRenotation(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "all.dat")
	cfg, err := Load(writeTempHCL(t, `renotation = "`+filepath.ToSlash(abs)+`"`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Renotation != filepath.ToSlash(abs) {
		t.Errorf("Renotation = %q, want %q", cfg.Renotation, abs)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", `solver {`, "parsing config"},
		{"unknown attribute", `colour = "red"`, "decoding config"},
		{"wrong type", `solver { max_iterations = "many" }`, "decoding config"},
		{"unknown solver field", `solver { speed = 2 }`, "decoding config"},
		{"zero iterations", `solver { max_iterations = 0 }`, "max_iterations"},
		{"negative threshold", `solver { threshold_chroma = -1 }`, "threshold_chroma"},
		{"fallback below convergence", `solver { fallback_threshold = 1e-9 }`, "fallback_threshold"},
		{"damping floor above one", `solver { damping_floor = 2 }`, "damping_floor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "munsell.hcl")
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err == nil || !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("Load() error = %v", err)
	}
}
