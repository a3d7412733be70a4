package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Simulation.Iterations != DefaultIterations {
		t.Errorf("Iterations = %d, want %d", cfg.Simulation.Iterations, DefaultIterations)
	}
	if cfg.Simulation.Damping != DefaultDamping {
		t.Errorf("Damping = %v, want %v", cfg.Simulation.Damping, DefaultDamping)
	}
	if cfg.Simulation.Bump != DefaultBump {
		t.Errorf("Bump = %v, want %v", cfg.Simulation.Bump, DefaultBump)
	}
	if cfg.Simulation.InitialDuration != DefaultInitialDuration {
		t.Errorf("InitialDuration = %v, want %v", cfg.Simulation.InitialDuration, DefaultInitialDuration)
	}
	if !cfg.Recorder.Enabled {
		t.Error("recorder should be enabled by default")
	}
	if cfg.Solve.OutputDir != "output" {
		t.Errorf("OutputDir = %q", cfg.Solve.OutputDir)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"simulation": {"iterations": 25, "damping": 0.5},
		"solve": {"skipOptimize": true, "outputDir": "out"},
		"recorder": {"enabled": false},
		"workers": 3
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Iterations != 25 {
		t.Errorf("Iterations = %d, want 25", cfg.Simulation.Iterations)
	}
	if cfg.Simulation.Damping != 0.5 {
		t.Errorf("Damping = %v, want 0.5", cfg.Simulation.Damping)
	}
	if cfg.Simulation.Bump != DefaultBump {
		t.Errorf("Bump = %v, want default", cfg.Simulation.Bump)
	}
	if !cfg.Solve.SkipOptimize || cfg.Solve.OutputDir != "out" {
		t.Errorf("Solve = %+v", cfg.Solve)
	}
	if cfg.Recorder.Enabled {
		t.Error("recorder should be disabled")
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
simulation:
  iterations: 10
  initialDuration: 2
  damping: 1.5
logging:
  intervalWriteToLog: 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Iterations != 10 {
		t.Errorf("Iterations = %d, want 10", cfg.Simulation.Iterations)
	}
	if cfg.Simulation.InitialDuration != 2 {
		t.Errorf("InitialDuration = %v, want 2", cfg.Simulation.InitialDuration)
	}
	// 超出范围的衰减系数回落到默认值
	if cfg.Simulation.Damping != DefaultDamping {
		t.Errorf("Damping = %v, want default", cfg.Simulation.Damping)
	}
	if cfg.Logging.IntervalWriteToLog != 50 {
		t.Errorf("IntervalWriteToLog = %d, want 50", cfg.Logging.IntervalWriteToLog)
	}
	if !cfg.Recorder.Enabled {
		t.Error("recorder should stay enabled when not mentioned")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := Load(writeFile(t, "bad.yml", "simulation: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestGlobalConfig(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })

	SetConfig(nil)
	if GetConfig().Simulation.Iterations != DefaultIterations {
		t.Error("GetConfig should fall back to defaults")
	}

	path := writeFile(t, "config.json", `{"simulation": {"iterations": 7}}`)
	if err := LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if GetConfig().Simulation.Iterations != 7 {
		t.Errorf("Iterations = %d, want 7", GetConfig().Simulation.Iterations)
	}
}
