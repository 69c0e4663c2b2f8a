package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	sc := Default()

	if sc.Figure != "4-1" {
		t.Errorf("expected figure 4-1, got %s", sc.Figure)
	}
	if sc.Constants.PI != 1.65e9 {
		t.Errorf("expected initial population 1.65e9, got %g", sc.Constants.PI)
	}
	if sc.Constants.NRUN1 != 1 {
		t.Errorf("expected NRUN1 1, got %g", sc.Constants.NRUN1)
	}
	if sc.Constants.EndTime != 2100 {
		t.Errorf("expected end time 2100, got %g", sc.Constants.EndTime)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := "figure: 4-5\nconstants:\n  nrun1: 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if sc.Figure != "4-5" {
		t.Errorf("expected figure 4-5, got %s", sc.Figure)
	}
	if sc.Constants.NRUN1 != 0.25 {
		t.Errorf("expected NRUN1 0.25, got %g", sc.Constants.NRUN1)
	}
	// everything the file does not mention stays at the default
	if sc.Constants.NRUN != 1 {
		t.Errorf("expected NRUN 1, got %g", sc.Constants.NRUN)
	}
	if sc.Constants.BRN != .04 {
		t.Errorf("expected BRN 0.04, got %g", sc.Constants.BRN)
	}
	if sc.Constants.DT != .2 {
		t.Errorf("expected DT 0.2, got %g", sc.Constants.DT)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	sc := Default()
	sc.Figure = "4-7"
	sc.Constants.NRUN1 = 0.25
	sc.Constants.POLN1 = 2
	if err := Save(path, sc); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *sc {
		t.Errorf("round trip changed the scenario:\n got %+v\nwant %+v", *got, *sc)
	}
}

func TestGetPreset(t *testing.T) {
	sc := GetPreset("resources-conserved")
	if sc == nil {
		t.Fatal("expected preset, got nil")
	}
	if sc.Constants.NRUN1 != 0.25 {
		t.Errorf("expected NRUN1 0.25, got %g", sc.Constants.NRUN1)
	}
	if sc.Figure != "4-5" {
		t.Errorf("expected figure 4-5, got %s", sc.Figure)
	}

	// presets hand out copies
	sc.Constants.NRUN1 = 99
	if again := GetPreset("resources-conserved"); again.Constants.NRUN1 != 0.25 {
		t.Errorf("preset mutated through a returned copy: NRUN1 = %g", again.Constants.NRUN1)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if sc := GetPreset("nonexistent"); sc != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(names))
	}
	if names[0] != "resources-conserved" || names[1] != "standard" {
		t.Errorf("expected sorted names, got %v", names)
	}
}
