package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfileMissingFile(t *testing.T) {
	profile, err := LoadProfile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile.RefreshInterval != 1000 {
		t.Errorf("expected default refresh interval, got %d", profile.RefreshInterval)
	}
	if profile.Latitude != 41.29 || profile.Longitude != 69.23 {
		t.Errorf("expected default coordinates, got %f/%f", profile.Latitude, profile.Longitude)
	}
}

func TestLoadProfileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	profile, _ := LoadProfile(path)
	if profile.HistoryLength != 256 {
		t.Errorf("bad JSON should fall back to defaults, got history %d", profile.HistoryLength)
	}
}

func TestValidateNormalizes(t *testing.T) {
	p := &Profile{
		RefreshInterval: 5,
		MaxProcesses:    -1,
		HistoryLength:   0,
		Latitude:        400,
		Longitude:       -999,
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if p.RefreshInterval != 1000 || p.MaxProcesses != 500 || p.HistoryLength != 256 {
		t.Errorf("Validate did not normalize: %+v", p)
	}
	if p.Latitude != 41.29 || p.Longitude != 69.23 {
		t.Errorf("Validate did not normalize coordinates: %+v", p)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.json")
	want := DefaultProfile()
	want.Theme = "custom"
	want.Latitude = 52.52
	want.Longitude = 13.41

	if err := SaveProfile(want, path); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	got, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if got.Theme != "custom" || got.Latitude != 52.52 || got.Longitude != 13.41 {
		t.Errorf("reloaded profile mismatch: %+v", got)
	}
}
