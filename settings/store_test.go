package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "nope", "settings.yaml"))
	if got := st.Load(); got != Default() {
		t.Errorf("Expected defaults for missing file, got %+v", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: [\x00"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	st := NewStore(path)
	if got := st.Load(); got != Default() {
		t.Errorf("Expected defaults for corrupt file, got %+v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warpclock", "settings.yaml")
	st := NewStore(path)

	saved := Settings{
		Rate:            2.5,
		ShowSecondHand:  false,
		ShowNumbers:     true,
		ShowDigitalTime: true,
		Theme:           ThemeClassic,
		ColorMode:       ColorModeDark,
	}
	st.Save(saved)

	if got := st.Load(); got != saved {
		t.Errorf("Round trip mismatch:\nsaved:  %+v\nloaded: %+v", saved, got)
	}
}

func TestLoadClampsStoredRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	fixture := "rate: 99.0\nshow_second_hand: true\ncolor_mode: light\n"
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got := NewStore(path).Load()
	if got.Rate != 10.0 {
		t.Errorf("Expected stored rate clamped to max, got %v", got.Rate)
	}
	if got.ColorMode != ColorModeLight {
		t.Errorf("Expected light color mode, got %v", got.ColorMode)
	}
	// Missing fields come back as defaults
	if !got.ShowNumbers || got.Theme != ThemeClassic {
		t.Errorf("Expected missing fields defaulted, got %+v", got)
	}
}

func TestLoadStringRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("rate: \"1.5\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if got := NewStore(path).Load().Rate; got != 1.5 {
		t.Errorf("Expected string rate coerced to 1.5, got %v", got)
	}
}

func TestSaveNeverPanicsOnFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the write fail
	target := filepath.Join(dir, "settings.yaml")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}

	st := NewStore(target)
	st.Save(Default()) // must swallow the error
}
