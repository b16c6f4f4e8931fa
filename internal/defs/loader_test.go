package defs

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"zombie-shooter/internal/config"
)

func TestLoadArchetypes_EmptyPathReturnsDefaults(t *testing.T) {
	got, err := LoadArchetypes("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultArchetypes() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestLoadArchetypes_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	data := `{"zombie": {"base_speed": 90}, "boss": {"health_multiplier": 5}}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadArchetypes(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Zombie.BaseSpeed != 90 {
		t.Errorf("BaseSpeed = %v, want 90", got.Zombie.BaseSpeed)
	}
	if got.Zombie.RadiusMax != 26 {
		t.Errorf("RadiusMax = %v, want default 26", got.Zombie.RadiusMax)
	}
	if got.Boss.Health() != 1000 {
		t.Errorf("boss health = %v, want 1000", got.Boss.Health())
	}
}

func TestLoadArchetypes_RejectsInvalidRanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(`{"zombie": {"radius_min": 30, "radius_max": 10}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadArchetypes(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got != DefaultArchetypes() {
		t.Error("defaults must be returned on error")
	}
}

func TestLoadArchetypes_MissingFile(t *testing.T) {
	if _, err := LoadArchetypes(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultBossDerivedStats(t *testing.T) {
	a := DefaultArchetypes()
	if got := a.Boss.Health(); got != 600 {
		t.Errorf("Health() = %v, want 600", got)
	}
	if got := a.Boss.Speed(a.Zombie); math.Abs(got-56) > 1e-9 {
		t.Errorf("Speed() = %v, want 56", got)
	}
	if got := a.Boss.ContactDPS(a.Zombie); got != 56 {
		t.Errorf("ContactDPS() = %v, want 56", got)
	}
}

func TestDefaultZombieContactDamageFromConfig(t *testing.T) {
	if got := DefaultArchetypes().Zombie.ContactDPS; got != config.ZombieContactDPS {
		t.Errorf("ContactDPS = %v, want %v", got, config.ZombieContactDPS)
	}
}
