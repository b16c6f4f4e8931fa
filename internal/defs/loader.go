// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadArchetypes reads a tuning file on top of the default archetypes.
// Fields missing from the file keep their default values. An empty path returns the defaults.
func LoadArchetypes(path string) (Archetypes, error) {
	archetypes := DefaultArchetypes()
	if path == "" {
		return archetypes, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return archetypes, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(file, &archetypes); err != nil {
		return DefaultArchetypes(), fmt.Errorf("failed to unmarshal tuning file: %w", err)
	}
	if err := archetypes.Validate(); err != nil {
		return DefaultArchetypes(), fmt.Errorf("invalid tuning file %s: %w", path, err)
	}

	slog.Info("loaded enemy tuning", "path", path)
	return archetypes, nil
}

// Validate проверяет, что значения образуют корректные диапазоны.
func (a Archetypes) Validate() error {
	z := a.Zombie
	switch {
	case z.RadiusMin <= 0 || z.RadiusMax < z.RadiusMin:
		return fmt.Errorf("zombie radius range [%v, %v] is invalid", z.RadiusMin, z.RadiusMax)
	case z.SpeedJitterMax < z.SpeedJitterMin:
		return fmt.Errorf("zombie speed jitter range [%v, %v] is invalid", z.SpeedJitterMin, z.SpeedJitterMax)
	case z.HealthPerRadius <= 0 || z.HealthJitterMin <= 0 || z.HealthJitterMax < z.HealthJitterMin:
		return fmt.Errorf("zombie health parameters are invalid")
	case z.ContactDPS < 0:
		return fmt.Errorf("zombie contact dps must not be negative")
	case z.Variants < 1:
		return fmt.Errorf("zombie variants must be at least 1")
	}
	b := a.Boss
	switch {
	case b.Radius <= 0:
		return fmt.Errorf("boss radius must be positive")
	case b.Health() <= 0:
		return fmt.Errorf("boss health must be positive")
	case b.SpeedMultiplier <= 0:
		return fmt.Errorf("boss speed multiplier must be positive")
	case b.AttackCooldown <= 0 || b.AttackDuration <= 0:
		return fmt.Errorf("boss attack timings must be positive")
	}
	return nil
}
