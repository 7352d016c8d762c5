package config

import "fmt"

// SpeedPreset represents a named animation speed.
type SpeedPreset string

const (
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
	SpeedInstant SpeedPreset = "instant"
)

// instantTravelSpeed crosses any on-screen distance within one tick.
const instantTravelSpeed = 1e6

// ParseSpeedPreset maps a flag value to a preset. Empty means normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch SpeedPreset(s) {
	case "":
		return SpeedNormal, nil
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedInstant:
		return SpeedPreset(s), nil
	default:
		return "", fmt.Errorf("unknown speed %q (want slow, normal, fast or instant)", s)
	}
}

// SpeedMultiplier returns the travel speed factor for a preset.
func SpeedMultiplier(preset SpeedPreset) float64 {
	switch preset {
	case SpeedSlow:
		return 0.5
	case SpeedFast:
		return 2.0
	default:
		return 1.0
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
func ApplySpeedPreset(cfg *SolitaireConfig, preset SpeedPreset) {
	if preset == SpeedInstant {
		cfg.Transit.TravelSpeed = instantTravelSpeed
		return
	}
	cfg.Transit.TravelSpeed *= SpeedMultiplier(preset)
}
