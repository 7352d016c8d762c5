package config

import (
	_ "embed"
)

//go:embed defaults/solitaire.yaml
var defaultSolitaireYAML []byte

// DefaultSolitaireConfig returns the default table configuration.
func DefaultSolitaireConfig() SolitaireConfig {
	return SolitaireConfig{
		Layout: LayoutConfig{
			Pad:           0.008,
			Margin:        0.012,
			TableauYStart: 0.25,
			TopMargin:     0.02,
			TableauFan:    0.15,
			TalonSplay:    0.25,
			TalonVisible:  3,
		},
		Transit: TransitConfig{
			TravelSpeed: 2.5, // a full screen diagonal in ~0.6s
		},
		Terminal: TerminalConfig{
			CardAspect:   0.9,
			TableauFan:   0.3,
			MinCardWidth: 5,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSolitaireYAML
}
