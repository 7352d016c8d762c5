// Package config provides YAML-based table configuration loading and
// animation speed presets for the solitaire platform.
package config

import (
	"errors"
	"fmt"
)

// SolitaireConfig contains all configuration for the Klondike table.
type SolitaireConfig struct {
	Layout   LayoutConfig   `yaml:"layout"`
	Transit  TransitConfig  `yaml:"transit"`
	Terminal TerminalConfig `yaml:"terminal"`
	Audio    AudioConfig    `yaml:"audio"`
}

// LayoutConfig positions the piles. All lengths are normalized screen
// fractions; fan and splay are fractions of the card height and width.
type LayoutConfig struct {
	Pad           float64 `yaml:"pad"`             // Gap between adjacent columns
	Margin        float64 `yaml:"margin"`          // Left and right screen margin
	TableauYStart float64 `yaml:"tableau_y_start"` // Minimum top of the tableau row
	TopMargin     float64 `yaml:"top_margin"`      // Gap above and below the foundation row
	TableauFan    float64 `yaml:"tableau_fan"`     // Vertical offset per tableau card
	TalonSplay    float64 `yaml:"talon_splay"`     // Horizontal offset per fanned talon card
	TalonVisible  int     `yaml:"talon_visible"`   // Talon cards fanned out
}

// TransitConfig controls the animated transfer of cards.
type TransitConfig struct {
	TravelSpeed float64 `yaml:"travel_speed"` // Normalized units per second
}

// TerminalConfig overrides layout parameters for character-cell output,
// where one cell is treated as a 1x2 pixel block.
type TerminalConfig struct {
	CardAspect   float64 `yaml:"card_aspect"`    // Card height/width in pixel units
	TableauFan   float64 `yaml:"tableau_fan"`    // Replaces Layout.TableauFan
	MinCardWidth int     `yaml:"min_card_width"` // Narrower cards pause the game
}

// AudioConfig controls the optional sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// Validate checks that the configuration can drive a table.
func (c SolitaireConfig) Validate() error {
	var errs []error

	l := c.Layout
	if l.Pad < 0 || l.Margin < 0 || l.TopMargin < 0 {
		errs = append(errs, errors.New("layout: pad, margin and top_margin must not be negative"))
	}
	if l.Pad*6+l.Margin*2 >= 1 {
		errs = append(errs, fmt.Errorf("layout: pad %.3f and margin %.3f leave no room for cards", l.Pad, l.Margin))
	}
	if l.TableauFan <= 0 || l.TableauFan > 1 {
		errs = append(errs, fmt.Errorf("layout: tableau_fan %.3f outside (0, 1]", l.TableauFan))
	}
	if l.TalonSplay < 0 || l.TalonSplay > 1 {
		errs = append(errs, fmt.Errorf("layout: talon_splay %.3f outside [0, 1]", l.TalonSplay))
	}
	if l.TalonVisible < 1 {
		errs = append(errs, fmt.Errorf("layout: talon_visible %d must be at least 1", l.TalonVisible))
	}

	if c.Transit.TravelSpeed <= 0 {
		errs = append(errs, fmt.Errorf("transit: travel_speed %.3f must be positive", c.Transit.TravelSpeed))
	}

	t := c.Terminal
	if t.CardAspect <= 0 {
		errs = append(errs, fmt.Errorf("terminal: card_aspect %.3f must be positive", t.CardAspect))
	}
	if t.TableauFan <= 0 || t.TableauFan > 1 {
		errs = append(errs, fmt.Errorf("terminal: tableau_fan %.3f outside (0, 1]", t.TableauFan))
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio: volume %.2f outside [0, 1]", c.Audio.Volume))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio: sample_rate %d must be positive", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// ForTerminal returns a copy of the layout with the terminal overrides
// applied.
func (c SolitaireConfig) ForTerminal() LayoutConfig {
	l := c.Layout
	l.TableauFan = c.Terminal.TableauFan
	return l
}
