package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic deals.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic deals
	Metrics  Metrics // Pixel-space dimensions; zero value derives them from ScreenW/ScreenH
}

// Metrics carries the two pixel-space facts the game needs from the
// platform: the backbuffer size and the size of one card image.
// They are queried once per reset to convert normalized positions to
// pixel-space scale factors.
type Metrics struct {
	ScreenW float64
	ScreenH float64
	CardW   float64
	CardH   float64
}

// Valid reports whether all dimensions are positive.
func (m Metrics) Valid() bool {
	return m.ScreenW > 0 && m.ScreenH > 0 && m.CardW > 0 && m.CardH > 0
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves      int  // Transfers committed since the deal
	Foundation int  // Cards resting on the foundations
	InFlight   bool // Whether a transfer is animating
	Paused     bool // Whether the game is paused (window too small)
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventPickup  EventKind = iota + 1 // a card or run left its pile
	EventLand                         // an in-flight pile was committed
	EventDraw                         // a reserve card was turned onto the talon
	EventRecycle                      // the talon was returned to the reserve
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventLand:
		return "land"
	case EventDraw:
		return "draw"
	case EventRecycle:
		return "recycle"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Pile names the pile that was the
// source (pickup, draw) or the destination (land, recycle).
type Event struct {
	Kind  EventKind
	Pile  string
	Cards int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
