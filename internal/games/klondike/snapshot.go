package klondike

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateInFlight    GameStateType = "in_flight"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete table for determinism testing. Piles
// are rendered with Pile.String so snapshots compare with ==.
type Snapshot struct {
	Tick        uint64
	Seed        int64
	Moves       int
	Tableau     [TableauCount]string
	Foundations [FoundationCount]string
	Reserve     string
	Talon       string
	Moving      string // Empty unless a transit is in flight
	Progress    float64
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Seed:    g.seed,
		Moves:   g.moves,
		Reserve: g.board.Reserve.String(),
		Talon:   g.board.Talon.String(),
		State:   StatePlaying,
	}
	for i, p := range g.board.Tableau {
		s.Tableau[i] = p.String()
	}
	for i, p := range g.board.Foundations {
		s.Foundations[i] = p.String()
	}
	if t, ok := g.anim.Current(); ok {
		s.Moving = t.Moving.String()
		s.Progress = t.Progress
		s.State = StateInFlight
	}
	if g.tooSmall {
		s.State = StatePausedSmall
	}
	return s
}
