package game

import "github.com/feltworks/holdem/internal/deck"

// Control identifies who drives a seat's decisions. It is resolved once at
// creation and never inferred from the display name.
type Control int

const (
	Human Control = iota
	Automated
)

// String returns the string representation of a control type
func (c Control) String() string {
	switch c {
	case Human:
		return "human"
	case Automated:
		return "automated"
	default:
		return "unknown"
	}
}

// Player represents a seat at the table: its hole cards, bankroll, fold
// status and lifetime counters. Names are unique within a game instance.
type Player struct {
	Name    string
	Control Control
	Hole    [2]deck.Card
	Chips   int
	Folded  bool

	GamesWon    int
	HandsPlayed int
	HandsWon    int
}

// NewPlayer creates a player with the given name, control type and bankroll.
func NewPlayer(name string, control Control, chips int) *Player {
	return &Player{
		Name:    name,
		Control: control,
		Chips:   chips,
	}
}

// ResetForHand clears per-hand state before new hole cards are dealt.
func (p *Player) ResetForHand() {
	p.Folded = false
	p.Hole = [2]deck.Card{}
}

// CanAct returns true if the player is still eligible to act this hand.
func (p *Player) CanAct() bool {
	return !p.Folded && p.Chips > 0
}
