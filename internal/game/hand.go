package game

import (
	"github.com/google/uuid"

	"github.com/feltworks/holdem/internal/deck"
)

// MaxCommunityCards is the number of shared cards revealed across a hand.
const MaxCommunityCards = 5

// Street represents a betting round within a hand.
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
)

// String returns the string representation of a street
func (s Street) String() string {
	return [...]string{"Pre-flop", "Flop", "Turn", "River"}[s]
}

// revealCounts is how many community cards each street adds.
var revealCounts = [...]int{PreFlop: 0, Flop: 3, Turn: 1, River: 1}

// HandState carries the shared betting state for one hand: the pot, the bet
// to match, the staged community cards and the human-readable action log.
// It is created fresh per hand and mutated by exactly one actor at a time.
type HandState struct {
	ID         string
	Pot        int
	CurrentBet int
	History    []string
	Community  [MaxCommunityCards]deck.Card
	Revealed   int

	// AllIn lists players whose wager this hand emptied their stack, in
	// the order it happened. Observed for the record only; the pot is not
	// split into side pots.
	AllIn []string
}

// NewHandState creates the state for a new hand. A non-zero carryover seeds
// the pot with chips left over from a hand where every player folded.
func NewHandState(carryover int) *HandState {
	return &HandState{
		ID:  uuid.NewString(),
		Pot: carryover,
	}
}

// Visible returns the community cards revealed so far.
func (h *HandState) Visible() []deck.Card {
	return h.Community[:h.Revealed]
}

// RevealFor deals the community cards the given street calls for (three on
// the flop, one each on the turn and river). Dealing from an exhausted deck
// propagates as a fatal round error.
func (h *HandState) RevealFor(street Street, d *deck.Deck) error {
	for i := 0; i < revealCounts[street] && h.Revealed < MaxCommunityCards; i++ {
		c, err := d.Deal()
		if err != nil {
			return err
		}
		h.Community[h.Revealed] = c
		h.Revealed++
	}
	return nil
}
