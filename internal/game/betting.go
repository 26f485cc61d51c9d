package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Action represents a player action in a betting round.
type Action int

const (
	Bet Action = iota
	Raise
	Call
	Check
	Fold
	Bluff // automated seats only: a fixed-size incremental raise
)

// String returns the string representation of an action
func (a Action) String() string {
	return [...]string{"Bet", "Raise", "Call", "Check", "Fold", "Bluff"}[a]
}

// BluffSize is the fixed incremental raise an automated seat bluffs with.
const BluffSize = 20

// Decision is what an Agent chooses for its seat. Amount is only meaningful
// for Bet and Raise.
type Decision struct {
	Action Action
	Amount int
}

// Agent chooses an action for a seat. Implementations only observe the hand
// state; all chip movement is applied by the BettingRound.
type Agent interface {
	Decide(p *Player, hand *HandState) Decision
}

// BettingRound drives a single pass of the turn queue, applying each acting
// seat's decision to the shared hand state and recording the action history.
type BettingRound struct {
	hand   *HandState
	logger *log.Logger
}

// NewBettingRound creates a betting round over the given hand state.
func NewBettingRound(hand *HandState, logger *log.Logger) *BettingRound {
	return &BettingRound{hand: hand, logger: logger}
}

// Run processes every seat currently enqueued exactly once, in queue order.
// Folded and busted seats rotate through without acting. Betting is not
// re-opened when a raise lands after earlier seats have already acted.
func (br *BettingRound) Run(players []*Player, queue *TurnQueue, agents map[string]Agent) {
	for i, n := 0, queue.Len(); i < n; i++ {
		seat, ok := queue.Pop()
		if !ok {
			return
		}
		p := players[seat]
		if p.CanAct() {
			if agent := agents[p.Name]; agent != nil {
				br.apply(p, agent.Decide(p, br.hand))
			}
		}
		queue.Push(seat)
	}
}

// apply moves chips for a decision. Insufficient chips never fail: wagers are
// capped to the bankroll and an unaffordable call degrades to a check.
func (br *BettingRound) apply(p *Player, d Decision) {
	h := br.hand

	switch d.Action {
	case Bet, Raise:
		amount := d.Amount
		if amount > p.Chips {
			amount = p.Chips
		}
		if amount <= 0 {
			br.record("%s checks.", p.Name)
			return
		}
		p.Chips -= amount
		h.Pot += amount
		if amount > h.CurrentBet {
			h.CurrentBet = amount
			br.record("%s raises to %d chips.", p.Name, amount)
		} else {
			br.record("%s bets %d chips.", p.Name, amount)
		}
		br.noteAllIn(p)

	case Call:
		if p.Chips >= h.CurrentBet {
			p.Chips -= h.CurrentBet
			h.Pot += h.CurrentBet
			br.record("%s calls %d chips.", p.Name, h.CurrentBet)
			br.noteAllIn(p)
		} else {
			// Cannot afford the call; degrade to a check.
			br.record("%s checks.", p.Name)
		}

	case Check:
		br.record("%s checks.", p.Name)

	case Fold:
		p.Folded = true
		br.record("%s folds.", p.Name)

	case Bluff:
		if p.Chips >= h.CurrentBet+BluffSize {
			h.CurrentBet += BluffSize
			p.Chips -= BluffSize
			h.Pot += BluffSize
			br.record("%s bluffs with %d chips.", p.Name, BluffSize)
			br.noteAllIn(p)
		}
	}
}

// noteAllIn marks a player whose last wager emptied their stack. The pot is
// never split into side pots; the marker feeds the hand record only.
func (br *BettingRound) noteAllIn(p *Player) {
	if p.Chips != 0 {
		return
	}
	br.hand.AllIn = append(br.hand.AllIn, p.Name)
	br.record("%s is all-in.", p.Name)
}

func (br *BettingRound) record(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	br.hand.History = append(br.hand.History, line)
	if br.logger != nil {
		br.logger.Debug("action", "hand", br.hand.ID, "entry", line)
	}
}
