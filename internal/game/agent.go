package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
)

// Fixed wager an automated seat uses when betting or raising.
const BotWager = 50

// DefaultRaiseThreshold is the hand score above which a bot always raises.
const DefaultRaiseThreshold = 5

// BotAgent picks actions with the table's automated heuristic: a hand scoring
// above the threshold (against the currently visible community cards) always
// raises; anything else chooses uniformly among raising, calling, folding
// and bluffing.
type BotAgent struct {
	rng       *rand.Rand
	threshold int
}

// NewBotAgent creates an automated agent using the given RNG and raise
// threshold.
func NewBotAgent(rng *rand.Rand, threshold int) *BotAgent {
	return &BotAgent{rng: rng, threshold: threshold}
}

// Decide implements Agent.
func (b *BotAgent) Decide(p *Player, hand *HandState) Decision {
	choice := 0
	if Score(p.Hole, hand.Visible()) <= b.threshold {
		choice = b.rng.IntN(4)
	}

	switch choice {
	case 0:
		wager := BotWager
		if wager > p.Chips {
			wager = p.Chips
		}
		return Decision{Action: Raise, Amount: wager}
	case 1:
		return Decision{Action: Call}
	case 2:
		return Decision{Action: Fold}
	default:
		return Decision{Action: Bluff}
	}
}

// InputPort is the blocking request/response boundary to whatever collects
// human responses. Implementations return raw tokens; validation and
// re-prompting live on the core side so tests can script an input source.
type InputPort interface {
	// ReadToken prints the prompt and blocks for a single whitespace-delimited
	// token. An error means the input source is gone.
	ReadToken(prompt string) (string, error)

	// ReadInt prints the prompt and blocks for an integer. A non-numeric
	// response returns an error; callers re-prompt. io.EOF means the input
	// source is gone.
	ReadInt(prompt string) (int, error)
}

// HumanAgent collects a decision from a person through the InputPort. It
// re-prompts indefinitely on invalid tokens and non-positive bet amounts.
type HumanAgent struct {
	input   InputPort
	display Display
}

// NewHumanAgent creates a human agent over the given ports.
func NewHumanAgent(input InputPort, display Display) *HumanAgent {
	return &HumanAgent{input: input, display: display}
}

// Decide implements Agent. The menu tokens are case-sensitive.
func (h *HumanAgent) Decide(p *Player, hand *HandState) Decision {
	for {
		token, err := h.input.ReadToken(fmt.Sprintf(
			"%s, it's your turn. Enter your action (Bet, Raise, Call, Check, Fold): ", p.Name))
		if err != nil {
			// Input source is gone; fold rather than stall the hand.
			return Decision{Action: Fold}
		}

		switch token {
		case "Bet":
			return Decision{Action: Bet, Amount: h.readAmount()}
		case "Raise":
			return Decision{Action: Raise, Amount: h.readAmount()}
		case "Call":
			return Decision{Action: Call}
		case "Check":
			return Decision{Action: Check}
		case "Fold":
			return Decision{Action: Fold}
		default:
			h.display.Announce("Invalid action. Please try again.")
		}
	}
}

func (h *HumanAgent) readAmount() int {
	for {
		n, err := h.input.ReadInt("Enter bet amount: ")
		if errors.Is(err, io.EOF) {
			return 0
		}
		if err == nil && n > 0 {
			return n
		}
		h.display.Announce("Invalid input. Please enter a valid positive bet amount.")
	}
}
