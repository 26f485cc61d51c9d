package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/feltworks/holdem/internal/deck"
)

// SaveFunc persists the roster between hands. Failures are reported as
// warnings and never interrupt play.
type SaveFunc func(players []*Player) error

// Game ties the roster, deck, agents and observers into the hand-by-hand
// loop. Everything runs on the calling goroutine; the only suspension point
// is the human action prompt.
type Game struct {
	cfg     *Config
	roster  *Roster
	deck    *deck.Deck
	graph   *InteractionGraph
	agents  map[string]Agent
	display Display
	input   InputPort
	save    SaveFunc
	logger  *log.Logger
	clock   quartz.Clock
}

// Options collects the collaborators a Game needs.
type Options struct {
	Config  *Config
	Roster  *Roster
	Deck    *deck.Deck
	Agents  map[string]Agent
	Display Display
	Input   InputPort
	Save    SaveFunc
	Logger  *log.Logger
	Clock   quartz.Clock
}

// New creates a game from the given options. A nil clock defaults to the
// real clock; a nil save func disables the between-hands save prompt.
func New(opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Game{
		cfg:     opts.Config,
		roster:  opts.Roster,
		deck:    opts.Deck,
		graph:   NewInteractionGraph(),
		agents:  opts.Agents,
		display: opts.Display,
		input:   opts.Input,
		save:    opts.Save,
		logger:  opts.Logger,
		clock:   clock,
	}
}

// Graph returns the interaction graph accumulated so far.
func (g *Game) Graph() *InteractionGraph {
	return g.graph
}

// Run plays hands until one player holds all the chips, the user declines to
// continue, or the context is cancelled. Only a deck exhausted mid-hand
// terminates the session abnormally.
func (g *Game) Run(ctx context.Context) error {
	carry := 0
	for g.roster.WithChips() > 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := g.playHand(&carry)
		if err != nil {
			return err
		}
		if quit {
			g.display.Announce("Exiting the game...")
			break
		}
	}
	g.finish()
	return nil
}

func (g *Game) playHand(carry *int) (bool, error) {
	hand := NewHandState(*carry)
	*carry = 0

	g.display.Announce("New Round Begins!")
	g.logger.Info("starting hand", "hand", hand.ID, "players", g.roster.Len(), "carryover", hand.Pot)

	g.deck.Reset()
	g.deck.Shuffle()

	players := g.roster.Players()
	for _, p := range players {
		p.ResetForHand()
		for i := 0; i < 2; i++ {
			c, err := g.deck.Deal()
			if err != nil {
				return false, err
			}
			p.Hole[i] = c
		}
	}

	for _, p := range players {
		g.display.ShowHand(p, p.Control == Automated)
	}

	queue := NewTurnQueue(len(players))
	for street := PreFlop; street <= River; street++ {
		if street != PreFlop {
			g.display.Announce("Dealing the " + street.String() + "...")
			if err := hand.RevealFor(street, g.deck); err != nil {
				return false, err
			}
			g.pause(time.Duration(g.cfg.Table.RevealDelaySec) * time.Second)
			g.display.ShowCommunity(hand.Visible())
		}

		g.display.Announce(street.String() + " betting begins.")
		NewBettingRound(hand, g.logger).Run(players, queue, g.agents)
		g.graph.RecordRound(players, hand.CurrentBet)
		g.display.ShowPot(hand.Pot)
	}

	g.display.ShowHistory(hand.History)

	g.display.Announce("Showdown! Evaluating hands...")
	g.pause(time.Duration(g.cfg.Table.ShowdownDelay) * time.Second)
	for _, p := range players {
		if !p.Folded {
			g.display.ShowHand(p, false)
		}
	}

	results := ResolveShowdown(players, hand)
	if results == nil {
		g.display.Announce("No winner, all players folded.")
		*carry = hand.Pot
		g.logger.Info("hand carried over", "hand", hand.ID, "pot", hand.Pot)
	} else {
		g.display.ShowShowdown(results)
	}

	for _, p := range g.roster.EliminateBusted() {
		g.display.Announce(p.Name + " is eliminated from the game.")
		g.logger.Info("player eliminated", "player", p.Name)
	}
	g.roster.SortByChips()
	g.display.ShowStandings(Snapshot(g.roster.Players()))

	if g.roster.WithChips() <= 1 {
		return false, nil
	}
	return g.betweenHands(), nil
}

// betweenHands runs the continue and save prompts. Any input failure quits
// the game cleanly.
func (g *Game) betweenHands() bool {
	answer, err := g.input.ReadToken("Would you like to continue to the next round? (y/n): ")
	if err != nil || answer == "n" || answer == "N" {
		return true
	}

	if g.save == nil {
		return false
	}
	answer, err = g.input.ReadToken("Would you like to save the game? (y/n): ")
	if err != nil {
		return true
	}
	if answer == "y" || answer == "Y" {
		if err := g.save(g.roster.Players()); err != nil {
			g.logger.Warn("save failed", "error", err)
			g.display.Announce("Unable to save game state.")
		} else {
			g.display.Announce("Game state saved successfully.")
		}
	}
	return false
}

func (g *Game) finish() {
	if g.roster.WithChips() <= 1 {
		g.display.Announce("Game Over!")
		for _, p := range g.roster.Players() {
			if p.Chips > 0 {
				g.display.Announce(p.Name + " is the winner!")
			}
		}
	}

	g.display.ShowInteractions(g.graph)
	g.display.ShowStandings(Snapshot(g.roster.Players()))
	g.display.ShowStatistics(g.roster.Players())
}

func (g *Game) pause(d time.Duration) {
	if d <= 0 {
		return
	}
	timer := g.clock.NewTimer(d)
	defer timer.Stop()
	<-timer.C
}
