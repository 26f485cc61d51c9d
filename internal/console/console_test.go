package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/game"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadToken(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("bet  fold\n call")
	for _, want := range []string{"bet", "fold", "call"} {
		got, err := c.ReadToken("> ")
		if err != nil {
			t.Fatalf("ReadToken() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadToken() = %q, want %q", got, want)
		}
	}
	if _, err := c.ReadToken("> "); err != io.EOF {
		t.Errorf("ReadToken() after exhaustion error = %v, want io.EOF", err)
	}
	if !strings.Contains(out.String(), "> ") {
		t.Error("prompt was not written to output")
	}
}

func TestReadInt(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole("42 nope")
	n, err := c.ReadInt("amount: ")
	if err != nil {
		t.Fatalf("ReadInt() error = %v", err)
	}
	if n != 42 {
		t.Errorf("ReadInt() = %d, want 42", n)
	}
	if _, err := c.ReadInt("amount: "); err == nil {
		t.Error("ReadInt() expected error for non-numeric token")
	}
}

func TestShowHand(t *testing.T) {
	t.Parallel()

	p := game.NewPlayer("Alice", game.Human, 1000)
	p.Hole = [2]deck.Card{
		deck.NewCard(deck.Ace, deck.Spades),
		deck.NewCard(deck.Ten, deck.Hearts),
	}

	c, out := newTestConsole("")
	c.ShowHand(p, false)
	if got := out.String(); !strings.Contains(got, "Alice's hand: Ace of Spades, 10 of Hearts") {
		t.Errorf("visible hand output = %q", got)
	}

	out.Reset()
	c.ShowHand(p, true)
	if got := out.String(); !strings.Contains(got, "[Hidden]") {
		t.Errorf("hidden hand output = %q", got)
	}
}

func TestShowCommunity(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("")
	c.ShowCommunity(nil)
	if out.Len() != 0 {
		t.Errorf("empty community printed %q", out.String())
	}

	c.ShowCommunity([]deck.Card{
		deck.NewCard(deck.Two, deck.Clubs),
		deck.NewCard(deck.King, deck.Diamonds),
	})
	if got := out.String(); !strings.Contains(got, "2 of Clubs, King of Diamonds") {
		t.Errorf("community output = %q", got)
	}
}

func TestShowShowdown(t *testing.T) {
	t.Parallel()

	winner := game.NewPlayer("Alice", game.Human, 1000)
	loser := game.NewPlayer("Bot 1", game.Automated, 1000)

	c, out := newTestConsole("")
	c.ShowShowdown([]game.ShowdownResult{
		{Player: winner, Score: 8, Share: 150},
		{Player: loser, Score: 2},
	})

	got := out.String()
	if !strings.Contains(got, "Alice scored 8 and wins 150 chips!") {
		t.Errorf("winner line missing from %q", got)
	}
	if !strings.Contains(got, "Bot 1 scored 2") || strings.Contains(got, "Bot 1 scored 2 and wins") {
		t.Errorf("loser line wrong in %q", got)
	}
}

func TestShowStandings(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("")
	c.ShowStandings([]game.Standing{
		{Name: "Alice", Chips: 1500},
		{Name: "Bot 1", Chips: 500},
	})

	got := out.String()
	if !strings.Contains(got, "1. Alice - 1500 chips") {
		t.Errorf("first row missing from %q", got)
	}
	if !strings.Contains(got, "2. Bot 1 - 500 chips") {
		t.Errorf("second row missing from %q", got)
	}
}

func TestShowInteractions(t *testing.T) {
	t.Parallel()

	g := game.NewInteractionGraph()
	g.Add("Alice", "Bot 1", 50)

	c, out := newTestConsole("")
	c.ShowInteractions(g)

	got := out.String()
	if !strings.Contains(got, "Alice played against: Bot 1 (50 chips)") {
		t.Errorf("interaction line missing from %q", got)
	}
	if !strings.Contains(got, "Bot 1 played against: Alice (50 chips)") {
		t.Errorf("symmetric line missing from %q", got)
	}
}

func TestShowStatistics(t *testing.T) {
	t.Parallel()

	p := game.NewPlayer("Alice", game.Human, 1000)
	p.GamesWon = 3
	p.HandsPlayed = 12
	p.HandsWon = 5

	c, out := newTestConsole("")
	c.ShowStatistics([]*game.Player{p})
	if got := out.String(); !strings.Contains(got, "Alice: 3 games won, 12 hands played, 5 hands won") {
		t.Errorf("statistics output = %q", got)
	}
}
