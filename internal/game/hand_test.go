package game

import (
	"errors"
	"testing"

	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/randutil"
)

func TestRevealStages(t *testing.T) {
	t.Parallel()

	d := deck.New(randutil.New(11))
	d.Shuffle()
	hand := NewHandState(0)

	stages := []struct {
		street Street
		want   int
	}{
		{PreFlop, 0},
		{Flop, 3},
		{Turn, 4},
		{River, 5},
	}
	for _, stage := range stages {
		if err := hand.RevealFor(stage.street, d); err != nil {
			t.Fatalf("RevealFor(%s) failed: %v", stage.street, err)
		}
		if got := len(hand.Visible()); got != stage.want {
			t.Errorf("after %s: %d cards visible, want %d", stage.street, got, stage.want)
		}
	}
}

func TestRevealFromExhaustedDeckFails(t *testing.T) {
	t.Parallel()

	d := deck.New(randutil.New(11))
	for d.Remaining() > 0 {
		if _, err := d.Deal(); err != nil {
			t.Fatal(err)
		}
	}

	hand := NewHandState(0)
	err := hand.RevealFor(Flop, d)
	if !errors.Is(err, deck.ErrDeckExhausted) {
		t.Errorf("expected ErrDeckExhausted, got %v", err)
	}
}

func TestCarryoverSeedsPot(t *testing.T) {
	t.Parallel()

	hand := NewHandState(35)
	if hand.Pot != 35 {
		t.Errorf("pot = %d, want 35", hand.Pot)
	}
	if hand.ID == "" {
		t.Error("hand ID should be set")
	}
}
