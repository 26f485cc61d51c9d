package deck

import (
	"errors"
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck.
const Size = 52

// ErrDeckExhausted is returned when dealing past the last card in a shuffle
// cycle. It is fatal to the hand in progress.
var ErrDeckExhausted = errors.New("no cards left in the deck")

// Deck holds a full 52-card deck and a cursor marking the next undealt card.
// The cursor only ever advances; Reset rewinds it without reshuffling.
type Deck struct {
	cards  [Size]Card
	cursor int
	rng    *rand.Rand
}

// New creates a full deck in canonical order using the provided RNG for
// shuffling. Callers are responsible for sequencing Shuffle, Deal and Reset.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return d
}

// Shuffle randomizes the order of the cards with a uniform permutation.
// It does not move the cursor; pair it with Reset when starting a new hand.
func (d *Deck) Shuffle() {
	for i := Size - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal returns the next undealt card and advances the cursor.
func (d *Deck) Deal() (Card, error) {
	if d.cursor >= Size {
		return Card{}, ErrDeckExhausted
	}
	c := d.cards[d.cursor]
	d.cursor++
	return c, nil
}

// Reset rewinds the cursor to the top of the deck without reshuffling.
func (d *Deck) Reset() {
	d.cursor = 0
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return Size - d.cursor
}
