package game

import "github.com/feltworks/holdem/internal/deck"

// Scores contributed by each repeated-rank group.
const (
	pairScore   = 2
	tripleScore = 6
	quadScore   = 10
)

// Score rates two hole cards against the visible community cards by tallying
// rank frequencies across the union: a pair adds 2, three of a kind adds 6,
// four of a kind adds 10, summed across ranks. The result is independent of
// card order. It knows nothing about straights, flushes or high cards.
func Score(hole [2]deck.Card, community []deck.Card) int {
	counts := make(map[deck.Rank]int, len(community)+2)
	counts[hole[0].Rank]++
	counts[hole[1].Rank]++
	for _, c := range community {
		counts[c.Rank]++
	}

	score := 0
	for _, n := range counts {
		switch n {
		case 2:
			score += pairScore
		case 3:
			score += tripleScore
		case 4:
			score += quadScore
		}
	}
	return score
}
