package game

// ShowdownResult is one non-folded player's outcome at showdown.
type ShowdownResult struct {
	Player *Player
	Score  int
	Share  int // chips awarded from the pot, zero for losers
}

// ResolveShowdown scores every non-folded player against the revealed
// community cards, awards the pot and updates win counters. Equal top scores
// split the pot evenly with the remainder going to the earliest seat. If
// every player folded there is nothing to resolve and the pot stays in the
// hand state, carrying over into the next hand.
func ResolveShowdown(players []*Player, hand *HandState) []ShowdownResult {
	best := -1
	var results []ShowdownResult
	var winners []int // indexes into results

	for _, p := range players {
		if p.Folded {
			continue
		}
		p.HandsPlayed++
		score := Score(p.Hole, hand.Visible())
		results = append(results, ShowdownResult{Player: p, Score: score})

		if score > best {
			best = score
			winners = winners[:0]
			winners = append(winners, len(results)-1)
		} else if score == best {
			winners = append(winners, len(results)-1)
		}
	}

	if len(winners) == 0 {
		return nil
	}

	share := hand.Pot / len(winners)
	remainder := hand.Pot % len(winners)
	for i, idx := range winners {
		amount := share
		if i == 0 {
			amount += remainder
		}
		r := &results[idx]
		r.Share = amount
		r.Player.Chips += amount
		r.Player.GamesWon++
		r.Player.HandsWon++
	}
	hand.Pot = 0

	return results
}
