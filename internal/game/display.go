package game

import "github.com/feltworks/holdem/internal/deck"

// Display receives the human-readable output of a game. The console renders
// these to the terminal; tests substitute a recorder. No machine-readable
// wire format is required anywhere.
type Display interface {
	// Announce prints a free-form line.
	Announce(msg string)

	// ShowPot prints the current pot total.
	ShowPot(pot int)

	// ShowHand prints a player's hole cards. When hidden is true the cards
	// render as "[Hidden]"; automated seats stay hidden until showdown.
	ShowHand(p *Player, hidden bool)

	// ShowCommunity prints the revealed community cards as a comma-joined
	// "<rank> of <suit>" sequence.
	ShowCommunity(cards []deck.Card)

	// ShowHistory prints the betting history recorded so far this hand.
	ShowHistory(lines []string)

	// ShowShowdown prints per-player scores and the pot award.
	ShowShowdown(results []ShowdownResult)

	// ShowStandings prints a ranking snapshot.
	ShowStandings(rows []Standing)

	// ShowInteractions prints the end-of-game interaction report.
	ShowInteractions(g *InteractionGraph)

	// ShowStatistics prints lifetime counters for each player.
	ShowStatistics(players []*Player)
}
