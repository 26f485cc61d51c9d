package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/feltworks/holdem/internal/deck"
)

// scriptedInput feeds canned responses through the InputPort. Once exhausted
// every read returns io.EOF.
type scriptedInput struct {
	responses []string
	next      int
}

func (s *scriptedInput) ReadToken(string) (string, error) {
	if s.next >= len(s.responses) {
		return "", io.EOF
	}
	tok := s.responses[s.next]
	s.next++
	return tok, nil
}

func (s *scriptedInput) ReadInt(string) (int, error) {
	tok, err := s.ReadToken("")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

// recordingDisplay captures everything the game would have shown.
type recordingDisplay struct {
	lines []string
}

func (d *recordingDisplay) Announce(msg string) {
	d.lines = append(d.lines, msg)
}

func (d *recordingDisplay) ShowPot(pot int) {
	d.lines = append(d.lines, fmt.Sprintf("pot=%d", pot))
}

func (d *recordingDisplay) ShowHand(p *Player, hidden bool) {
	if hidden {
		d.lines = append(d.lines, p.Name+"'s hand: [Hidden]")
		return
	}
	d.lines = append(d.lines, fmt.Sprintf("%s's hand: %s, %s", p.Name, p.Hole[0], p.Hole[1]))
}

func (d *recordingDisplay) ShowCommunity(cards []deck.Card) {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	d.lines = append(d.lines, "community: "+strings.Join(parts, ", "))
}

func (d *recordingDisplay) ShowHistory(lines []string) {
	d.lines = append(d.lines, lines...)
}

func (d *recordingDisplay) ShowShowdown(results []ShowdownResult) {
	for _, r := range results {
		d.lines = append(d.lines, fmt.Sprintf("showdown: %s score=%d share=%d", r.Player.Name, r.Score, r.Share))
	}
}

func (d *recordingDisplay) ShowStandings(rows []Standing) {
	for _, row := range rows {
		d.lines = append(d.lines, fmt.Sprintf("standing: %s=%d", row.Name, row.Chips))
	}
}

func (d *recordingDisplay) ShowInteractions(g *InteractionGraph) {
	d.lines = append(d.lines, fmt.Sprintf("interactions: %d entries", g.Size()))
}

func (d *recordingDisplay) ShowStatistics(players []*Player) {
	for _, p := range players {
		d.lines = append(d.lines, fmt.Sprintf("stats: %s chips=%d", p.Name, p.Chips))
	}
}

func (d *recordingDisplay) contains(substr string) bool {
	for _, line := range d.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
