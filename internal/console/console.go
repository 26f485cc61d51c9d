// Package console implements the terminal front end for an interactive game:
// word-at-a-time input reading and styled rendering of game output.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	potStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Console reads whitespace-delimited tokens from in and renders game output
// to out. It implements both game.InputPort and game.Display.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{scanner: scanner, out: out}
}

// ReadToken prints prompt and returns the next whitespace-delimited token.
// Returns io.EOF once the input is exhausted.
func (c *Console) ReadToken(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// ReadInt prints prompt and parses the next token as an integer.
func (c *Console) ReadInt(prompt string) (int, error) {
	tok, err := c.ReadToken(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

// Announce prints a free-form line.
func (c *Console) Announce(msg string) {
	fmt.Fprintln(c.out, msg)
}

// ShowPot prints the current pot total.
func (c *Console) ShowPot(pot int) {
	fmt.Fprintln(c.out, potStyle.Render(fmt.Sprintf("Current pot: %d chips", pot)))
}

// ShowHand prints a player's hole cards, or "[Hidden]" when concealed.
func (c *Console) ShowHand(p *game.Player, hidden bool) {
	if hidden {
		fmt.Fprintf(c.out, "%s's hand: %s\n", p.Name, dimStyle.Render("[Hidden]"))
		return
	}
	cards := fmt.Sprintf("%s, %s", p.Hole[0], p.Hole[1])
	fmt.Fprintf(c.out, "%s's hand: %s\n", p.Name, cardStyle.Render(cards))
}

// ShowCommunity prints the revealed community cards.
func (c *Console) ShowCommunity(cards []deck.Card) {
	if len(cards) == 0 {
		return
	}
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.String()
	}
	fmt.Fprintf(c.out, "Community cards: %s\n", cardStyle.Render(strings.Join(names, ", ")))
}

// ShowHistory prints the betting history recorded this hand.
func (c *Console) ShowHistory(lines []string) {
	fmt.Fprintln(c.out, headerStyle.Render("Betting history:"))
	for _, line := range lines {
		fmt.Fprintf(c.out, "  %s\n", line)
	}
}

// ShowShowdown prints each contender's score and any pot share won.
func (c *Console) ShowShowdown(results []game.ShowdownResult) {
	fmt.Fprintln(c.out, headerStyle.Render("Showdown results:"))
	for _, r := range results {
		line := fmt.Sprintf("  %s scored %d", r.Player.Name, r.Score)
		if r.Share > 0 {
			line = winStyle.Render(fmt.Sprintf("%s and wins %d chips!", line, r.Share))
		}
		fmt.Fprintln(c.out, line)
	}
}

// ShowStandings prints a ranking snapshot ordered by chips.
func (c *Console) ShowStandings(rows []game.Standing) {
	fmt.Fprintln(c.out, headerStyle.Render("Standings:"))
	for i, row := range rows {
		fmt.Fprintf(c.out, "  %d. %s - %d chips\n", i+1, row.Name, row.Chips)
	}
}

// ShowInteractions prints who bet against whom over the whole game.
func (c *Console) ShowInteractions(g *game.InteractionGraph) {
	fmt.Fprintln(c.out, headerStyle.Render("Player interactions:"))
	for _, name := range g.Names() {
		edges := g.Edges(name)
		parts := make([]string, len(edges))
		for i, e := range edges {
			parts[i] = fmt.Sprintf("%s (%d chips)", e.Name, e.Chips)
		}
		fmt.Fprintf(c.out, "  %s played against: %s\n", name, strings.Join(parts, ", "))
	}
}

// ShowStatistics prints lifetime counters for each player.
func (c *Console) ShowStatistics(players []*game.Player) {
	fmt.Fprintln(c.out, headerStyle.Render("Player statistics:"))
	for _, p := range players {
		fmt.Fprintf(c.out, "  %s: %d games won, %d hands played, %d hands won\n",
			p.Name, p.GamesWon, p.HandsPlayed, p.HandsWon)
	}
}
