package game

import "sort"

// Edge records one observed betting interaction with another player.
type Edge struct {
	Name  string
	Chips int
}

// InteractionGraph accumulates pairwise betting interactions per round.
// Recording an interaction between A and B appends an edge to both adjacency
// lists. The graph is purely observational, feeds only the end-of-game
// report, and only ever grows for the lifetime of a game.
type InteractionGraph struct {
	adj map[string][]Edge
}

// NewInteractionGraph creates an empty graph.
func NewInteractionGraph() *InteractionGraph {
	return &InteractionGraph{adj: make(map[string][]Edge)}
}

// Add records a symmetric interaction between two players weighted by the
// chips at stake.
func (g *InteractionGraph) Add(a, b string, chips int) {
	g.adj[a] = append(g.adj[a], Edge{Name: b, Chips: chips})
	g.adj[b] = append(g.adj[b], Edge{Name: a, Chips: chips})
}

// RecordRound adds an edge between every pair of non-folded players,
// weighted by the round's current bet. O(n^2) per round.
func (g *InteractionGraph) RecordRound(players []*Player, currentBet int) {
	for i := 0; i < len(players); i++ {
		if players[i].Folded {
			continue
		}
		for j := i + 1; j < len(players); j++ {
			if players[j].Folded {
				continue
			}
			g.Add(players[i].Name, players[j].Name, currentBet)
		}
	}
}

// Edges returns the recorded interactions for a player in insertion order.
func (g *InteractionGraph) Edges(name string) []Edge {
	return g.adj[name]
}

// Names returns every player with recorded interactions, sorted for
// deterministic display.
func (g *InteractionGraph) Names() []string {
	names := make([]string, 0, len(g.adj))
	for name := range g.adj {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the total number of directed adjacency entries.
func (g *InteractionGraph) Size() int {
	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}
	return n
}
