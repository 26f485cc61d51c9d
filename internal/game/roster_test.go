package game

import "testing"

func TestEliminateBusted(t *testing.T) {
	t.Parallel()

	a := NewPlayer("A", Human, 100)
	b := NewPlayer("B", Human, 0)
	c := NewPlayer("C", Human, 300)
	d := NewPlayer("D", Human, 0)

	r := NewRoster(a, b, c, d)
	removed := r.EliminateBusted()

	if len(removed) != 2 {
		t.Fatalf("removed %d players, want 2", len(removed))
	}
	for _, p := range r.Players() {
		if p.Chips == 0 {
			t.Errorf("player %s with zero chips still on roster", p.Name)
		}
	}
	if !r.IsEliminated("B") || !r.IsEliminated("D") {
		t.Error("eliminated set missing removed names")
	}
	if r.IsEliminated("A") || r.IsEliminated("C") {
		t.Error("eliminated set contains survivors")
	}
	if r.EliminatedCount() != 2 {
		t.Errorf("eliminated count = %d, want 2", r.EliminatedCount())
	}

	// Survivors keep their relative order.
	players := r.Players()
	if players[0] != a || players[1] != c {
		t.Errorf("survivor order disturbed: %s, %s", players[0].Name, players[1].Name)
	}
}

func TestSortByChipsDescending(t *testing.T) {
	t.Parallel()

	a := NewPlayer("A", Human, 50)
	b := NewPlayer("B", Human, 400)
	c := NewPlayer("C", Human, 200)

	r := NewRoster(a, b, c)
	r.SortByChips()

	players := r.Players()
	want := []*Player{b, c, a}
	for i := range want {
		if players[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, players[i].Name, want[i].Name)
		}
	}
}

func TestSortByChipsIsStable(t *testing.T) {
	t.Parallel()

	first := NewPlayer("First", Human, 100)
	second := NewPlayer("Second", Human, 100)
	third := NewPlayer("Third", Human, 100)
	richer := NewPlayer("Richer", Human, 200)

	r := NewRoster(first, second, third, richer)
	r.SortByChips()

	players := r.Players()
	if players[0] != richer {
		t.Fatalf("position 0 = %s, want Richer", players[0].Name)
	}
	// Equal chip counts keep their pre-sort relative order.
	want := []*Player{first, second, third}
	for i, p := range want {
		if players[i+1] != p {
			t.Errorf("position %d = %s, want %s", i+1, players[i+1].Name, p.Name)
		}
	}
}

func TestWithChips(t *testing.T) {
	t.Parallel()

	r := NewRoster(
		NewPlayer("A", Human, 100),
		NewPlayer("B", Human, 0),
		NewPlayer("C", Automated, 5),
	)
	if got := r.WithChips(); got != 2 {
		t.Errorf("WithChips() = %d, want 2", got)
	}
}
