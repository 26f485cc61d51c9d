package game

// Roster owns the ordered collection of seated players plus the set of names
// that have busted out. Removal preserves the relative order of survivors so
// the manual index bookkeeping of an in-place array never leaks out.
type Roster struct {
	players    []*Player
	eliminated map[string]struct{}
}

// NewRoster creates a roster over the given players.
func NewRoster(players ...*Player) *Roster {
	return &Roster{
		players:    players,
		eliminated: make(map[string]struct{}),
	}
}

// Players returns the seated players in table order.
func (r *Roster) Players() []*Player {
	return r.players
}

// Len returns the number of seated players.
func (r *Roster) Len() int {
	return len(r.players)
}

// WithChips returns how many seated players still have chips.
func (r *Roster) WithChips() int {
	n := 0
	for _, p := range r.players {
		if p.Chips > 0 {
			n++
		}
	}
	return n
}

// IsEliminated reports whether a player of that name has busted out.
func (r *Roster) IsEliminated(name string) bool {
	_, ok := r.eliminated[name]
	return ok
}

// EliminatedCount returns the number of busted players.
func (r *Roster) EliminatedCount() int {
	return len(r.eliminated)
}

// EliminateBusted removes every player whose chips have reached zero,
// preserving the relative order of survivors, and records the removed names.
// It returns the removed players.
func (r *Roster) EliminateBusted() []*Player {
	var removed []*Player
	survivors := r.players[:0]
	for _, p := range r.players {
		if p.Chips == 0 {
			r.eliminated[p.Name] = struct{}{}
			removed = append(removed, p)
			continue
		}
		survivors = append(survivors, p)
	}
	r.players = survivors
	return removed
}

// SortByChips orders the roster by descending chip count using a stable
// divide-and-conquer merge. Ties keep their prior relative order.
func (r *Roster) SortByChips() {
	mergeSortByChips(r.players)
}

func mergeSortByChips(players []*Player) {
	if len(players) < 2 {
		return
	}
	mid := len(players) / 2

	left := make([]*Player, mid)
	right := make([]*Player, len(players)-mid)
	copy(left, players[:mid])
	copy(right, players[mid:])

	mergeSortByChips(left)
	mergeSortByChips(right)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// >= keeps the merge stable for equal chip counts.
		if left[i].Chips >= right[j].Chips {
			players[k] = left[i]
			i++
		} else {
			players[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		players[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		players[k] = right[j]
		j++
		k++
	}
}
