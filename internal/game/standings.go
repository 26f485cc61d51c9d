package game

// Standing is one row of a ranking snapshot.
type Standing struct {
	Name  string
	Chips int
}

// Snapshot returns the players ordered by descending chip count. A snapshot
// is rebuilt on demand whenever standings need displaying and is never kept
// between displays; it uses the same stable merge as the roster re-sort, so
// equal chip counts keep their table order.
func Snapshot(players []*Player) []Standing {
	sorted := make([]*Player, len(players))
	copy(sorted, players)
	mergeSortByChips(sorted)

	rows := make([]Standing, len(sorted))
	for i, p := range sorted {
		rows[i] = Standing{Name: p.Name, Chips: p.Chips}
	}
	return rows
}
