package model

// Table is the unified player table threaded through the pipeline stages.
// Each stage returns a new Table; slices inside a Player are never mutated
// in place once set, so a copy of the Player values is enough.
type Table struct {
	// Extra names the passthrough columns carried in Player.Extra.
	Extra   []string
	Players []Player
}

// Len returns the number of players.
func (t Table) Len() int { return len(t.Players) }

// Clone returns a table whose players can be modified without touching t.
func (t Table) Clone() Table {
	players := make([]Player, len(t.Players))
	copy(players, t.Players)
	return Table{Extra: t.Extra, Players: players}
}

// Map returns a clone of t with fn applied to every player.
func (t Table) Map(fn func(*Player)) Table {
	out := t.Clone()
	for i := range out.Players {
		fn(&out.Players[i])
	}
	return out
}

// Count returns the number of players matching pred.
func (t Table) Count(pred func(*Player) bool) int {
	n := 0
	for i := range t.Players {
		if pred(&t.Players[i]) {
			n++
		}
	}
	return n
}

// ExtraValue returns the passthrough value of column for p, or "" when the
// column is not carried.
func (t Table) ExtraValue(p *Player, column string) string {
	for i, c := range t.Extra {
		if c == column && i < len(p.Extra) {
			return p.Extra[i]
		}
	}
	return ""
}
