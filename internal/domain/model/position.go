package model

// Position is a fielding position in canonical order.
type Position int8

const (
	Catcher Position = iota
	FirstBase
	SecondBase
	ThirdBase
	Shortstop
	LeftField
	CenterField
	RightField
	DesignatedHitter

	// NumPositions sizes per-position arrays.
	NumPositions = 9
)

// NoPosition marks an unset position, e.g. a best position with no WAR.
const NoPosition Position = -1

// Positions lists every position in canonical order, which is also the
// tie-break order for best-position selection.
var Positions = [NumPositions]Position{ //nolint:gochecknoglobals // fixed table
	Catcher, FirstBase, SecondBase, ThirdBase, Shortstop,
	LeftField, CenterField, RightField, DesignatedHitter,
}

var (
	positionKeys   = [NumPositions]string{"c", "1b", "2b", "3b", "ss", "lf", "cf", "rf", "dh"}
	positionLabels = [NumPositions]string{"C", "1B", "2B", "3B", "SS", "LF", "CF", "RF", "DH"}
)

// Valid reports whether p is one of the nine positions.
func (p Position) Valid() bool { return p >= 0 && int(p) < NumPositions }

// Key is the lowercase column prefix, e.g. "ss" in ss_sWAR.
func (p Position) Key() string {
	if !p.Valid() {
		return ""
	}
	return positionKeys[p]
}

// Label is the uppercase code used in the field eligibility list.
func (p Position) Label() string {
	if !p.Valid() {
		return ""
	}
	return positionLabels[p]
}

func (p Position) String() string { return p.Key() }

// ParsePosition accepts either a key ("cf") or a label ("CF").
func ParsePosition(s string) (Position, bool) {
	for _, p := range Positions {
		if s == positionKeys[p] || s == positionLabels[p] {
			return p, true
		}
	}
	return NoPosition, false
}
