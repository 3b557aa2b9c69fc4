package export

import (
	"math"
	"strconv"

	"github.com/okian/pistachio/internal/domain/model"
)

// Sentinel replaces a missing WAR-like value in reports.
const Sentinel = -999.0

type column struct {
	name string
	cell func(p *model.Player) string
}

type value func(p *model.Player) float64

func number(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// num writes the value as is; missing is blank.
func num(name string, f value) column {
	return column{name, func(p *model.Player) string { return number(f(p)) }}
}

// war rounds to 2 decimals; missing becomes the sentinel.
func war(name string, f value) column {
	return column{name, func(p *model.Player) string {
		v := f(p)
		if math.IsNaN(v) {
			v = Sentinel
		}
		return number(model.Round(v, 2))
	}}
}

// count rounds to a whole number; missing becomes 0.
func count(name string, f value) column {
	return column{name, func(p *model.Player) string {
		v := f(p)
		if math.IsNaN(v) {
			return "0"
		}
		return strconv.FormatInt(int64(model.Round(v, 0)), 10)
	}}
}

// countOrBlank rounds to a whole number; zero and missing are blank.
func countOrBlank(name string, f value) column {
	return column{name, func(p *model.Player) string {
		v := model.Round(f(p), 0)
		if math.IsNaN(v) || v == 0 {
			return ""
		}
		return strconv.FormatInt(int64(v), 10)
	}}
}

func integer(name string, f func(p *model.Player) int) column {
	return column{name, func(p *model.Player) string { return strconv.Itoa(f(p)) }}
}

func flag(name string, f func(p *model.Player) bool) column {
	return column{name, func(p *model.Player) string {
		if f(p) {
			return "1"
		}
		return "0"
	}}
}

func text(name string, f func(p *model.Player) string) column {
	return column{name, f}
}

// hand recodes a handedness code; unknown codes pass through and missing
// is blank.
func hand(name string, f value, codes map[float64]string) column {
	return column{name, func(p *model.Player) string {
		v := f(p)
		if s, ok := codes[v]; ok {
			return s
		}
		return number(v)
	}}
}

//nolint:gochecknoglobals // fixed recodes
var (
	batsCodes   = map[float64]string{1: "R", 2: "L", 3: "S"}
	throwsCodes = map[float64]string{1: "R", 2: "L"}
)

func inList(p *model.Player) string {
	if p.Flagged {
		return FlagLabel
	}
	return ""
}
