package export

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/okian/pistachio/internal/domain/model"
)

// FlagLabel marks a flagged player in the in_list column.
const FlagLabel = "flagged"

// Flag marks players whose name appears in names. Matching ignores case,
// so shortlists pasted in capitals still match.
func Flag(t model.Table, names []string) model.Table {
	lower := cases.Lower(language.Und)
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		wanted[lower.String(n)] = struct{}{}
	}
	return t.Map(func(p *model.Player) {
		_, p.Flagged = wanted[lower.String(p.Bio.Name)]
	})
}

// Flagged counts flagged players.
func Flagged(t model.Table) int {
	return t.Count(func(p *model.Player) bool { return p.Flagged })
}
