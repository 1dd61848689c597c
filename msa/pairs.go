package msa

import (
	"fmt"

	"github.com/araddon/qlbridge/expr"
	qlvm "github.com/araddon/qlbridge/vm"
	"github.com/strucbio/bioutil/internal/qlutil"
)

// RankedPair is one ranked column pair of a coevolution matrix.
type RankedPair struct {
	Row        int
	Col        int
	Value      float64
	Zscore     float64
	Separation int
}

// RankedPairs zips the outputs of RankOrder into pairs. Separation is the
// absolute column distance of the pair. When the ranked values are z-scores,
// they land in both Value and Zscore.
func RankedPairs(rows, cols []int, values []float64) []RankedPair {
	pairs := make([]RankedPair, len(rows))
	for k := range rows {
		sep := rows[k] - cols[k]
		if sep < 0 {
			sep = -sep
		}
		pairs[k] = RankedPair{
			Row:        rows[k],
			Col:        cols[k],
			Value:      values[k],
			Zscore:     values[k],
			Separation: sep,
		}
	}
	return pairs
}

// FilterPairs keeps the pairs matching a boolean expression over the fields
// row, col, value, zscore and separation, for example
// "zscore > 2 AND separation >= 5". Order is preserved.
func FilterPairs(pairs []RankedPair, query string) ([]RankedPair, error) {
	qe, err := expr.ParseExpression(query)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}

	var out []RankedPair
	for _, p := range pairs {
		ctx := qlutil.NewMapContext(map[string]any{
			"row":        p.Row,
			"col":        p.Col,
			"value":      p.Value,
			"zscore":     p.Zscore,
			"separation": p.Separation,
		})
		if t, _ := qlvm.MatchesExpr(ctx, qe); t {
			out = append(out, p)
		}
	}
	return out, nil
}
