package ranker

import (
	"sort"

	"viral-calls-go/internal/types"
)

// TopN sorts calls by score descending and keeps the first n. The sort is
// stable so tied scores stay in scan order. The input slice is not modified.
func TopN(calls []types.AnalyzedCall, n int) []types.AnalyzedCall {
	out := make([]types.AnalyzedCall, len(calls))
	copy(out, calls)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if n < 0 {
		n = 0
	}
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}
