package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-log-analyzer/internal/model"
)

func partial(lines int, level string, sources map[string]int) model.PartialResult {
	p := model.NewPartialResult()
	p.LinesTotal = lines
	if level != "" {
		p.ByLevel[level] = lines
	}
	for s, n := range sources {
		p.BySource[s] = n
	}
	return p
}

func TestMergeAddsCounts(t *testing.T) {
	acc := NewAccumulator()
	acc.Merge(partial(3, "INFO", map[string]int{"A": 3, "B": 1}))
	acc.Merge(partial(6, "ERROR", map[string]int{"A": 1, "C": 5}))

	assert.Equal(t, 9, acc.LinesTotal)
	assert.Equal(t, map[string]int{"INFO": 3, "ERROR": 6}, acc.ByLevel)
	assert.Equal(t, map[string]int{"A": 4, "B": 1, "C": 5}, acc.BySource)
}

func TestMergeOrderIndependent(t *testing.T) {
	parts := []model.PartialResult{
		partial(2, "INFO", map[string]int{"A": 2}),
		partial(4, "ERROR", map[string]int{"B": 4}),
		partial(1, "WARNING", map[string]int{"A": 1}),
		partial(7, "INFO", map[string]int{"C": 7}),
	}

	forward := NewAccumulator()
	for _, p := range parts {
		forward.Merge(p)
	}

	backward := NewAccumulator()
	for i := len(parts) - 1; i >= 0; i-- {
		backward.Merge(parts[i])
	}

	assert.Equal(t, forward, backward)
}

func TestTopNRanksByCountDescending(t *testing.T) {
	acc := NewAccumulator()
	acc.Merge(partial(4, "", map[string]int{"A": 3, "B": 1}))
	acc.Merge(partial(6, "", map[string]int{"A": 1, "C": 5}))

	top := acc.TopN(1)
	require.Len(t, top, 1)
	assert.Equal(t, model.RankedEntry{Source: "C", Count: 5}, top[0])

	all := acc.TopN(10)
	assert.Equal(t, []model.RankedEntry{
		{Source: "C", Count: 5},
		{Source: "A", Count: 4},
		{Source: "B", Count: 1},
	}, all)
}

func TestTopNTieBreaksLexicographically(t *testing.T) {
	acc := NewAccumulator()
	acc.Merge(partial(6, "", map[string]int{"zeta": 2, "alpha": 2, "mid": 2}))

	top := acc.TopN(3)
	assert.Equal(t, []model.RankedEntry{
		{Source: "alpha", Count: 2},
		{Source: "mid", Count: 2},
		{Source: "zeta", Count: 2},
	}, top)

	// Stable between calls.
	assert.Equal(t, top, acc.TopN(3))
}

func TestTopNEmptyAccumulator(t *testing.T) {
	acc := NewAccumulator()
	assert.Empty(t, acc.TopN(5))
}
