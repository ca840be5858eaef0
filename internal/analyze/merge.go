package analyze

import (
	"sort"

	"go-log-analyzer/internal/model"
)

// Accumulator is the running total over all partial results merged so far.
// It has a single owner (the collector); it is never written concurrently.
type Accumulator struct {
	LinesTotal     int            `json:"lines_total"`
	ByLevel        map[string]int `json:"by_level"`
	BySource       map[string]int `json:"by_source"`
	ErrorsByBucket map[string]int `json:"errors_by_bucket"`
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		ByLevel:        make(map[string]int),
		BySource:       make(map[string]int),
		ErrorsByBucket: make(map[string]int),
	}
}

// Merge folds one partial result into the accumulator. Merging is associative
// and commutative, so the final totals do not depend on chunk completion
// order.
func (a *Accumulator) Merge(p model.PartialResult) {
	a.LinesTotal += p.LinesTotal
	for level, n := range p.ByLevel {
		a.ByLevel[level] += n
	}
	for source, n := range p.BySource {
		a.BySource[source] += n
	}
	for bucket, n := range p.ErrorsByBucket {
		a.ErrorsByBucket[bucket] += n
	}
}

// TopN returns the n most active source addresses, count descending. Equal
// counts order lexicographically ascending by address, so the ranking is
// stable between calls.
func (a *Accumulator) TopN(n int) []model.RankedEntry {
	entries := make([]model.RankedEntry, 0, len(a.BySource))
	for source, count := range a.BySource {
		entries = append(entries, model.RankedEntry{Source: source, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Source < entries[j].Source
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
