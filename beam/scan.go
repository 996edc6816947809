package beam

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	aoc "github.com/maisem/aoc2023"
)

// Best is an entry point and the number of cells a beam fired from it
// energizes.
type Best struct {
	Entry     aoc.Path
	Energized int
}

type entryResult struct {
	entry aoc.Path
	res   Result
	err   error
}

func (s *Simulator) fire(entry aoc.Path) entryResult {
	res, err := s.Energize(entry)
	return entryResult{entry: entry, res: res, err: err}
}

// Scan fires a beam from every edge cell, heading into the grid, and returns
// the entry that energizes the most cells. Entries run in parallel. Ties go
// to the entry listed first by Grid.EdgePaths.
func (s *Simulator) Scan() (Best, error) {
	type acc struct {
		best Best
		err  error
	}
	out := aoc.ParallelMapFold(s.grid.EdgePaths(), s.fire, func(a acc, r entryResult) acc {
		switch {
		case a.err != nil:
		case r.err != nil:
			a.err = r.err
		case r.res.Energized > a.best.Energized:
			a.best = Best{Entry: r.entry, Energized: r.res.Energized}
		}
		return a
	}, acc{})
	return out.best, out.err
}

// Top returns the n edge entries that energize the most cells, best first.
// Entries with equal counts keep Grid.EdgePaths order.
func (s *Simulator) Top(n int) ([]Best, error) {
	byCount := redblacktree.NewWithIntComparator()
	for _, r := range aoc.Parallel(s.grid.EdgePaths(), s.fire) {
		if r.err != nil {
			return nil, r.err
		}
		var entries []aoc.Path
		if v, ok := byCount.Get(r.res.Energized); ok {
			entries = v.([]aoc.Path)
		}
		byCount.Put(r.res.Energized, append(entries, r.entry))
	}

	var out []Best
	it := byCount.Iterator()
	for it.End(); it.Prev() && len(out) < n; {
		for _, e := range it.Value().([]aoc.Path) {
			if len(out) == n {
				break
			}
			out = append(out, Best{Entry: e, Energized: it.Key().(int)})
		}
	}
	return out, nil
}
