package main

import (
	_ "embed"
	"flag"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/beam"
	"github.com/maisem/aoc2023/maze"
	"github.com/plan-systems/klog"
)

var (
	flagEntry = flag.String("entry", "0,0 >", `day 16 part 1 beam entry point, "row,col dir"`)
	flagTop   = flag.Int("top", 0, "day 16 part 2: log the best N entry points")
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	entry := aoc.Path{Dir: aoc.Right}
	if !s.SampleMode {
		entry = aoc.MustGet(beam.ParseEntry(*flagEntry))
	}
	sim := aoc.MustGet(beam.New(s.Grid()))
	res := aoc.MustGet(sim.Energize(entry))
	s.Debugf("entry %v: %d optic entries, %d beam steps", entry, res.Usages, res.Steps)
	return res.Energized
}

// want=51
func (s solver) D16p2() any {
	sim := aoc.MustGet(beam.New(s.Grid()))
	best := aoc.MustGet(sim.Scan())
	if *flagTop > 0 && !s.SampleMode {
		for i, b := range aoc.MustGet(sim.Top(*flagTop)) {
			klog.Infof("#%d: %v energizes %d", i+1, b.Entry, b.Energized)
		}
	}
	s.Debugf("best entry %v", best.Entry)
	return best.Energized
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func (s solver) D23p1() any {
	return s.hike(maze.Slopes)
}

// want=154
func (s solver) D23p2() any {
	return s.hike(maze.Undirected)
}

func (s solver) hike(mode maze.Mode) int {
	m := aoc.MustGet(maze.New(s.Grid()))
	g := aoc.MustGet(maze.Contract(m, mode))
	s.Debugf("%v: contracted to %d nodes\n%v", mode, g.Len(), g)
	r := aoc.MustGet(g.Longest())
	s.Debugf("%v: route %v", mode, r.Nodes)
	return r.Len
}
