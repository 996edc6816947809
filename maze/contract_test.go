package maze

import (
	"fmt"
	"testing"

	aoc "github.com/maisem/aoc2023"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestSample(t *testing.T) {
	m := mustParse(t, trails)
	for mode, want := range map[Mode]int{Slopes: 94, Undirected: 154} {
		t.Run(mode.String(), func(t *testing.T) {
			got, err := Longest(m, mode)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestContractNodes(t *testing.T) {
	m := mustParse(t, trails)
	for _, mode := range []Mode{Slopes, Undirected} {
		g, err := Contract(m, mode)
		require.NoError(t, err)
		// start, end and every junction
		assert.Equal(t, len(junctions(m))+2, g.Len(), "%v", mode)
		for i := 0; i < g.Len(); i++ {
			assert.True(t, m.isNode(g.Node(i)), "%v is not a node", g.Node(i))
		}
		endIdx, ok := g.Index(m.End)
		require.True(t, ok)
		if mode == Slopes {
			assert.Empty(t, g.Neighbors(endIdx), "nothing leaves the end going downhill")
		}
	}
}

func TestContractArcWeights(t *testing.T) {
	m := mustParse(t, trails)
	for _, mode := range []Mode{Slopes, Undirected} {
		g, err := Contract(m, mode)
		require.NoError(t, err)
		for i := 0; i < g.Len(); i++ {
			a := g.Node(i)
			for _, e := range g.Neighbors(i) {
				b := g.Node(e.To)
				d := a.MDist(b)
				assert.GreaterOrEqual(t, e.W, 1)
				assert.GreaterOrEqual(t, e.W, d, "%v->%v", a, b)
				assert.Equal(t, d%2, e.W%2, "%v->%v: grid walks keep parity", a, b)
				if mode == Undirected {
					w, ok := g.Weight(b, a)
					assert.True(t, ok, "%v->%v has no reverse", a, b)
					assert.Equal(t, e.W, w)
				}
			}
		}
	}
}

func TestLongestRoute(t *testing.T) {
	m := mustParse(t, trails)
	for _, mode := range []Mode{Slopes, Undirected} {
		g, err := Contract(m, mode)
		require.NoError(t, err)
		r, err := g.Longest()
		require.NoError(t, err)
		require.NotEmpty(t, r.Nodes)
		assert.Equal(t, m.Start, r.Nodes[0])
		assert.Equal(t, m.End, r.Nodes[len(r.Nodes)-1])

		seen := map[aoc.Pt]bool{}
		total := 0
		for i, p := range r.Nodes {
			assert.False(t, seen[p], "%v visited twice", p)
			seen[p] = true
			if i > 0 {
				w, ok := g.Weight(r.Nodes[i-1], p)
				require.True(t, ok)
				total += w
			}
		}
		assert.Equal(t, r.Len, total)
		if w, ok := g.Weight(m.Start, m.End); ok {
			assert.GreaterOrEqual(t, r.Len, w)
		}
	}
}

func TestLongestSmall(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[Mode]int
	}{
		{
			name:  "single-row",
			input: "#.#",
			want:  map[Mode]int{Slopes: 0, Undirected: 0},
		},
		{
			name:  "straight",
			input: "#.#\n#.#\n#.#\n#.#\n",
			want:  map[Mode]int{Slopes: 3, Undirected: 3},
		},
		{
			name:  "marker-with-dead-end",
			input: "#.###\n#S..#\n###.#\n",
			want:  map[Mode]int{Slopes: 3, Undirected: 3},
		},
		{
			name: "loop-around-the-block",
			input: `#.####
#....#
#.##.#
#....#
####.#
`,
			// The walk has to pick one side of the block.
			want: map[Mode]int{Slopes: 7, Undirected: 7},
		},
		{
			name: "uphill-shortcut",
			input: `#.###
#...#
#.#^#
#...#
###.#
`,
			want: map[Mode]int{Slopes: 6, Undirected: 6},
		},
	}
	for _, tt := range tests {
		for mode, want := range tt.want {
			t.Run(fmt.Sprintf("%s/%v", tt.name, mode), func(t *testing.T) {
				got, err := Longest(mustParse(t, tt.input), mode)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestContractErrors(t *testing.T) {
	// Every way out of the junction is an uphill slope.
	trapped := mustParse(t, `##.##
##v##
#>.<#
##^##
##.##
`)
	_, err := Contract(trapped, Slopes)
	assert.True(t, errors.Is(err, ErrDeadJunction), "got %v", err)
	// Ignoring slopes the way down opens up.
	n, err := Longest(trapped, Undirected)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// The trail from the start only leads round a loop.
	ring := mustParse(t, `#.#####
#...###
#.#.###
#...###
#######
####.##
`)
	for _, mode := range []Mode{Slopes, Undirected} {
		_, err := Contract(ring, mode)
		assert.True(t, errors.Is(err, ErrNoPath), "%v: got %v", mode, err)
		_, err = Longest(ring, mode)
		assert.True(t, errors.Is(err, ErrNoPath), "%v: got %v", mode, err)
	}

	// A trail that dead-ends before any junction.
	_, err = Contract(mustParse(t, "#.#\n#.#\n###\n#.#\n"), Undirected)
	assert.True(t, errors.Is(err, ErrDeadJunction), "got %v", err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "slopes", Slopes.String())
	assert.Equal(t, "undirected", Undirected.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
