package beam_test

import (
	"testing"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/beam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		in   string
		want aoc.Path
	}{
		{"0,0 >", aoc.Path{Pt: aoc.Pt{X: 0, Y: 0}, Dir: aoc.Right}},
		{"3, 9 left", aoc.Path{Pt: aoc.Pt{X: 9, Y: 3}, Dir: aoc.Left}},
		{"12,4v", aoc.Path{Pt: aoc.Pt{X: 4, Y: 12}, Dir: aoc.Down}},
		{" 7,2   UP ", aoc.Path{Pt: aoc.Pt{X: 2, Y: 7}, Dir: aoc.Up}},
		{"1,1 ^", aoc.Path{Pt: aoc.Pt{X: 1, Y: 1}, Dir: aoc.Up}},
		{"5,0 <", aoc.Path{Pt: aoc.Pt{X: 0, Y: 5}, Dir: aoc.Left}},
		{"2,3 D", aoc.Path{Pt: aoc.Pt{X: 3, Y: 2}, Dir: aoc.Down}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := beam.ParseEntry(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntryErrors(t *testing.T) {
	for _, in := range []string{"", "0 0 >", "0,0", "0,0 x", "a,b >", "0,0 > <"} {
		_, err := beam.ParseEntry(in)
		assert.Error(t, err, "ParseEntry(%q)", in)
	}
}
