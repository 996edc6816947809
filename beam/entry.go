package beam

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	aoc "github.com/maisem/aoc2023"
	"github.com/pkg/errors"
)

// entrySpec is the grammar of an entry point: "row,col dir", for example
// "0,0 >" or "3, 9 left".
type entrySpec struct {
	Row int    `parser:"@Int \",\""`
	Col int    `parser:"@Int"`
	Dir string `parser:"@Dir"`
}

var entryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Dir", Pattern: `(?i:up|right|down|left)|[\^<>vVuUrRdDlL]`},
	{Name: "Punct", Pattern: `,`},
	{Name: "whitespace", Pattern: `\s+`},
})

var entryParser = participle.MustBuild[entrySpec](
	participle.Lexer(entryLexer),
)

// ParseEntry parses an entry point of the form "row,col dir". dir is one
// of ^ > v < or a word such as "right".
func ParseEntry(spec string) (aoc.Path, error) {
	e, err := entryParser.ParseString("", spec)
	if err != nil {
		return aoc.Path{}, errors.Wrapf(err, "parsing entry %q", spec)
	}
	d, err := aoc.ParseDirection(e.Dir)
	if err != nil {
		return aoc.Path{}, errors.Wrapf(err, "parsing entry %q", spec)
	}
	return aoc.Path{Pt: aoc.Pt{X: e.Col, Y: e.Row}, Dir: d}, nil
}
