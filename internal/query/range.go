// Package query builds verse filters from chapter and verse range expressions
// such as "3" or "1-5,8,10-12".
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Range is an inclusive bound pair over chapter or verse numbers.
// Start is not required to be <= End; a reversed range matches nothing.
type Range struct {
	Start int
	End   int
}

// Single returns the range covering only n.
func Single(n int) Range {
	return Range{Start: n, End: n}
}

// Reversed reports whether Start > End.
func (r Range) Reversed() bool {
	return r.Start > r.End
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseError reports a malformed range or number token.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// rangeGrammar matches "N" or "N-M". Numbers are captured as text and
// converted with base 10 so "08" reads as 8.
//
//nolint:govet // participle grammar tags are not standard struct tags
type rangeGrammar struct {
	Start string  `parser:"@Int"`
	End   *string `parser:"( \"-\" @Int )?"`
}

var rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `-`},
})

var rangeParser = participle.MustBuild[rangeGrammar](
	participle.Lexer(rangeLexer),
)

// Parse parses a single range token: "N" yields [N,N], "N-M" yields [N,M].
// Anything else, including extra hyphens, signs, spaces or non-digits, fails
// with a *ParseError.
func Parse(token string) (Range, error) {
	g, err := rangeParser.ParseString("", token)
	if err != nil {
		return Range{}, &ParseError{Input: token, Err: err}
	}

	start, err := strconv.Atoi(g.Start)
	if err != nil {
		return Range{}, &ParseError{Input: token, Err: err}
	}
	if g.End == nil {
		return Single(start), nil
	}

	end, err := strconv.Atoi(*g.End)
	if err != nil {
		return Range{}, &ParseError{Input: token, Err: err}
	}
	return Range{Start: start, End: end}, nil
}

// ParseList parses comma-separated range tokens in input order.
// An empty string means no ranges and yields an empty slice.
func ParseList(s string) ([]Range, error) {
	if s == "" {
		return []Range{}, nil
	}

	tokens := strings.Split(s, ",")
	ranges := make([]Range, 0, len(tokens))
	for _, token := range tokens {
		r, err := Parse(token)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
