package query

import (
	"fmt"
	"strings"
)

// Verse table columns a filter can constrain.
const (
	ColumnChapter = "chapter"
	ColumnVerse   = "verse"
)

// Op is a comparison operator.
type Op string

const (
	OpGTE Op = ">="
	OpLTE Op = "<="
)

// Condition is a single (column, operator, value) comparison.
type Condition struct {
	Column string
	Op     Op
	Value  int
}

// Match evaluates the condition against a column value.
func (c Condition) Match(v int) bool {
	switch c.Op {
	case OpGTE:
		return v >= c.Value
	case OpLTE:
		return v <= c.Value
	default:
		return false
	}
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %d", c.Column, c.Op, c.Value)
}

// Clause restricts one column to an inclusive range.
type Clause struct {
	Column string
	Range  Range
}

// NewClause returns the clause column >= r.Start AND column <= r.End.
func NewClause(r Range, column string) Clause {
	return Clause{Column: column, Range: r}
}

// Conditions returns the two comparisons making up the clause.
func (c Clause) Conditions() []Condition {
	return []Condition{
		{Column: c.Column, Op: OpGTE, Value: c.Range.Start},
		{Column: c.Column, Op: OpLTE, Value: c.Range.End},
	}
}

// Match reports whether v satisfies every condition of the clause.
func (c Clause) Match(v int) bool {
	for _, cond := range c.Conditions() {
		if !cond.Match(v) {
			return false
		}
	}
	return true
}

// String renders the clause with literal values, for display only.
func (c Clause) String() string {
	conds := c.Conditions()
	parts := make([]string, len(conds))
	for i, cond := range conds {
		parts[i] = cond.String()
	}
	return strings.Join(parts, " AND ")
}

// SQL compiles the clause to placeholder text and its arguments.
func (c Clause) SQL() (string, []interface{}) {
	return compile(c.Conditions())
}

func compile(conds []Condition) (string, []interface{}) {
	parts := make([]string, len(conds))
	args := make([]interface{}, len(conds))
	for i, cond := range conds {
		parts[i] = fmt.Sprintf("%s %s ?", cond.Column, cond.Op)
		args[i] = cond.Value
	}
	return strings.Join(parts, " AND "), args
}

// Filter selects verses by one chapter range and any number of verse ranges.
// With no verse ranges every verse of the selected chapters matches.
type Filter struct {
	Chapter Clause
	Verses  []Clause
}

// Combine builds the filter
//
//	chapter_clause AND (verse_clause_1 OR verse_clause_2 OR ...)
//
// omitting the verse group when verses is empty.
func Combine(chapter Range, verses []Range) Filter {
	f := Filter{Chapter: NewClause(chapter, ColumnChapter)}
	for _, r := range verses {
		f.Verses = append(f.Verses, NewClause(r, ColumnVerse))
	}
	return f
}

// Ranges returns every range in the filter, chapter first.
func (f Filter) Ranges() []Range {
	ranges := []Range{f.Chapter.Range}
	for _, v := range f.Verses {
		ranges = append(ranges, v.Range)
	}
	return ranges
}

// Match evaluates the filter in memory.
func (f Filter) Match(chapter, verse int) bool {
	if !f.Chapter.Match(chapter) {
		return false
	}
	if len(f.Verses) == 0 {
		return true
	}
	for _, v := range f.Verses {
		if v.Match(verse) {
			return true
		}
	}
	return false
}

// String renders the filter with literal values, for display only.
func (f Filter) String() string {
	s := f.Chapter.String()
	if len(f.Verses) == 0 {
		return s
	}
	groups := make([]string, len(f.Verses))
	for i, v := range f.Verses {
		groups[i] = "(" + v.String() + ")"
	}
	return s + " AND (" + strings.Join(groups, " OR ") + ")"
}

// SQL compiles the filter to a boolean expression using ? placeholders for
// every value, with the arguments in placeholder order.
func (f Filter) SQL() (string, []interface{}) {
	s, args := f.Chapter.SQL()
	if len(f.Verses) == 0 {
		return s, args
	}
	groups := make([]string, len(f.Verses))
	for i, v := range f.Verses {
		vs, vargs := v.SQL()
		groups[i] = "(" + vs + ")"
		args = append(args, vargs...)
	}
	return s + " AND (" + strings.Join(groups, " OR ") + ")", args
}
