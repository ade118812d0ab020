package analysis

import (
	"fmt"
	"strings"

	"github.com/eriklarko/logic-circuit-simulator/src/truthtable"
	"github.com/samber/lo"
)

type Classification int

const (
	Contingent Classification = iota
	Tautology
	Contradiction
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

// Report sorts the rows of a truth table by their output. Rows are
// identified by their index in the table.
type Report struct {
	Variables []string

	// rows where the expression is true
	Minterms []int
	// rows where the expression is false
	Maxterms []int

	rows map[int]truthtable.Row
}

func (r *Report) RecordRow(index int, row truthtable.Row) {
	if row.Output {
		r.Minterms = append(r.Minterms, index)
	} else {
		r.Maxterms = append(r.Maxterms, index)
	}
	if r.rows == nil {
		r.rows = make(map[int]truthtable.Row)
	}
	r.rows[index] = row
}

// Analyze builds a report from every row of the table
func Analyze(table *truthtable.Table) *Report {
	report := &Report{Variables: table.Variables}
	for i, row := range table.Rows {
		report.RecordRow(i, row)
	}
	return report
}

func (r *Report) Classify() Classification {
	switch {
	case len(r.Maxterms) == 0:
		return Tautology
	case len(r.Minterms) == 0:
		return Contradiction
	default:
		return Contingent
	}
}

func (r *Report) IsSatisfiable() bool {
	return len(r.Minterms) > 0
}

// SatisfyingAssignments returns the assignment of every row where the
// expression is true, in table order.
func (r *Report) SatisfyingAssignments() []map[string]bool {
	return lo.Map(r.Minterms, func(index int, _ int) map[string]bool {
		return r.rows[index].Assignment(r.Variables)
	})
}

// CanonicalDNF returns the expression as an OR of one AND-term per satisfying
// row, e.g. "(A AND NOT B) OR (NOT A AND B)". The result has the same truth
// table as the analyzed expression. A contradiction has no terms and returns
// an empty string.
func (r *Report) CanonicalDNF() string {
	terms := lo.Map(r.Minterms, func(index int, _ int) string {
		literals := lo.Map(r.Variables, func(name string, i int) string {
			if r.rows[index].Values[i] {
				return name
			}
			return "NOT " + name
		})
		return "(" + strings.Join(literals, " AND ") + ")"
	})
	return strings.Join(terms, " OR ")
}

// Summary is a one line description of the report, e.g.
// "contingent: true in 3 of 4 rows"
func (r *Report) Summary() string {
	total := len(r.Minterms) + len(r.Maxterms)
	return fmt.Sprintf("%s: true in %d of %d rows", r.Classify(), len(r.Minterms), total)
}
