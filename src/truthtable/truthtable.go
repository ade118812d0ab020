package truthtable

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/samber/lo"
)

// MaxVariables is the largest number of variables Generate will build a table
// for. Rows iterates lazily and has no such limit.
const MaxVariables = 24

// Solver is anything that can be evaluated against a variable assignment,
// usually a *boolexpr.Node.
type Solver interface {
	Solve(assignment map[string]bool) (bool, error)
}

type Row struct {
	// Values holds one value per table variable, in column order
	Values []bool
	Output bool
}

// Assignment maps each variable to its value in this row.
func (r Row) Assignment(variables []string) map[string]bool {
	assignment := make(map[string]bool, len(variables))
	for i, name := range variables {
		assignment[name] = r.Values[i]
	}
	return assignment
}

type Table struct {
	Variables []string
	Rows      []Row
}

// TooManyVariablesError is returned when a table would have more rows than
// Generate is willing to hold in memory.
type TooManyVariablesError struct {
	Count int
}

func NewTooManyVariablesError(count int) error {
	return &TooManyVariablesError{Count: count}
}

func (e TooManyVariablesError) Error() string {
	return fmt.Sprintf("too many variables for a truth table: %d, at most %d are supported", e.Count, MaxVariables)
}

// Columns returns the column order of a table over the given variables:
// deduplicated and sorted.
func Columns(variables []string) []string {
	columns := lo.Uniq(variables)
	slices.Sort(columns)
	return columns
}

// RowCount is the number of rows in a table over n variables
func RowCount(n int) int {
	return 1 << n
}

// rowValues returns the variable values of row r in a table over n variables.
// The first row is all ones and the last all zeros; the first variable
// toggles slowest, the last toggles on every row.
func rowValues(r, n int) []bool {
	values := make([]bool, n)
	for i := range values {
		values[i] = (r>>(n-1-i))&1 == 0
	}
	return values
}

func evaluateRow(solver Solver, columns []string, r int) (Row, error) {
	row := Row{Values: rowValues(r, len(columns))}

	output, err := solver.Solve(row.Assignment(columns))
	if err != nil {
		return Row{}, fmt.Errorf("failed to evaluate row %d: %w", r, err)
	}
	row.Output = output

	return row, nil
}

// Rows lazily evaluates every row of the truth table. Iteration stops after
// the first error. The sequence can be ranged over any number of times.
//
// Usage:
//
//	for row, err := range truthtable.Rows(expr.Root, expr.Variables) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(row.Values, row.Output)
//	}
func Rows(solver Solver, variables []string) iter.Seq2[Row, error] {
	columns := Columns(variables)

	return func(yield func(Row, error) bool) {
		for r := 0; r < RowCount(len(columns)); r++ {
			row, err := evaluateRow(solver, columns, r)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// Generate evaluates the whole truth table.
func Generate(solver Solver, variables []string) (*Table, error) {
	columns := Columns(variables)
	if len(columns) > MaxVariables {
		return nil, NewTooManyVariablesError(len(columns))
	}

	table := &Table{
		Variables: columns,
		Rows:      make([]Row, 0, RowCount(len(columns))),
	}
	for row, err := range Rows(solver, columns) {
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}

	slog.Debug("Generated truth table", "variables", len(columns), "rows", len(table.Rows))
	return table, nil
}
