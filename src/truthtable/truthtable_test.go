package truthtable_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/eriklarko/logic-circuit-simulator/src/boolexpr"
	"github.com/eriklarko/logic-circuit-simulator/src/truthtable"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// bits flattens a table into rows of 0s and 1s, output last
func bits(table *truthtable.Table) [][]int {
	return lo.Map(table.Rows, func(row truthtable.Row, _ int) []int {
		values := append(append([]bool{}, row.Values...), row.Output)
		return lo.Map(values, func(value bool, _ int) int {
			if value {
				return 1
			}
			return 0
		})
	})
}

func generate(t *testing.T, expression string) *truthtable.Table {
	t.Helper()

	expr, err := boolexpr.New(expression)
	require.NoError(t, err)

	table, err := truthtable.Generate(expr.Root, expr.Variables)
	require.NoError(t, err)
	return table
}

func TestGenerate(t *testing.T) {
	testCases := map[string]struct {
		variables []string
		rows      [][]int
	}{
		"A": {
			variables: []string{"A"},
			rows:      [][]int{{1, 1}, {0, 0}},
		},
		"NOT A": {
			variables: []string{"A"},
			rows:      [][]int{{1, 0}, {0, 1}},
		},
		"NOT NOT A": {
			variables: []string{"A"},
			rows:      [][]int{{1, 1}, {0, 0}},
		},
		"NOT NOT NOT A": {
			variables: []string{"A"},
			rows:      [][]int{{1, 0}, {0, 1}},
		},
		"A AND B": {
			variables: []string{"A", "B"},
			rows:      [][]int{{1, 1, 1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 0}},
		},
		"A OR B": {
			variables: []string{"A", "B"},
			rows:      [][]int{{1, 1, 1}, {1, 0, 1}, {0, 1, 1}, {0, 0, 0}},
		},
		"A OR NOT B": {
			variables: []string{"A", "B"},
			rows:      [][]int{{1, 1, 1}, {1, 0, 1}, {0, 1, 0}, {0, 0, 1}},
		},
		"B AND NOT A": {
			variables: []string{"A", "B"},
			rows:      [][]int{{1, 1, 0}, {1, 0, 0}, {0, 1, 1}, {0, 0, 0}},
		},
		"A AND B OR NOT C": {
			variables: []string{"A", "B", "C"},
			rows: [][]int{
				{1, 1, 1, 1},
				{1, 1, 0, 1},
				{1, 0, 1, 0},
				{1, 0, 0, 1},
				{0, 1, 1, 0},
				{0, 1, 0, 1},
				{0, 0, 1, 0},
				{0, 0, 0, 1},
			},
		},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			table := generate(t, expression)

			assert.Equal(t, expected.variables, table.Variables)
			assert.Equal(t, expected.rows, bits(table))
		})
	}
}

func TestDoubleNegationMatchesVariable(t *testing.T) {
	plain := generate(t, "A AND B")
	negated := generate(t, "NOT NOT A AND NOT NOT B")

	assert.Equal(t, bits(plain), bits(negated))
}

func TestGenerateRowCount(t *testing.T) {
	testCases := map[string]int{
		"A":                     2,
		"A OR A":                2,
		"A AND B":               4,
		"A AND B OR C":          8,
		"(A OR B) AND (C OR D)": 16,
		"A OR B OR C OR D OR E": 32,
	}

	for expression, expectedRows := range testCases {
		t.Run(expression, func(t *testing.T) {
			table := generate(t, expression)

			assert.Len(t, table.Rows, expectedRows)
			assert.Equal(t, truthtable.RowCount(len(table.Variables)), expectedRows)
		})
	}
}

func TestGenerateSortsColumns(t *testing.T) {
	table := generate(t, "zed or beta and alpha")
	assert.Equal(t, []string{"ALPHA", "BETA", "ZED"}, table.Variables)

	expr, err := boolexpr.New("A AND B")
	require.NoError(t, err)

	table, err = truthtable.Generate(expr.Root, []string{"B", "A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, table.Variables)
}

func TestGenerateTogglePeriods(t *testing.T) {
	table := generate(t, "A AND B AND C AND D")

	// the first column changes every 8 rows, the last on every row
	for col, period := range []int{8, 4, 2, 1} {
		for r := 1; r < len(table.Rows); r++ {
			changed := table.Rows[r].Values[col] != table.Rows[r-1].Values[col]
			assert.Equal(t, r%period == 0, changed, "column %d, row %d", col, r)
		}
	}
}

func TestRowAssignment(t *testing.T) {
	table := generate(t, "A AND B")

	assert.Equal(t, map[string]bool{"A": true, "B": false}, table.Rows[1].Assignment(table.Variables))
}

func TestRowsIsRestartable(t *testing.T) {
	expr, err := boolexpr.New("A OR NOT (B AND C)")
	require.NoError(t, err)

	rows := truthtable.Rows(expr.Root, expr.Variables)

	collect := func() []truthtable.Row {
		var collected []truthtable.Row
		for row, err := range rows {
			require.NoError(t, err)
			collected = append(collected, row)
		}
		return collected
	}

	first := collect()
	assert.Len(t, first, 8)
	assert.Equal(t, first, collect())
}

func TestRowsStopsEarly(t *testing.T) {
	expr, err := boolexpr.New("A AND B AND C")
	require.NoError(t, err)

	seen := 0
	for range truthtable.Rows(expr.Root, expr.Variables) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestGenerateUnboundVariable(t *testing.T) {
	expr, err := boolexpr.New("A AND B")
	require.NoError(t, err)

	_, err = truthtable.Generate(expr.Root, []string{"A"})

	var unbound *boolexpr.UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "B", unbound.VariableName)
}

type constantSolver bool

func (c constantSolver) Solve(map[string]bool) (bool, error) {
	return bool(c), nil
}

func manyVariables(n int) []string {
	return lo.Times(n, func(i int) string {
		return fmt.Sprintf("V%02d", i)
	})
}

func TestGenerateTooManyVariables(t *testing.T) {
	_, err := truthtable.Generate(constantSolver(true), manyVariables(truthtable.MaxVariables+1))

	var tooMany *truthtable.TooManyVariablesError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, truthtable.MaxVariables+1, tooMany.Count)

	_, err = truthtable.GenerateConcurrently(context.Background(), constantSolver(true), manyVariables(truthtable.MaxVariables+1), 4)
	assert.ErrorAs(t, err, &tooMany)
}

func TestGenerateConcurrently(t *testing.T) {
	defer goleak.VerifyNone(t)

	expressions := []string{
		"A",
		"A OR NOT B",
		"A AND B OR NOT (C AND E)",
		"(A OR B) AND (C OR D) AND NOT (E AND F)",
	}

	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			expr, err := boolexpr.New(expression)
			require.NoError(t, err)

			expected, err := truthtable.Generate(expr.Root, expr.Variables)
			require.NoError(t, err)

			for _, workers := range []int{0, 1, 3, 16} {
				table, err := truthtable.GenerateConcurrently(context.Background(), expr.Root, expr.Variables, workers)
				require.NoError(t, err)
				assert.Equal(t, expected, table, "workers: %d", workers)
			}
		})
	}
}

func TestGenerateConcurrentlyErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("unbound variable", func(t *testing.T) {
		expr, err := boolexpr.New("A AND B AND C")
		require.NoError(t, err)

		_, err = truthtable.GenerateConcurrently(context.Background(), expr.Root, []string{"A", "B"}, 4)

		var unbound *boolexpr.UnboundVariableError
		require.ErrorAs(t, err, &unbound)
		assert.Equal(t, "C", unbound.VariableName)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := truthtable.GenerateConcurrently(ctx, constantSolver(false), manyVariables(4), 2)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

var benchmarkTable *truthtable.Table

func BenchmarkGenerate(b *testing.B) {
	expr, err := boolexpr.New("(A OR B) AND (C OR NOT D) AND (E OR F OR G) AND NOT (H AND I AND J)")
	require.NoError(b, err)

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchmarkTable, _ = truthtable.Generate(expr.Root, expr.Variables)
		}
	})
	b.Run("concurrently", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchmarkTable, _ = truthtable.GenerateConcurrently(context.Background(), expr.Root, expr.Variables, 8)
		}
	})
}
