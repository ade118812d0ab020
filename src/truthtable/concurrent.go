package truthtable

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// GenerateConcurrently evaluates the truth table with up to `workers` rows in
// flight at once. The result is identical to Generate: rows are stored by
// index, so they keep their canonical order. The first evaluation error, or
// cancellation of ctx, stops the remaining work.
//
// Evaluation only reads the expression tree, so any Solver that is safe to
// call from multiple goroutines can be used.
func GenerateConcurrently(ctx context.Context, solver Solver, variables []string, workers int) (*Table, error) {
	if workers < 1 {
		workers = 1
	}

	columns := Columns(variables)
	if len(columns) > MaxVariables {
		return nil, NewTooManyVariablesError(len(columns))
	}

	rows := make([]Row, RowCount(len(columns)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for r := range rows {
		if gctx.Err() != nil {
			// a row failed or the caller gave up, no point scheduling more
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			row, err := evaluateRow(solver, columns, r)
			if err != nil {
				return err
			}
			rows[r] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("Generated truth table", "variables", len(columns), "rows", len(rows), "workers", workers)
	return &Table{
		Variables: columns,
		Rows:      rows,
	}, nil
}
