package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eriklarko/logic-circuit-simulator/src/boolexpr"
	"github.com/eriklarko/logic-circuit-simulator/src/config"
	"github.com/eriklarko/logic-circuit-simulator/src/diagram"
	"github.com/eriklarko/logic-circuit-simulator/src/phraser"
	"github.com/eriklarko/logic-circuit-simulator/src/truthtable"
)

type TUI struct {
	input  *bufio.Reader
	output io.Writer

	config *config.Config
	hints  *phraser.Phraser
}

func New(config *config.Config) *TUI {
	return &TUI{
		input:  bufio.NewReader(os.Stdin),
		output: os.Stdout,
		config: config,
		hints: phraser.New([]string{
			"Unknown choice %q, pick 1, 2 or 3.",
			"%q isn't on the menu.",
			"Sorry, %q doesn't mean anything to me. Try 1, 2 or 3.",
			"Hmm, %q? The options are 1, 2 and 3.",
		}),
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewReader(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// ReadLine prints the prompt and reads one line of input without the trailing
// newline. io.EOF is returned only when there's nothing left to read.
func (t *TUI) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.output, prompt)

	line, err := t.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// AskExpression asks for an expression, and asks once more if the first one
// can't be parsed. The parse error of the second attempt is returned.
func (t *TUI) AskExpression() (*boolexpr.Expression, error) {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			fmt.Fprintln(t.output, "\nInvalid expression! Please check your syntax.")
			fmt.Fprintf(t.output, "  %v\n", err)
		}

		var line string
		line, err = t.ReadLine("Enter logic expression: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read expression: %w", err)
		}

		var expr *boolexpr.Expression
		expr, err = boolexpr.New(line)
		if err == nil {
			return expr, nil
		}
		slog.Debug("Invalid expression", "expression", line, "attempt", attempt+1, "error", err)
	}

	return nil, err
}

// Run asks for an expression and then shows the menu until the user exits or
// the input ends.
func (t *TUI) Run(ctx context.Context) error {
	expr, err := t.AskExpression()
	if err != nil {
		return err
	}

	for {
		fmt.Fprintln(t.output, "\n1. Show truth table")
		fmt.Fprintln(t.output, "2. Visualize circuit")
		fmt.Fprintln(t.output, "3. Exit")

		choice, err := t.ReadLine("\nChoice: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.output)
			return nil
		} else if err != nil {
			slog.Error("failed to read user input", "error", err)
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if _, err := PrintTruthTable(ctx, t.output, t.config, expr); err != nil {
				return err
			}
		case "2":
			if err := diagram.Render(t.output, expr.Root); err != nil {
				return err
			}
		case "3":
			return nil
		default:
			fmt.Fprintln(t.output, t.hints.Get(choice))
		}
	}
}

// PrintTruthTable generates the truth table of expr and writes it in the
// configured format. The generated table is returned for further use.
func PrintTruthTable(ctx context.Context, w io.Writer, config *config.Config, expr *boolexpr.Expression) (*truthtable.Table, error) {
	var table *truthtable.Table
	var err error
	if config.Workers > 0 {
		table, err = truthtable.GenerateConcurrently(ctx, expr.Root, expr.Variables, config.Workers)
	} else {
		table, err = truthtable.Generate(expr.Root, expr.Variables)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate truth table: %w", err)
	}

	if err := truthtable.Write(w, table, config.Format()); err != nil {
		return nil, fmt.Errorf("failed to print truth table: %w", err)
	}
	return table, nil
}
