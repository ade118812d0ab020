package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/eriklarko/logic-circuit-simulator/src/analysis"
	"github.com/eriklarko/logic-circuit-simulator/src/boolexpr"
	"github.com/eriklarko/logic-circuit-simulator/src/config"
	"github.com/eriklarko/logic-circuit-simulator/src/diagram"
	"github.com/eriklarko/logic-circuit-simulator/src/environment"
	"github.com/eriklarko/logic-circuit-simulator/src/tui"
	"github.com/spf13/pflag"
)

const usage = `Usage: logic-circuit-simulator [flags] [expression]

Prints the truth table of a boolean expression built from variables, AND, OR,
NOT and parentheses, e.g.

  logic-circuit-simulator "A AND B OR NOT (C AND E)"

Without an expression the simulator asks for one, showing a menu when run in
a terminal and reading a single line from stdin otherwise.

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("logic-circuit-simulator", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	configPath := flags.StringP("config", "c", config.DefaultPath, "path to the config file")
	format := flags.StringP("format", "f", "", "truth table format: text, csv or yaml")
	workers := flags.IntP("workers", "w", 0, "evaluate this many truth table rows concurrently, 0 evaluates them in order")
	showDiagram := flags.BoolP("diagram", "d", false, "print the circuit diagram after the truth table")
	showSummary := flags.BoolP("summary", "s", false, "print a summary and the canonical DNF after the truth table")
	outputPath := flags.StringP("output", "o", "", "write the truth table to this file instead of stdout")
	interactive := flags.BoolP("interactive", "i", false, "show the menu even if stdin or stdout isn't a terminal")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	setupLogging(stderr, *verbose)

	conf, err := loadConfig(*configPath, flags.Changed("config"))
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}
	if flags.Changed("format") {
		conf.OutputFormat = *format
	}
	if flags.Changed("workers") {
		conf.Workers = *workers
	}
	if flags.Changed("diagram") {
		conf.ShowDiagram = *showDiagram
	}
	if flags.Changed("summary") {
		conf.ShowSummary = *showSummary
	}
	if err := conf.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 2
	}

	if *interactive {
		environment.ForceSetIsInteractive(true)
	}

	expression := strings.Join(flags.Args(), " ")
	if expression == "" && environment.IsInteractive() {
		session := tui.New(conf)
		session.SetInput(stdin)
		session.SetOutput(stdout)

		if err := session.Run(ctx); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		return 0
	}

	if expression == "" {
		expression, err = readExpression(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
	}

	expr, err := boolexpr.New(expression)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid expression! %v\n", err)
		return 1
	}

	if err := printResults(ctx, stdout, *outputPath, conf, expr); err != nil {
		slog.Error("Failed to print results", "error", err)
		return 1
	}

	return 0
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig falls back to the defaults when the default config file doesn't
// exist. A config file the user asked for explicitly has to exist.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	conf, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		slog.Debug("No config file found, using defaults", "path", path)
		return config.Default(), nil
	}
	return conf, err
}

func readExpression(stdin io.Reader) (string, error) {
	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read expression: %w", err)
		}
		return "", errors.New("no expression given")
	}
	return scanner.Text(), nil
}

func printResults(ctx context.Context, stdout io.Writer, outputPath string, conf *config.Config, expr *boolexpr.Expression) error {
	w := stdout
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		defer file.Close()
		w = file
	}

	table, err := tui.PrintTruthTable(ctx, w, conf, expr)
	if err != nil {
		return err
	}

	if conf.ShowSummary {
		report := analysis.Analyze(table)
		fmt.Fprintf(stdout, "\n%s\n", report.Summary())
		if report.IsSatisfiable() {
			fmt.Fprintf(stdout, "Canonical DNF: %s\n", report.CanonicalDNF())
		}
	}

	if conf.ShowDiagram {
		// the diagram is for humans, it never goes into the output file
		fmt.Fprintln(stdout)
		if err := diagram.Render(stdout, expr.Root); err != nil {
			return err
		}
	}

	return nil
}
