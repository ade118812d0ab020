package truthtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

var formats = []Format{FormatText, FormatCSV, FormatYAML}

// ParseFormat is case-insensitive; an empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}

	format := Format(strings.ToLower(s))
	if !lo.Contains(formats, format) {
		return "", fmt.Errorf("unknown output format '%s', expected one of %v", s, formats)
	}
	return format, nil
}

// Write renders the table in the given format.
func Write(w io.Writer, table *Table, format Format) error {
	switch format {
	case FormatText, "":
		return WriteText(w, table)
	case FormatCSV:
		return WriteCSV(w, table)
	case FormatYAML:
		return WriteYAML(w, table)
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func header(table *Table) []string {
	return append(slices.Clone(table.Variables), "Output")
}

func cells(row Row) []string {
	values := lo.Map(row.Values, func(value bool, _ int) string {
		return fmt.Sprint(bit(value))
	})
	return append(values, fmt.Sprint(bit(row.Output)))
}

// WriteText prints the table the way it's shown on the terminal:
//
//	A | B | Output
//	1 | 1 | 1
//	1 | 0 | 0
//	...
func WriteText(w io.Writer, table *Table) error {
	if _, err := fmt.Fprintln(w, strings.Join(header(table), " | ")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(cells(row), " | ")); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	return nil
}

func WriteCSV(w io.Writer, table *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header(table)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range table.Rows {
		if err := writer.Write(cells(row)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

type yamlTable struct {
	Variables []string  `yaml:"variables,flow"`
	Rows      []yamlRow `yaml:"rows"`
}

type yamlRow struct {
	Inputs []int `yaml:"inputs,flow"`
	Output int   `yaml:"output"`
}

func WriteYAML(w io.Writer, table *Table) error {
	doc := yamlTable{
		Variables: table.Variables,
		Rows: lo.Map(table.Rows, func(row Row, _ int) yamlRow {
			return yamlRow{
				Inputs: lo.Map(row.Values, func(value bool, _ int) int { return bit(value) }),
				Output: bit(row.Output),
			}
		}),
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode truth table as yaml: %w", err)
	}
	return encoder.Close()
}
