package boolexpr

import (
	"slices"

	"github.com/samber/lo"
)

// VariableSet holds the distinct variable names seen while tokenizing.
type VariableSet map[string]struct{}

func (s VariableSet) Add(name string) {
	s[name] = struct{}{}
}

func (s VariableSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the variable names in lexicographic order, which is also the
// column order of a truth table.
func (s VariableSet) Sorted() []string {
	names := lo.Keys(s)
	slices.Sort(names)
	return names
}
