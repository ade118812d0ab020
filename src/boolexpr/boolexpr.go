package boolexpr

import (
	"fmt"
)

type Operator int

const (
	VARIABLE Operator = iota
	NOT
	AND
	OR
)

func (o Operator) String() string {
	switch o {
	case VARIABLE:
		return "VARIABLE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Node is either a variable (Operator == VARIABLE, Name set, no children) or a
// gate. AND and OR gates have both Left and Right, NOT gates only Left.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	Name string
}

// Expression is the result of parsing an expression string.
type Expression struct {
	Root *Node

	// Variables holds every distinct variable name found in the input, sorted.
	Variables []string

	// Postfix is the token sequence the tree was built from
	Postfix []Token
}

// New parses the given expression and builds its expression tree.
// Example usage:
//
//	expr, err := boolexpr.New("A AND (B OR NOT C)")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	result, err := expr.Solve(map[string]bool{"A": true, "B": false, "C": false})
//	fmt.Println(result) // Output: true
func New(expression string) (*Expression, error) {
	tokens, variables, err := Tokenize(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize expression '%s': %w", expression, err)
	}

	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to convert expression '%s' to postfix: %w", expression, err)
	}

	root, err := BuildTree(postfix)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for '%s': %w", expression, err)
	}

	return &Expression{
		Root:      root,
		Variables: variables.Sorted(),
		Postfix:   postfix,
	}, nil
}

func (e *Expression) Solve(assignment map[string]bool) (bool, error) {
	return e.Root.Solve(assignment)
}
