package boolexpr

import (
	"fmt"
)

// Solve evaluates the tree with the given variable values. Every variable in
// the tree needs a value; a missing one fails with an UnboundVariableError.
func (n *Node) Solve(assignment map[string]bool) (bool, error) {
	switch n.Operator {
	case VARIABLE:
		value, ok := assignment[n.Name]
		if !ok {
			return false, NewUnboundVariableError(n.Name)
		}
		return value, nil

	case NOT:
		result, err := n.Left.Solve(assignment)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil
	}

	leftResult, err := n.Left.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := n.Right.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}

	switch n.Operator {
	case AND:
		return leftResult && rightResult, nil
	case OR:
		return leftResult || rightResult, nil
	}

	return false, fmt.Errorf("unknown operator: %v", n.Operator)
}

// Variables returns the distinct variable names referenced by the tree.
func (n *Node) Variables() VariableSet {
	variables := make(VariableSet)
	n.collectVariables(variables)
	return variables
}

func (n *Node) collectVariables(into VariableSet) {
	if n == nil {
		return
	}
	if n.Operator == VARIABLE {
		into.Add(n.Name)
		return
	}
	n.Left.collectVariables(into)
	n.Right.collectVariables(into)
}
