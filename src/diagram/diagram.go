package diagram

import (
	"fmt"
	"io"
	"strings"

	"github.com/eriklarko/logic-circuit-simulator/src/boolexpr"
)

// Render draws the circuit as a tree of gates feeding into OUTPUT. Gates are
// drawn as [AND], [OR] and [NOT], inputs as (NAME).
//
// Example, for "A AND B OR NOT C":
//
//	OUTPUT
//	└── [OR]
//	    ├── [AND]
//	    │   ├── (A)
//	    │   └── (B)
//	    └── [NOT]
//	        └── (C)
func Render(w io.Writer, root *boolexpr.Node) error {
	var sb strings.Builder
	sb.WriteString("OUTPUT\n")
	draw(&sb, root, "", true)

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("failed to write circuit diagram: %w", err)
	}
	return nil
}

func label(node *boolexpr.Node) string {
	if node.Operator == boolexpr.VARIABLE {
		return "(" + node.Name + ")"
	}
	return "[" + node.Operator.String() + "]"
}

func draw(sb *strings.Builder, node *boolexpr.Node, indent string, last bool) {
	connector, childIndent := "├── ", indent+"│   "
	if last {
		connector, childIndent = "└── ", indent+"    "
	}

	sb.WriteString(indent + connector + label(node) + "\n")

	inputs := children(node)
	for i, child := range inputs {
		draw(sb, child, childIndent, i == len(inputs)-1)
	}
}

func children(node *boolexpr.Node) []*boolexpr.Node {
	switch node.Operator {
	case boolexpr.NOT:
		return []*boolexpr.Node{node.Left}
	case boolexpr.AND, boolexpr.OR:
		return []*boolexpr.Node{node.Left, node.Right}
	default:
		return nil
	}
}

// Infix renders the tree back into an expression with every binary gate
// wrapped in parentheses, making the grouping the parser chose explicit.
func Infix(node *boolexpr.Node) string {
	switch node.Operator {
	case boolexpr.VARIABLE:
		return node.Name
	case boolexpr.NOT:
		return "NOT " + Infix(node.Left)
	default:
		return "(" + Infix(node.Left) + " " + node.Operator.String() + " " + Infix(node.Right) + ")"
	}
}
