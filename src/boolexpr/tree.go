package boolexpr

// BuildTree assembles an expression tree from postfix tokens.
func BuildTree(postfix []Token) (*Node, error) {
	var stack []*Node

	pop := func() *Node {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return node
	}

	for i, token := range postfix {
		if token.Kind != TokenOperator {
			stack = append(stack, &Node{Operator: VARIABLE, Name: token.Text})
			continue
		}

		switch token.Operator {
		case AND, OR:
			if len(stack) < 2 {
				return nil, NewStructuralError("%s at postfix position %d needs two operands, has %d", token.Operator, i, len(stack))
			}
			right := pop()
			left := pop()
			stack = append(stack, &Node{Operator: token.Operator, Left: left, Right: right})

		case NOT:
			if len(stack) < 1 {
				return nil, NewStructuralError("NOT at postfix position %d has no operand", i)
			}
			stack = append(stack, &Node{Operator: NOT, Left: pop()})

		default:
			return nil, NewStructuralError("unknown operator %s", token.Operator)
		}
	}

	if len(stack) != 1 {
		return nil, NewStructuralError("expected exactly one root, got %d", len(stack))
	}

	return stack[0], nil
}
