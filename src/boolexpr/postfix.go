package boolexpr

type operatorInfo struct {
	precedence int
	// prefix operators take a single operand to their right and group
	// right-to-left, so "NOT NOT A" is NOT(NOT(A))
	prefix bool
}

var operators = map[Operator]operatorInfo{
	NOT: {precedence: 3, prefix: true},
	AND: {precedence: 2},
	OR:  {precedence: 1},
}

// shouldPop reports whether the operator on top of the stack must be emitted
// before the incoming one is pushed.
func shouldPop(top, incoming Operator) bool {
	t, in := operators[top], operators[incoming]
	if in.prefix {
		// a prefix operator has no left operand yet, nothing on the stack can
		// be complete
		return t.precedence > in.precedence
	}
	// binary operators are left associative
	return t.precedence >= in.precedence
}

// ToPostfix reorders infix tokens into reverse polish notation using the
// shunting-yard algorithm. Parentheses are consumed; the output contains only
// variable and operator tokens.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var stack []Token

	for _, token := range tokens {
		switch token.Kind {
		case TokenVariable:
			output = append(output, token)

		case TokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator || !shouldPop(top.Operator, token.Operator) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, token)

		case TokenLeftParen:
			stack = append(stack, token)

		case TokenRightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, NewUnbalancedParenthesesError(false)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenLeftParen {
			return nil, NewUnbalancedParenthesesError(true)
		}
		output = append(output, top)
	}

	return output, nil
}
