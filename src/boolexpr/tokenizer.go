package boolexpr

import (
	"fmt"
	"unicode"
)

type TokenKind int

const (
	TokenVariable TokenKind = iota
	TokenOperator
	TokenLeftParen
	TokenRightParen
)

type Token struct {
	Kind TokenKind
	Text string

	// only meaningful for TokenOperator
	Operator Operator
}

func (t Token) String() string {
	return t.Text
}

func variableToken(name string) Token {
	return Token{Kind: TokenVariable, Text: name, Operator: VARIABLE}
}

func operatorToken(operator Operator) Token {
	return Token{Kind: TokenOperator, Text: operator.String(), Operator: operator}
}

var (
	leftParenToken  = Token{Kind: TokenLeftParen, Text: "("}
	rightParenToken = Token{Kind: TokenRightParen, Text: ")"}
)

// keywords are matched in this order, the same order they're split out of
// the input
var keywords = []Operator{AND, OR, NOT}

// Tokenize splits the expression into tokens and collects the variables it
// references.
//
// The expression is upper-cased and all whitespace is dropped before
// splitting, so keywords don't need to be surrounded by spaces: "aandnotb" is
// the same as "A AND NOT B". The flip side is that a variable can never be
// named, or contain, AND, OR or NOT; "ORANGE" is read as "OR ANGE".
func Tokenize(expression string) ([]Token, VariableSet, error) {
	chars, positions := normalize(expression)

	var tokens []Token
	variables := make(VariableSet)

	var word []rune
	flushWord := func() {
		if len(word) == 0 {
			return
		}
		name := string(word)
		tokens = append(tokens, variableToken(name))
		variables.Add(name)
		word = word[:0]
	}

	for i := 0; i < len(chars); {
		c := chars[i]
		switch {
		case c == '(':
			flushWord()
			tokens = append(tokens, leftParenToken)
			i++
		case c == ')':
			flushWord()
			tokens = append(tokens, rightParenToken)
			i++
		case isLetter(c):
			if operator, ok := keywordAt(chars, i); ok {
				flushWord()
				tokens = append(tokens, operatorToken(operator))
				i += len(operator.String())
				continue
			}
			word = append(word, c)
			i++
		default:
			return nil, nil, fmt.Errorf("failed to tokenize: %w", NewUnexpectedCharacterError(c, positions[i]))
		}
	}
	flushWord()

	if len(tokens) == 0 {
		return nil, nil, ErrEmptyExpression
	}

	return tokens, variables, nil
}

// normalize upper-cases the expression and strips all whitespace. The
// position of each remaining character in the original string is returned
// alongside it for error reporting.
func normalize(expression string) ([]rune, []int) {
	chars := make([]rune, 0, len(expression))
	positions := make([]int, 0, len(expression))
	for pos, c := range expression {
		if unicode.IsSpace(c) {
			continue
		}
		chars = append(chars, unicode.ToUpper(c))
		positions = append(positions, pos)
	}
	return chars, positions
}

func isLetter(c rune) bool {
	return 'A' <= c && c <= 'Z'
}

func keywordAt(chars []rune, i int) (Operator, bool) {
	for _, operator := range keywords {
		keyword := operator.String()
		if i+len(keyword) > len(chars) {
			continue
		}
		if string(chars[i:i+len(keyword)]) == keyword {
			return operator, true
		}
	}
	return VARIABLE, false
}
