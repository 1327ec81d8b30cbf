// Package parser turns color literals such as "hsl(210, 68%, 80%)" into a
// color space and its component values.
package parser

import "unicode"

type TokenKind uint8

const (
	Number TokenKind = iota
	Identifier
	LeftParen
	RightParen
	Comma
	Whitespace
	EOF
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case Comma:
		return ","
	case Whitespace:
		return "whitespace"
	case EOF:
		return "EOF"
	default:
		return "invalid"
	}
}

type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits normalized input into tokens. Characters that start no
// token, such as a degree sign, are dropped. The result always ends with an
// EOF token.
func Tokenize(input string) []Token {
	var tokens []Token
	runes := []rune(input)

	for i := 0; i < len(runes); {
		c := runes[i]
		switch {
		case isNumberStart(c):
			start := i
			i = scanNumber(runes, i)
			tokens = append(tokens, Token{Number, string(runes[start:i])})
		case isLetter(c):
			start := i
			for i < len(runes) && isLetter(runes[i]) {
				i++
			}
			tokens = append(tokens, Token{Identifier, string(runes[start:i])})
		case c == '(':
			tokens = append(tokens, Token{LeftParen, "("})
			i++
		case c == ')':
			tokens = append(tokens, Token{RightParen, ")"})
			i++
		case c == ',':
			tokens = append(tokens, Token{Comma, ","})
			i++
		case unicode.IsSpace(c):
			tokens = append(tokens, Token{Whitespace, " "})
			i++
		default:
			i++
		}
	}

	return append(tokens, Token{Kind: EOF})
}

// scanNumber consumes digits and dots, a leading minus and an optional
// trailing percent sign, returning the index past the number.
func scanNumber(runes []rune, i int) int {
	start := i
	for i < len(runes) {
		switch c := runes[i]; {
		case c >= '0' && c <= '9', c == '.':
			i++
		case c == '%':
			return i + 1
		case c == '-' && i == start:
			i++
		default:
			return i
		}
	}
	return i
}

func isNumberStart(c rune) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '%'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
