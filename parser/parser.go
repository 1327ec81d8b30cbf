package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"colorart/colorspace"
)

var (
	ErrUnmatchedRightParen = errors.New("unmatched right parenthesis")
	ErrUnmatchedLeftParen  = errors.New("unmatched left parenthesis")
	ErrInvalidValue        = errors.New("invalid value")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidArity        = errors.New("invalid number of values")
	ErrNoValues            = errors.New("no values found")
	ErrNoColorSpace        = errors.New("no color space found")
)

var lower = cases.Lower(language.Und)

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return lower.String(strings.TrimSpace(s))
}

// Parse normalizes, tokenizes and validates s.
func Parse(s string) (colorspace.Space, []float64, error) {
	return Validate(Tokenize(Normalize(s)))
}

// Validate walks the tokens once, resolving the color space from the
// identifier and collecting numbers, with percentages divided by 100. The
// values are then checked against the space's arity and ranges.
//
// When several identifiers are present the last one wins.
func Validate(tokens []Token) (colorspace.Space, []float64, error) {
	var (
		space  = colorspace.Unknown
		values []float64
		depth  int
	)

	for _, tok := range tokens {
		switch tok.Kind {
		case LeftParen:
			depth++
		case RightParen:
			if depth == 0 {
				return colorspace.Unknown, nil, ErrUnmatchedRightParen
			}
			depth--
		case Number:
			v, err := parseNumber(tok.Text)
			if err != nil {
				return colorspace.Unknown, nil, err
			}
			values = append(values, v)
		case Identifier:
			s := colorspace.Lookup(tok.Text)
			// hex colors only have the #rrggbb literal form
			if s == colorspace.Unknown || s == colorspace.HEX || s == colorspace.HEXA {
				return colorspace.Unknown, nil, fmt.Errorf("%w: %q", ErrInvalidInput, tok.Text)
			}
			space = s
		}
	}

	if space == colorspace.Unknown {
		return colorspace.Unknown, nil, ErrNoColorSpace
	}
	if len(values) != space.Arity() {
		return space, nil, fmt.Errorf("%w: %s color space requires %d values, got %d",
			ErrInvalidArity, space, space.Arity(), len(values))
	}
	if err := space.Valid(values); err != nil {
		return space, nil, err
	}
	if len(values) == 0 {
		return space, nil, ErrNoValues
	}
	if depth != 0 {
		return space, nil, ErrUnmatchedLeftParen
	}

	return space, values, nil
}

func parseNumber(text string) (float64, error) {
	num, percent := strings.CutSuffix(text, "%")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, text)
	}
	if percent {
		v /= 100
	}
	return v, nil
}
