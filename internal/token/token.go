// Package token turns command line arguments into fragments of an output
// line.
//
// An argument prefixed with "n:" is always a number and one prefixed with
// "t:" is always text. Any other argument is a number when it is written as
// a plain decimal number and text otherwise.
package token

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"hellman/pkg/output"
)

// ErrInvalidNumber is returned for "n:" arguments that are not numbers.
var ErrInvalidNumber = errors.New("invalid number")

// Kind tells how a token is pushed.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindUint
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one parsed argument.
type Token struct {
	Kind  Kind
	Text  string
	Int   int64
	Uint  uint64
	Float float64
}

const (
	numberPrefix = "n:"
	textPrefix   = "t:"
)

// Parse parses a single argument.
func Parse(arg string) (Token, error) {
	if rest, ok := strings.CutPrefix(arg, textPrefix); ok {
		return Token{Kind: KindText, Text: rest}, nil
	}
	if rest, ok := strings.CutPrefix(arg, numberPrefix); ok {
		tok, ok := parseNumber(rest)
		if !ok {
			return Token{}, fmt.Errorf("%w: %q", ErrInvalidNumber, rest)
		}
		return tok, nil
	}
	if tok, ok := parseNumber(arg); ok {
		return tok, nil
	}
	return Token{Kind: KindText, Text: arg}, nil
}

// decimal matches plain decimal numbers: an optional minus sign, digits
// without leading zeros, an optional fraction and an optional exponent.
// Go literal forms such as "1_000", "0x1p4", "+5" or "007" stay text.
var decimal = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)

// parseNumber reports whether s is a plain decimal number. Integers that do
// not fit 64 bits and floats that overflow are not numbers, so their text is
// never rewritten.
func parseNumber(s string) (Token, bool) {
	if !decimal.MatchString(s) {
		return Token{}, false
	}
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Token{Kind: KindInt, Int: i}, true
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Token{Kind: KindUint, Uint: u}, true
		}
		return Token{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Token{}, false
	}
	return Token{Kind: KindFloat, Float: f}, true
}

// Push appends t to o.
func (t Token) Push(o output.Output) output.Output {
	switch t.Kind {
	case KindInt:
		return o.PushInt(t.Int)
	case KindUint:
		return o.PushUint(t.Uint)
	case KindFloat:
		return o.PushFloat(t.Float)
	default:
		return o.PushText(t.Text)
	}
}

// Apply pushes toks onto o in order.
func Apply(o output.Output, toks ...Token) output.Output {
	for _, t := range toks {
		o = t.Push(o)
	}
	return o
}

// Build parses args and pushes them onto an empty output.
func Build(args []string) (output.Output, error) {
	toks := make([]Token, 0, len(args))
	for i, arg := range args {
		tok, err := Parse(arg)
		if err != nil {
			return output.Output{}, fmt.Errorf("argument %d: %w", i+1, err)
		}
		toks = append(toks, tok)
	}
	return Apply(output.New(), toks...), nil
}
