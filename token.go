package calcpad

import "strings"

// Kind classifies a token in the equation buffer.
type Kind int

const (
	// Number is a numeric literal: digits, an optional decimal point, an
	// optional leading minus merged from a pending unary minus, and an
	// optional exponent tail inherited from a chained scientific result.
	Number Kind = iota

	// Operator is one of the binary operators + - * / ^.
	Operator

	// Modifier is a postfix unary operation applying to the preceding
	// value: ^2 ^3 ^-1 !
	Modifier

	// Function both names a function and opens its argument list, except
	// for the nullary constant E which opens nothing.
	Function

	// OpenBracket and CloseBracket are the grouping brackets.
	OpenBracket
	CloseBracket
)

// Token is one atomic element of the equation buffer. Text carries the raw
// content; Neg marks a number rendered in its wrapped (-…) form, which is
// distinct from a leading unary minus.
type Token struct {
	Kind Kind
	Text string
	Neg  bool
}

func (tok Token) String() string {
	if tok.Neg {
		return "(-" + tok.Text + ")"
	}
	return tok.Text
}

var operators = map[string]bool{
	"+": true,
	"-": true,
	"*": true,
	"/": true,
	"^": true,
}

var modifiers = map[string]bool{
	"^2":  true,
	"^3":  true,
	"^-1": true,
	"!":   true,
}

var functions = map[string]bool{
	"sqrt(":  true,
	"sin(":   true,
	"cos(":   true,
	"tan(":   true,
	"asin(":  true,
	"acos(":  true,
	"atan(":  true,
	"log(":   true,
	"log10(": true,
	"pow(E,": true,
	"pow(2,": true,
	"E":      true,
}

func numberToken(text string) Token { return Token{Kind: Number, Text: text} }
func opToken(op string) Token       { return Token{Kind: Operator, Text: op} }
func modToken(mod string) Token     { return Token{Kind: Modifier, Text: mod} }
func funcToken(fn string) Token     { return Token{Kind: Function, Text: fn} }

var (
	openBracket  = Token{Kind: OpenBracket, Text: "("}
	closeBracket = Token{Kind: CloseBracket, Text: ")"}
)

// opensBracket reports whether a token opens a bracket that a close bracket
// must eventually match: open brackets and argument-taking functions, but
// not the constant E.
func (tok Token) opensBracket() bool {
	switch tok.Kind {
	case OpenBracket:
		return true
	case Function:
		return tok.Text != "E"
	}
	return false
}

// digitCount counts only numeral characters, excluding any sign, decimal
// point, exponent marker, or wrapping.
func digitCount(text string) (n int) {
	for _, r := range text {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// endsInExponent reports a dangling exponent tail: a trailing E, possibly
// followed by a bare minus, with no exponent digits yet.
func endsInExponent(text string) bool {
	return strings.HasSuffix(text, "E") || strings.HasSuffix(text, "E-")
}

// resultToken converts a formatted result back into the literal seeding a
// chained equation. Negative results take the wrapped form.
func resultToken(result string) Token {
	if strings.HasPrefix(result, "-") {
		return Token{Kind: Number, Text: result[1:], Neg: true}
	}
	return Token{Kind: Number, Text: result}
}

// IsNegative recognizes the wrapped (-…) display form of a token, letting
// the rendering collaborator decide sign display.
func IsNegative(tok string) bool {
	return strings.HasPrefix(tok, "(-") && strings.HasSuffix(tok, ")")
}
