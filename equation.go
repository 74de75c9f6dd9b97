package calcpad

import "strings"

// equation is the ordered token sequence under edit. Insertion order is the
// left-to-right expression.
type equation []Token

func (eq equation) empty() bool { return len(eq) == 0 }

// snapshot returns a copy safe to retain across further edits. Token has no
// reference fields, so copying the slice suffices.
func (eq equation) snapshot() equation {
	if eq == nil {
		return equation{}
	}
	out := make(equation, len(eq))
	copy(out, eq)
	return out
}

func (eq equation) equal(other equation) bool {
	if len(eq) != len(other) {
		return false
	}
	for i := range eq {
		if eq[i] != other[i] {
			return false
		}
	}
	return true
}

// heal strips a dangling decimal separator left at the end of the token at
// index i, writing the correction back in place.
func (eq equation) heal(i int) {
	if i < 0 || i >= len(eq) {
		return
	}
	if tok := eq[i]; tok.Kind == Number && strings.HasSuffix(tok.Text, ".") {
		tok.Text = strings.TrimSuffix(tok.Text, ".")
		eq[i] = tok
	}
}

// last returns the final token; with correct set it first self-heals a
// dangling decimal point.
func (eq equation) last(correct bool) (Token, bool) {
	if len(eq) == 0 {
		return Token{}, false
	}
	if correct {
		eq.heal(len(eq) - 1)
	}
	return eq[len(eq)-1], true
}

func (eq equation) penultimate(correct bool) (Token, bool) {
	if len(eq) < 2 {
		return Token{}, false
	}
	if correct {
		eq.heal(len(eq) - 2)
	}
	return eq[len(eq)-2], true
}

// bracketCounts tallies opening tokens (open brackets plus argument-taking
// functions) against close brackets over the whole sequence.
func (eq equation) bracketCounts() (opened, closed int) {
	for _, tok := range eq {
		switch {
		case tok.opensBracket():
			opened++
		case tok.Kind == CloseBracket:
			closed++
		}
	}
	return opened, closed
}

func (eq equation) strings() []string {
	out := make([]string, len(eq))
	for i, tok := range eq {
		out[i] = tok.String()
	}
	return out
}
