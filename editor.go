package calcpad

import "strings"

// maxLiteralDigits caps a literal's numeral count; sign, decimal point, and
// wrapping are excluded from the count.
const maxLiteralDigits = 9

// Editor owns one equation, its undo log, the calculated flag, and the last
// formatted result. Each instance is independent; operations run to
// completion with no shared state.
type Editor struct {
	eq         equation
	log        undoLog
	calculated bool
	result     string

	logfn func(mess string, args ...interface{})
}

func (ed *Editor) logf(mess string, args ...interface{}) {
	if ed.logfn != nil {
		ed.logfn(mess, args...)
	}
}

// Tokens returns a display-form snapshot of the equation for rendering.
func (ed *Editor) Tokens() []string { return ed.eq.strings() }

// IsEmpty reports whether the equation has no tokens.
func (ed *Editor) IsEmpty() bool { return ed.eq.empty() }

// Reset discards the equation. The undo log is deliberately kept, so undo
// can step back across a clear.
func (ed *Editor) Reset() {
	ed.logf("reset")
	ed.eq = equation{}
	ed.calculated = false
	ed.log.record(ed.eq)
}

// Undo reinstalls the previous snapshot, if any.
func (ed *Editor) Undo() {
	if eq, ok := ed.log.undo(ed.eq); ok {
		ed.logf("undo -> %v", eq.strings())
		ed.eq = eq
		ed.calculated = false
	}
}

func (ed *Editor) append(tok Token) {
	ed.eq = append(ed.eq, tok)
	ed.calculated = false
	ed.log.record(ed.eq)
}

func (ed *Editor) replaceLast(tok Token) {
	if ed.eq.empty() {
		return
	}
	ed.eq[len(ed.eq)-1] = tok
	ed.calculated = false
	ed.log.record(ed.eq)
}

func (ed *Editor) removeLast() {
	if ed.eq.empty() {
		return
	}
	ed.eq = ed.eq[:len(ed.eq)-1]
	ed.calculated = false
	ed.log.record(ed.eq)
}

// resume starts a new equation seeded with the last result when the
// previous keypress completed a calculation.
func (ed *Editor) resume() {
	if !ed.calculated {
		return
	}
	ed.logf("resume from %q", ed.result)
	ed.calculated = false
	ed.eq = equation{resultToken(ed.result)}
	ed.log.record(ed.eq)
}

// pendingMinus reports whether the last token is the legal lone unary minus
// at position 0.
func (ed *Editor) pendingMinus() bool {
	return len(ed.eq) == 1 && ed.eq[0].Kind == Operator && ed.eq[0].Text == "-"
}

// AddDigit appends the digit to the equation, starting a new literal or
// merging into the last one per the grammar. It returns false when the
// digit cap would be exceeded, leaving the buffer unchanged beyond the
// dangling-decimal correction.
func (ed *Editor) AddDigit(d rune) bool {
	if d < '0' || d > '9' {
		ed.logf("ignore digit %q", d)
		return false
	}
	ed.resume()
	last, ok := ed.eq.last(true)

	if !ok || (last.Kind != Number && !ed.pendingMinus()) {
		ed.append(numberToken(string(d)))
		return true
	}

	tok := last
	switch {
	case ed.pendingMinus():
		// merge the pending unary minus with its first digit
		tok = numberToken("-" + string(d))
	case tok.Text == "0" && !tok.Neg:
		tok.Text = string(d)
	case tok.Neg && tok.Text == "0":
		tok.Text = string(d)
	default:
		tok.Text += string(d)
	}
	if digitCount(tok.Text) > maxLiteralDigits {
		ed.logf("digit cap at %q", last.Text)
		return false
	}
	ed.replaceLast(tok)
	return true
}

// AddOperator appends or replaces a binary operator. The last operator wins
// when two are typed in a row; a minus priming a function argument and the
// lone leading minus are immune to replacement. After an exponent marker
// only a minus is accepted, folded into the literal itself.
func (ed *Editor) AddOperator(op string) {
	if !operators[op] {
		ed.logf("ignore operator %q", op)
		return
	}
	ed.resume()
	last, ok := ed.eq.last(true)

	if !ok {
		if op == "-" {
			ed.append(opToken("-"))
		}
		return
	}

	switch last.Kind {
	case Operator:
		if ed.pendingMinus() {
			return
		}
		if prev, ok := ed.eq.penultimate(false); ok && prev.Kind == Function && last.Text == "-" {
			return
		}
		ed.replaceLast(opToken(op))
	case Function:
		if op == "-" {
			ed.append(opToken("-"))
		}
	case Number:
		if endsInExponent(last.Text) {
			if op == "-" && !strings.HasSuffix(last.Text, "-") {
				last.Text += "-"
				ed.replaceLast(last)
			}
			return
		}
		ed.append(opToken(op))
	default:
		ed.append(opToken(op))
	}
}

// AddModifier appends a postfix modifier when the last token can carry one:
// a numeric literal without a dangling exponent tail, another modifier, or
// a close bracket.
func (ed *Editor) AddModifier(mod string) {
	if !modifiers[mod] {
		ed.logf("ignore modifier %q", mod)
		return
	}
	ed.resume()
	last, ok := ed.eq.last(true)
	if !ok {
		return
	}
	switch last.Kind {
	case Number:
		if endsInExponent(last.Text) {
			return
		}
		ed.append(modToken(mod))
	case Modifier, CloseBracket:
		ed.append(modToken(mod))
	}
}

// AddFunction appends a function opener, inserting an implicit multiply
// when the last token already holds a value.
func (ed *Editor) AddFunction(fn string) {
	if !functions[fn] {
		ed.logf("ignore function %q", fn)
		return
	}
	ed.resume()
	last, ok := ed.eq.last(true)
	if !ok || last.Kind == Operator || last.Kind == OpenBracket || last.Kind == Function {
		ed.append(funcToken(fn))
		return
	}
	ed.append(opToken("*"))
	ed.append(funcToken(fn))
}

// AddDecimal starts a 0. literal or appends the decimal point to the last
// literal if it has none yet.
func (ed *Editor) AddDecimal() {
	ed.resume()
	last, ok := ed.eq.last(true)
	switch {
	case !ok, last.Kind == Operator, last.Kind == Modifier,
		last.Kind == OpenBracket, last.Kind == CloseBracket:
		ed.append(numberToken("0."))
	case last.Kind == Function:
		ed.append(opToken("*"))
		ed.append(numberToken("0."))
	case last.Kind == Number:
		if !strings.Contains(last.Text, ".") {
			last.Text += "."
			ed.replaceLast(last)
		}
	}
}

// DeleteLast removes the trailing character of the last literal, or the
// whole token for single-character tokens, functions, and modifiers. While
// a result is displayed delete does nothing.
func (ed *Editor) DeleteLast() {
	if ed.calculated {
		return
	}
	last, ok := ed.eq.last(true)
	if !ok {
		return
	}

	switch {
	case last.Kind == Number && last.Neg:
		if digitCount(last.Text) <= 1 {
			ed.removeLast()
			return
		}
		last.Text = trimExponentTail(last.Text[:len(last.Text)-1])
		ed.replaceLast(last)
	case last.Kind == Function, last.Kind == Modifier:
		ed.removeLast()
	case len(last.Text) <= 1:
		ed.removeLast()
	default:
		text := trimExponentTail(last.Text[:len(last.Text)-1])
		switch text {
		case "":
			ed.removeLast()
		case "-":
			// a merged leading minus reverts to the pending operator form
			ed.replaceLast(opToken("-"))
		default:
			last.Text = text
			ed.replaceLast(last)
		}
	}
}

// trimExponentTail strips an exponent marker left dangling by a trailing
// character deletion.
func trimExponentTail(text string) string {
	text = strings.TrimSuffix(text, "E-")
	return strings.TrimSuffix(text, "E")
}

// ChangeSign toggles the last literal between its plain and wrapped
// negative forms, reporting whether anything changed. A literal 0 keeps its
// sign.
func (ed *Editor) ChangeSign() bool {
	ed.resume()
	last, ok := ed.eq.last(true)
	if !ok || last.Kind != Number {
		return false
	}
	if last.Text == "0" && !last.Neg {
		return false
	}
	switch {
	case last.Neg:
		last.Neg = false
	case strings.HasPrefix(last.Text, "-"):
		last.Text = last.Text[1:]
	default:
		last.Neg = true
	}
	ed.replaceLast(last)
	return true
}

// AddBracket picks the bracket direction from the shape of the equation:
// close only when there is something to close and the last token finishes a
// value, otherwise open, with an implicit multiply after a balanced
// literal.
func (ed *Editor) AddBracket() {
	ed.resume()
	last, ok := ed.eq.last(true)
	opened, closed := ed.eq.bracketCounts()

	switch {
	case !ok:
		ed.append(openBracket)
	case last.Kind == OpenBracket || last.Kind == CloseBracket:
		if last.Kind == CloseBracket && opened > closed {
			ed.append(closeBracket)
		} else {
			ed.append(openBracket)
		}
	case last.Kind == Number && opened == closed:
		ed.append(opToken("*"))
		ed.append(openBracket)
	case last.Kind == Operator:
		ed.append(openBracket)
	case opened > closed:
		ed.append(closeBracket)
	default:
		ed.append(openBracket)
	}
}

// valid gates evaluation: the corrected last token must not be an operator
// or carry a dangling exponent tail.
func (ed *Editor) valid() bool {
	last, ok := ed.eq.last(true)
	if !ok {
		return false
	}
	if last.Kind == Operator {
		return false
	}
	if last.Kind == Number && endsInExponent(last.Text) {
		return false
	}
	return true
}
