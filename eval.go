package calcpad

import (
	"fmt"
	"math"
	"strconv"

	"github.com/calcpad/calcpad/internal/panicerr"
)

// Calculate evaluates the equation and returns its formatted result,
// setting the calculated flag and caching the result for chaining. When the
// flag is already set, the left operand span is first replaced by the
// previous result so a repeated equals press chains off the prior answer.
func (ed *Editor) Calculate() (string, error) {
	if ed.calculated {
		ed.substituteResult()
	}
	if !ed.valid() {
		return "", ErrInvalidFormat
	}
	if zeroDivisor(ed.eq) {
		return "", ErrDivisionByZero
	}

	var val float64
	err := panicerr.Recover("calculate", func() error {
		v, err := evalTokens(ed.eq)
		val = v
		return err
	})
	if err != nil {
		ed.logf("calculate fault: %v", err)
		return "", CalculationError{cause: err}
	}

	switch {
	case math.IsNaN(val):
		return "", CalculationError{}
	case math.IsInf(val, 1):
		return "", InfinityError{}
	case math.IsInf(val, -1):
		return "", InfinityError{Negative: true}
	}
	if math.Abs(val) < 1e-300 {
		val = 0
	}

	out := formatValue(val)
	ed.calculated = true
	ed.result = out
	ed.logf("calculated %v = %q", ed.eq.strings(), out)
	return out, nil
}

// substituteResult replaces the left operand span with the previous result:
// the whole equation when it holds at most two tokens, otherwise everything
// before the final two tokens.
func (ed *Editor) substituteResult() {
	res := resultToken(ed.result)
	if len(ed.eq) <= 2 {
		ed.eq = equation{res}
	} else {
		tail := ed.eq[len(ed.eq)-2:].snapshot()
		ed.eq = append(equation{res}, tail...)
	}
	ed.log.record(ed.eq)
}

// zeroDivisor scans for a division operator whose immediate numeric right
// operand is exactly zero, including the wrapped negative form.
func zeroDivisor(eq equation) bool {
	for i, tok := range eq {
		if tok.Kind != Operator || tok.Text != "/" || i+1 >= len(eq) {
			continue
		}
		next := eq[i+1]
		if next.Kind != Number {
			continue
		}
		if v, err := strconv.ParseFloat(next.Text, 64); err == nil && v == 0 {
			return true
		}
	}
	return false
}

// evaluator walks the typed token sequence with precedence climbing; no
// intermediate expression string is ever assembled.
type evaluator struct {
	toks []Token
	pos  int
}

func evalTokens(eq equation) (float64, error) {
	ev := evaluator{toks: eq}
	v, err := ev.expr(1)
	if err != nil {
		return 0, err
	}
	if tok, ok := ev.peek(); ok {
		return 0, fmt.Errorf("unexpected token %q", tok)
	}
	return v, nil
}

func (ev *evaluator) peek() (Token, bool) {
	if ev.pos < len(ev.toks) {
		return ev.toks[ev.pos], true
	}
	return Token{}, false
}

const (
	precAdd = iota + 1
	precMul
	precPow
)

func binaryPrec(op string) (prec int, rightAssoc bool) {
	switch op {
	case "+", "-":
		return precAdd, false
	case "*", "/":
		return precMul, false
	case "^":
		return precPow, true
	}
	return 0, false
}

func (ev *evaluator) expr(min int) (float64, error) {
	left, err := ev.unary()
	if err != nil {
		return 0, err
	}
	for {
		tok, ok := ev.peek()
		if !ok {
			return left, nil
		}

		var op string
		switch tok.Kind {
		case Operator:
			op = tok.Text
		case Number, Function, OpenBracket:
			// juxtaposition reads as multiplication
			op = "*"
		default:
			return left, nil
		}

		prec, rightAssoc := binaryPrec(op)
		if prec == 0 {
			return 0, fmt.Errorf("unknown operator %q", op)
		}
		if prec < min {
			return left, nil
		}
		if tok.Kind == Operator {
			ev.pos++
		}

		next := prec + 1
		if rightAssoc {
			next = prec
		}
		right, err := ev.expr(next)
		if err != nil {
			return 0, err
		}

		switch op {
		case "+":
			left += right
		case "-":
			left -= right
		case "*":
			left *= right
		case "/":
			left /= right
		case "^":
			left = math.Pow(left, right)
		}
	}
}

func (ev *evaluator) unary() (float64, error) {
	tok, ok := ev.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of equation")
	}
	if tok.Kind == Operator {
		switch tok.Text {
		case "-":
			ev.pos++
			v, err := ev.unary()
			return -v, err
		case "+":
			ev.pos++
			return ev.unary()
		}
	}
	return ev.postfix()
}

func (ev *evaluator) postfix() (float64, error) {
	v, err := ev.primary()
	if err != nil {
		return 0, err
	}
	for {
		tok, ok := ev.peek()
		if !ok || tok.Kind != Modifier {
			return v, nil
		}
		ev.pos++
		v, err = applyModifier(tok.Text, v)
		if err != nil {
			return 0, err
		}
	}
}

func (ev *evaluator) primary() (float64, error) {
	tok, ok := ev.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of equation")
	}
	switch tok.Kind {
	case Number:
		ev.pos++
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return 0, fmt.Errorf("bad literal %q", tok.Text)
		}
		if tok.Neg {
			v = -v
		}
		return v, nil
	case OpenBracket:
		ev.pos++
		v, err := ev.expr(1)
		if err != nil {
			return 0, err
		}
		return v, ev.expectClose()
	case Function:
		ev.pos++
		if tok.Text == "E" {
			return math.E, nil
		}
		arg, err := ev.expr(1)
		if err != nil {
			return 0, err
		}
		if err := ev.expectClose(); err != nil {
			return 0, err
		}
		return applyFunction(tok.Text, arg)
	}
	return 0, fmt.Errorf("unexpected token %q", tok)
}

func (ev *evaluator) expectClose() error {
	tok, ok := ev.peek()
	if !ok || tok.Kind != CloseBracket {
		return fmt.Errorf("unbalanced brackets")
	}
	ev.pos++
	return nil
}

func applyModifier(mod string, v float64) (float64, error) {
	switch mod {
	case "^2":
		return v * v, nil
	case "^3":
		return v * v * v, nil
	case "^-1":
		return 1 / v, nil
	case "!":
		return math.Gamma(v + 1), nil
	}
	return 0, fmt.Errorf("unknown modifier %q", mod)
}

func applyFunction(fn string, arg float64) (float64, error) {
	switch fn {
	case "sqrt(":
		return math.Sqrt(arg), nil
	case "sin(":
		return math.Sin(arg), nil
	case "cos(":
		return math.Cos(arg), nil
	case "tan(":
		return math.Tan(arg), nil
	case "asin(":
		return math.Asin(arg), nil
	case "acos(":
		return math.Acos(arg), nil
	case "atan(":
		return math.Atan(arg), nil
	case "log(":
		return math.Log(arg), nil
	case "log10(":
		return math.Log10(arg), nil
	case "pow(E,":
		return math.Exp(arg), nil
	case "pow(2,":
		return math.Pow(2, arg), nil
	}
	return 0, fmt.Errorf("unknown function %q", fn)
}
