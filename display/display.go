// Package display renders equation token snapshots for a UI, grouping
// literal digits with the separators of a locale. The editor itself never
// sees separators; they exist only in rendered output.
package display

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/calcpad/calcpad"
)

type Renderer struct {
	printer *message.Printer
}

func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{printer: message.NewPrinter(tag)}
}

// Equation renders a token snapshot as one display string, grouping the
// integer digits of each literal.
func (r *Renderer) Equation(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(r.Number(tok))
	}
	return b.String()
}

// Number groups the integer digits of a numeric literal, preserving the
// negative wrapper, fraction, and any exponent tail. Non-numeric tokens
// pass through unchanged.
func (r *Renderer) Number(tok string) string {
	if calcpad.IsNegative(tok) {
		return "(-" + r.Number(tok[2:len(tok)-1]) + ")"
	}

	text := tok
	var sign string
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}

	// exponent-form literals are already compact
	if strings.ContainsRune(text, 'E') {
		return tok
	}

	intPart, rest := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		intPart, rest = text[:i], text[i:]
	}

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || strings.HasPrefix(intPart, "0") && len(intPart) > 1 {
		return tok
	}
	return sign + r.printer.Sprintf("%d", n) + rest
}
