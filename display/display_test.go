package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestRenderer_Number(t *testing.T) {
	ren := NewRenderer(language.English)

	assert.Equal(t, "1,234,567", ren.Number("1234567"))
	assert.Equal(t, "-1,234,567", ren.Number("-1234567"))
	assert.Equal(t, "(-1,234,567)", ren.Number("(-1234567)"))
	assert.Equal(t, "12,345.678", ren.Number("12345.678"))
	assert.Equal(t, "5", ren.Number("5"))
	assert.Equal(t, "0.5", ren.Number("0.5"))
	assert.Equal(t, "1.09951E12", ren.Number("1.09951E12"), "scientific form passes through")
	assert.Equal(t, "+", ren.Number("+"))
	assert.Equal(t, "sqrt(", ren.Number("sqrt("))
}

func TestRenderer_Equation(t *testing.T) {
	ren := NewRenderer(language.English)
	got := ren.Equation([]string{"1234567", "+", "(-4321)", "*", "sqrt(", "9", ")"})
	assert.Equal(t, "1,234,567+(-4,321)*sqrt(9)", got)
}
