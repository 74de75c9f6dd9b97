package calcpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_equation_last(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var eq equation
		_, ok := eq.last(true)
		require.False(t, ok)
	})

	t.Run("heals a dangling point", func(t *testing.T) {
		eq := equation{numberToken("5.")}
		tok, ok := eq.last(true)
		require.True(t, ok)
		assert.Equal(t, "5", tok.Text)
		assert.Equal(t, "5", eq[0].Text, "correction is written back")
	})

	t.Run("uncorrected read leaves the point", func(t *testing.T) {
		eq := equation{numberToken("5.")}
		tok, ok := eq.last(false)
		require.True(t, ok)
		assert.Equal(t, "5.", tok.Text)
	})

	t.Run("inner point survives", func(t *testing.T) {
		eq := equation{numberToken("5.2")}
		tok, _ := eq.last(true)
		assert.Equal(t, "5.2", tok.Text)
	})
}

func Test_equation_snapshot(t *testing.T) {
	eq := equation{numberToken("5"), opToken("+")}
	snap := eq.snapshot()
	eq[0].Text = "9"
	assert.Equal(t, "5", snap[0].Text)
	assert.True(t, equation(nil).snapshot().equal(equation{}))
}

func Test_equation_bracketCounts(t *testing.T) {
	eq := equation{
		funcToken("sqrt("), openBracket, numberToken("5"), closeBracket,
		funcToken("E"), closeBracket,
	}
	opened, closed := eq.bracketCounts()
	assert.Equal(t, 2, opened, "functions count as openers, the constant does not")
	assert.Equal(t, 2, closed)
}
