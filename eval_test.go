package calcpad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_evalTokens(t *testing.T) {
	num := numberToken
	op := opToken
	neg := func(text string) Token { return Token{Kind: Number, Text: text, Neg: true} }

	for _, tc := range []struct {
		name string
		eq   equation
		want float64
	}{
		{"literal", equation{num("5")}, 5},
		{"negative wrapped", equation{neg("5")}, -5},
		{"merged minus", equation{num("-5")}, -5},
		{"exponent literal", equation{num("1.2E-3")}, 0.0012},
		{"sum", equation{num("5"), op("+"), num("3")}, 8},
		{"multiplication binds tighter", equation{num("2"), op("+"), num("3"), op("*"), num("4")}, 14},
		{"division associates left", equation{num("8"), op("/"), num("4"), op("/"), num("2")}, 1},
		{"power binds tightest", equation{num("2"), op("*"), num("3"), op("^"), num("2")}, 18},
		{"power associates right", equation{num("2"), op("^"), num("3"), op("^"), num("2")}, 512},
		{"unary minus under power", equation{op("-"), num("2"), op("^"), num("2")}, 4},
		{"brackets group", equation{openBracket, num("5"), op("+"), num("3"), closeBracket, op("*"), num("2")}, 16},
		{"square", equation{num("5"), modToken("^2")}, 25},
		{"cube", equation{num("2"), modToken("^3")}, 8},
		{"reciprocal", equation{num("4"), modToken("^-1")}, 0.25},
		{"factorial", equation{num("5"), modToken("!")}, 120},
		{"modifiers stack", equation{num("2"), modToken("^2"), modToken("^2")}, 16},
		{"modifier on a group", equation{openBracket, num("1"), op("+"), num("2"), closeBracket, modToken("^2")}, 9},
		{"sqrt", equation{funcToken("sqrt("), num("9"), closeBracket}, 3},
		{"log10", equation{funcToken("log10("), num("1000"), closeBracket}, 3},
		{"natural log of E", equation{funcToken("log("), funcToken("E"), closeBracket}, 1},
		{"two to the power", equation{funcToken("pow(2,"), num("10"), closeBracket}, 1024},
		{"exp", equation{funcToken("pow(E,"), num("0"), closeBracket}, 1},
		{"sine of zero", equation{funcToken("sin("), num("0"), closeBracket}, 0},
		{"cosine of zero", equation{funcToken("cos("), num("0"), closeBracket}, 1},
		{"constant", equation{funcToken("E")}, math.E},
		{"juxtaposed groups multiply", equation{openBracket, num("2"), closeBracket, openBracket, num("3"), closeBracket}, 6},
		{"literal after group multiplies", equation{openBracket, num("2"), closeBracket, num("3")}, 6},
		{"literal after modifier multiplies", equation{num("5"), modToken("!"), num("0.5")}, 60},
		{"function primed negative", equation{funcToken("sqrt("), op("-"), neg("4"), closeBracket}, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := evalTokens(tc.eq)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}

	for _, tc := range []struct {
		name string
		eq   equation
	}{
		{"empty", equation{}},
		{"dangling operator", equation{num("5"), op("+")}},
		{"unclosed bracket", equation{openBracket, num("5")}},
		{"unclosed function", equation{funcToken("sqrt("), num("4")}},
		{"stray close bracket", equation{num("5"), closeBracket}},
		{"lone operator", equation{op("*")}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := evalTokens(tc.eq)
			require.Error(t, err)
		})
	}
}

func Test_zeroDivisor(t *testing.T) {
	num := numberToken
	op := opToken

	assert.True(t, zeroDivisor(equation{num("4"), op("/"), num("0")}))
	assert.True(t, zeroDivisor(equation{num("4"), op("/"), num("0.")}))
	assert.True(t, zeroDivisor(equation{num("4"), op("/"), {Kind: Number, Text: "0", Neg: true}}))
	assert.True(t, zeroDivisor(equation{num("1"), op("+"), num("4"), op("/"), num("0")}))
	assert.False(t, zeroDivisor(equation{num("4"), op("/"), num("0.5")}))
	assert.False(t, zeroDivisor(equation{num("4"), op("/"), openBracket, num("0"), closeBracket}),
		"only a literal divisor is scanned")
	assert.False(t, zeroDivisor(equation{num("4"), op("*"), num("0")}))
	assert.False(t, zeroDivisor(equation{num("4"), op("/")}))
}
