package calcpad

// @generated from editor_test.go

//go:generate go run scripts/gen_ed_expects.go -- editor_test.go editor_expects_test.go

func withEdOptions(opts ...Option) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.withOptions(opts...)
	}
}

func withEdKeys(keys string) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.withKeys(keys)
	}
}

func withEdFunction(fn string) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.withFunction(fn)
	}
}

func withEdModifier(mod string) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.withModifier(mod)
	}
}

func withEdRejectedDigit(d rune) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.withRejectedDigit(d)
	}
}

func expectEdTokens(tokens ...string) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.expectTokens(tokens...)
	}
}

func expectEdEmpty() func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.expectEmpty()
	}
}

func expectEdCalculated(calculated bool) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.expectCalculated(calculated)
	}
}

func expectEdUndoDepth(depth int) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.expectUndoDepth(depth)
	}
}

func expectEdResult(result string) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.expectResult(result)
	}
}

func expectEdError(want error) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.expectError(want)
	}
}

func expectEdCalculationError() func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.expectCalculationError()
	}
}

func expectEdInfinity(negative bool) func(edTestCase) edTestCase {
	return func(edt edTestCase) edTestCase {
		return edt.expectInfinity(negative)
	}
}
