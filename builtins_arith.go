package ttm

import "strconv"

// registerArithBuiltins installs ad, su, mu, dv, dvr, abs, and the
// numeric/logical comparisons (§4.9). Every operand is parsed as a signed
// decimal integer; a parse failure raises EDECIMAL.
func registerArithBuiltins(t *TTM) {
	define(t, "ad", 0, -1, false, builtinAD)
	define(t, "mu", 0, -1, false, builtinMU)
	define(t, "su", 2, 2, false, builtinSU)
	define(t, "dv", 2, 2, false, builtinDV)
	define(t, "dvr", 2, 2, false, builtinDVR)
	define(t, "abs", 1, 1, false, builtinABS)
	define(t, "eq", 4, 4, false, numericCompare(func(a, b int) bool { return a == b }))
	define(t, "gt", 4, 4, false, numericCompare(func(a, b int) bool { return a > b }))
	define(t, "lt", 4, 4, false, numericCompare(func(a, b int) bool { return a < b }))
	define(t, "eq?", 4, 4, false, lexicalCompare(func(a, b string) bool { return a == b }))
	define(t, "gt?", 4, 4, false, lexicalCompare(func(a, b string) bool { return a > b }))
	define(t, "lt?", 4, 4, false, lexicalCompare(func(a, b string) bool { return a < b }))
}

func builtinAD(t *TTM, f *Frame, result *StringBuffer) error {
	sum := 0
	for _, a := range f.args[1:] {
		n, err := parseDecimal(a)
		if err != nil {
			return err
		}
		sum += n
	}
	result.putString(strconv.Itoa(sum))
	return nil
}

func builtinMU(t *TTM, f *Frame, result *StringBuffer) error {
	product := 1
	for _, a := range f.args[1:] {
		n, err := parseDecimal(a)
		if err != nil {
			return err
		}
		product *= n
	}
	result.putString(strconv.Itoa(product))
	return nil
}

func binaryOperands(f *Frame) (int, int, *Error) {
	a, err := parseDecimal(f.arg(1))
	if err != nil {
		return 0, 0, err
	}
	b, err := parseDecimal(f.arg(2))
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func builtinSU(t *TTM, f *Frame, result *StringBuffer) error {
	a, b, err := binaryOperands(f)
	if err != nil {
		return err
	}
	result.putString(strconv.Itoa(a - b))
	return nil
}

// floorDiv and floorMod give Python-style floor division/modulo (ttm.py's
// `dv`/`dvr` rely on `/`/`%` under Python 2 semantics, e.g. -7/2 == -4,
// -7%2 == 1), unlike Go's truncating `/`/`%`.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func builtinDV(t *TTM, f *Frame, result *StringBuffer) error {
	a, b, err := binaryOperands(f)
	if err != nil {
		return err
	}
	if b == 0 {
		return newError(EArithmetic, "division by zero")
	}
	result.putString(strconv.Itoa(floorDiv(a, b)))
	return nil
}

func builtinDVR(t *TTM, f *Frame, result *StringBuffer) error {
	a, b, err := binaryOperands(f)
	if err != nil {
		return err
	}
	if b == 0 {
		return newError(EArithmetic, "division by zero")
	}
	result.putString(strconv.Itoa(floorMod(a, b)))
	return nil
}

func builtinABS(t *TTM, f *Frame, result *StringBuffer) error {
	n, err := parseDecimal(f.arg(1))
	if err != nil {
		return err
	}
	if n < 0 {
		n = -n
	}
	result.putString(strconv.Itoa(n))
	return nil
}

// numericCompare builds `eq`/`gt`/`lt`: parse both operands as decimal
// integers, return the third argument if the comparison holds, else the
// fourth (§4.9).
func numericCompare(cmp func(a, b int) bool) BuiltinFunc {
	return func(t *TTM, f *Frame, result *StringBuffer) error {
		a, b, err := binaryOperands(f)
		if err != nil {
			return err
		}
		if cmp(a, b) {
			result.putString(f.arg(3))
		} else {
			result.putString(f.arg(4))
		}
		return nil
	}
}

// lexicalCompare builds `eq?`/`gt?`/`lt?`: lexicographic string
// comparison, no decimal parsing (§4.9).
func lexicalCompare(cmp func(a, b string) bool) BuiltinFunc {
	return func(t *TTM, f *Frame, result *StringBuffer) error {
		if cmp(f.arg(1), f.arg(2)) {
			result.putString(f.arg(3))
		} else {
			result.putString(f.arg(4))
		}
		return nil
	}
}
