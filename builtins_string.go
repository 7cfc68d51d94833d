package ttm

import "strconv"

// registerStringBuiltins installs gn, zlc, zlcp, flip, norm (§4.7).
func registerStringBuiltins(t *TTM) {
	define(t, "gn", 2, 2, false, builtinGN)
	define(t, "zlc", 1, 1, false, builtinZLC)
	define(t, "zlcp", 1, 1, false, builtinZLCP)
	define(t, "flip", 1, 1, false, builtinFlip)
	define(t, "norm", 1, 1, false, builtinNorm)
}

// builtinGN implements `gn`: n>0 returns the first n runes of s, n<0 the
// last |n|, both clamped to len(s) (§4.7).
func builtinGN(t *TTM, f *Frame, result *StringBuffer) error {
	n, err := parseDecimal(f.arg(1))
	if err != nil {
		return err
	}
	s := []rune(f.arg(2))
	if n >= 0 {
		result.putString(string(s[:minInt(n, len(s))]))
	} else {
		k := minInt(-n, len(s))
		result.putString(string(s[len(s)-k:]))
	}
	return nil
}

// builtinZLC implements `zlc`: replace top-level (depth-0) commas with
// semic; escapes protect the next character (§4.7).
func builtinZLC(t *TTM, f *Frame, result *StringBuffer) error {
	s := []rune(f.arg(1))
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == t.Meta.Escape && i+1 < len(s):
			result.put(c)
			i++
			result.put(s[i])
		case c == '(':
			depth++
			result.put(c)
		case c == ')':
			if depth > 0 {
				depth--
			}
			result.put(c)
		case c == ',' && depth == 0:
			result.put(t.Meta.Semi)
		default:
			result.put(c)
		}
	}
	return nil
}

// builtinZLCP implements `zlcp`: like zlc, additionally folding
// parenthesized groups into semicolon-separated pieces, so both "A(B)" and
// "A,B" yield "A;B", and "(A),(B),C" yields "A;B;C" (§4.7, matches
// original_source/ttm.py's ttm_zlcp exactly: a depth-0 comma followed by
// `(` emits nothing there — the `(` clause emits the semic instead — and a
// depth-0 `)` is silent when followed by `,` or end of string, otherwise
// emits a semic in its place).
func builtinZLCP(t *TTM, f *Frame, result *StringBuffer) error {
	s := []rune(f.arg(1))
	n := len(s)
	peek := func(i int) rune {
		if i < 0 || i >= n {
			return eof
		}
		return s[i]
	}

	depth := 0
	for i := 0; i < n; i++ {
		c := s[i]
		switch {
		case c == t.Meta.Escape && i+1 < n:
			result.put(c)
			i++
			result.put(s[i])

		case depth == 0 && c == ',':
			if peek(i+1) != '(' {
				result.put(t.Meta.Semi)
			}

		case c == '(':
			if depth == 0 && i > 0 {
				result.put(t.Meta.Semi)
			}
			if depth > 0 {
				result.put(c)
			}
			depth++

		case c == ')':
			depth--
			switch {
			case depth == 0 && peek(i+1) == ',':
			case depth == 0 && peek(i+1) == eof:
			case depth == 0:
				result.put(t.Meta.Semi)
			default:
				result.put(c)
			}

		default:
			result.put(c)
		}
	}
	return nil
}

func builtinFlip(t *TTM, f *Frame, result *StringBuffer) error {
	s := []rune(f.arg(1))
	for i := len(s) - 1; i >= 0; i-- {
		result.put(s[i])
	}
	return nil
}

func builtinNorm(t *TTM, f *Frame, result *StringBuffer) error {
	s := f.arg(1)
	result.putString(strconv.Itoa(len([]rune(s))))
	return nil
}
