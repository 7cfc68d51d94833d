package ttm

// scan drives the top-level scanner loop over t.active, copying
// non-significant characters to t.passive, expanding angle-quoted
// literals, and dispatching recognized calls to the evaluator (§4.1).
//
// The scanner never suspends and never allocates unbounded lookahead; it
// is reentrant because inner calls recurse through execute, which may
// itself call back into scan's helper scanAngleLiteral, and active results
// are spliced directly into t.active for the next iteration to see.
func (t *TTM) scan() *Error {
	for {
		if t.exited() {
			return nil
		}
		a := t.active
		if a.atEOF() {
			return nil
		}

		c := a.peek(0)

		switch {
		case c == t.Meta.Escape:
			a.skip(1)
			if !a.atEOF() {
				t.passive.put(a.next())
			}

		case c == t.Meta.Sharp && (a.peek(1) == t.Meta.Open || (a.peek(1) == t.Meta.Sharp && a.peek(2) == t.Meta.Open)):
			active := a.peek(1) == t.Meta.Open
			if active {
				a.skip(2) // '#<'
			} else {
				a.skip(3) // '##<'
			}
			if err := t.eval(active); err != nil {
				return err
			}

		case c == t.Meta.Open:
			a.skip(1)
			lit, err := t.scanAngleLiteral(a, false)
			if err != nil {
				return err
			}
			t.passive.putString(lit)

		default:
			t.passive.put(a.next())
		}
	}
}

// scanAngleLiteral consumes the contents of an angle-quoted literal up to
// its matching closing bracket, honoring nested angle brackets and
// escapes. The caller has already consumed the opening bracket.
//
// keepBrackets controls whether the returned string should include the
// outer pair: top-level scanning (§4.1 step 4) and call-argument
// collection (callparser.go) both drop it.
func (t *TTM) scanAngleLiteral(a *StringBuffer, keepBrackets bool) (string, *Error) {
	out := NewStringBuffer(32)
	depth := 1
	for {
		if a.atEOF() {
			return "", newError(EEOS, "unterminated angle-quoted literal").at(t.locate(a))
		}
		c := a.peek(0)
		switch {
		case c == t.Meta.Escape:
			a.skip(1)
			if !a.atEOF() {
				out.put(a.next())
			}
		case c == t.Meta.Open:
			depth++
			out.put(a.next())
		case c == t.Meta.Close:
			depth--
			if depth == 0 {
				a.skip(1)
				if keepBrackets {
					return string(t.Meta.Open) + out.String() + string(t.Meta.Close), nil
				}
				return out.String(), nil
			}
			out.put(a.next())
		default:
			out.put(a.next())
		}
	}
}

func (t *TTM) locate(a *StringBuffer) Location {
	return NewLineIndex(a.runes[:a.used]).LocationAt(a.Pos())
}
