package ttm

// parseCall is entered with t.active.pos just after a call opener
// (`#<` or `##<`). It collects arguments into a fresh Frame until the
// matching closing bracket at depth 0 (§4.2).
func (t *TTM) parseCall(active bool) (*Frame, *Error) {
	f := newFrame(active)
	a := t.active
	cur := NewStringBuffer(32)

	finishArg := func() {
		f.args = append(f.args, cur.String())
		cur = NewStringBuffer(32)
	}

	for {
		if a.atEOF() {
			return nil, newError(EEOS, "unterminated call").at(t.locate(a))
		}
		c := a.peek(0)
		switch {
		case c == t.Meta.Escape:
			a.skip(1)
			if !a.atEOF() {
				cur.put(a.next())
			}

		case c == t.Meta.Semi:
			a.skip(1)
			finishArg()

		case c == t.Meta.Close:
			a.skip(1)
			finishArg()
			if len(f.args) > MaxArgs {
				return nil, newError(EManyParms, "call has %d arguments, max %d", len(f.args)-1, MaxArgs-1)
			}
			return f, nil

		case c == t.Meta.Sharp && (a.peek(1) == t.Meta.Open || (a.peek(1) == t.Meta.Sharp && a.peek(2) == t.Meta.Open)):
			// Recursive inner call: its result is accumulated into the
			// current argument buffer, whether the inner call is itself
			// active or passive (§4.2).
			innerActive := a.peek(1) == t.Meta.Open
			if innerActive {
				a.skip(2)
			} else {
				a.skip(3)
			}
			innerFrame, innerResult, err := t.execute(innerActive)
			if err != nil {
				return nil, err
			}
			if innerFrame.result != nil {
				cur.putString(innerResult.String())
			}

		case c == t.Meta.Open:
			// Nested angle-quoted literal: its contents are copied
			// verbatim and the enclosing pair of brackets is dropped, as at
			// top level, so `#<ds;f;<#<ad;1;2>>>` stores `#<ad;1;2>`.
			a.skip(1)
			lit, err := t.scanAngleLiteral(a, false)
			if err != nil {
				return nil, err
			}
			cur.putString(lit)

		default:
			cur.put(a.next())
		}
	}
}
