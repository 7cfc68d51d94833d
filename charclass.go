package ttm

// Charclass is a named character set with a negation flag (§3). Membership
// is `c ∈ characters` XOR `negative`.
type Charclass struct {
	name       string
	characters string
	negative   bool
}

func newCharclass(name, chars string, negative bool) *Charclass {
	return &Charclass{name: name, characters: chars, negative: negative}
}

func (c *Charclass) member(r rune) bool {
	in := false
	for _, m := range c.characters {
		if m == r {
			in = true
			break
		}
	}
	return in != c.negative
}
