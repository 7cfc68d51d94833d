package ttm

import "sort"

// dictionary holds the Name→Name and Name→Charclass mappings (§3),
// respecting the `locked` flag on erasure.
type dictionary struct {
	names   map[string]*Name
	classes map[string]*Charclass
}

func newDictionary() *dictionary {
	return &dictionary{
		names:   make(map[string]*Name, 128),
		classes: make(map[string]*Charclass, 16),
	}
}

func (d *dictionary) lookup(name string) (*Name, bool) {
	n, ok := d.names[name]
	return n, ok
}

func (d *dictionary) define(n *Name) {
	d.names[n.name] = n
}

// erase deletes name unless it is locked. A no-op on a locked or unknown
// name is not an error (§4.5 "es").
func (d *dictionary) erase(name string) {
	if n, ok := d.names[name]; ok && !n.locked {
		delete(d.names, name)
	}
}

func (d *dictionary) lookupClass(name string) (*Charclass, bool) {
	c, ok := d.classes[name]
	return c, ok
}

func (d *dictionary) defineClass(c *Charclass) {
	d.classes[c.name] = c
}

func (d *dictionary) eraseClass(name string) {
	delete(d.classes, name)
}

// lockAll marks every currently-defined name as locked — used after the
// startup program runs (§6 "All names defined before -e/-p execution are
// locked").
func (d *dictionary) lockAll() {
	for _, n := range d.names {
		n.locked = true
	}
}

// sortedNames returns the sorted names of every non-builtin entry
// (or every entry, if all is true) — for the `names` builtin (§4.10).
func (d *dictionary) sortedNames(all bool) []string {
	out := make([]string, 0, len(d.names))
	for name, n := range d.names {
		if all || !n.builtin {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (d *dictionary) sortedClassNames() []string {
	out := make([]string, 0, len(d.classes))
	for name := range d.classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
