// Package parsee provides a forward-only cursor for consuming a text buffer.
package parsee

// Cursor consumes a fixed input from the front. The unconsumed part is
// always a suffix of the input and only ever shrinks.
type Cursor struct {
	input []rune
	pos   int
}

// New creates a cursor positioned at the start of input.
func New(input string) *Cursor {
	return &Cursor{input: []rune(input)}
}

// Len returns the number of code points not yet consumed.
func (c *Cursor) Len() int {
	return len(c.input) - c.pos
}

// Text returns the unconsumed content.
func (c *Cursor) Text() string {
	return string(c.input[c.pos:])
}

// String returns the unconsumed content, like Text.
func (c *Cursor) String() string {
	return c.Text()
}

// StartsWith reports whether the unconsumed content begins with prefix.
func (c *Cursor) StartsWith(prefix string) bool {
	return c.matchAt(c.pos, []rune(prefix))
}

// Read consumes prefix if the unconsumed content begins with it.
// On a mismatch nothing is consumed and false is returned.
func (c *Cursor) Read(prefix string) bool {
	p := []rune(prefix)
	if !c.matchAt(c.pos, p) {
		return false
	}
	c.pos += len(p)
	return true
}

// ReadUntil consumes and returns everything before the first occurrence of
// any stopper. The stopper itself is left unconsumed. When no stopper
// occurs, the rest of the input is consumed. Empty stoppers are ignored.
func (c *Cursor) ReadUntil(stoppers ...string) string {
	stops := make([][]rune, 0, len(stoppers))
	for _, s := range stoppers {
		if s != "" {
			stops = append(stops, []rune(s))
		}
	}

	start := c.pos
	end := len(c.input)
scan:
	for i := start; i < len(c.input); i++ {
		for _, s := range stops {
			if c.matchAt(i, s) {
				end = i
				break scan
			}
		}
	}

	c.pos = end
	return string(c.input[start:end])
}

func (c *Cursor) matchAt(at int, s []rune) bool {
	if at+len(s) > len(c.input) {
		return false
	}
	for i, ch := range s {
		if c.input[at+i] != ch {
			return false
		}
	}
	return true
}
