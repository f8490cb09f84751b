package ui

import "strings"

// Line is one rewritable console row, owned by a single peripheral.
type Line struct {
	text    string
	changed bool
}

// SetText replaces the line contents.
func (l *Line) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
	l.changed = true
}

// Text returns the current contents.
func (l *Line) Text() string { return l.text }

// Take returns the current contents and whether they changed since the
// previous Take. Front ends use it to mirror updates without reprinting
// unchanged lines.
func (l *Line) Take() (string, bool) {
	changed := l.changed
	l.changed = false
	return l.text, changed
}

// Console collects the text output of the peripheral layer: a stack of
// rewritable status lines plus a free-running character stream with
// backspace handling. The simulation loop is single threaded, so the
// console needs no locking.
type Console struct {
	lines  []*Line
	stream []rune
	taken  int
}

// NewConsole returns an empty console.
func NewConsole() *Console { return &Console{} }

// Section allocates a new status line below the existing ones.
func (c *Console) Section() *Line {
	l := &Line{}
	c.lines = append(c.lines, l)
	return l
}

// Lines returns the status lines in creation order.
func (c *Console) Lines() []*Line { return c.lines }

// Print appends r to the character stream.
func (c *Console) Print(r rune) { c.stream = append(c.stream, r) }

// Backspace deletes the last streamed character unless it would cross a
// line break.
func (c *Console) Backspace() {
	if n := len(c.stream); n > 0 && c.stream[n-1] != '\n' {
		c.stream = c.stream[:n-1]
	}
}

// Stream returns the full printed text accumulated so far.
func (c *Console) Stream() string { return string(c.stream) }

// TakeStream returns the stream text appended since the previous call.
// When a backspace retracted text that was already taken, the result
// erases it with "\b \b" sequences before any new text.
func (c *Console) TakeStream() string {
	var b strings.Builder
	if len(c.stream) < c.taken {
		b.WriteString(strings.Repeat("\b \b", c.taken-len(c.stream)))
		c.taken = len(c.stream)
	}
	b.WriteString(string(c.stream[c.taken:]))
	c.taken = len(c.stream)
	return b.String()
}
