package ui

import "testing"

func TestSectionsKeepOrder(t *testing.T) {
	c := NewConsole()
	first := c.Section()
	second := c.Section()
	first.SetText("one")
	second.SetText("two")

	lines := c.Lines()
	if len(lines) != 2 || lines[0].Text() != "one" || lines[1].Text() != "two" {
		t.Fatalf("lines out of order: %q, %q", lines[0].Text(), lines[1].Text())
	}
}

func TestLineTakeReportsChanges(t *testing.T) {
	c := NewConsole()
	l := c.Section()

	if _, changed := l.Take(); changed {
		t.Fatal("fresh line reported a change")
	}
	l.SetText("a")
	if s, changed := l.Take(); !changed || s != "a" {
		t.Fatalf("Take = %q/%v, want a/true", s, changed)
	}
	if _, changed := l.Take(); changed {
		t.Fatal("second Take reported a change")
	}
	l.SetText("a") // same contents, no change
	if _, changed := l.Take(); changed {
		t.Fatal("rewriting identical text reported a change")
	}
}

func TestStreamBackspace(t *testing.T) {
	c := NewConsole()
	for _, r := range "ab\ncd" {
		c.Print(r)
	}
	c.Backspace()
	if c.Stream() != "ab\nc" {
		t.Fatalf("stream %q, want %q", c.Stream(), "ab\nc")
	}
	c.Backspace()
	c.Backspace() // at the line break now; must not cross it
	if c.Stream() != "ab\n" {
		t.Fatalf("stream %q, want %q", c.Stream(), "ab\n")
	}
}

func TestBackspaceOnEmptyStream(t *testing.T) {
	c := NewConsole()
	c.Backspace() // must not panic
	if c.Stream() != "" {
		t.Fatalf("stream %q, want empty", c.Stream())
	}
}

func TestTakeStreamDeltas(t *testing.T) {
	c := NewConsole()
	c.Print('h')
	c.Print('i')
	if got := c.TakeStream(); got != "hi" {
		t.Fatalf("first delta %q, want %q", got, "hi")
	}
	if got := c.TakeStream(); got != "" {
		t.Fatalf("idle delta %q, want empty", got)
	}
	c.Print('!')
	if got := c.TakeStream(); got != "!" {
		t.Fatalf("second delta %q, want %q", got, "!")
	}
	// A backspace that retracts already-taken text erases it on the
	// mirror.
	c.Backspace()
	if got := c.TakeStream(); got != "\b \b" {
		t.Fatalf("retraction delta %q, want %q", got, "\b \b")
	}
}
