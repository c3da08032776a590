package overflow

import "maxlen/internal/grapheme"

// AttributedText is an in-memory EditBuffer. Hosts without their own
// attributed string embed it; EndEditing reports whether the outermost
// transaction closed.
type AttributedText struct {
	text  string
	unit  grapheme.Unit
	runs  []Run
	depth int
}

// NewAttributedText returns an unstyled buffer addressed in unit.
func NewAttributedText(text string, unit grapheme.Unit) *AttributedText {
	t := &AttributedText{unit: unit}
	t.Replace(text)
	return t
}

func (t *AttributedText) BeginEditing() { t.depth++ }

func (t *AttributedText) EndEditing() { t.Close() }

// Close ends one transaction and reports whether it was the outermost.
func (t *AttributedText) Close() bool {
	if t.depth == 0 {
		return false
	}
	t.depth--
	return t.depth == 0
}

// Editing reports whether a transaction is open.
func (t *AttributedText) Editing() bool { return t.depth > 0 }

func (t *AttributedText) Replace(text string) {
	t.text = text
	t.runs = nil
	if n := grapheme.Length(text, t.unit); n > 0 {
		t.runs = []Run{{Range: Range{0, n}}}
	}
}

func (t *AttributedText) Text() string { return t.text }

func (t *AttributedText) Len() int { return grapheme.Length(t.text, t.unit) }

// Output snapshots the buffer as a StyledOutput.
func (t *AttributedText) Output() StyledOutput {
	return StyledOutput{Text: t.text, Unit: t.unit, Runs: append([]Run(nil), t.runs...)}
}

// SetAttributes replaces the attributes over r.
func (t *AttributedText) SetAttributes(r Range, a Attributes) {
	t.apply(r, func(Run) Run { return Run{Attrs: a} })
}

// AddAttributes merges a into the attributes over r and marks the
// affected runs as overflow; the Styler only adds the overflow highlight.
func (t *AttributedText) AddAttributes(r Range, a Attributes) {
	t.apply(r, func(old Run) Run {
		return Run{Attrs: old.Attrs.merge(a), Overflow: true}
	})
}

func (t *AttributedText) apply(r Range, f func(Run) Run) {
	n := t.Len()
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > n {
		r.End = n
	}
	if r.Len() <= 0 {
		return
	}
	t.split(r.Start)
	t.split(r.End)
	for i, run := range t.runs {
		if run.Start >= r.Start && run.End <= r.End {
			next := f(run)
			next.Range = run.Range
			t.runs[i] = next
		}
	}
	t.coalesce()
}

// split cuts the run containing off so that off becomes a run edge.
func (t *AttributedText) split(off int) {
	for i, run := range t.runs {
		if off > run.Start && off < run.End {
			left, right := run, run
			left.End = off
			right.Start = off
			t.runs = append(t.runs[:i], append([]Run{left, right}, t.runs[i+1:]...)...)
			return
		}
	}
}

func (t *AttributedText) coalesce() {
	if len(t.runs) < 2 {
		return
	}
	out := t.runs[:1]
	for _, run := range t.runs[1:] {
		last := &out[len(out)-1]
		if last.Attrs == run.Attrs && last.Overflow == run.Overflow && last.End == run.Start {
			last.End = run.End
			continue
		}
		out = append(out, run)
	}
	t.runs = out
}
