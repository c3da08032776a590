package overflow

// EditBuffer is the live, in-progress text of a focused field. The Styler
// mutates its attributes in place, bracketed by BeginEditing/EndEditing so
// the host observes a single change. Offsets are in the Styler's Unit.
type EditBuffer interface {
	BeginEditing()
	EndEditing()
	// Replace swaps the buffer text; existing attributes are dropped.
	Replace(text string)
	SetAttributes(r Range, a Attributes)
	AddAttributes(r Range, a Attributes)
}

// CommittedValue holds the field's committed styled value.
type CommittedValue interface {
	SetStyledValue(StyledOutput)
}

// AccessibilitySource reports the system "differentiate without color"
// preference. It is polled on every pass.
type AccessibilitySource interface {
	DifferentiateWithoutColor() bool
}

// AccessibilityFunc adapts a func to AccessibilitySource.
type AccessibilityFunc func() bool

func (f AccessibilityFunc) DifferentiateWithoutColor() bool { return f() }

// DefaultStyleProvider supplies the attributes of the non-overflow run.
type DefaultStyleProvider interface {
	DefaultAttributes() Attributes
}

// StaticDefaults is a DefaultStyleProvider that never changes.
type StaticDefaults Attributes

func (d StaticDefaults) DefaultAttributes() Attributes { return Attributes(d) }
