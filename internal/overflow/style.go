package overflow

import "maxlen/internal/grapheme"

// Color is a terminal color spec understood by lipgloss ("#D9534F", "203").
// The empty Color means "inherit".
type Color string

// Attributes is the set of visual attributes carried by one styled run.
type Attributes struct {
	Foreground Color `json:"foreground,omitempty"`
	Background Color `json:"background,omitempty"`
	Underline  bool  `json:"underline,omitempty"`
}

// merge overlays the non-zero fields of o onto a.
func (a Attributes) merge(o Attributes) Attributes {
	if o.Foreground != "" {
		a.Foreground = o.Foreground
	}
	if o.Background != "" {
		a.Background = o.Background
	}
	if o.Underline {
		a.Underline = true
	}
	return a
}

// Range is a half-open [Start, End) span in a Unit.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) Len() int { return r.End - r.Start }

// Run is a contiguous range sharing one set of attributes.
type Run struct {
	Range
	Attrs    Attributes `json:"attrs"`
	Overflow bool       `json:"overflow,omitempty"`
}

// StyledOutput is text paired with its attribute runs. Runs are ordered,
// non-empty and cover the whole text.
type StyledOutput struct {
	Text string        `json:"text"`
	Unit grapheme.Unit `json:"unit"`
	Runs []Run         `json:"runs,omitempty"`
}

// OverflowRun returns the highlighted run, if any.
func (o StyledOutput) OverflowRun() (Run, bool) {
	for _, r := range o.Runs {
		if r.Overflow {
			return r, true
		}
	}
	return Run{}, false
}

func (o StyledOutput) clone() StyledOutput {
	o.Runs = append([]Run(nil), o.Runs...)
	return o
}

// StyleConfig controls how the overflow region is highlighted.
type StyleConfig struct {
	OverflowForeground Color
	OverflowBackground Color
	UnderlineOverflow  bool
	// AccessibilityOverride forces the underline regardless of
	// UnderlineOverflow ("differentiate without color").
	AccessibilityOverride bool
}

// DefaultStyleConfig returns the stock overflow highlight: red background,
// inherited foreground, no underline.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		OverflowBackground: "#D9534F",
	}
}
