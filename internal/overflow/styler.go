// Package overflow computes validity and overflow highlighting for a text
// field with a maximum length measured in grapheme clusters.
//
// A Styler is driven synchronously by its host: every content change runs one
// full pass that recounts the text, rebuilds the styled runs, restyles either
// the live edit buffer or the committed value, and then notifies. Characters
// past the limit are highlighted, never blocked.
//
// A Styler is not safe for concurrent use; call it from the host's UI loop.
package overflow

import (
	"io"
	"log/slog"

	"maxlen/internal/grapheme"
)

// DefaultMaxCharacters is the limit used when none is configured.
const DefaultMaxCharacters = 20

// TextState is a snapshot of the derived counts for the current text.
type TextState struct {
	Text           string `json:"text"`
	MaxCharacters  int    `json:"maxCharacters"`
	CharacterCount int    `json:"characterCount"`
	OverflowCount  int    `json:"overflowCount"`
	Valid          bool   `json:"valid"`
	Trimmed        string `json:"trimmed"`
}

// Available returns MaxCharacters - CharacterCount; negative when overflowing.
func (s TextState) Available() int { return s.MaxCharacters - s.CharacterCount }

// Evaluate computes the TextState of text against limit without any styling.
func Evaluate(text string, limit int) TextState {
	if limit < 0 {
		limit = 0
	}
	count := grapheme.Count(text)
	over := max(0, count-limit)
	trimmed := text
	if over > 0 {
		trimmed = grapheme.Prefix(text, limit)
	}
	return TextState{
		Text:           text,
		MaxCharacters:  limit,
		CharacterCount: count,
		OverflowCount:  over,
		Valid:          over == 0,
		Trimmed:        trimmed,
	}
}

type restylePath uint8

const (
	pathLive restylePath = iota + 1
	pathCommitted
)

// Styler owns the TextState/StyledOutput pair of one field.
type Styler struct {
	limit int
	style StyleConfig
	unit  grapheme.Unit
	live  bool

	state  TextState
	styled StyledOutput

	edit      EditBuffer
	committed CommittedValue
	access    AccessibilitySource
	defaults  DefaultStyleProvider

	onContent  func()
	onValidity func(bool)
	validity   listeners[bool]
	content    listeners[TextState]

	log *slog.Logger
}

// Option configures a Styler.
type Option func(*Styler)

func WithMaxCharacters(n int) Option { return func(s *Styler) { s.limit = max(0, n) } }

func WithStyle(c StyleConfig) Option { return func(s *Styler) { s.style = c } }

// WithUnit sets the storage unit run offsets are expressed in.
func WithUnit(u grapheme.Unit) Option { return func(s *Styler) { s.unit = u } }

func WithEditBuffer(b EditBuffer) Option { return func(s *Styler) { s.edit = b } }

func WithCommittedValue(v CommittedValue) Option { return func(s *Styler) { s.committed = v } }

func WithAccessibility(a AccessibilitySource) Option { return func(s *Styler) { s.access = a } }

func WithDefaultStyle(p DefaultStyleProvider) Option { return func(s *Styler) { s.defaults = p } }

// WithContentChanged sets the callback invoked after every pass.
func WithContentChanged(fn func()) Option { return func(s *Styler) { s.onContent = fn } }

// WithValidityChanged sets the callback invoked when validity flips.
func WithValidityChanged(fn func(valid bool)) Option {
	return func(s *Styler) { s.onValidity = fn }
}

func WithLogger(l *slog.Logger) Option { return func(s *Styler) { s.log = l } }

// New returns a Styler holding empty, valid text.
func New(opts ...Option) *Styler {
	s := &Styler{
		limit: DefaultMaxCharacters,
		style: DefaultStyleConfig(),
		unit:  grapheme.UnitByte,
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.state = Evaluate("", s.limit)
	s.styled = StyledOutput{Unit: s.unit}
	return s
}

// ContentChanged runs one pass over text. live selects whether the edit
// buffer is restyled in place or the committed value is replaced.
func (s *Styler) ContentChanged(text string, live bool) {
	s.live = live
	s.restyle(text, false)
}

// SetText assigns committed content.
func (s *Styler) SetText(text string) { s.ContentChanged(text, false) }

// SetMaxCharacters updates the limit and restyles the current text.
// Negative values are clamped to 0.
func (s *Styler) SetMaxCharacters(n int) {
	s.limit = max(0, n)
	s.restyle(s.state.Text, false)
}

// SetStyle replaces the highlight configuration and restyles.
func (s *Styler) SetStyle(c StyleConfig) {
	s.style = c
	s.restyle(s.state.Text, false)
}

// SetAccessibilityOverride pushes the "differentiate without color" signal.
func (s *Styler) SetAccessibilityOverride(on bool) {
	s.style.AccessibilityOverride = on
	s.restyle(s.state.Text, false)
}

// AppearanceChanged restyles after a system appearance or accessibility
// change; the AccessibilitySource is polled again.
func (s *Styler) AppearanceChanged() { s.restyle(s.state.Text, false) }

// TrimToMaxLength replaces the content with its first MaxCharacters
// clusters. The pass that follows always leaves the field valid.
func (s *Styler) TrimToMaxLength() {
	s.restyle(grapheme.Prefix(s.state.Text, s.limit), true)
}

// SubscribeValidity registers fn for validity transitions and returns its
// unsubscribe func. fn runs synchronously inside the triggering call.
func (s *Styler) SubscribeValidity(fn func(valid bool)) (unsubscribe func()) {
	return s.validity.add(fn)
}

// SubscribeContent registers fn for every pass.
func (s *Styler) SubscribeContent(fn func(TextState)) (unsubscribe func()) {
	return s.content.add(fn)
}

func (s *Styler) State() TextState { return s.state }

// Styled returns a copy of the latest styled output.
func (s *Styler) Styled() StyledOutput { return s.styled.clone() }

func (s *Styler) Text() string { return s.state.Text }
func (s *Styler) MaxCharacters() int { return s.limit }
func (s *Styler) CharacterCount() int { return s.state.CharacterCount }
func (s *Styler) CharactersAvailable() int { return s.state.Available() }
func (s *Styler) OverflowCharacterCount() int { return s.state.OverflowCount }
func (s *Styler) TrimmedText() string { return s.state.Trimmed }
func (s *Styler) Valid() bool { return s.state.Valid }
func (s *Styler) Live() bool { return s.live }
func (s *Styler) Style() StyleConfig { return s.style }
func (s *Styler) Unit() grapheme.Unit { return s.unit }

// underline reports whether the overflow run is underlined on this pass.
func (s *Styler) underline() bool {
	if s.style.UnderlineOverflow || s.style.AccessibilityOverride {
		return true
	}
	return s.access != nil && s.access.DifferentiateWithoutColor()
}

func (s *Styler) defaultAttrs() Attributes {
	if s.defaults == nil {
		return Attributes{}
	}
	return s.defaults.DefaultAttributes()
}

// restyle is the single recompute pass. replace asks the live buffer to take
// text as its new content, used when the Styler itself assigns content.
func (s *Styler) restyle(text string, replace bool) {
	next := Evaluate(text, s.limit)

	def := s.defaultAttrs()
	overlay := Attributes{
		Foreground: s.style.OverflowForeground,
		Background: s.style.OverflowBackground,
		Underline:  s.underline(),
	}
	length := grapheme.Length(text, s.unit)
	boundary := length
	if next.OverflowCount > 0 {
		boundary = grapheme.BoundaryOffset(text, s.limit, s.unit)
	}
	out := StyledOutput{Text: text, Unit: s.unit}
	if boundary > 0 {
		out.Runs = append(out.Runs, Run{Range: Range{0, boundary}, Attrs: def})
	}
	if boundary < length {
		out.Runs = append(out.Runs, Run{Range: Range{boundary, length}, Attrs: def.merge(overlay), Overflow: true})
	}

	wasValid := s.state.Valid
	s.state = next
	s.styled = out

	path := pathCommitted
	if s.live {
		path = pathLive
	}
	switch path {
	case pathLive:
		if s.edit != nil {
			s.edit.BeginEditing()
			if replace {
				s.edit.Replace(text)
			}
			s.edit.SetAttributes(Range{0, length}, def)
			if boundary < length {
				s.edit.AddAttributes(Range{boundary, length}, overlay)
			}
			s.edit.EndEditing()
		}
	case pathCommitted:
		if s.committed != nil {
			s.committed.SetStyledValue(out.clone())
		}
	default:
		assertf(false, "restyle path %d is neither live nor committed", path)
	}

	if s.onContent != nil {
		s.onContent()
	}
	s.content.emit(next)

	if next.Valid != wasValid {
		s.log.Debug("validity changed",
			slog.Bool("valid", next.Valid),
			slog.Int("count", next.CharacterCount),
			slog.Int("max", next.MaxCharacters))
		s.validity.emit(next.Valid)
		if s.onValidity != nil {
			s.onValidity(next.Valid)
		}
	}
}
