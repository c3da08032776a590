// Package grapheme counts and cuts text in user-perceived characters
// (Unicode default grapheme clusters) and maps cluster boundaries to the
// storage offsets that styled-text hosts address ranges with.
package grapheme

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Unit is the addressing scheme of a storage offset.
type Unit uint8

const (
	UnitByte  Unit = iota // Go string index (UTF-8 bytes)
	UnitRune              // Unicode code points
	UnitUTF16             // UTF-16 code units
)

func (u Unit) String() string {
	switch u {
	case UnitByte:
		return "byte"
	case UnitRune:
		return "rune"
	case UnitUTF16:
		return "utf16"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// ParseUnit accepts the names returned by Unit.String.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "byte", "bytes", "utf8":
		return UnitByte, nil
	case "rune", "runes", "codepoint":
		return UnitRune, nil
	case "utf16", "utf-16":
		return UnitUTF16, nil
	default:
		return UnitByte, fmt.Errorf("unknown unit %q (want byte|rune|utf16)", s)
	}
}

func (u Unit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Unit) UnmarshalText(b []byte) error {
	v, err := ParseUnit(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Count returns the number of grapheme clusters in text.
// "🧖🏼‍♀️💆‍♂️🙆🏾abc" counts as 6.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, utf8.RuneCountInString(text))
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Prefix returns the shortest leading substring of text holding
// min(n, Count(text)) clusters. Negative n yields "".
func Prefix(text string, n int) string {
	return text[:byteBoundary(text, n)]
}

// Cut splits text after its first n clusters. prefix+rest == text always.
func Cut(text string, n int) (prefix, rest string) {
	b := byteBoundary(text, n)
	return text[:b], text[b:]
}

// BoundaryOffset maps the n-th cluster boundary to an offset in unit.
// n is clamped to [0, Count(text)].
func BoundaryOffset(text string, n int, unit Unit) int {
	b := byteBoundary(text, n)
	return Length(text[:b], unit)
}

// Length returns the length of text in unit.
func Length(text string, unit Unit) int {
	switch unit {
	case UnitRune:
		return utf8.RuneCountInString(text)
	case UnitUTF16:
		n := 0
		for _, r := range text {
			n += utf16Len(r)
		}
		return n
	default:
		return len(text)
	}
}

// ByteOffset converts an offset in unit to a byte index into text, clamped
// to [0, len(text)]. Offsets inside a UTF-16 surrogate pair round up.
func ByteOffset(text string, off int, unit Unit) int {
	if off <= 0 {
		return 0
	}
	if unit == UnitByte {
		return min(off, len(text))
	}
	pos := 0
	for i, r := range text {
		if pos >= off {
			return i
		}
		if unit == UnitUTF16 {
			pos += utf16Len(r)
		} else {
			pos++
		}
	}
	return len(text)
}

// ClusterIndex returns the index of the cluster containing the storage
// offset off (in unit). Offsets at or past the end return Count(text);
// negative offsets return 0.
func ClusterIndex(text string, off int, unit Unit) int {
	if off <= 0 {
		return 0
	}
	idx := 0
	pos := 0
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		next := pos + Length(cluster, unit)
		if off < next {
			return idx
		}
		pos = next
		idx++
	}
	return idx
}

// byteBoundary returns the byte index of the n-th cluster boundary,
// clamping n into range.
func byteBoundary(text string, n int) int {
	if n <= 0 || text == "" {
		return 0
	}
	rest := text
	state := -1
	for i := 0; i < n && len(rest) > 0; i++ {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return len(text) - len(rest)
}

func utf16Len(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}
