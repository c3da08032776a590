package overflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"maxlen/internal/grapheme"
)

func TestAttributedText_SplitAndCoalesce(t *testing.T) {
	b := NewAttributedText("abcdefgh", grapheme.UnitByte)
	b.BeginEditing()
	b.AddAttributes(Range{2, 4}, Attributes{Background: "1"})
	b.AddAttributes(Range{6, 99}, Attributes{Underline: true})
	require.True(t, b.Editing())
	b.EndEditing()
	require.False(t, b.Editing())

	require.Equal(t, []Run{
		{Range: Range{0, 2}},
		{Range: Range{2, 4}, Attrs: Attributes{Background: "1"}, Overflow: true},
		{Range: Range{4, 6}},
		{Range: Range{6, 8}, Attrs: Attributes{Underline: true}, Overflow: true},
	}, b.Output().Runs)

	b.SetAttributes(Range{0, b.Len()}, Attributes{Foreground: "7"})
	require.Equal(t, []Run{{Range: Range{0, 8}, Attrs: Attributes{Foreground: "7"}}}, b.Output().Runs)
}

func TestAttributedText_NestedTransactions(t *testing.T) {
	b := NewAttributedText("x", grapheme.UnitRune)
	b.BeginEditing()
	b.BeginEditing()
	require.False(t, b.Close())
	require.True(t, b.Close())
	require.False(t, b.Close(), "closing with no open transaction is a no-op")
}

func TestAttributedText_EmptyRangesIgnored(t *testing.T) {
	b := NewAttributedText("", grapheme.UnitUTF16)
	b.AddAttributes(Range{0, 0}, Attributes{Background: "1"})
	require.Empty(t, b.Output().Runs)

	b.Replace("ab")
	b.AddAttributes(Range{2, 2}, Attributes{Background: "1"})
	require.Len(t, b.Output().Runs, 1)
}
