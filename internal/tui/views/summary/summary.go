package summary

import (
    "fmt"
    "strings"

    "maxlen/internal/overflow"
    "maxlen/internal/tui/state"
    "maxlen/internal/tui/util"
    "maxlen/internal/tui/widgets/diff"
    "maxlen/internal/tui/widgets/editor"
    chips "maxlen/internal/tui/widgets/tagchips"
)

// RenderTags is a thin adapter over the TagChips widget.
func RenderTags(st overflow.TextState, noColor bool) string {
    return chips.View(util.ComputeTags(st, false, false), noColor)
}

// Render returns the non-interactive report printed by `maxlen check`:
// the highlighted value, its tags and, when over the limit, what a trim
// would drop.
func Render(st overflow.TextState, out overflow.StyledOutput, noColor bool) string {
    var b strings.Builder
    fmt.Fprintf(&b, "%s\n", editor.Render(out, -1, noColor))
    fmt.Fprintf(&b, "%s\n", RenderTags(st, noColor))
    if !st.Valid {
        b.WriteString(diff.NewDiffView().View(state.UIState{View: state.Unified}, st.Text, st.Trimmed, noColor))
    }
    return b.String()
}
