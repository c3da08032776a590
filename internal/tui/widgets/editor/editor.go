package editor

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "maxlen/internal/grapheme"
    "maxlen/internal/overflow"
    "maxlen/internal/tui/state"
    "maxlen/internal/tui/util"
)

type Editor struct {
    Prompt string
}

func NewEditor(prompt string) Editor { return Editor{Prompt: prompt} }

// View renders the prompt and styled field under a mode header. cursor is
// a cluster index; -1 hides it.
func (e Editor) View(s state.UIState, out overflow.StyledOutput, cursor int, noColor bool) string {
    header := "[CMD]"
    if s.Mode == state.INSERT {
        header = "[INSERT]"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "%s\n", header)
    fmt.Fprintf(&b, "%s%s\n", e.Prompt, Render(out, cursor, noColor))
    return b.String()
}

var cursorStyle = lipgloss.NewStyle().Reverse(true)

// span is a run re-addressed in byte offsets of the output text.
type span struct {
    start, end int
    attrs      overflow.Attributes
    overflow   bool
}

func spans(out overflow.StyledOutput) []span {
    res := make([]span, 0, len(out.Runs))
    for _, r := range out.Runs {
        res = append(res, span{
            start:    grapheme.ByteOffset(out.Text, r.Start, out.Unit),
            end:      grapheme.ByteOffset(out.Text, r.End, out.Unit),
            attrs:    r.Attrs,
            overflow: r.Overflow,
        })
    }
    return res
}

func spanAt(sp []span, pos int) span {
    for _, s := range sp {
        if pos >= s.start && pos < s.end {
            return s
        }
    }
    return span{}
}

// Render draws out one cluster at a time so the cursor never splits a
// cluster. Without color the overflow region is wrapped in brackets and the
// cursor is left to the terminal.
func Render(out overflow.StyledOutput, cursor int, noColor bool) string {
    sp := spans(out)
    var b strings.Builder
    open := false
    pos := 0
    clusters := grapheme.Split(out.Text)
    for i, cl := range clusters {
        s := spanAt(sp, pos)
        pos += len(cl)
        if noColor {
            if s.overflow && !open {
                b.WriteString("[")
                open = true
            }
            b.WriteString(cl)
            continue
        }
        st := util.AttrStyle(s.attrs)
        if i == cursor {
            st = st.Reverse(true)
        }
        b.WriteString(st.Render(cl))
    }
    if open {
        b.WriteString("]")
    }
    if !noColor && cursor >= len(clusters) {
        b.WriteString(cursorStyle.Render(" "))
    }
    return b.String()
}
