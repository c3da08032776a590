package diff

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "maxlen/internal/tui/state"
)

var (
    diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    faint       = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders what a trim would drop from raw. SideBySide aligns two
// columns with a vertical separator; Unified prefixes lines with +/-
// markers. Without color, deleted spans are shown as [-text-].
func (DiffView) View(s state.UIState, raw, trimmed string, noColor bool) string {
    if raw == trimmed {
        return "No changes\n"
    }
    diffs := charDiff(raw, trimmed)
    if s.View == state.SideBySide {
        return sideBySide(diffs, s, noColor)
    }
    return unified(diffs, noColor)
}

func charDiff(before, after string) []dmp.Diff {
    d := dmp.New()
    diffs := d.DiffMain(before, after, false)
    return d.DiffCleanupSemantic(diffs)
}

// sides splits a char diff into the before and after renderings.
func sides(diffs []dmp.Diff, noColor bool) (before, after string) {
    var lbuf, rbuf strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            if noColor {
                fmt.Fprintf(&lbuf, "[-%s-]", df.Text)
            } else {
                lbuf.WriteString(diffDelChar.Render(df.Text))
            }
        case dmp.DiffInsert:
            if noColor {
                fmt.Fprintf(&rbuf, "{+%s+}", df.Text)
            } else {
                rbuf.WriteString(diffAddLine.Render(df.Text))
            }
        case dmp.DiffEqual:
            if noColor {
                lbuf.WriteString(df.Text)
                rbuf.WriteString(df.Text)
            } else {
                lbuf.WriteString(diffDelLine.Render(df.Text))
                rbuf.WriteString(diffAddLine.Render(df.Text))
            }
        }
    }
    return lbuf.String(), rbuf.String()
}

func unified(diffs []dmp.Diff, noColor bool) string {
    before, after := sides(diffs, noColor)
    var b strings.Builder
    b.WriteString("RAW vs TRIMMED (Unified)\n")
    fmt.Fprintf(&b, "- %s\n", before)
    fmt.Fprintf(&b, "+ %s\n", after)
    return b.String()
}

func sideBySide(diffs []dmp.Diff, s state.UIState, noColor bool) string {
    const sep = " │ "
    before, after := sides(diffs, noColor)
    // Compute column width from total width if provided
    colWidth := 40
    if s.Width > 0 {
        colWidth = (s.Width - lipgloss.Width(sep)) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    if s.MinCol > 0 && colWidth < s.MinCol {
        colWidth = s.MinCol
    }
    col := lipgloss.NewStyle().Width(colWidth)
    var b strings.Builder
    b.WriteString("RAW │ TRIMMED\n")
    row := lipgloss.JoinHorizontal(lipgloss.Top,
        col.Render("- "+before),
        sep,
        col.Render("+ "+after),
    )
    b.WriteString(row)
    b.WriteString("\n")
    if !noColor {
        b.WriteString(faint.Render(fmt.Sprintf("%d dropped", droppedRunes(diffs))) + "\n")
    }
    return b.String()
}

func droppedRunes(diffs []dmp.Diff) int {
    n := 0
    for _, df := range diffs {
        if df.Type == dmp.DiffDelete {
            n += len([]rune(df.Text))
        }
    }
    return n
}
