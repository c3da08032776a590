package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "maxlen/internal/tui/state"
    "maxlen/internal/tui/util"
)

// View renders field tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    noColor = util.NoColor(noColor)

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    style := chipStyle(t)
    return style.Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.EDITED:
        return "Edited"
    case state.TRIMMED:
        return "Trimmed"
    case state.OVER_LIMIT:
        return fmt.Sprintf("Over +%d", t.Value)
    case state.COUNT:
        return fmt.Sprintf("Count %d/%d", t.Value, t.Max)
    case state.AVAILABLE:
        return fmt.Sprintf("Avail %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    white := lipgloss.Color("#FFFFFF")
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    switch t.Kind {
    case state.EDITED:
        return base.Background(p.Primary).Foreground(white)
    case state.TRIMMED:
        return base.Background(p.Success).Foreground(white)
    case state.OVER_LIMIT:
        return base.Background(p.Danger).Foreground(white)
    case state.COUNT:
        return base.Background(p.Muted).Foreground(white)
    case state.AVAILABLE:
        if t.Value < 0 {
            return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
        }
        return base.Background(p.MutedDark).Foreground(white)
    default:
        return base
    }
}
