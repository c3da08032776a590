package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/help"

    "maxlen/internal/tui/state"
)

type HelpOverlay struct {
    model help.Model
}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{model: help.New()} }

// View returns the key help with the current mode indicated. s.Help selects
// the grouped full view over the one-line short view.
func (h HelpOverlay) View(s state.UIState, keys help.KeyMap) string {
    m := h.model
    m.ShowAll = s.Help
    if s.Width > 0 {
        m.Width = s.Width
    }
    if !s.Help {
        return m.View(keys)
    }
    mode := "CMD"
    if s.Mode == state.INSERT {
        mode = "INSERT"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n\n", mode)
    b.WriteString(m.View(keys))
    b.WriteString("\n")
    return b.String()
}
