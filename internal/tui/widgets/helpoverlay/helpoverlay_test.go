package helpoverlay

import (
    "strings"
    "testing"

    "github.com/charmbracelet/bubbles/key"

    "maxlen/internal/tui/state"
)

type keys struct{ trim, quit key.Binding }

func (k keys) ShortHelp() []key.Binding { return []key.Binding{k.trim, k.quit} }

func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.trim}, {k.quit}} }

func testKeys() keys {
    return keys{
        trim: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "trim")),
        quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
    }
}

func TestShortHelp(t *testing.T) {
    out := NewHelpOverlay().View(state.UIState{}, testKeys())
    if !strings.Contains(out, "trim") || !strings.Contains(out, "cancel") {
        t.Fatalf("short help missing bindings: %q", out)
    }
    if strings.Contains(out, "Help (Mode:") {
        t.Fatalf("short help should not carry the title")
    }
}

func TestFullHelpShowsMode(t *testing.T) {
    out := NewHelpOverlay().View(state.UIState{Help: true, Mode: state.INSERT}, testKeys())
    if !strings.HasPrefix(out, "Help (Mode: INSERT)") {
        t.Fatalf("unexpected full help: %q", out)
    }
}
