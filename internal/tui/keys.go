package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field key bindings. In INSERT mode only the ctrl
// bindings, Command and Accept are checked; every other key goes to the
// text input.
type KeyMap struct {
    Insert, Command   key.Binding
    Trim, Copy        key.Binding
    LimitUp, LimitDn  key.Binding
    Underline, Access key.Binding
    Layout, Preview   key.Binding
    Help              key.Binding
    Accept, Cancel    key.Binding
    Quit              key.Binding
}

func DefaultKeyMap() KeyMap {
    return KeyMap{
        Insert:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
        Command: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "commit")),

        Trim: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "trim")),
        Copy: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),

        LimitUp: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "limit")),
        LimitDn: key.NewBinding(key.WithKeys("-", "_")),

        Underline: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "underline")),
        Access:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "no-color cue")),
        Layout:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "diff layout")),
        Preview:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "trim preview")),
        Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

        Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
        Cancel: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
        Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "cancel (CMD)")),
    }
}

func (k KeyMap) ShortHelp() []key.Binding {
    return []key.Binding{k.Insert, k.Command, k.Trim, k.Accept, k.Cancel, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
    return [][]key.Binding{
        {k.Insert, k.Command, k.Accept, k.Cancel, k.Quit},
        {k.Trim, k.Copy, k.LimitUp, k.Preview},
        {k.Underline, k.Access, k.Layout, k.Help},
    }
}
