package statusbar

import (
    "fmt"
    "strings"

    "maxlen/internal/overflow"
    "maxlen/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state and the
// field's counters.
func (StatusBar) View(s state.UIState, st overflow.TextState) string {
    mode := "[CMD]"
    if s.Mode == state.INSERT {
        mode = "[INSERT]"
    }
    valid := "OK"
    if !st.Valid {
        valid = "OVER"
    }
    count := fmt.Sprintf("%d/%d", st.CharacterCount, st.MaxCharacters)
    avail := fmt.Sprintf("avail %d", st.Available())

    parts := []string{mode, valid, count, avail}
    if s.Underline {
        parts = append(parts, "U")
    }
    if s.Accessible {
        parts = append(parts, "A11Y")
    }
    if s.Width > 0 {
        parts = append(parts, fmt.Sprintf("W:%d", s.Width))
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
