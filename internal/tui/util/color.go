package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"

    "maxlen/internal/overflow"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// AccessibilitySource reports "differentiate without color" from NO_COLOR
// (or the explicit flag). It is polled on every restyle pass.
func AccessibilitySource(explicit bool) overflow.AccessibilitySource {
    return overflow.AccessibilityFunc(func() bool { return NoColor(explicit) })
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Danger    lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Danger:    lipgloss.Color("#D9534F"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
    }
}

// AttrStyle converts run attributes into a lipgloss style.
func AttrStyle(a overflow.Attributes) lipgloss.Style {
    st := lipgloss.NewStyle()
    if a.Foreground != "" {
        st = st.Foreground(lipgloss.Color(a.Foreground))
    }
    if a.Background != "" {
        st = st.Background(lipgloss.Color(a.Background))
    }
    if a.Underline {
        st = st.Underline(true)
    }
    return st
}
