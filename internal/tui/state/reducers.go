package state

// ToggleMode switches between CMD and INSERT modes and sets a brief notice.
func ToggleMode(s UIState) UIState {
    if s.Mode == CMD {
        s.Mode = INSERT
        s.Notice = "[INSERT]"
    } else {
        s.Mode = CMD
        s.Notice = "[CMD]"
    }
    return s
}

// ToggleView switches between Unified and SideBySide preview layouts.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return s
}

// Resize updates width and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width int) UIState {
    s.Width = width
    threshold := 2*s.MinCol + 3
    if s.View == SideBySide && s.Width < threshold {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
    }
    return s
}

func TogglePreview(s UIState) UIState {
    s.Preview = !s.Preview
    return s
}

func ToggleHelp(s UIState) UIState {
    s.Help = !s.Help
    return s
}

func ToggleUnderline(s UIState) UIState {
    s.Underline = !s.Underline
    if s.Underline {
        s.Notice = "Underline on"
    } else {
        s.Notice = "Underline off"
    }
    return s
}

// ToggleAccessible flips the "differentiate without color" override.
func ToggleAccessible(s UIState) UIState {
    s.Accessible = !s.Accessible
    if s.Accessible {
        s.Notice = "Differentiate without color"
    } else {
        s.Notice = "Color highlighting"
    }
    return s
}

// BumpLimit moves the limit by delta, never below zero.
func BumpLimit(s UIState, delta int) UIState {
    s.Limit += delta
    if s.Limit < 0 {
        s.Limit = 0
    }
    return s
}

// MarkEdited records a user edit and clears a stale trim flag.
func MarkEdited(s UIState) UIState {
    s.Edited = true
    s.Trimmed = false
    return s
}

func MarkTrimmed(s UIState) UIState {
    s.Trimmed = true
    s.Notice = "Trimmed to limit"
    return s
}

func SetValid(s UIState, valid bool) UIState {
    s.Valid = valid
    return s
}
