package state

// EditorMode represents the field's current input mode. INSERT edits the
// live buffer; CMD shows the committed value.
type EditorMode int

const (
    CMD EditorMode = iota
    INSERT
)

// DiffMode controls how the trim preview is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by status bar, preview, and editor.
type UIState struct {
    // Mode & View
    Mode    EditorMode
    View    DiffMode
    Preview bool // show what a trim would drop
    Help    bool // full help instead of the short line

    // Layout
    Width  int
    MinCol int

    // Field options mirrored for display
    Limit      int
    Underline  bool
    Accessible bool // differentiate without color
    Valid      bool

    // Flags
    Edited  bool // user-initiated edits
    Trimmed bool // a trim was applied

    // Notices and ephemeral messages
    Notice string
}
