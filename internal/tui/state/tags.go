package state

// TagKind enumerates the status chips shown under the field.
type TagKind int

const (
    // Stable ordering for display: Edited, Trimmed, Over Limit, Count, Avail
    EDITED TagKind = iota
    TRIMMED
    OVER_LIMIT
    COUNT
    AVAILABLE
)

// Tag represents a single status chip. Value carries the number for the
// counter kinds; Max is only used by COUNT.
type Tag struct {
    Kind  TagKind
    Value int
    Max   int
}
