package util

import (
    "maxlen/internal/overflow"
    "maxlen/internal/tui/state"
)

// ComputeTags calculates the status chips for a field from its current
// TextState and the edit flags.
//
// The returned slice preserves a stable order:
//   Edited, Trimmed, Over Limit, Count, Avail
//
// Rules:
// - Edited reflects explicit user edits.
// - Trimmed is set after a trim until the next edit.
// - Over Limit carries the overflow count in grapheme clusters (when positive).
// - Count and Avail are always included (counters; Avail may be negative).
func ComputeTags(st overflow.TextState, edited, trimmed bool) []state.Tag {
    tags := make([]state.Tag, 0, 5)

    if edited {
        tags = append(tags, state.Tag{Kind: state.EDITED})
    }
    if trimmed {
        tags = append(tags, state.Tag{Kind: state.TRIMMED})
    }
    if st.OverflowCount > 0 {
        tags = append(tags, state.Tag{Kind: state.OVER_LIMIT, Value: st.OverflowCount})
    }
    tags = append(tags, state.Tag{Kind: state.COUNT, Value: st.CharacterCount, Max: st.MaxCharacters})
    tags = append(tags, state.Tag{Kind: state.AVAILABLE, Value: st.Available()})

    return tags
}
