package bot

// NoHistory is returned by History.At for an index outside the recorded range.
const NoHistory = "No history."

// History is an append-only log of chat inputs.
// Entries are never removed or reordered.
type History struct {
	entries []string
}

// Append adds an entry to the end of the history.
func (h *History) Append(entry string) {
	h.entries = append(h.entries, entry)
}

// At returns the entry at index, or NoHistory when index is out of range.
func (h *History) At(index int) string {
	if index < 0 || index >= len(h.entries) {
		return NoHistory
	}
	return h.entries[index]
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries in insertion order.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
