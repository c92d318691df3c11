package state

import "log"

// History is a linear undo/redo stack of full scene snapshots.
//
// cursor indexes the entry matching the live scene, or is -1 when the live
// scene is the empty scene before the first entry. Once entries have been
// dropped the empty scene is no longer reachable and cursor stays >= 0.
type History struct {
	entries []Scene
	cursor  int
	limit   int
	trimmed bool
}

// NewHistory creates an empty history. A positive limit caps the number of
// retained entries; the oldest ones are dropped first.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{cursor: -1, limit: limit}
}

// Commit records a deep copy of scene. Entries after the cursor are
// discarded.
func (h *History) Commit(scene Scene) {
	h.entries = append(h.entries[:h.cursor+1], scene.Clone())
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append([]Scene(nil), h.entries[drop:]...)
		h.trimmed = true
		log.Printf("[HISTORY] Dropped %d oldest entries (limit %d)", drop, h.limit)
	}
	h.cursor = len(h.entries) - 1
}

// Undo steps back one entry. Stepping back from the first entry yields the
// empty scene, unless older entries were dropped. It reports false, and
// changes nothing, when there is nothing to undo.
func (h *History) Undo() (Scene, bool) {
	if !h.CanUndo() {
		return Scene{}, false
	}
	h.cursor--
	if h.cursor < 0 {
		return Scene{}, true
	}
	return h.entries[h.cursor].Clone(), true
}

// Redo steps forward one entry, reporting false when already at the newest.
func (h *History) Redo() (Scene, bool) {
	if h.cursor >= len(h.entries)-1 {
		return Scene{}, false
	}
	h.cursor++
	return h.entries[h.cursor].Clone(), true
}

func (h *History) CanUndo() bool { return h.cursor > h.floor() }

// floor is the lowest cursor undo can reach.
func (h *History) floor() int {
	if h.trimmed {
		return 0
	}
	return -1
}

func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }

// Len is the number of retained entries.
func (h *History) Len() int { return len(h.entries) }

// Cursor is the index of the current entry, -1 before the first.
func (h *History) Cursor() int { return h.cursor }
