package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sceneWithStrokes(n int) Scene {
	var s Scene
	for i := 0; i < n; i++ {
		s.AddStroke(Stroke{Points: []Point{Pt(float64(i), float64(i))}, Width: 2})
	}
	return s
}

func TestHistoryStartsEmpty(t *testing.T) {
	h := NewHistory(0)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, -1, h.Cursor())

	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryUndoRedoRestoresEveryStep(t *testing.T) {
	h := NewHistory(0)
	const n = 5
	for i := 1; i <= n; i++ {
		h.Commit(sceneWithStrokes(i))
	}
	final := sceneWithStrokes(n)

	for i := n - 1; i >= 0; i-- {
		s, ok := h.Undo()
		require.True(t, ok)
		assert.Len(t, s.Strokes, i)
	}
	assert.False(t, h.CanUndo())

	var s Scene
	for i := 1; i <= n; i++ {
		var ok bool
		s, ok = h.Redo()
		require.True(t, ok)
		assert.Len(t, s.Strokes, i)
	}
	assert.False(t, h.CanRedo())
	require.Len(t, s.Strokes, len(final.Strokes))
	for i := range final.Strokes {
		assert.Equal(t, final.Strokes[i].Points, s.Strokes[i].Points)
	}
}

func TestHistoryCommitAfterUndoDiscardsRedo(t *testing.T) {
	h := NewHistory(0)
	h.Commit(sceneWithStrokes(1))
	h.Commit(sceneWithStrokes(2))
	h.Commit(sceneWithStrokes(3))

	_, ok := h.Undo()
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Commit(sceneWithStrokes(7))
	assert.False(t, h.CanRedo())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryUndoPastFirstEntryYieldsEmptyScene(t *testing.T) {
	h := NewHistory(0)
	h.Commit(sceneWithStrokes(1))

	s, ok := h.Undo()
	require.True(t, ok)
	assert.True(t, s.IsEmpty())
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	s, ok = h.Redo()
	require.True(t, ok)
	assert.Len(t, s.Strokes, 1)
}

func TestHistoryStoresDeepCopies(t *testing.T) {
	h := NewHistory(0)
	live := sceneWithStrokes(1)
	h.Commit(live)

	live.Strokes[0].Points[0] = Pt(99, 99)
	h.Commit(live)

	s, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, Pt(0, 0), s.Strokes[0].Points[0])

	// Mutating a returned scene must not leak back into history.
	s.Strokes[0].Points[0] = Pt(-1, -1)
	_, ok = h.Redo()
	require.True(t, ok)
	s, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, Pt(0, 0), s.Strokes[0].Points[0])
}

func TestHistoryLimitDropsOldest(t *testing.T) {
	h := NewHistory(2)
	h.Commit(sceneWithStrokes(1))
	h.Commit(sceneWithStrokes(2))
	h.Commit(sceneWithStrokes(3))

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Cursor())

	s, ok := h.Undo()
	require.True(t, ok)
	assert.Len(t, s.Strokes, 2)

	// The oldest retained entry is the floor; the empty scene is gone.
	assert.False(t, h.CanUndo())
	_, ok = h.Undo()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Cursor())

	s, ok = h.Redo()
	require.True(t, ok)
	assert.Len(t, s.Strokes, 3)
}

func TestHistoryWithinLimitUndoesToEmpty(t *testing.T) {
	h := NewHistory(3)
	h.Commit(sceneWithStrokes(1))
	h.Commit(sceneWithStrokes(2))

	_, ok := h.Undo()
	require.True(t, ok)
	s, ok := h.Undo()
	require.True(t, ok)
	assert.True(t, s.IsEmpty())
	assert.False(t, h.CanUndo())
}
