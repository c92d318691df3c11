package state

// Scene holds every committed element of a board. Render order is fixed:
// all strokes, then all shapes, then all texts, each in insertion order.
type Scene struct {
	Strokes []Stroke    `json:"strokes"`
	Shapes  []Shape     `json:"shapes"`
	Texts   []TextLabel `json:"texts"`
}

// Clone returns a deep copy that shares no slices with s.
func (s Scene) Clone() Scene {
	c := Scene{}
	if len(s.Strokes) > 0 {
		c.Strokes = make([]Stroke, len(s.Strokes))
		for i, st := range s.Strokes {
			c.Strokes[i] = st.clone()
		}
	}
	if len(s.Shapes) > 0 {
		c.Shapes = append([]Shape(nil), s.Shapes...)
	}
	if len(s.Texts) > 0 {
		c.Texts = append([]TextLabel(nil), s.Texts...)
	}
	return c
}

// Len is the total number of elements across all collections.
func (s Scene) Len() int {
	return len(s.Strokes) + len(s.Shapes) + len(s.Texts)
}

func (s Scene) IsEmpty() bool {
	return s.Len() == 0
}

// AddStroke appends a stroke, assigning an ID if it has none.
func (s *Scene) AddStroke(st Stroke) Stroke {
	if st.ID == "" {
		st.ID = NewID()
	}
	st = st.clone()
	s.Strokes = append(s.Strokes, st)
	return st
}

// AddShape appends a shape, assigning an ID if it has none.
func (s *Scene) AddShape(sh Shape) Shape {
	if sh.ID == "" {
		sh.ID = NewID()
	}
	s.Shapes = append(s.Shapes, sh)
	return sh
}

// AddText appends a text label, assigning an ID if it has none.
func (s *Scene) AddText(t TextLabel) TextLabel {
	if t.ID == "" {
		t.ID = NewID()
	}
	s.Texts = append(s.Texts, t)
	return t
}

// Clear removes every element.
func (s *Scene) Clear() {
	s.Strokes = nil
	s.Shapes = nil
	s.Texts = nil
}

// Bounds returns the logical area covered by all elements and whether there
// was anything to cover.
func (s Scene) Bounds() (Rect, bool) {
	var (
		out   Rect
		found bool
	)
	add := func(r Rect) {
		if !found {
			out, found = r, true
			return
		}
		out = out.Union(r)
	}
	for _, st := range s.Strokes {
		if len(st.Points) > 0 {
			add(st.Bounds())
		}
	}
	for _, sh := range s.Shapes {
		add(sh.Bounds())
	}
	for _, t := range s.Texts {
		add(t.Bounds())
	}
	return out, found
}
