package engine

// SectionTracker maintains the identifier of the section landmark
// currently in view. Multiple sections intersecting in the same callback
// batch each fire the update in callback order; the last write wins.
type SectionTracker struct {
	active    string
	onChange  func(id, anchor string)
	connected bool
}

// NewSectionTracker creates a connected tracker. onChange receives the
// section identifier and its derived anchor reference ("#<id>") every time
// an intersecting section is reported; it may be nil.
func NewSectionTracker(onChange func(id, anchor string)) *SectionTracker {
	return &SectionTracker{onChange: onChange, connected: true}
}

// Intersect is the intersection callback for a single section landmark.
func (t *SectionTracker) Intersect(id string, intersecting bool) {
	if !t.connected || !intersecting || id == "" {
		return
	}
	t.active = id
	if t.onChange != nil {
		t.onChange(id, "#"+id)
	}
}

// Active returns the identifier of the section currently considered in
// view, or "" before any section has intersected.
func (t *SectionTracker) Active() string { return t.active }

// Disconnect stops the tracker; subsequent callbacks are ignored.
func (t *SectionTracker) Disconnect() { t.connected = false }
