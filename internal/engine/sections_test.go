package engine

import "testing"

func TestSectionTracker_LastWriteWins(t *testing.T) {
	var anchors []string
	tr := NewSectionTracker(func(id, anchor string) { anchors = append(anchors, anchor) })

	// Two sections reported intersecting in the same callback batch fire
	// in callback order; the later write wins.
	tr.Intersect("about", true)
	tr.Intersect("team", true)

	if got := tr.Active(); got != "team" {
		t.Errorf("Active = %q, want %q", got, "team")
	}
	if len(anchors) != 2 || anchors[0] != "#about" || anchors[1] != "#team" {
		t.Errorf("anchors = %v, want [#about #team]", anchors)
	}
}

func TestSectionTracker_IgnoresNonIntersecting(t *testing.T) {
	tr := NewSectionTracker(nil)
	tr.Intersect("about", true)
	tr.Intersect("about", false)

	if got := tr.Active(); got != "about" {
		t.Errorf("Active = %q after exit, want %q", got, "about")
	}
}

func TestSectionTracker_Disconnect(t *testing.T) {
	calls := 0
	tr := NewSectionTracker(func(string, string) { calls++ })
	tr.Intersect("hero", true)
	tr.Disconnect()
	tr.Intersect("contact", true)

	if got := tr.Active(); got != "hero" {
		t.Errorf("Active = %q after disconnect, want %q", got, "hero")
	}
	if calls != 1 {
		t.Errorf("onChange ran %d times, want 1", calls)
	}
}
