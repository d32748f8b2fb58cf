package host

import "testing"

func TestClassList(t *testing.T) {
	e := NewElement("x", "hole")

	if !e.HasClass("hole") {
		t.Error("element should have its initial class")
	}
	if !e.ToggleClass(ShowClass) {
		t.Error("ToggleClass should report the class as added")
	}
	if e.ClassName() != "hole show" {
		t.Errorf("ClassName() = %q, expected %q", e.ClassName(), "hole show")
	}
	if e.ToggleClass(ShowClass) {
		t.Error("second ToggleClass should report the class as removed")
	}
	if e.HasClass(ShowClass) {
		t.Error("class should be gone after toggling twice")
	}

	e.AddClass("hole")
	if e.ClassName() != "hole" {
		t.Errorf("AddClass should not duplicate, ClassName() = %q", e.ClassName())
	}
}

func TestDispatchOrder(t *testing.T) {
	e := NewElement("btn")
	var order []int
	e.AddEventListener(EventClick, func(ev Event) {
		if ev.Target != e {
			t.Error("event target should be the dispatching element")
		}
		order = append(order, 1)
	})
	e.AddEventListener(EventClick, func(Event) { order = append(order, 2) })

	if n := e.Click(); n != 2 {
		t.Errorf("Click() invoked %d listeners, expected 2", n)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("listeners ran in order %v, expected [1 2]", order)
	}

	if n := NewElement("lonely").Click(); n != 0 {
		t.Errorf("Click() without listeners invoked %d, expected 0", n)
	}
}

func TestNewPageSelectors(t *testing.T) {
	doc := NewPage(StandardHoles)

	holes := doc.QuerySelectorAll("." + HoleClass)
	moles := doc.QuerySelectorAll("." + MoleClass)
	if len(holes) != StandardHoles {
		t.Fatalf("found %d holes, expected %d", len(holes), StandardHoles)
	}
	if len(moles) != StandardHoles {
		t.Fatalf("found %d moles, expected %d", len(moles), StandardHoles)
	}

	for i, m := range moles {
		if m.Parent() != holes[i] {
			t.Errorf("mole %d is not a child of hole %d", i, i)
		}
	}

	for _, id := range []string{StartID, ScoreID, TimerID} {
		if doc.QuerySelector("#"+id) == nil {
			t.Errorf("page is missing #%s", id)
		}
	}
	if doc.QuerySelector("#nope") != nil {
		t.Error("unknown id should not match")
	}
	if doc.QuerySelector("hole") != nil {
		t.Error("bare tag selectors are not supported and should not match")
	}
}

func TestQuerySelectorReturnsFirstInDocumentOrder(t *testing.T) {
	doc := NewPage(3)
	first := doc.QuerySelector("." + HoleClass)
	if first == nil || first.ID() != "hole-1" {
		t.Errorf("QuerySelector returned %v, expected hole-1", first)
	}
}
