// Package host models the page the game runs on: a small tree of elements
// with ids, class lists, text content and click listeners.
//
// The controller only sees this contract. The terminal platform renders
// the same document and turns keys and mouse clicks into element clicks.
package host

import (
	"slices"
	"strings"
)

// Well-known selectors of the whack-a-mole page.
const (
	HoleClass = "hole"
	MoleClass = "mole"
	ShowClass = "show" // Toggled on a hole while its mole is up

	WhackedClass = "whacked" // Set on a shown hole once its mole has been hit

	StartID = "start"
	ScoreID = "score"
	TimerID = "timer"
)

// EventClick is the only event type the game uses.
const EventClick = "click"

// Event is delivered to listeners when an element is dispatched on.
type Event struct {
	Type   string
	Target *Element
}

// Listener handles an event.
type Listener func(Event)

// Element is a node of the host document.
type Element struct {
	id        string
	classes   []string
	text      string
	parent    *Element
	children  []*Element
	listeners map[string][]Listener
}

// NewElement creates a detached element with an id (may be empty) and classes.
func NewElement(id string, classes ...string) *Element {
	e := &Element{id: id}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

// ID returns the element id.
func (e *Element) ID() string {
	return e.id
}

// Parent returns the enclosing element, or nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// Append adds child as the last child of e and returns child.
func (e *Element) Append(child *Element) *Element {
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// AddClass adds name to the class list if absent.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// RemoveClass removes name from the class list.
func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

// ToggleClass flips name in the class list and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

// ClassName returns the class list joined with spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the text content.
func (e *Element) SetText(s string) {
	e.text = s
}

// AddEventListener registers fn for events of type typ.
func (e *Element) AddEventListener(typ string, fn Listener) {
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[typ] = append(e.listeners[typ], fn)
}

// Dispatch delivers an event of type typ to the element's listeners in
// registration order. It returns the number of listeners invoked.
func (e *Element) Dispatch(typ string) int {
	ls := e.listeners[typ]
	ev := Event{Type: typ, Target: e}
	for _, fn := range ls {
		fn(ev)
	}
	return len(ls)
}

// Click dispatches a click event.
func (e *Element) Click() int {
	return e.Dispatch(EventClick)
}

// Document is a tree of elements rooted at a body element.
type Document struct {
	body *Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{body: NewElement("", "body")}
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.body
}

// QuerySelector returns the first element in document order matching the
// selector, or nil. Supported selectors are "#id" and ".class".
func (d *Document) QuerySelector(selector string) *Element {
	var found *Element
	d.walk(d.body, func(e *Element) bool {
		if matches(e, selector) {
			found = e
			return false
		}
		return true
	})
	return found
}

// QuerySelectorAll returns every element matching the selector in document order.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	var found []*Element
	d.walk(d.body, func(e *Element) bool {
		if matches(e, selector) {
			found = append(found, e)
		}
		return true
	})
	return found
}

// walk visits e and its descendants depth-first until visit returns false.
func (d *Document) walk(e *Element, visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.children {
		if !d.walk(c, visit) {
			return false
		}
	}
	return true
}

func matches(e *Element, selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return e.id != "" && e.id == selector[1:]
	case strings.HasPrefix(selector, "."):
		return e.HasClass(selector[1:])
	default:
		return false
	}
}
