package engine

// State is a presentation state applied to a node. The rendering layer
// decides what each state looks like; the engine only toggles them.
type State string

// Presentation states emitted by the engine.
const (
	StateVisible State = "visible"
	StateFadeOut State = "fade-out"
	StateFadeIn  State = "fade-in"
	StateActive  State = "active"
	StateShow    State = "show"
)

// Node is the engine's view of a renderable page element: text content,
// presentation states, and accessibility attributes. Components receive
// already-resolved nodes from their caller, so tests can inject fakes and
// an absent page feature is simply a nil node.
type Node interface {
	Text() string
	SetText(text string)
	AddState(s State)
	RemoveState(s State)
	HasState(s State) bool
	Attr(name string) string
	SetAttr(name, value string)
}

// BasicNode is a plain in-memory Node. The UI embeds it in its rendered
// elements and reads the states back when painting.
type BasicNode struct {
	text   string
	states map[State]bool
	attrs  map[string]string
}

// NewBasicNode creates a BasicNode with the given initial text.
func NewBasicNode(text string) *BasicNode {
	return &BasicNode{text: text}
}

// Text returns the node's current text content.
func (n *BasicNode) Text() string { return n.text }

// SetText replaces the node's text content.
func (n *BasicNode) SetText(text string) { n.text = text }

// AddState applies a presentation state. Adding a state already present
// has no effect.
func (n *BasicNode) AddState(s State) {
	if n.states == nil {
		n.states = make(map[State]bool)
	}
	n.states[s] = true
}

// RemoveState clears a presentation state.
func (n *BasicNode) RemoveState(s State) {
	delete(n.states, s)
}

// HasState reports whether the presentation state is applied.
func (n *BasicNode) HasState(s State) bool {
	return n.states[s]
}

// Attr returns the named attribute, or "" when unset.
func (n *BasicNode) Attr(name string) string {
	return n.attrs[name]
}

// SetAttr sets the named attribute.
func (n *BasicNode) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}
