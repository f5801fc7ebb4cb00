package pathway

import "maps"

// Node wraps one model element in the pathway tree.
type Node struct {
	element  Element
	children []*Node

	// Cached at construction for reactions; nil otherwise.
	products      []Element
	stoichiometry map[string]float64
}

// NewNode wraps e. If e is a reaction its products and stoichiometry are
// captured once and never change afterwards.
func NewNode(e Element) *Node {
	n := &Node{element: e}
	if r, ok := e.(Reaction); ok {
		n.products = r.Products()
		n.stoichiometry = maps.Clone(r.Stoichiometry())
	}
	if n.stoichiometry == nil {
		n.stoichiometry = map[string]float64{}
	}
	return n
}

func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// Children are in the order they were discovered during expansion.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) Element() Element { return n.element }

func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Name returns the display name of a pathway or reaction, UnnamedElement
// for anything else.
func (n *Node) Name() string {
	switch n.element.(type) {
	case Pathway, Reaction:
		return n.element.DisplayName()
	default:
		return UnnamedElement
	}
}

// Products returns the product entities of a reaction node. Non-reaction
// nodes have none.
func (n *Node) Products() []Element { return n.products }

// Stoichiometry returns a copy of the participant coefficients keyed by
// display name.
func (n *Node) Stoichiometry() map[string]float64 {
	return maps.Clone(n.stoichiometry)
}

// Walk visits n and its descendants depth-first, pre-order. Returning false
// from fn skips the children of the visited node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
