package pathway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNode_ReactionCachesProducts(t *testing.T) {
	adp := entity("ADP")
	r := reaction("R1", adp)
	r.stoich = map[string]float64{"ADP": 1, "ATP": 2}

	n := NewNode(r)
	assert.Equal(t, []Element{adp}, n.Products())
	assert.Equal(t, map[string]float64{"ADP": 1, "ATP": 2}, n.Stoichiometry())

	// Later changes to the reaction do not leak into the node.
	r.stoich["ADP"] = 9
	assert.Equal(t, 1.0, n.Stoichiometry()["ADP"])

	// Nor do changes to the returned map.
	got := n.Stoichiometry()
	got["ATP"] = 0
	assert.Equal(t, 2.0, n.Stoichiometry()["ATP"])
}

func TestNewNode_NonReaction(t *testing.T) {
	n := NewNode(pathwayOf("P"))
	assert.Empty(t, n.Products())
	assert.Empty(t, n.Stoichiometry())
	assert.True(t, n.IsLeaf())
}

func TestNode_Name(t *testing.T) {
	assert.Equal(t, "P", NewNode(pathwayOf("P")).Name())
	assert.Equal(t, "R", NewNode(reaction("R")).Name())
	assert.Equal(t, UnnamedElement, NewNode(entity("ADP")).Name())
}

func TestNode_WalkPreOrder(t *testing.T) {
	root := NewNode(pathwayOf("P"))
	a := NewNode(reaction("A"))
	b := NewNode(pathwayOf("B"))
	c := NewNode(reaction("C"))
	b.AddChild(c)
	root.AddChild(a)
	root.AddChild(b)

	var names []string
	var depths []int
	root.Walk(func(n *Node, depth int) bool {
		names = append(names, n.Name())
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"P", "A", "B", "C"}, names)
	assert.Equal(t, []int{0, 1, 1, 2}, depths)
	assert.Equal(t, 4, root.Size())
	assert.False(t, root.IsLeaf())

	var pruned []string
	root.Walk(func(n *Node, _ int) bool {
		pruned = append(pruned, n.Name())
		return n.Name() != "B"
	})
	assert.Equal(t, []string{"P", "A", "B"}, pruned)
}
