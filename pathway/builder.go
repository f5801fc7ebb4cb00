package pathway

import "fmt"

// Build expands e into a tree. Pathways are expanded into one child per
// component, in the order the model yields them; every other element is a
// leaf.
//
// A pathway that appears twice under different parents is expanded at each
// occurrence. A pathway that appears among its own ancestors makes Build
// fail with ErrCyclicPathway.
func Build(e Element) (*Node, error) {
	return build(e, map[string]struct{}{})
}

func build(e Element, ancestors map[string]struct{}) (*Node, error) {
	node := NewNode(e)

	p, ok := e.(Pathway)
	if !ok {
		return node, nil
	}

	id := p.Identifier()
	if _, seen := ancestors[id]; seen {
		return nil, fmt.Errorf("%w: %s (%s)", ErrCyclicPathway, p.DisplayName(), id)
	}
	ancestors[id] = struct{}{}
	defer delete(ancestors, id)

	for _, c := range p.Components() {
		child, err := build(c, ancestors)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}
