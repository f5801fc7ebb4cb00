package pathway

import (
	"fmt"
	"slices"
)

// Table maps a pathway display name to the number of times each product
// (by display name) is generated directly inside that pathway.
type Table map[string]map[string]int

// Stats summarises one aggregation pass.
type Stats struct {
	NodesVisited    int `json:"nodes_visited" yaml:"nodes_visited"`
	Reactions       int `json:"reactions" yaml:"reactions"`
	ProductsTallied int `json:"products_tallied" yaml:"products_tallied"`
}

// Aggregate walks the tree rooted at root and counts products per enclosing
// pathway. The root must hold a pathway.
func Aggregate(root *Node) (Table, error) {
	t, _, err := AggregateWithStats(root)
	return t, err
}

// AggregateWithStats is Aggregate that also reports what was visited.
func AggregateWithStats(root *Node) (Table, Stats, error) {
	if root == nil {
		return nil, Stats{}, fmt.Errorf("%w: nil root", ErrRootNotPathway)
	}
	p, ok := root.Element().(Pathway)
	if !ok {
		return nil, Stats{}, fmt.Errorf("%w: %s", ErrRootNotPathway, root.Element().Identifier())
	}
	a := &aggregator{table: Table{}}
	a.visit(root, p)
	return a.table, a.stats, nil
}

type aggregator struct {
	table Table
	stats Stats
}

// visit receives the enclosing pathway as a parameter so that siblings never
// observe each other's context.
func (a *aggregator) visit(n *Node, current Pathway) {
	a.stats.NodesVisited++
	if p, ok := n.Element().(Pathway); ok {
		current = p
	}
	if _, ok := n.Element().(Reaction); ok {
		a.stats.Reactions++
	}

	name := current.DisplayName()
	counts, ok := a.table[name]
	if !ok {
		counts = map[string]int{}
	}
	for _, prod := range n.Products() {
		counts[prod.DisplayName()]++
		a.stats.ProductsTallied++
	}
	// Stored even when empty: every visited pathway gets an entry.
	a.table[name] = counts

	for _, c := range n.Children() {
		a.visit(c, current)
	}
}

// Pathways returns the pathway names in the table, sorted.
func (t Table) Pathways() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Products returns the product names tallied for a pathway, sorted.
func (t Table) Products(pathway string) []string {
	counts := t[pathway]
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Count returns how many times molecule was produced in pathway.
func (t Table) Count(pathway, molecule string) int {
	return t[pathway][molecule]
}
