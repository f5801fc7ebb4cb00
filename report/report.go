// Package report renders analysis results for people and for other
// programs.
package report

import (
	"github.com/nodeadmin/pathway-search/analysis"
	"github.com/nodeadmin/pathway-search/pathway"
	"github.com/nodeadmin/pathway-search/stock"
)

// ProductCount is one product tally inside a pathway.
type ProductCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// PathwayTotals lists the products generated directly in a pathway.
type PathwayTotals struct {
	Pathway  string         `json:"pathway" yaml:"pathway"`
	Products []ProductCount `json:"products" yaml:"products"`
}

// Report is the serialisable form of an analysis result. Pathways and
// products are sorted by name.
type Report struct {
	RunID     string           `json:"run_id" yaml:"run_id"`
	Source    string           `json:"source,omitempty" yaml:"source,omitempty"`
	Root      analysis.Root    `json:"root" yaml:"root"`
	Stats     pathway.Stats    `json:"stats" yaml:"stats"`
	Most      []pathway.Most   `json:"most" yaml:"most"`
	Totals    []PathwayTotals  `json:"totals" yaml:"totals"`
	Molecules []stock.Molecule `json:"molecules,omitempty" yaml:"molecules,omitempty"`
	Defaults  *stock.Summary   `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Tree      *TreeNode        `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// TreeNode is the serialisable form of a pathway tree node.
type TreeNode struct {
	Name     string      `json:"name" yaml:"name"`
	ID       string      `json:"id" yaml:"id"`
	Products []string    `json:"products,omitempty" yaml:"products,omitempty"`
	Children []*TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Options selects the optional report sections.
type Options struct {
	Tree bool
	// Molecules includes starting quantities when a defaults file was read.
	Molecules bool
}

// Build converts res into a Report.
func Build(res *analysis.Result, opts Options) *Report {
	rep := &Report{
		RunID:    res.RunID,
		Source:   res.Source,
		Root:     res.Root,
		Stats:    res.Stats,
		Most:     res.Most,
		Totals:   Totals(res.Table),
		Defaults: res.Defaults,
	}
	if opts.Molecules && res.Stock != nil {
		rep.Molecules = res.Stock.Molecules()
	}
	if opts.Tree && res.Tree != nil {
		rep.Tree = convertTree(res.Tree)
	}
	return rep
}

// Totals flattens a table into sorted per-pathway product counts.
func Totals(t pathway.Table) []PathwayTotals {
	out := make([]PathwayTotals, 0, len(t))
	for _, name := range t.Pathways() {
		pt := PathwayTotals{Pathway: name, Products: []ProductCount{}}
		for _, prod := range t.Products(name) {
			pt.Products = append(pt.Products, ProductCount{Name: prod, Count: t[name][prod]})
		}
		out = append(out, pt)
	}
	return out
}

func convertTree(n *pathway.Node) *TreeNode {
	tn := &TreeNode{Name: n.Name(), ID: n.Element().Identifier()}
	for _, p := range n.Products() {
		tn.Products = append(tn.Products, p.DisplayName())
	}
	for _, c := range n.Children() {
		tn.Children = append(tn.Children, convertTree(c))
	}
	return tn
}
