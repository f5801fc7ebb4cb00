// Package biopax loads BioPAX Level 3 pathway descriptions (OWL, RDF/XML
// syntax) into an object graph usable by package pathway.
package biopax

import (
	"slices"
	"strings"

	"github.com/nodeadmin/pathway-search/pathway"
)

// Unnamed is the display name of elements that carry no name at all.
const Unnamed = pathway.UnnamedElement

// Pathway is a bp:Pathway.
type Pathway struct {
	ID   string
	Name string

	components []pathway.Element
}

func (p *Pathway) DisplayName() string { return p.Name }
func (p *Pathway) Identifier() string  { return p.ID }

// Components returns the pathway's processes in document order.
func (p *Pathway) Components() []pathway.Element { return p.components }

// BiochemicalReaction is a bp:BiochemicalReaction or one of its subclasses.
type BiochemicalReaction struct {
	ID    string
	Class string
	Name  string

	left          []*PhysicalEntity
	right         []*PhysicalEntity
	stoichiometry map[string]float64
}

func (r *BiochemicalReaction) DisplayName() string { return r.Name }
func (r *BiochemicalReaction) Identifier() string  { return r.ID }

// Left returns the reactants.
func (r *BiochemicalReaction) Left() []*PhysicalEntity { return r.left }

// Right returns the products as concrete entities.
func (r *BiochemicalReaction) Right() []*PhysicalEntity { return r.right }

// Products returns the right-hand side of the reaction.
func (r *BiochemicalReaction) Products() []pathway.Element {
	out := make([]pathway.Element, len(r.right))
	for i, e := range r.right {
		out[i] = e
	}
	return out
}

// Stoichiometry maps participant display names to their coefficient.
func (r *BiochemicalReaction) Stoichiometry() map[string]float64 { return r.stoichiometry }

// PhysicalEntity is a small molecule, protein, complex or other participant.
type PhysicalEntity struct {
	ID    string
	Class string
	Name  string
}

func (e *PhysicalEntity) DisplayName() string { return e.Name }
func (e *PhysicalEntity) Identifier() string  { return e.ID }

// Stoichiometry is a bp:Stoichiometry. It has no name of its own.
type Stoichiometry struct {
	ID          string
	Entity      *PhysicalEntity
	Coefficient float64
}

func (s *Stoichiometry) DisplayName() string { return Unnamed }
func (s *Stoichiometry) Identifier() string  { return s.ID }

// Other is any BioPAX element the analysis does not interpret, such as a
// Catalysis, Transport or a cross reference.
type Other struct {
	ID    string
	Class string
	Name  string
}

func (o *Other) DisplayName() string {
	if o.Name == "" {
		return Unnamed
	}
	return o.Name
}
func (o *Other) Identifier() string { return o.ID }

// Issue records a reference or value that could not be used.
type Issue struct {
	ElementID string `json:"element_id"`
	Property  string `json:"property"`
	Value     string `json:"value"`
	Reason    string `json:"reason"`
}

// Model is the set of elements read from one document.
type Model struct {
	Base string

	objects []pathway.Element
	byID    map[string]pathway.Element
	issues  []Issue
}

func newModel() *Model {
	return &Model{byID: make(map[string]pathway.Element, initialElementCapacity)}
}

func (m *Model) add(e pathway.Element) {
	m.objects = append(m.objects, e)
	m.byID[e.Identifier()] = e
}

// Objects returns every element in document order.
func (m *Model) Objects() []pathway.Element { return slices.Clone(m.objects) }

// Len returns the number of elements.
func (m *Model) Len() int { return len(m.objects) }

// Lookup finds an element by its full identifier.
func (m *Model) Lookup(id string) (pathway.Element, bool) {
	e, ok := m.byID[id]
	return e, ok
}

// Issues lists dangling references and unusable values met while loading.
func (m *Model) Issues() []Issue { return m.issues }

// Pathways returns all pathways in document order.
func (m *Model) Pathways() []*Pathway { return ofType[*Pathway](m.objects) }

// Reactions returns all biochemical reactions in document order.
func (m *Model) Reactions() []*BiochemicalReaction {
	return ofType[*BiochemicalReaction](m.objects)
}

// PhysicalEntities returns all physical entities in document order.
func (m *Model) PhysicalEntities() []*PhysicalEntity {
	return ofType[*PhysicalEntity](m.objects)
}

// TopPathways returns the pathways that are not a component of any other
// pathway.
func (m *Model) TopPathways() []*Pathway {
	nested := make(map[string]struct{})
	all := m.Pathways()
	for _, p := range all {
		for _, c := range p.components {
			if _, ok := c.(*Pathway); ok {
				nested[c.Identifier()] = struct{}{}
			}
		}
	}
	top := make([]*Pathway, 0, len(all))
	for _, p := range all {
		if _, ok := nested[p.ID]; !ok {
			top = append(top, p)
		}
	}
	return top
}

func ofType[T pathway.Element](objects []pathway.Element) []T {
	var out []T
	for _, o := range objects {
		if v, ok := o.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// LocalName returns the part of an RDF identifier after '#', e.g.
// "Pathway1" for "http://www.reactome.org/biopax/109869#Pathway1". It
// returns "Unknown" unless the identifier has exactly one '#'.
func LocalName(id string) string {
	parts := strings.Split(id, "#")
	if len(parts) == 2 {
		return parts[1]
	}
	return "Unknown"
}
