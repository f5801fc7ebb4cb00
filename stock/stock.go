// Package stock tracks the quantity of each molecule species in a pathway
// model and reads starting quantities from a defaults file.
package stock

import (
	"slices"
	"strings"

	"github.com/nodeadmin/pathway-search/biopax"
)

// Molecule is one species and its quantity.
type Molecule struct {
	Name     string  `json:"name" yaml:"name"`
	Default  float64 `json:"default" yaml:"default"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// List holds molecules by display name.
type List struct {
	byName map[string]*Molecule
}

// NewList creates a list with the given species at quantity zero.
// Duplicate names collapse into one entry.
func NewList(names ...string) *List {
	l := &List{byName: make(map[string]*Molecule, len(names))}
	for _, n := range names {
		if _, ok := l.byName[n]; !ok {
			l.byName[n] = &Molecule{Name: n}
		}
	}
	return l
}

// FromModel lists every physical entity of the model.
func FromModel(m *biopax.Model) *List {
	entities := m.PhysicalEntities()
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.DisplayName()
	}
	return NewList(names...)
}

func (l *List) Len() int { return len(l.byName) }

// Get returns a copy of the named molecule.
func (l *List) Get(name string) (Molecule, bool) {
	m, ok := l.byName[name]
	if !ok {
		return Molecule{}, false
	}
	return *m, true
}

// SetQuantity replaces the starting quantity of a species and sets its
// current quantity to match. It reports false if the species is unknown.
func (l *List) SetQuantity(name string, q float64) bool {
	m, ok := l.byName[name]
	if !ok {
		return false
	}
	m.Default = q
	m.Quantity = q
	return true
}

// Adjust changes the current quantity only.
func (l *List) Adjust(name string, delta float64) bool {
	m, ok := l.byName[name]
	if !ok {
		return false
	}
	m.Quantity += delta
	return true
}

// Reset restores every molecule to its starting quantity.
func (l *List) Reset() {
	for _, m := range l.byName {
		m.Quantity = m.Default
	}
}

// Molecules returns copies of all molecules sorted by name.
func (l *List) Molecules() []Molecule {
	out := make([]Molecule, 0, len(l.byName))
	for _, m := range l.byName {
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b Molecule) int { return strings.Compare(a.Name, b.Name) })
	return out
}
