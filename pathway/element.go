// Package pathway builds a tree of nested pathways and reactions from a
// loaded pathway model and tallies the products generated in each pathway.
//
// The package does not parse anything itself. It consumes any object graph
// that implements Element, Pathway and Reaction.
package pathway

import "errors"

// UnnamedElement is reported for elements that are neither a pathway nor a
// reaction.
const UnnamedElement = "Unnamed"

var (
	ErrNoRootPathway  = errors.New("pathway: model contains no pathway to use as root")
	ErrRootNotPathway = errors.New("pathway: root node does not hold a pathway")
	ErrCyclicPathway  = errors.New("pathway: pathway is a component of itself")
)

// Element is the minimal capability set of a model object.
type Element interface {
	DisplayName() string
	// Identifier is unique and stable within a model. It is only used for
	// ordering.
	Identifier() string
}

// Pathway is a process composed of sub-pathways and reactions.
type Pathway interface {
	Element
	Components() []Element
}

// Reaction converts participants into products.
type Reaction interface {
	Element
	Products() []Element
	// Stoichiometry maps participant display names to their coefficient.
	Stoichiometry() map[string]float64
}
