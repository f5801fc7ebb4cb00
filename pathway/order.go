package pathway

import (
	"fmt"
	"slices"
	"strings"
)

// CompareByIdentifier orders elements by identifier, byte-wise.
func CompareByIdentifier(a, b Element) int {
	return strings.Compare(a.Identifier(), b.Identifier())
}

// SortByIdentifier sorts elements in place.
func SortByIdentifier[E Element](elems []E) {
	slices.SortStableFunc(elems, func(a, b E) int {
		return CompareByIdentifier(a, b)
	})
}

// SelectRoot picks the pathway with the smallest identifier. Models do not
// order their pathways, so this makes the root a function of the input only.
func SelectRoot(elems []Element) (Pathway, error) {
	candidates := make([]Pathway, 0, len(elems))
	for _, e := range elems {
		if p, ok := e.(Pathway); ok {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w (%d elements inspected)", ErrNoRootPathway, len(elems))
	}
	SortByIdentifier(candidates)
	return candidates[0], nil
}
