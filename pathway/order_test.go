package pathway

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareByIdentifier(t *testing.T) {
	a := &fakeEntity{id: "http://x#Pathway1"}
	b := &fakeEntity{id: "http://x#Pathway2"}
	assert.Negative(t, CompareByIdentifier(a, b))
	assert.Positive(t, CompareByIdentifier(b, a))
	assert.Zero(t, CompareByIdentifier(a, a))

	// Byte order, not natural order.
	c := &fakeEntity{id: "http://x#Pathway10"}
	assert.Negative(t, CompareByIdentifier(c, b))
}

func TestSelectRoot_IgnoresNonPathways(t *testing.T) {
	elems := []Element{
		&fakeEntity{id: "#A", name: "ATP"},
		reaction("BiochemicalReaction1"),
		pathwayOf("Pathway2"),
		pathwayOf("Pathway1"),
	}
	root, err := SelectRoot(elems)
	require.NoError(t, err)
	assert.Equal(t, "#Pathway1", root.Identifier())
}

func TestSelectRoot_DeterministicUnderShuffle(t *testing.T) {
	elems := []Element{
		pathwayOf("Pathway3"), pathwayOf("Pathway1"), pathwayOf("Pathway2"),
		entity("ADP"), reaction("R1"),
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		rng.Shuffle(len(elems), func(i, j int) { elems[i], elems[j] = elems[j], elems[i] })
		root, err := SelectRoot(elems)
		require.NoError(t, err)
		assert.Equal(t, "#Pathway1", root.Identifier())
	}
}

func TestSelectRoot_NoPathway(t *testing.T) {
	tests := []struct {
		name  string
		elems []Element
	}{
		{"nil", nil},
		{"empty", []Element{}},
		{"only entities", []Element{entity("ADP"), reaction("R1")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := SelectRoot(tt.elems)
			assert.Nil(t, root)
			assert.ErrorIs(t, err, ErrNoRootPathway)
		})
	}
}

func TestSortByIdentifier(t *testing.T) {
	ps := []*fakePathway{pathwayOf("b"), pathwayOf("c"), pathwayOf("a")}
	SortByIdentifier(ps)
	assert.Equal(t, "#a", ps[0].Identifier())
	assert.Equal(t, "#b", ps[1].Identifier())
	assert.Equal(t, "#c", ps[2].Identifier())
}
