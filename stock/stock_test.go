package stock

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nodeadmin/pathway-search/biopax"
	"github.com/nodeadmin/pathway-search/internal/logging"
)

func TestList_SetQuantityAndReset(t *testing.T) {
	l := NewList("ATP", "ADP", "ATP")
	assert.Equal(t, 2, l.Len())

	assert.True(t, l.SetQuantity("ATP", 4))
	assert.False(t, l.SetQuantity("NADH", 1))
	assert.True(t, l.Adjust("ATP", -1.5))
	assert.False(t, l.Adjust("NADH", 1))

	m, ok := l.Get("ATP")
	require.True(t, ok)
	assert.Equal(t, Molecule{Name: "ATP", Default: 4, Quantity: 2.5}, m)

	l.Reset()
	m, _ = l.Get("ATP")
	assert.Equal(t, 4.0, m.Quantity)
	m, _ = l.Get("ADP")
	assert.Zero(t, m.Quantity)

	_, ok = l.Get("NADH")
	assert.False(t, ok)
}

func TestList_MoleculesSorted(t *testing.T) {
	l := NewList("b", "c", "a")
	var names []string
	for _, m := range l.Molecules() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestFromModel(t *testing.T) {
	m, err := biopax.LoadFile("../biopax/testdata/glycolysis.owl")
	require.NoError(t, err)

	l := FromModel(m)
	assert.Equal(t, 11, l.Len())
	_, ok := l.Get("Pyruvate")
	assert.True(t, ok)
}

func TestReadDefaultsFile(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := NewList("ATP", "ADP", "Glucose", "PEP")

	sum, err := ReadDefaultsFile("testdata/defaults.txt", l, logging.NewLoggerFromCore(core))
	require.NoError(t, err)
	assert.Equal(t, Summary{Applied: 3, Invalid: 2, Unknown: 1}, sum)

	atp, _ := l.Get("ATP")
	assert.Equal(t, 10.0, atp.Default)
	glc, _ := l.Get("Glucose")
	assert.Equal(t, 5.0, glc.Quantity)
	pep, _ := l.Get("PEP")
	assert.Zero(t, pep.Quantity)

	assert.Equal(t, 1, logs.FilterMessage("species does not exist in this pathway").Len())
	assert.Equal(t, 1, logs.FilterMessage("invalid line").Len())
	assert.Equal(t, 1, logs.FilterMessage("invalid quantity").Len())
}

func TestReadDefaultsFile_Missing(t *testing.T) {
	_, err := ReadDefaultsFile("testdata/nope.txt", NewList(), logging.NewNopLogger())
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestReadDefaults_ReadError(t *testing.T) {
	_, err := ReadDefaults(failingReader{}, NewList(), "broken", logging.NewNopLogger())
	assert.ErrorContains(t, err, "disk gone")
}

func TestReadDefaults_CommentsAndBlanks(t *testing.T) {
	l := NewList("ADP")
	sum, err := ReadDefaults(strings.NewReader("# only comments\n\n#ADP=3\n"), l, "inline", logging.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
}
