package pathway

// Most is the answer to "which pathway produces the most of a molecule".
type Most struct {
	Molecule string   `json:"molecule" yaml:"molecule"`
	Count    int      `json:"count" yaml:"count"`
	Pathways []string `json:"pathways" yaml:"pathways"`
}

// Found reports whether any pathway produced the molecule.
func (m Most) Found() bool { return len(m.Pathways) > 0 }

// FindMost returns every pathway whose count of molecule equals the maximum.
// Names match exactly. A molecule no pathway produces yields an empty
// result with Count 0, not an error.
func (t Table) FindMost(molecule string) Most {
	res := Most{Molecule: molecule, Pathways: []string{}}
	for _, name := range t.Pathways() {
		c, ok := t[name][molecule]
		if !ok || c <= 0 {
			continue
		}
		switch {
		case c > res.Count:
			res.Count = c
			res.Pathways = append(res.Pathways[:0], name)
		case c == res.Count:
			res.Pathways = append(res.Pathways, name)
		}
	}
	return res
}

// FindMost is the function form of Table.FindMost.
func FindMost(t Table, molecule string) []string {
	return t.FindMost(molecule).Pathways
}
