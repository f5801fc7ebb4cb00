package pathway

type fakeEntity struct{ id, name string }

func (e *fakeEntity) DisplayName() string { return e.name }
func (e *fakeEntity) Identifier() string  { return e.id }

type fakePathway struct {
	id, name   string
	components []Element
}

func (p *fakePathway) DisplayName() string   { return p.name }
func (p *fakePathway) Identifier() string    { return p.id }
func (p *fakePathway) Components() []Element { return p.components }

type fakeReaction struct {
	id, name string
	products []Element
	stoich   map[string]float64
}

func (r *fakeReaction) DisplayName() string               { return r.name }
func (r *fakeReaction) Identifier() string                { return r.id }
func (r *fakeReaction) Products() []Element               { return r.products }
func (r *fakeReaction) Stoichiometry() map[string]float64 { return r.stoich }

func entity(name string) *fakeEntity {
	return &fakeEntity{id: "#" + name, name: name}
}

func pathwayOf(name string, components ...Element) *fakePathway {
	return &fakePathway{id: "#" + name, name: name, components: components}
}

func reaction(name string, products ...Element) *fakeReaction {
	return &fakeReaction{id: "#" + name, name: name, products: products}
}
