package biopax

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OWL/RDF namespace URIs
const (
	nsRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsOWL = "http://www.w3.org/2002/07/owl#"
	nsXML = "http://www.w3.org/XML/1998/namespace"
	nsBP  = "http://www.biopax.org/release/biopax-level3.owl#"
)

const initialElementCapacity = 1024

var (
	reactionClasses = map[string]bool{
		"BiochemicalReaction":              true,
		"TransportWithBiochemicalReaction": true,
	}
	entityClasses = map[string]bool{
		"PhysicalEntity": true,
		"SmallMolecule":  true,
		"Protein":        true,
		"Complex":        true,
		"Dna":            true,
		"DnaRegion":      true,
		"Rna":            true,
		"RnaRegion":      true,
	}
)

// internPool avoids duplicate string allocations for repeated values.
type internPool struct {
	m map[string]string
}

func newInternPool() *internPool {
	return &internPool{m: make(map[string]string, 64)}
}

func (p *internPool) get(s string) string {
	if v, ok := p.m[s]; ok {
		return v
	}
	p.m[s] = s
	return s
}

// value is one property occurrence: either a reference or a literal.
type value struct {
	ref  string
	text string
}

// record is an element as read from the document, before references are
// resolved.
type record struct {
	id    string
	class string
	props map[string][]value
}

func (r *record) add(prop string, v value) {
	r.props[prop] = append(r.props[prop], v)
}

func (r *record) first(props ...string) string {
	for _, p := range props {
		for _, v := range r.props[p] {
			if t := strings.TrimSpace(v.text); t != "" {
				return t
			}
		}
	}
	return ""
}

type parser struct {
	decoder *xml.Decoder
	pool    *internPool
	base    string

	records []*record
	byID    map[string]*record
	blank   int
}

// ParseOWL parses a BioPAX Level 3 RDF/XML document from the given reader.
func ParseOWL(r io.Reader) (*Model, error) {
	p := &parser{
		decoder: xml.NewDecoder(r),
		pool:    newInternPool(),
		byID:    make(map[string]*record, initialElementCapacity),
	}

	for {
		tok, err := p.decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case matchElement(se, nsRDF, "RDF"):
			// Container element: descend into it.
			p.base = getBase(se)
		case se.Name.Space == nsBP:
			if _, err := p.parseElement(se); err != nil {
				return nil, err
			}
		default:
			if err := p.decoder.Skip(); err != nil {
				return nil, err
			}
		}
	}

	return p.link(), nil
}

func matchElement(se xml.StartElement, ns, local string) bool {
	return se.Name.Space == ns && se.Name.Local == local
}

func getAttr(se xml.StartElement, ns, local string) string {
	for _, a := range se.Attr {
		if a.Name.Space == ns && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func getBase(se xml.StartElement) string {
	for _, a := range se.Attr {
		if a.Name.Local == "base" && (a.Name.Space == nsXML || a.Name.Space == "xml") {
			return a.Value
		}
	}
	return ""
}

// resolveID turns an rdf:ID into a full identifier against xml:base.
func (p *parser) resolveID(id string) string {
	base, _, _ := strings.Cut(p.base, "#")
	return base + "#" + id
}

// resolveRef resolves rdf:about and rdf:resource values. Fragment-only
// references are relative to xml:base; anything else is kept as written.
func (p *parser) resolveRef(ref string) string {
	if strings.HasPrefix(ref, "#") {
		return p.resolveID(ref[1:])
	}
	return ref
}

func (p *parser) elementID(se xml.StartElement) string {
	if id := getAttr(se, nsRDF, "ID"); id != "" {
		return p.resolveID(id)
	}
	if about := getAttr(se, nsRDF, "about"); about != "" {
		return p.resolveRef(about)
	}
	if node := getAttr(se, nsRDF, "nodeID"); node != "" {
		return "_:" + node
	}
	p.blank++
	return fmt.Sprintf("_:b%d", p.blank)
}

// parseElement reads one BioPAX element up to its end tag and returns its
// identifier. Repeated descriptions of the same identifier are merged.
func (p *parser) parseElement(se xml.StartElement) (string, error) {
	id := p.elementID(se)
	rec, ok := p.byID[id]
	if !ok {
		rec = &record{id: id, class: p.pool.get(se.Name.Local), props: make(map[string][]value, 8)}
		p.byID[id] = rec
		p.records = append(p.records, rec)
	}

	for {
		tok, err := p.decoder.Token()
		if err != nil {
			return "", unexpected(err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			prop := p.pool.get(el.Name.Local)
			if res := getAttr(el, nsRDF, "resource"); res != "" {
				rec.add(prop, value{ref: p.resolveRef(res)})
				if err := p.decoder.Skip(); err != nil {
					return "", err
				}
				continue
			}
			v, err := p.parseProperty()
			if err != nil {
				return "", err
			}
			rec.add(prop, v)
		case xml.EndElement:
			return id, nil
		}
	}
}

// parseProperty reads a property body: either literal text or an inline
// element description, which becomes a record of its own.
func (p *parser) parseProperty() (value, error) {
	var v value
	var sb strings.Builder
	for {
		tok, err := p.decoder.Token()
		if err != nil {
			return v, unexpected(err)
		}
		switch el := tok.(type) {
		case xml.CharData:
			sb.Write(el)
		case xml.StartElement:
			if el.Name.Space != nsBP {
				if err := p.decoder.Skip(); err != nil {
					return v, err
				}
				continue
			}
			ref, err := p.parseElement(el)
			if err != nil {
				return v, err
			}
			v.ref = ref
		case xml.EndElement:
			if v.ref == "" {
				v.text = sb.String()
			}
			return v, nil
		}
	}
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func displayName(r *record) string {
	if name := r.first("displayName", "standardName", "name"); name != "" {
		return name
	}
	return LocalName(r.id)
}

// link builds typed elements from the records and resolves references.
func (p *parser) link() *Model {
	m := newModel()
	m.Base = p.base

	// First pass: one element per record, so references can point forward.
	for _, r := range p.records {
		switch {
		case r.class == "Pathway":
			m.add(&Pathway{ID: r.id, Name: displayName(r)})
		case reactionClasses[r.class]:
			m.add(&BiochemicalReaction{ID: r.id, Class: r.class, Name: displayName(r)})
		case entityClasses[r.class]:
			m.add(&PhysicalEntity{ID: r.id, Class: r.class, Name: displayName(r)})
		case r.class == "Stoichiometry":
			m.add(&Stoichiometry{ID: r.id})
		default:
			m.add(&Other{ID: r.id, Class: r.class, Name: r.first("displayName", "standardName", "name")})
		}
	}

	// Stoichiometry before reactions, which read it.
	for _, r := range p.records {
		if s, ok := m.byID[r.id].(*Stoichiometry); ok {
			p.linkStoichiometry(m, r, s)
		}
	}
	for _, r := range p.records {
		switch e := m.byID[r.id].(type) {
		case *Pathway:
			p.linkPathway(m, r, e)
		case *BiochemicalReaction:
			p.linkReaction(m, r, e)
		}
	}
	return m
}

func (p *parser) refs(m *Model, r *record, prop string) []string {
	seen := make(map[string]struct{}, len(r.props[prop]))
	var out []string
	for _, v := range r.props[prop] {
		if v.ref == "" {
			continue
		}
		if _, ok := m.byID[v.ref]; !ok {
			m.issues = append(m.issues, Issue{ElementID: r.id, Property: prop, Value: v.ref, Reason: "unresolved reference"})
			continue
		}
		if _, dup := seen[v.ref]; dup {
			continue
		}
		seen[v.ref] = struct{}{}
		out = append(out, v.ref)
	}
	return out
}

func (p *parser) linkPathway(m *Model, r *record, pw *Pathway) {
	for _, id := range p.refs(m, r, "pathwayComponent") {
		pw.components = append(pw.components, m.byID[id])
	}
}

func (p *parser) entities(m *Model, r *record, prop string) []*PhysicalEntity {
	var out []*PhysicalEntity
	for _, id := range p.refs(m, r, prop) {
		e, ok := m.byID[id].(*PhysicalEntity)
		if !ok {
			m.issues = append(m.issues, Issue{ElementID: r.id, Property: prop, Value: id, Reason: "not a physical entity"})
			continue
		}
		out = append(out, e)
	}
	return out
}

func (p *parser) linkReaction(m *Model, r *record, rx *BiochemicalReaction) {
	rx.left = p.entities(m, r, "left")
	rx.right = p.entities(m, r, "right")
	rx.stoichiometry = make(map[string]float64)
	for _, id := range p.refs(m, r, "participantStoichiometry") {
		s, ok := m.byID[id].(*Stoichiometry)
		if !ok || s.Entity == nil {
			continue
		}
		rx.stoichiometry[s.Entity.Name] = s.Coefficient
	}
}

func (p *parser) linkStoichiometry(m *Model, r *record, s *Stoichiometry) {
	if ids := p.entities(m, r, "physicalEntity"); len(ids) > 0 {
		s.Entity = ids[0]
	}
	raw := r.first("stoichiometricCoefficient")
	if raw == "" {
		return
	}
	c, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.issues = append(m.issues, Issue{ElementID: r.id, Property: "stoichiometricCoefficient", Value: raw, Reason: "not a number"})
		return
	}
	s.Coefficient = c
}
