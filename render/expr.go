package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360studio/semdocs/closure"
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/xsd"
)

// opaquePhrase is the rendering of any anonymous node whose structure is
// not recognized. Anonymous nodes are never rendered by identifier.
const opaquePhrase = "an anonymous class expression"

// maxParseDepth bounds expression nesting so a pathological graph cannot
// recurse without limit.
const maxParseDepth = 64

// Kind tags the variant of a parsed class expression.
type Kind int

const (
	// KindOpaque marks an unrecognized or malformed expression node.
	KindOpaque Kind = iota

	// KindNamed is a named class.
	KindNamed

	// KindUnion is an owl:unionOf expression.
	KindUnion

	// KindIntersection is an owl:intersectionOf expression.
	KindIntersection

	// KindEnumeration is an owl:oneOf enumeration of individuals.
	KindEnumeration

	// KindRestriction is an owl:Restriction node.
	KindRestriction
)

// RestrictionKind tags the sub-variant of a restriction, decided once at
// parse time in a fixed dispatch order.
type RestrictionKind int

const (
	// RestrictionOpaque is a restriction with none of the recognized fields.
	RestrictionOpaque RestrictionKind = iota

	// RestrictionHasValue pins the property to a specific value.
	RestrictionHasValue

	// RestrictionHasSelf is a local-reflexivity restriction.
	RestrictionHasSelf

	// RestrictionExactClass is a qualified exact cardinality on a class.
	RestrictionExactClass

	// RestrictionMinClass is a qualified minimum cardinality on a class.
	RestrictionMinClass

	// RestrictionMaxClass is a qualified maximum cardinality on a class.
	RestrictionMaxClass

	// RestrictionExactData is a qualified exact cardinality on a data range.
	RestrictionExactData

	// RestrictionMinData is a qualified minimum cardinality on a data range.
	RestrictionMinData

	// RestrictionMaxData is a qualified maximum cardinality on a data range.
	RestrictionMaxData

	// RestrictionExact is an unqualified exact cardinality.
	RestrictionExact

	// RestrictionMin is an unqualified minimum cardinality.
	RestrictionMin

	// RestrictionMax is an unqualified maximum cardinality.
	RestrictionMax

	// RestrictionSome is an existential restriction.
	RestrictionSome

	// RestrictionAll is a universal restriction.
	RestrictionAll
)

// Expression is a parsed class expression.
type Expression struct {
	Kind        Kind
	Term        ontology.Term
	Members     []*Expression
	Items       []ontology.Term
	Restriction *Restriction
}

// Restriction carries the parsed constituents of an owl:Restriction.
type Restriction struct {
	Kind     RestrictionKind
	Property ontology.Term

	// Count is the parsed cardinality for the cardinality kinds.
	Count int

	// Class is the class filler for qualified-class and object-valued
	// some/all restrictions; nil renders as "Thing".
	Class ontology.Term

	// DataRange is the filler node for data-valued restrictions.
	DataRange ontology.Term

	// Value is the pinned object of a hasValue restriction.
	Value ontology.Term

	// IsData marks a some/all restriction whose filler is a data range or
	// whose property is a datatype property.
	IsData bool
}

// Renderer parses and renders class expressions against one graph view.
type Renderer struct {
	g        *ontology.Graph
	closures *closure.Engine
}

// New returns a Renderer reading from g.
func New(g *ontology.Graph) *Renderer {
	return &Renderer{g: g, closures: closure.New(g)}
}

// Graph returns the graph view the renderer reads from.
func (r *Renderer) Graph() *ontology.Graph {
	return r.g
}

// Parse decides the variant of a class-expression node. Structural checks
// run in a fixed order: union, intersection, enumeration, restriction,
// named class; anything else is opaque. Nodes revisited along one parse
// path, and nesting beyond the depth bound, parse as opaque so rendering
// always terminates.
func (r *Renderer) Parse(node ontology.Term) *Expression {
	return r.parse(node, make(map[string]bool), 0)
}

func (r *Renderer) parse(node ontology.Term, visiting map[string]bool, depth int) *Expression {
	if node == nil || depth > maxParseDepth {
		return &Expression{Kind: KindOpaque, Term: node}
	}
	key := ontology.TermKey(node)
	if visiting[key] {
		return &Expression{Kind: KindOpaque, Term: node}
	}
	visiting[key] = true
	defer delete(visiting, key)

	if head := r.g.Value(node, ontology.IRI(owl.UnionOf)); head != nil {
		return r.parseOperands(KindUnion, node, head, visiting, depth)
	}
	if head := r.g.Value(node, ontology.IRI(owl.IntersectionOf)); head != nil {
		return r.parseOperands(KindIntersection, node, head, visiting, depth)
	}
	if head := r.g.Value(node, ontology.IRI(owl.OneOf)); head != nil {
		items := r.g.List(head)
		if len(items) == 0 {
			return &Expression{Kind: KindOpaque, Term: node}
		}
		return &Expression{Kind: KindEnumeration, Term: node, Items: items}
	}
	if r.g.Has(node, ontology.IRI(rdf.Type), ontology.IRI(owl.Restriction)) {
		return &Expression{Kind: KindRestriction, Term: node, Restriction: r.parseRestriction(node)}
	}
	if ontology.IsIRI(node) {
		return &Expression{Kind: KindNamed, Term: node}
	}
	return &Expression{Kind: KindOpaque, Term: node}
}

func (r *Renderer) parseOperands(kind Kind, node, head ontology.Term, visiting map[string]bool, depth int) *Expression {
	var members []*Expression
	for _, m := range r.g.List(head) {
		members = append(members, r.parse(m, visiting, depth+1))
	}
	if len(members) == 0 {
		return &Expression{Kind: KindOpaque, Term: node}
	}
	return &Expression{Kind: kind, Term: node, Members: members}
}

func (r *Renderer) parseRestriction(node ontology.Term) *Restriction {
	res := &Restriction{
		Kind:     RestrictionOpaque,
		Property: r.g.Value(node, ontology.IRI(owl.OnProperty)),
	}

	qExact := r.cardinality(node, owl.QualifiedCardinality)
	qMin := r.cardinality(node, owl.MinQualifiedCardinality)
	qMax := r.cardinality(node, owl.MaxQualifiedCardinality)
	onClass := r.g.Value(node, ontology.IRI(owl.OnClass))
	onData := r.g.Value(node, ontology.IRI(owl.OnDataRange))
	uExact := r.cardinality(node, owl.Cardinality)
	uMin := r.cardinality(node, owl.MinCardinality)
	uMax := r.cardinality(node, owl.MaxCardinality)
	some := r.g.Value(node, ontology.IRI(owl.SomeValuesFrom))
	all := r.g.Value(node, ontology.IRI(owl.AllValuesFrom))
	hasValue := r.g.Value(node, ontology.IRI(owl.HasValue))

	setQuantified := func(kind RestrictionKind, filler ontology.Term) {
		res.Kind = kind
		if r.isDataRange(filler) || r.isDatatypeProperty(res.Property) {
			res.IsData = true
			res.DataRange = filler
		} else {
			res.Class = filler
		}
	}

	switch {
	case hasValue != nil:
		res.Kind = RestrictionHasValue
		res.Value = hasValue
	case r.hasSelf(node):
		res.Kind = RestrictionHasSelf
	case qExact != nil && onClass != nil:
		res.Kind, res.Count, res.Class = RestrictionExactClass, *qExact, onClass
	case qMin != nil && onClass != nil:
		res.Kind, res.Count, res.Class = RestrictionMinClass, *qMin, onClass
	case qMax != nil && onClass != nil:
		res.Kind, res.Count, res.Class = RestrictionMaxClass, *qMax, onClass
	case qExact != nil && onData != nil:
		res.Kind, res.Count, res.DataRange = RestrictionExactData, *qExact, onData
	case qMin != nil && onData != nil:
		res.Kind, res.Count, res.DataRange = RestrictionMinData, *qMin, onData
	case qMax != nil && onData != nil:
		res.Kind, res.Count, res.DataRange = RestrictionMaxData, *qMax, onData
	case uExact != nil:
		res.Kind, res.Count = RestrictionExact, *uExact
	case uMin != nil:
		res.Kind, res.Count = RestrictionMin, *uMin
	case uMax != nil:
		res.Kind, res.Count = RestrictionMax, *uMax
	case some != nil:
		setQuantified(RestrictionSome, some)
	case all != nil:
		setQuantified(RestrictionAll, all)
	}
	return res
}

// cardinality parses an integer cardinality literal. A missing value, a
// non-literal, or an unparsable lexical form all count as absent so the
// dispatch falls through instead of failing.
func (r *Renderer) cardinality(node ontology.Term, predicate string) *int {
	v := r.g.Value(node, ontology.IRI(predicate))
	if v == nil || !ontology.IsLiteral(v) {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(ontology.TermValue(v)))
	if err != nil {
		return nil
	}
	return &n
}

func (r *Renderer) hasSelf(node ontology.Term) bool {
	for _, o := range r.g.Objects(node, ontology.IRI(owl.HasSelf)) {
		if !ontology.IsLiteral(o) {
			continue
		}
		if v := ontology.TermValue(o); v == "true" || v == "1" {
			return true
		}
	}
	return false
}

// isDataRange reports whether a filler node looks like a datatype: an
// XSD-namespace IRI or a node with owl:onDatatype.
func (r *Renderer) isDataRange(node ontology.Term) bool {
	if node == nil {
		return false
	}
	if iri := ontology.TermIRI(node); strings.HasPrefix(iri, xsd.Namespace) {
		return true
	}
	return r.g.Value(node, ontology.IRI(owl.OnDatatype)) != nil
}

func (r *Renderer) isDatatypeProperty(p ontology.Term) bool {
	return p != nil && ontology.IsIRI(p) && r.closures.IsDatatypeProperty(p)
}

// Render parses and renders a class-expression node in one step.
func (r *Renderer) Render(node ontology.Term) string {
	return r.RenderExpression(r.Parse(node))
}

// RenderExpression turns a parsed expression into its English phrase.
func (r *Renderer) RenderExpression(e *Expression) string {
	switch e.Kind {
	case KindNamed:
		return Label(r.g, e.Term)
	case KindUnion:
		return JoinEither(r.renderMembers(e.Members))
	case KindIntersection:
		return JoinIntersection(r.renderMembers(e.Members))
	case KindEnumeration:
		labels := make([]string, 0, len(e.Items))
		for _, item := range e.Items {
			labels = append(labels, r.individualText(item))
		}
		return JoinEither(labels)
	case KindRestriction:
		return r.renderRestriction(e.Restriction)
	default:
		return opaquePhrase
	}
}

func (r *Renderer) renderMembers(members []*Expression) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, r.RenderExpression(m))
	}
	return out
}

func (r *Renderer) renderRestriction(res *Restriction) string {
	prop := "'" + r.propertyText(res.Property) + "'"
	switch res.Kind {
	case RestrictionHasValue:
		return fmt.Sprintf("has %s value %s", prop, r.individualText(res.Value))
	case RestrictionHasSelf:
		return fmt.Sprintf("is related to itself by %s", prop)
	case RestrictionExactClass:
		return fmt.Sprintf("has exactly %d %s to %s", res.Count, prop, r.classText(res.Class))
	case RestrictionMinClass:
		return fmt.Sprintf("has at least %d %s to %s", res.Count, prop, r.classText(res.Class))
	case RestrictionMaxClass:
		return fmt.Sprintf("has at most %d %s to %s", res.Count, prop, r.classText(res.Class))
	case RestrictionExactData:
		return fmt.Sprintf("has exactly %d %s values that are %s", res.Count, prop, r.RenderDatatypeRange(res.DataRange))
	case RestrictionMinData:
		return fmt.Sprintf("has at least %d %s values that are %s", res.Count, prop, r.RenderDatatypeRange(res.DataRange))
	case RestrictionMaxData:
		return fmt.Sprintf("has at most %d %s values that are %s", res.Count, prop, r.RenderDatatypeRange(res.DataRange))
	case RestrictionExact:
		return fmt.Sprintf("has exactly %d %s", res.Count, prop)
	case RestrictionMin:
		return fmt.Sprintf("has at least %d %s", res.Count, prop)
	case RestrictionMax:
		return fmt.Sprintf("has at most %d %s", res.Count, prop)
	case RestrictionSome:
		if res.IsData {
			return fmt.Sprintf("has at least one %s value that is %s", prop, r.RenderDatatypeRange(res.DataRange))
		}
		return fmt.Sprintf("has at least one %s to %s", prop, r.classText(res.Class))
	case RestrictionAll:
		if res.IsData {
			return fmt.Sprintf("only has %s values that are %s", prop, r.RenderDatatypeRange(res.DataRange))
		}
		return fmt.Sprintf("only has %s to %s", prop, r.classText(res.Class))
	default:
		return fmt.Sprintf("has a restriction on %s", prop)
	}
}

func (r *Renderer) propertyText(p ontology.Term) string {
	if p == nil || !ontology.IsIRI(p) {
		return "<?>"
	}
	return Label(r.g, p)
}

// classText renders a class filler: the label of a named class, "Thing"
// for anything anonymous or absent.
func (r *Renderer) classText(c ontology.Term) string {
	if c == nil || !ontology.IsIRI(c) {
		return "Thing"
	}
	return Label(r.g, c)
}

// individualText renders an enumeration member or pinned value: labels for
// named individuals, lexical text for literals, a placeholder for blanks.
func (r *Renderer) individualText(t ontology.Term) string {
	switch {
	case t == nil:
		return "an anonymous individual"
	case ontology.IsIRI(t):
		return Label(r.g, t)
	case ontology.IsLiteral(t):
		return ontology.TermValue(t)
	default:
		return "an anonymous individual"
	}
}

// AxiomSentence wraps a rendered expression into the scope-note sentence
// form. The relation is "equivalent to" or "a kind of".
func (r *Renderer) AxiomSentence(cls, expr ontology.Term, relation string) string {
	return fmt.Sprintf("A '%s' is %s %s.", Label(r.g, cls), relation, r.Render(expr))
}

// JoinEither joins alternatives in the disjunctive form: one part stands
// alone, two join with "or", more take the enumerated form with a final
// "or".
func JoinEither(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return "either " + parts[0] + " or " + parts[1]
	default:
		return "either " + strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
	}
}

// JoinIntersection joins conjuncts: one part stands alone, two join as
// "both A and B", more take "all of" with a final "and".
func JoinIntersection(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return "both " + parts[0] + " and " + parts[1]
	default:
		return "all of " + strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}
