package domain

// ModifierKind identifies the kind of a modifier on a source's stack.
type ModifierKind string

const (
	// ModifierSubsurf subdivides the evaluated geometry.
	ModifierSubsurf ModifierKind = "SUBSURF"
	// ModifierMirror mirrors the evaluated geometry across an axis.
	ModifierMirror ModifierKind = "MIRROR"
	// ModifierArray repeats the evaluated geometry with an offset.
	ModifierArray ModifierKind = "ARRAY"
	// ModifierSolidify gives the evaluated geometry thickness.
	ModifierSolidify ModifierKind = "SOLIDIFY"
	// ModifierCurveDeform deforms geometry along another curve object.
	ModifierCurveDeform ModifierKind = "CURVE"
	// ModifierBoolean combines geometry with a set of operand objects.
	ModifierBoolean ModifierKind = "BOOLEAN"
)

// ParamKind is the value kind of a modifier parameter.
type ParamKind uint8

const (
	// ParamScalar is a numeric parameter.
	ParamScalar ParamKind = iota
	// ParamRef is a reference to another entity by stable name.
	ParamRef
	// ParamRefList is an ordered collection of references by stable name.
	ParamRefList
)

// ParamValue is one modifier parameter value. Exactly one of the value fields
// is meaningful, selected by Kind.
type ParamValue struct {
	Kind   ParamKind
	Scalar float64
	Ref    string
	Refs   []string
}

// ScalarParam builds a scalar parameter value.
func ScalarParam(v float64) ParamValue { return ParamValue{Kind: ParamScalar, Scalar: v} }

// RefParam builds a reference-by-name parameter value.
func RefParam(name string) ParamValue { return ParamValue{Kind: ParamRef, Ref: name} }

// RefListParam builds an ordered reference collection parameter value.
func RefListParam(names ...string) ParamValue { return ParamValue{Kind: ParamRefList, Refs: names} }

// Modifier is one entry of a source's modifier stack. Stack order is
// significant; parameter declaration order is not.
type Modifier struct {
	Kind         ModifierKind
	ShowViewport bool
	ShowRender   bool
	Params       map[string]ParamValue
}
