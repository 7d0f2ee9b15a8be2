package inference

import (
	"fmt"
	"strings"
)

// TypeExpr is a rendered-to-text TypeScript type expression.
// The variants are deliberately closed: primitives, arrays, unions and
// inline records are everything JSON input can produce.
type TypeExpr interface {
	// String renders the expression in value position (inside a field or alias).
	String() string
}

// Primitive is a named primitive type: string, number, boolean, bigint,
// symbol, null, undefined, never, unknown.
type Primitive struct {
	Name string
}

func (p Primitive) String() string {
	return p.Name
}

// Well-known primitives used across the engine.
var (
	typeString    = Primitive{Name: "string"}
	typeNumber    = Primitive{Name: "number"}
	typeBoolean   = Primitive{Name: "boolean"}
	typeBigInt    = Primitive{Name: "bigint"}
	typeNull      = Primitive{Name: "null"}
	typeUndefined = Primitive{Name: "undefined"}
	typeNever     = Primitive{Name: "never"}
	typeUnknown   = Primitive{Name: "unknown"}
)

// ArrayOf is an array type. Union element types render parenthesized:
// (number | string)[].
type ArrayOf struct {
	Elem TypeExpr
}

func (a ArrayOf) String() string {
	if _, isUnion := a.Elem.(UnionOf); isUnion {
		return "(" + a.Elem.String() + ")[]"
	}
	return a.Elem.String() + "[]"
}

// UnionOf is an ordered union of distinct member types, first-seen order.
type UnionOf struct {
	Members []TypeExpr
}

func (u UnionOf) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// InlineRecord is an anonymous object type rendered inline:
// { id: number; name: string }.
type InlineRecord struct {
	Fields []FieldDescriptor
}

func (r InlineRecord) String() string {
	if len(r.Fields) == 0 {
		return "{}"
	}
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.render()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// FieldDescriptor is one named, typed field of a record type.
type FieldDescriptor struct {
	Key      string
	Type     TypeExpr
	Readonly bool
}

// render produces `key: type` with the key quoted when it is not a valid
// bare identifier or collides with a reserved word.
func (f FieldDescriptor) render() string {
	key := f.Key
	if !isValidIdentifier(key) || reservedWords[key] {
		key = fmt.Sprintf("%q", key)
	}
	if f.Readonly {
		return "readonly " + key + ": " + f.Type.String()
	}
	return key + ": " + f.Type.String()
}

// unionOf collapses a list of inferred types into a single expression:
// one distinct member renders bare, several render as a union in
// first-seen order. Distinctness is textual, one level deep.
func unionOf(members []TypeExpr) TypeExpr {
	seen := make(map[string]bool, len(members))
	distinct := make([]TypeExpr, 0, len(members))
	for _, m := range members {
		key := m.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, m)
	}
	if len(distinct) == 1 {
		return distinct[0]
	}
	return UnionOf{Members: distinct}
}
