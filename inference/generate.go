// Package inference converts JSON values into TypeScript type declarations.
//
// The engine is a pure function of its input: no state survives a call, and
// identical input yields byte-identical output. Object key order is preserved
// from the source document.
package inference

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/consigcody94/ts-pilot/errors"
	"github.com/consigcody94/ts-pilot/logger"
)

// Options controls declaration generation.
type Options struct {
	// Name is the declared type name. Empty means "Generated".
	Name string
	// Strict renders empty arrays as never[] and bare null for null values.
	// Non-strict renders unknown[] and widens null to null | undefined.
	Strict bool
	// Readonly prefixes top-level interface fields with the readonly modifier.
	// It does not apply to nested records.
	Readonly bool
}

// DefaultOptions returns the engine defaults: name "Generated", strict on.
func DefaultOptions() Options {
	return Options{Name: "Generated", Strict: true}
}

// Undefined is a sentinel for the JavaScript undefined value, which has no
// JSON representation. Callers embedding it in a value tree get the
// `undefined` type in the rendered declaration.
var Undefined = undefinedValue{}

type undefinedValue struct{}

// Generate renders a TypeScript type declaration for data.
//
// data may be raw JSON text (string or []byte) or an already-decoded value
// (*Object, []interface{}, or a primitive). A string that does not parse as
// JSON fails with errors.ErrInvalidInput.
func Generate(data interface{}, opts Options) (string, error) {
	value, err := normalize(data)
	if err != nil {
		return "", err
	}

	name := opts.Name
	if name == "" {
		name = "Generated"
	}

	switch v := value.(type) {
	case nil:
		return renderAlias(name, typeNull), nil
	case []interface{}:
		if len(v) == 0 {
			if opts.Strict {
				return renderAlias(name, ArrayOf{Elem: typeNever}), nil
			}
			return renderAlias(name, ArrayOf{Elem: typeUnknown}), nil
		}
		// Root arrays are typed from the first element only; nested arrays
		// below use full-element union inference. The asymmetry is part of
		// the engine's contract.
		elem := inferValue(v[0], opts.Strict)
		return renderAlias(name, ArrayOf{Elem: elem}), nil
	case *Object:
		return renderInterface(name, v, opts), nil
	default:
		return renderAlias(name, inferValue(v, opts.Strict)), nil
	}
}

// normalize turns the accepted input forms into the decoded-value domain.
func normalize(data interface{}) (interface{}, error) {
	switch v := data.(type) {
	case string:
		return decodeJSON([]byte(v))
	case []byte:
		return decodeJSON(v)
	case json.RawMessage:
		return decodeJSON(v)
	case nil, bool, json.Number, *Object, []interface{},
		float64, float32, int, int32, int64, *big.Int, undefinedValue:
		return data, nil
	default:
		// Anything else (maps from a JSON-RPC envelope, caller structs) is
		// round-tripped through encoding/json. Map keys come out sorted, which
		// keeps output deterministic where the source had no order to preserve.
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, errors.NewInvalidInputError("data is not representable as JSON: %v", err)
		}
		return decodeJSON(raw)
	}
}

// inferValue types a single decoded value. Called recursively for arrays and
// nested objects.
func inferValue(value interface{}, strict bool) TypeExpr {
	switch v := value.(type) {
	case nil:
		if strict {
			return typeNull
		}
		return UnionOf{Members: []TypeExpr{typeNull, typeUndefined}}
	case undefinedValue:
		return typeUndefined
	case bool:
		return typeBoolean
	case string:
		if format := DetectStringFormat(v); format != FormatNone {
			// Recognized but not surfaced: still rendered as plain string.
			logger.Debugw("recognized string shape", "format", string(format))
		}
		return typeString
	case json.Number, float64, float32, int, int32, int64:
		return typeNumber
	case *big.Int:
		return typeBigInt
	case []interface{}:
		if len(v) == 0 {
			if strict {
				return ArrayOf{Elem: typeNever}
			}
			return ArrayOf{Elem: typeUnknown}
		}
		members := make([]TypeExpr, len(v))
		for i, elem := range v {
			members[i] = inferValue(elem, strict)
		}
		return ArrayOf{Elem: unionOf(members)}
	case *Object:
		fields := make([]FieldDescriptor, len(v.Fields))
		for i, m := range v.Fields {
			fields[i] = FieldDescriptor{Key: m.Key, Type: inferValue(m.Value, strict)}
		}
		return InlineRecord{Fields: fields}
	default:
		return typeUnknown
	}
}

func renderAlias(name string, expr TypeExpr) string {
	return "type " + name + " = " + expr.String() + ";"
}

func renderInterface(name string, obj *Object, opts Options) string {
	var sb strings.Builder
	sb.WriteString("interface " + name + " {\n")
	for _, m := range obj.Fields {
		field := FieldDescriptor{
			Key:      m.Key,
			Type:     inferValue(m.Value, opts.Strict),
			Readonly: opts.Readonly,
		}
		sb.WriteString("  " + field.render() + ";\n")
	}
	sb.WriteString("}")
	return sb.String()
}
