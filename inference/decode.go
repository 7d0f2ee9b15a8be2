package inference

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/consigcody94/ts-pilot/errors"
)

// Object is a JSON object decoded with its key insertion order preserved.
// encoding/json's map decoding would scramble field order, and field order is
// part of the generated declaration's contract.
type Object struct {
	Fields []Member
}

// Member is a single key/value pair of a decoded Object.
type Member struct {
	Key   string
	Value interface{}
}

// set appends a field, or overwrites in place when the key already exists.
// Duplicate keys follow JSON object semantics: last value wins, the field
// keeps its first position.
func (o *Object) set(key string, value interface{}) {
	for i := range o.Fields {
		if o.Fields[i].Key == key {
			o.Fields[i].Value = value
			return
		}
	}
	o.Fields = append(o.Fields, Member{Key: key, Value: value})
}

// decodeJSON parses raw JSON into nil, bool, json.Number, string, []interface{}
// or *Object, rejecting trailing content after the first value.
func decodeJSON(raw []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	// A valid document is exactly one value
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewInvalidInputError("unexpected content after JSON value")
	}

	return value, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, errors.Newf("unexpected delimiter %q", t.String())
		}
	default:
		// nil, bool, json.Number, string
		return tok, nil
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := &Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.Newf("object key is not a string: %v", keyTok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.set(key, value)
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]interface{}, error) {
	arr := []interface{}{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
