// Package schema implements the decode protocol shared by every typed
// record in this module. A record is a plain struct whose fields carry
// json tags naming the upstream keys. Unmarshal fills the struct from a
// JSON object, treating every tagged field as required unless it is
// tagged `riot:"optional"`, collecting keys the struct does not claim
// into an Extensions map, and invoking the record's Derive hook once
// all fields are assigned.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// MismatchError reports a required key absent from a payload that was
// otherwise classified as successful. It indicates upstream contract
// drift, not a routine API failure.
type MismatchError struct {
	Type  string
	Field string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: %s missing required field %q", e.Type, e.Field)
}

// Deriver is implemented by records that compute fields at decode time
// which are not present in the source payload.
type Deriver interface {
	Derive()
}

// extensionsType is the shape of the per-record overflow map.
var extensionsType = reflect.TypeOf(map[string]json.RawMessage(nil))

// Unmarshal fills v, which must be a pointer to a struct, from a JSON
// object. Nested record fields are decoded recursively through their
// own UnmarshalJSON methods, so the required/optional/extensions rules
// apply at every level of the object graph.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("schema: target must be a non-nil pointer to struct, got %T", v)
	}
	sv := rv.Elem()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("schema: decoding %s: %w", sv.Type().Name(), err)
	}

	claimed := make(map[string]struct{}, len(fields))
	if err := fill(sv, fields, claimed); err != nil {
		return err
	}
	collectExtensions(sv, fields, claimed)

	if d, ok := v.(Deriver); ok {
		d.Derive()
	}
	return nil
}

// fill assigns every tagged field of sv from the key/value pairs in
// fields. Embedded structs are flattened so that a derived record's
// decode step applies its base record's field extraction first.
func fill(sv reflect.Value, fields map[string]json.RawMessage, claimed map[string]struct{}) error {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		// The embedded branch must come first: an embedded struct of
		// unexported type is itself an unexported field, but its
		// exported fields still promote, as encoding/json treats them.
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if err := fill(sv.Field(i), fields, claimed); err != nil {
				return err
			}
			continue
		}
		if !f.IsExported() {
			continue
		}

		name, skip := keyName(f)
		if skip {
			continue
		}
		raw, ok := fields[name]
		if !ok {
			if optional(f) {
				continue
			}
			return &MismatchError{Type: st.Name(), Field: name}
		}
		claimed[name] = struct{}{}
		if string(raw) == "null" {
			// Present but null: leave the zero value in place, the
			// same way the upstream treats explicit nulls.
			continue
		}
		if err := json.Unmarshal(raw, sv.Field(i).Addr().Interface()); err != nil {
			return fmt.Errorf("schema: %s.%s: %w", st.Name(), name, err)
		}
	}
	return nil
}

// collectExtensions stores every unclaimed key into the first
// Extensions field found on the struct or its embedded bases.
func collectExtensions(sv reflect.Value, fields map[string]json.RawMessage, claimed map[string]struct{}) {
	ext := extensionsField(sv)
	if !ext.IsValid() {
		return
	}
	var extra map[string]json.RawMessage
	for k, v := range fields {
		if _, ok := claimed[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = v
	}
	if extra != nil {
		ext.Set(reflect.ValueOf(extra))
	}
}

func extensionsField(sv reflect.Value) reflect.Value {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.Name == "Extensions" && f.Type == extensionsType {
			return sv.Field(i)
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if ext := extensionsField(sv.Field(i)); ext.IsValid() {
				return ext
			}
		}
	}
	return reflect.Value{}
}

func keyName(f reflect.StructField) (name string, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, false
}

func optional(f reflect.StructField) bool {
	return f.Tag.Get("riot") == "optional"
}
