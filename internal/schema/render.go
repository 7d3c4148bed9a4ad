package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Sprint renders a record for debugging: the type name followed by
// every declared field, one per line, nested records indented one
// level deeper and lists bracketed and comma-joined. The Extensions
// overflow map is excluded. Not a wire format.
func Sprint(v any) string {
	return SprintIndent(v, 0, "    ")
}

// SprintIndent is Sprint with an explicit starting indentation level
// and separator sequence.
func SprintIndent(v any, level int, sep string) string {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return "<nil>"
	}
	if rv.Kind() == reflect.Struct {
		return renderStruct(rv, level, sep)
	}
	return render(rv, level, sep)
}

// render draws a field value seen from a record at the given level.
func render(rv reflect.Value, level int, sep string) string {
	rv = indirect(rv)
	if !rv.IsValid() {
		return "<nil>"
	}

	switch rv.Kind() {
	case reflect.Struct:
		return renderStruct(rv, level+1, sep)
	case reflect.Slice, reflect.Array:
		return renderList(rv, level, sep)
	case reflect.Map:
		b, err := json.Marshal(rv.Interface())
		if err != nil {
			return fmt.Sprintf("%v", rv.Interface())
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", rv.Interface())
	}
}

func renderStruct(rv reflect.Value, level int, sep string) string {
	var parts []string
	appendFields(rv, level, sep, &parts)

	indent := strings.Repeat(sep, level+1)
	return fmt.Sprintf("%s(\n%s%s\n%s)",
		rv.Type().Name(),
		indent,
		strings.Join(parts, ",\n"+indent),
		strings.Repeat(sep, level),
	)
}

// appendFields flattens embedded structs so a derived record renders
// as one flat field list under its own type name.
func appendFields(rv reflect.Value, level int, sep string, parts *[]string) {
	st := rv.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		// Embedded first: the field for an embedded struct of
		// unexported type is unexported, yet its fields promote.
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			appendFields(rv.Field(i), level, sep, parts)
			continue
		}
		if !f.IsExported() || f.Name == "Extensions" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = f.Name
		}
		*parts = append(*parts, fmt.Sprintf("%s = %s", name, render(rv.Field(i), level, sep)))
	}
}

func renderList(rv reflect.Value, level int, sep string) string {
	if rv.Len() == 0 {
		return "[]"
	}
	elems := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elems[i] = render(rv.Index(i), level+1, sep)
	}
	inner := strings.Repeat(sep, level+2)
	return fmt.Sprintf("[\n%s%s\n%s]",
		inner,
		strings.Join(elems, ",\n"+inner),
		strings.Repeat(sep, level+1),
	)
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
