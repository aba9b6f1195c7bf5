package schema

import (
	"reflect"
	"strings"

	"github.com/bianoble/viteconf/internal/value"
)

var valueType = reflect.TypeOf(value.Value{})

// Tree converts c into a configuration tree. Sections and keys follow field
// declaration order; unset fields are left out. The tree shares no state
// with c.
func (c *Config) Tree() *value.Map {
	if c == nil {
		return value.NewMap()
	}
	return structToMap(reflect.ValueOf(c).Elem())
}

func reflectElem(ptr any) reflect.Value {
	return reflect.ValueOf(ptr).Elem()
}

func structToMap(rv reflect.Value) *value.Map {
	m := value.NewMap()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		if v, set := fieldTree(rv.Field(i)); set {
			m.Set(name, v)
		}
	}
	return m
}

func fieldTree(fv reflect.Value) (value.Value, bool) {
	if fv.Type() == valueType {
		v := fv.Interface().(value.Value)
		return v.Clone(), !v.IsZero()
	}
	if fv.CanAddr() {
		if sf, ok := fv.Addr().Interface().(sectionField); ok {
			return sf.treeValue()
		}
	}

	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() || fv.Elem().Kind() != reflect.Struct {
			return value.Value{}, false
		}
		return value.MapOf(structToMap(fv.Elem())), true
	case reflect.Struct:
		return value.MapOf(structToMap(fv)), true
	case reflect.Slice:
		if fv.IsNil() {
			return value.Value{}, false
		}
		items := make([]value.Value, 0, fv.Len())
		for j := 0; j < fv.Len(); j++ {
			if item, set := fieldTree(fv.Index(j)); set {
				items = append(items, item)
			}
		}
		return value.List(items...), true
	default:
		return value.Value{}, false
	}
}

// fieldName returns the Vite key for f, taken from its yaml tag.
func fieldName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return name, true
	}
}
