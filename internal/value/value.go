// Package value defines the structured value passed between the merge and
// serialize stages: a closed tagged union over raw JavaScript fragments,
// ordered mappings, lists, and scalars.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which member of the union a Value holds.
type Kind uint8

const (
	// Invalid is the zero Kind and marks a value that was never set.
	Invalid Kind = iota
	KindRaw
	KindMap
	KindList
	KindString
	KindBool
	KindNull
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case KindRaw:
		return "raw"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a structured configuration value. The zero Value is unset.
type Value struct {
	kind  Kind
	text  string // raw code, string contents or number text
	b     bool
	items []Value
	m     *Map
}

// Raw wraps a literal JavaScript fragment. Its text is emitted verbatim and
// is never quoted, escaped or merged structurally.
func Raw(code string) Value { return Value{kind: KindRaw, text: code} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Int returns an integer number value.
func Int(i int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)} }

// Float returns a floating point number value.
func Float(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number returns a number value holding text as its literal representation.
// The text is not validated.
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

// List returns a list value holding items in order.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, items: items}
}

// MapOf returns a map value backed by m. A nil m yields an empty map.
func MapOf(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

// Of converts a native Go value into a Value. Types with no structured
// counterpart fall through to a Number holding fmt.Sprint(x), which may not
// be valid JavaScript.
func Of(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case *Map:
		return MapOf(t)
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Number(strconv.FormatUint(uint64(t), 10))
	case uint8:
		return Number(strconv.FormatUint(uint64(t), 10))
	case uint16:
		return Number(strconv.FormatUint(uint64(t), 10))
	case uint32:
		return Number(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return Number(strconv.FormatUint(t, 10))
	case float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(float64(t), 'g', -1, 32)}
	case float64:
		return Float(t)
	case []Value:
		return List(t...)
	case []string:
		items := make([]Value, len(t))
		for i, s := range t {
			items[i] = String(s)
		}
		return List(items...)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = Of(item)
		}
		return List(items...)
	case map[string]any:
		return MapOf(MapFromGo(t))
	default:
		return Number(fmt.Sprint(x))
	}
}

// Kind reports which member of the union v holds.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is unset.
func (v Value) IsZero() bool { return v.kind == Invalid }

// Code returns the JavaScript text of a raw fragment.
func (v Value) Code() string { return v.text }

// Str returns the contents of a string value.
func (v Value) Str() string { return v.text }

// Boolean returns the contents of a bool value.
func (v Value) Boolean() bool { return v.b }

// NumberText returns the literal text of a number value.
func (v Value) NumberText() string { return v.text }

// Items returns the elements of a list value. The slice is shared with v.
func (v Value) Items() []Value { return v.items }

// Map returns the mapping held by a map value, or nil for other kinds.
func (v Value) Map() *Map { return v.m }

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.Clone()
		}
		return Value{kind: KindList, items: items}
	case KindMap:
		return Value{kind: KindMap, m: v.m.Clone()}
	default:
		return v
	}
}

// Equal reports whether v and o hold the same kind and contents. Map
// comparison is order sensitive.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equal(o.m)
	default:
		return v.text == o.text
	}
}

// String renders v compactly for diagnostics. It is not JavaScript.
func (v Value) String() string {
	switch v.kind {
	case Invalid:
		return "<unset>"
	case KindRaw:
		return "js(" + v.text + ")"
	case KindString:
		return strconv.Quote(v.text)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	case KindNumber:
		return v.text
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, 0, v.m.Len())
		for k, child := range v.m.All() {
			parts = append(parts, k+": "+child.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.kind.String()
	}
}
