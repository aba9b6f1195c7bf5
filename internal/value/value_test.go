package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawKeepsCode(t *testing.T) {
	codes := []string{
		"console.log('hello')",
		"",
		"\n        function test() {\n            return true;\n        }\n        ",
	}
	for _, code := range codes {
		v := Raw(code)
		assert.Equal(t, KindRaw, v.Kind())
		assert.Equal(t, code, v.Code())
	}
}

func TestZeroValueIsUnset(t *testing.T) {
	var v Value
	assert.True(t, v.IsZero())
	assert.Equal(t, Invalid, v.Kind())
	assert.False(t, Null().IsZero())
}

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"string", "x", String("x")},
		{"bool", true, Bool(true)},
		{"int", 42, Int(42)},
		{"int64", int64(-7), Int(-7)},
		{"uint8", uint8(255), Number("255")},
		{"float", 3.14, Float(3.14)},
		{"value passthrough", Raw("a()"), Raw("a()")},
		{"strings", []string{"browser", "module"}, List(String("browser"), String("module"))},
		{"any slice", []any{"item1", 42, true}, List(String("item1"), Int(42), Bool(true))},
		{"map sorted", map[string]any{"b": 1, "a": "x"}, MapOf(NewMap().Set("a", String("x")).Set("b", Int(1)))},
		{"fallback", []byte("hi"), Number("[104 105]")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Of(tt.in)
			assert.True(t, got.Equal(tt.want), "Of(%v) = %v, want %v", tt.in, got, tt.want)
		})
	}
}

func TestFloatText(t *testing.T) {
	assert.Equal(t, "3.14", Float(3.14).NumberText())
	assert.Equal(t, "42", Int(42).NumberText())
	assert.Equal(t, "0.5", Float(0.5).NumberText())
}

func TestCloneIsDeep(t *testing.T) {
	inner := NewMap().Set("k", String("v"))
	orig := List(MapOf(inner), String("x"))

	c := orig.Clone()
	c.Items()[0].Map().Set("k", String("changed"))

	got, _ := inner.Get("k")
	assert.Equal(t, "v", got.Str())
}

func TestEqual(t *testing.T) {
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(Raw("a")), "string and raw with same text differ")
	assert.False(t, Bool(true).Equal(Bool(false)))
	assert.False(t, List(Int(1)).Equal(List(Int(1), Int(2))))

	ab := MapOf(NewMap().Set("a", Int(1)).Set("b", Int(2)))
	ba := MapOf(NewMap().Set("b", Int(2)).Set("a", Int(1)))
	assert.False(t, ab.Equal(ba), "map equality is order sensitive")
}

func TestMapSetKeepsPosition(t *testing.T) {
	m := NewMap().Set("a", Int(1)).Set("b", Int(2)).Set("c", Int(3))
	m.Set("a", Int(10))

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "10", v.NumberText())
}

func TestMapDelete(t *testing.T) {
	m := NewMap().Set("a", Int(1)).Set("b", Int(2)).Set("c", Int(3))
	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))
	assert.Equal(t, 2, m.Len())
}

func TestZeroMapUsable(t *testing.T) {
	var m Map
	m.Set("a", Int(1))
	assert.Equal(t, 1, m.Len())

	var nilMap *Map
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Keys())
	_, ok := nilMap.Get("a")
	assert.False(t, ok)
}

func TestMapAllStopsEarly(t *testing.T) {
	m := NewMap().Set("a", Int(1)).Set("b", Int(2)).Set("c", Int(3))
	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "raw", KindRaw.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
