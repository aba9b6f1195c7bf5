package jsgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bianoble/viteconf/internal/value"
)

func TestSerializeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   value.Value
		want string
	}{
		{"raw", value.Raw("console.log('test')"), "console.log('test')"},
		{"string", value.String("test string"), "'test string'"},
		{"true", value.Bool(true), "true"},
		{"false", value.Bool(false), "false"},
		{"null", value.Null(), "null"},
		{"int", value.Int(42), "42"},
		{"float", value.Float(3.14), "3.14"},
		{"unset", value.Value{}, "undefined"},
		{"fallback", value.Of(struct{ A int }{1}), "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.in, 0))
		})
	}
}

func TestSerializeStringIsNotEscaped(t *testing.T) {
	// Embedded quotes pass through unchanged.
	assert.Equal(t, "'it's'", Serialize(value.String("it's"), 0))
}

func TestSerializeRawNeverQuoted(t *testing.T) {
	code := "(id) => id.includes('node_modules') ? 'vendor' : null"
	m := value.NewMap().Set("manualChunks", value.Raw(code))

	got := Serialize(value.MapOf(m), 0)

	assert.Contains(t, got, "manualChunks: "+code)
	assert.NotContains(t, got, "'"+code+"'")
}

func TestSerializeList(t *testing.T) {
	got := Serialize(value.List(value.String("item1"), value.Int(42), value.Bool(true)), 0)
	assert.Equal(t, "['item1', 42, true]", got)

	assert.Equal(t, "[]", Serialize(value.List(), 0))
}

func TestSerializeEmptyMap(t *testing.T) {
	assert.Equal(t, "{}", Serialize(value.MapOf(nil), 0))
	assert.Equal(t, "{}", Serialize(value.MapOf(value.NewMap()), 3))
}

func TestSerializeMapLayout(t *testing.T) {
	m := value.NewMap().
		Set("key1", value.String("value1")).
		Set("key2", value.Int(42))

	got := Serialize(value.MapOf(m), 0)

	assert.Equal(t, "{\n  key1: 'value1',\n  key2: 42\n}", got)
}

func TestSerializeNestedMapLayout(t *testing.T) {
	inner := value.NewMap().
		Set("inner", value.String("value")).
		Set("number", value.Int(42))
	outer := value.NewMap().Set("outer", value.MapOf(inner))

	got := Serialize(value.MapOf(outer), 0)

	want := "{\n  outer: {\n   inner: 'value',\n   number: 42\n }\n}"
	assert.Equal(t, want, got)
}

func TestSerializeKeys(t *testing.T) {
	m := value.NewMap().
		Set("special-key", value.String("value")).
		Set("normal_key", value.String("value2")).
		Set("$dollar", value.Bool(true)).
		Set("9lives", value.Int(9)).
		Set("with space", value.Null())

	got := Serialize(value.MapOf(m), 0)

	assert.Contains(t, got, "'special-key': 'value'")
	assert.Contains(t, got, "normal_key: 'value2'")
	assert.Contains(t, got, "$dollar: true")
	assert.Contains(t, got, "'9lives': 9")
	assert.Contains(t, got, "'with space': null")
}

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"outDir", "outDir"},
		{"_private", "_private"},
		{"$", "$"},
		{"a1", "a1"},
		{"1a", "'1a'"},
		{"@", "'@'"},
		{"", "''"},
		{"process.env.X", "'process.env.X'"},
	}
	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSerializeDeepNesting(t *testing.T) {
	leaf := value.NewMap().Set("value", value.String("deep"))
	tree := value.MapOf(leaf)
	for _, k := range []string{"level4", "level3", "level2", "level1"} {
		tree = value.MapOf(value.NewMap().Set(k, tree))
	}

	got := Serialize(tree, 0)

	assert.Contains(t, got, "value: 'deep'")
	assert.Equal(t, 5, strings.Count(got, "{"))
	assert.Equal(t, 5, strings.Count(got, "}"))
}

func TestSerializeMixedStructures(t *testing.T) {
	tree := value.MapOf(value.NewMap().Set("nested", value.MapOf(value.NewMap().
		Set("deeply", value.MapOf(value.NewMap().
			Set("values", value.List(value.Int(1), value.Int(2), value.MapOf(value.NewMap().Set("key", value.Raw("value"))))))))))

	got := Serialize(tree, 0)

	assert.Contains(t, got, "key: value")
	assert.NotContains(t, got, "'value'")
	assert.Equal(t, strings.Count(got, "{"), strings.Count(got, "}"))
	assert.Equal(t, strings.Count(got, "["), strings.Count(got, "]"))
}
