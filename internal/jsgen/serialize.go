// Package jsgen turns structured values into JavaScript source text.
package jsgen

import (
	"regexp"
	"strings"

	"github.com/bianoble/viteconf/internal/value"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Serialize renders v as a JavaScript literal. indent is the nesting depth of
// v; map entries are written two spaces past it and the closing brace at it.
//
// Strings are wrapped in single quotes without escaping, so a string holding
// a quote or backslash produces invalid JavaScript. Raw fragments are written
// verbatim.
func Serialize(v value.Value, indent int) string {
	switch v.Kind() {
	case value.KindRaw:
		return v.Code()
	case value.KindMap:
		return serializeMap(v.Map(), indent)
	case value.KindList:
		parts := make([]string, len(v.Items()))
		for i, item := range v.Items() {
			parts[i] = Serialize(item, indent+1)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case value.KindString:
		return "'" + v.Str() + "'"
	case value.KindBool:
		if v.Boolean() {
			return "true"
		}
		return "false"
	case value.KindNull:
		return "null"
	case value.KindNumber:
		return v.NumberText()
	default:
		return "undefined"
	}
}

func serializeMap(m *value.Map, indent int) string {
	if m.Len() == 0 {
		return "{}"
	}

	sp := strings.Repeat(" ", indent)
	items := make([]string, 0, m.Len())
	for k, child := range m.All() {
		items = append(items, sp+"  "+Key(k)+": "+Serialize(child, indent+1))
	}
	return "{\n" + strings.Join(items, ",\n") + "\n" + sp + "}"
}

// Key renders an object key, bare when it is a valid identifier and single
// quoted otherwise.
func Key(k string) string {
	if identifierRe.MatchString(k) {
		return k
	}
	return "'" + k + "'"
}
