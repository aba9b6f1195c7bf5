package jsgen

import (
	"fmt"
	"strings"

	"github.com/bianoble/viteconf/internal/value"
)

// DefaultAliasDepth is the nesting depth of resolve.alias in a Vite config.
const DefaultAliasDepth = 2

// Alias is a module path rewrite rule for Vite's resolver. Find and
// Replacement each hold a string or a raw fragment.
type Alias struct {
	Find        value.Value
	Replacement value.Value
}

// BuildAliasArray renders aliases as a raw JavaScript array. A string
// replacement is a path relative to the config file and is wrapped in a
// fileURLToPath call; raw finds and replacements are written verbatim.
// Input order is kept and duplicates are not removed. A negative depth is
// treated as zero.
func BuildAliasArray(aliases []Alias, depth int) value.Value {
	if len(aliases) == 0 {
		return value.Raw("[]")
	}
	depth = max(depth, 0)

	sp := strings.Repeat("  ", depth)
	lines := make([]string, 0, len(aliases))
	for _, a := range aliases {
		lines = append(lines, fmt.Sprintf("%s{ find: %s, replacement: %s }", sp, findExpr(a.Find), replacementExpr(a.Replacement)))
	}

	closing := ""
	if depth > 1 {
		closing = strings.Repeat(sp, depth-1)
	}
	return value.Raw("[\n" + strings.Join(lines, ",\n") + "\n" + closing + "]")
}

// findExpr does not escape string finds.
func findExpr(v value.Value) string {
	switch v.Kind() {
	case value.KindString:
		return `"` + v.Str() + `"`
	case value.KindRaw:
		return v.Code()
	default:
		return Serialize(v, 0)
	}
}

func replacementExpr(v value.Value) string {
	switch v.Kind() {
	case value.KindString:
		return `fileURLToPath(new URL("` + safePath(v.Str()) + `", import.meta.url))`
	case value.KindRaw:
		return v.Code()
	default:
		return Serialize(v, 0)
	}
}

func safePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.ReplaceAll(p, `"`, `\"`)
}

// AliasesFromList extracts alias records from a list of {find, replacement}
// maps, as found under resolve.alias in a merged config tree.
func AliasesFromList(v value.Value) ([]Alias, error) {
	if v.Kind() != value.KindList {
		return nil, fmt.Errorf("alias list: expected list, got %s", v.Kind())
	}

	aliases := make([]Alias, 0, len(v.Items()))
	for i, item := range v.Items() {
		prefix := fmt.Sprintf("alias[%d]", i)
		if item.Kind() != value.KindMap {
			return nil, fmt.Errorf("%s: expected map with 'find' and 'replacement', got %s", prefix, item.Kind())
		}

		find, ok := item.Map().Get("find")
		if !ok {
			return nil, fmt.Errorf("%s: 'find' is required", prefix)
		}
		replacement, ok := item.Map().Get("replacement")
		if !ok {
			return nil, fmt.Errorf("%s: 'replacement' is required", prefix)
		}
		aliases = append(aliases, Alias{Find: find, Replacement: replacement})
	}
	return aliases, nil
}

// AliasList converts alias records back into their tree form.
func AliasList(aliases []Alias) value.Value {
	items := make([]value.Value, len(aliases))
	for i, a := range aliases {
		items[i] = value.MapOf(value.NewMap().
			Set("find", a.Find).
			Set("replacement", a.Replacement))
	}
	return value.List(items...)
}
