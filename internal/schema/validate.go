package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/bianoble/viteconf/internal/value"
)

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("vite config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks every field of cfg against the shapes its `vite` tag
// permits. Returns a list of validation error messages (empty if valid).
// Whether the resulting config makes sense to Vite is not checked.
func Validate(cfg *Config) []string {
	if cfg == nil {
		return nil
	}
	var errs []string
	validateStruct(reflect.ValueOf(cfg).Elem(), "", &errs)
	return errs
}

func validateStruct(rv reflect.Value, path string, errs *[]string) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		p := joinPath(path, name)
		spec := specFor(f.Tag.Get("vite"))
		fv := rv.Field(i)

		if fv.Type() == valueType {
			v := fv.Interface().(value.Value)
			if v.IsZero() {
				if spec.required {
					*errs = append(*errs, fmt.Sprintf("%s: '%s' is required", sectionLabel(path), name))
				}
				continue
			}
			checkValue(v, p, spec, errs)
			continue
		}

		if fv.CanAddr() {
			if sf, ok := fv.Addr().Interface().(sectionField); ok {
				sf.validate(p, spec, errs)
				continue
			}
		}

		switch fv.Kind() {
		case reflect.Pointer:
			if !fv.IsNil() && fv.Elem().Kind() == reflect.Struct {
				validateStruct(fv.Elem(), p, errs)
			}
		case reflect.Struct:
			validateStruct(fv, p, errs)
		case reflect.Slice:
			for j := 0; j < fv.Len(); j++ {
				if fv.Index(j).Kind() == reflect.Struct {
					validateStruct(fv.Index(j), fmt.Sprintf("%s[%d]", p, j), errs)
				}
			}
		}
	}
}

func checkValue(v value.Value, path string, spec kindSpec, errs *[]string) {
	if v.IsZero() || len(spec.alts) == 0 || spec.matches(v) {
		return
	}
	*errs = append(*errs, fmt.Sprintf("%s: got %s, must be one of: %s", path, describeValue(v), spec.describe()))
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func sectionLabel(path string) string {
	if path == "" {
		return "config"
	}
	return path
}

func describeValue(v value.Value) string {
	switch v.Kind() {
	case value.KindString:
		return fmt.Sprintf("string '%s'", v.Str())
	case value.KindBool:
		return fmt.Sprintf("bool %t", v.Boolean())
	case value.KindNumber:
		return "number " + v.NumberText()
	default:
		return v.Kind().String()
	}
}

// kindSpec is a parsed `vite` tag.
type kindSpec struct {
	alts     []kindAlt
	required bool
}

type kindAlt struct {
	kind    value.Kind
	literal *value.Value
	elem    *kindSpec // element shapes for list<...> and map<...>
}

var kindNames = map[string]value.Kind{
	"raw":    value.KindRaw,
	"map":    value.KindMap,
	"list":   value.KindList,
	"string": value.KindString,
	"bool":   value.KindBool,
	"null":   value.KindNull,
	"number": value.KindNumber,
}

var specCache sync.Map // tag -> kindSpec

// specFor parses a `vite` tag. Tags are fixed at compile time, so a
// malformed tag panics.
func specFor(tag string) kindSpec {
	if cached, ok := specCache.Load(tag); ok {
		return cached.(kindSpec)
	}
	spec, err := parseKindSpec(tag)
	if err != nil {
		panic(fmt.Sprintf("schema: bad vite tag %q: %v", tag, err))
	}
	specCache.Store(tag, spec)
	return spec
}

func parseKindSpec(tag string) (kindSpec, error) {
	var spec kindSpec
	if tag == "" {
		return spec, nil
	}
	body, opt, _ := strings.Cut(tag, ",")
	switch opt {
	case "":
	case "required":
		spec.required = true
	default:
		return spec, fmt.Errorf("unknown option %q", opt)
	}

	for _, tok := range splitTop(body) {
		alt, err := parseKindAlt(tok)
		if err != nil {
			return spec, err
		}
		spec.alts = append(spec.alts, alt)
	}
	return spec, nil
}

func parseKindAlt(tok string) (kindAlt, error) {
	for _, coll := range []string{"list", "map"} {
		if inner, ok := strings.CutPrefix(tok, coll+"<"); ok {
			inner, ok = strings.CutSuffix(inner, ">")
			if !ok {
				return kindAlt{}, fmt.Errorf("unterminated %q", tok)
			}
			elem, err := parseKindSpec(inner)
			if err != nil {
				return kindAlt{}, err
			}
			return kindAlt{kind: kindNames[coll], elem: &elem}, nil
		}
	}

	switch {
	case tok == "true" || tok == "false":
		lit := value.Bool(tok == "true")
		return kindAlt{kind: value.KindBool, literal: &lit}, nil
	case len(tok) >= 2 && strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'"):
		lit := value.String(tok[1 : len(tok)-1])
		return kindAlt{kind: value.KindString, literal: &lit}, nil
	}

	k, ok := kindNames[tok]
	if !ok {
		return kindAlt{}, fmt.Errorf("unknown shape %q", tok)
	}
	return kindAlt{kind: k}, nil
}

// splitTop splits s on '|' outside angle brackets.
func splitTop(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case '|':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func (s kindSpec) matches(v value.Value) bool {
	for _, alt := range s.alts {
		if alt.matches(v) {
			return true
		}
	}
	return false
}

func (a kindAlt) matches(v value.Value) bool {
	if a.literal != nil {
		return v.Equal(*a.literal)
	}
	if v.Kind() != a.kind {
		return false
	}
	if a.elem == nil {
		return true
	}
	switch v.Kind() {
	case value.KindList:
		for _, item := range v.Items() {
			if !a.elem.matches(item) {
				return false
			}
		}
	case value.KindMap:
		for _, child := range v.Map().All() {
			if !a.elem.matches(child) {
				return false
			}
		}
	}
	return true
}

func (s kindSpec) describe() string {
	parts := make([]string, len(s.alts))
	for i, alt := range s.alts {
		parts[i] = alt.describe()
	}
	return strings.Join(parts, ", ")
}

func (a kindAlt) describe() string {
	switch {
	case a.literal != nil && a.literal.Kind() == value.KindString:
		return "'" + a.literal.Str() + "'"
	case a.literal != nil:
		return a.literal.String()
	case a.elem != nil:
		return a.kind.String() + " of (" + a.elem.describe() + ")"
	default:
		return a.kind.String()
	}
}
