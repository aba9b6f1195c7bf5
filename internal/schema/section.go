package schema

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bianoble/viteconf/internal/value"
)

// OrSection holds either a structured section S or a scalar alternative,
// for options such as server.hmr that take `true` or an options object.
// At most one of Value and Section is set.
type OrSection[S any] struct {
	Value   value.Value
	Section *S
}

// SectionOf returns an OrSection holding s.
func SectionOf[S any](s S) OrSection[S] {
	return OrSection[S]{Section: &s}
}

// ScalarOf returns an OrSection holding the scalar alternative v.
func ScalarOf[S any](v value.Value) OrSection[S] {
	return OrSection[S]{Value: v}
}

// IsZero reports whether neither alternative is set.
func (o OrSection[S]) IsZero() bool {
	return o.Section == nil && o.Value.IsZero()
}

// UnmarshalYAML decodes a mapping into Section, rejecting unknown keys, and
// anything else into Value.
func (o *OrSection[S]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode && node.Tag != value.RawTag {
		var s S
		if err := decodeStrict(node, &s); err != nil {
			return err
		}
		*o = OrSection[S]{Section: &s}
		return nil
	}

	v, err := value.FromYAML(node)
	if err != nil {
		return err
	}
	*o = OrSection[S]{Value: v}
	return nil
}

// treeValue implements sectionField.
func (o *OrSection[S]) treeValue() (value.Value, bool) {
	if o.Section != nil {
		return value.MapOf(structToMap(reflectElem(o.Section))), true
	}
	return o.Value.Clone(), !o.Value.IsZero()
}

// validate implements sectionField.
func (o *OrSection[S]) validate(path string, spec kindSpec, errs *[]string) {
	if o.Section != nil {
		validateStruct(reflectElem(o.Section), path, errs)
		return
	}
	checkValue(o.Value, path, spec, errs)
}

// applyNulls implements sectionField.
func (o *OrSection[S]) applyNulls(node *yaml.Node) {
	switch {
	case isNull(node):
		*o = OrSection[S]{Value: value.Null()}
	case o.Section != nil:
		applyNulls(node, reflectElem(o.Section))
	}
}

// sectionField is implemented by field types that convert and validate
// themselves.
type sectionField interface {
	treeValue() (value.Value, bool)
	validate(path string, spec kindSpec, errs *[]string)
	applyNulls(node *yaml.Node)
}

// decodeStrict decodes node into out, failing on keys out does not declare.
// Nodes decoded through an Unmarshaler lose the outer decoder's KnownFields
// setting, so the node is re-encoded and decoded with a strict decoder.
// Aliases are expanded first since their anchors may lie outside node.
func decodeStrict(node *yaml.Node, out any) error {
	expanded, err := expandAliases(node, nil)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	data, err := yaml.Marshal(expanded)
	if err != nil {
		return fmt.Errorf("line %d: re-encoding section: %w", node.Line, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// expandAliases returns a deep copy of node with every alias replaced by a
// copy of its anchored node. Anchors are dropped from the copy. active holds
// the nodes being copied on the current path and catches self references.
func expandAliases(node *yaml.Node, active map[*yaml.Node]bool) (*yaml.Node, error) {
	if node.Kind == yaml.AliasNode {
		if node.Alias == nil {
			return nil, fmt.Errorf("unknown anchor '%s' referenced", node.Value)
		}
		return expandAliases(node.Alias, active)
	}
	if active[node] {
		return nil, fmt.Errorf("anchor '%s' value contains itself", node.Anchor)
	}
	if active == nil {
		active = make(map[*yaml.Node]bool)
	}
	active[node] = true
	defer delete(active, node)

	out := *node
	out.Anchor = ""
	out.Alias = nil
	out.Content = nil
	for _, child := range node.Content {
		c, err := expandAliases(child, active)
		if err != nil {
			return nil, err
		}
		out.Content = append(out.Content, c)
	}
	return &out, nil
}
