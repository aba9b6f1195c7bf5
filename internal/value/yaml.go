package value

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RawTag marks a YAML scalar as a raw JavaScript fragment:
//
//	port: !js process.env.PORT
const RawTag = "!js"

// UnmarshalYAML decodes a YAML node into v, keeping mapping key order.
// Scalars tagged with RawTag become raw fragments.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := FromYAML(node)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// FromYAML converts a parsed YAML node into a Value.
func FromYAML(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return FromYAML(node.Content[0])
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	case yaml.SequenceNode:
		if node.Tag == RawTag {
			return Value{}, fmt.Errorf("line %d: %s applies to scalars only", node.Line, RawTag)
		}
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := FromYAML(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.MappingNode:
		if node.Tag == RawTag {
			return Value{}, fmt.Errorf("line %d: %s applies to scalars only", node.Line, RawTag)
		}
		m := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
			}
			if keyNode.ShortTag() == "!!merge" {
				return Value{}, fmt.Errorf("line %d: merge keys are not supported", keyNode.Line)
			}
			child, err := FromYAML(valNode)
			if err != nil {
				return Value{}, fmt.Errorf("key '%s': %w", keyNode.Value, err)
			}
			m.Set(keyNode.Value, child)
		}
		return MapOf(m), nil
	default:
		return Value{}, fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case RawTag:
		return Raw(node.Value), nil
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int(i), nil
		}
		var u uint64
		if err := node.Decode(&u); err == nil {
			return Number(strconv.FormatUint(u, 10)), nil
		}
		return Value{}, fmt.Errorf("line %d: integer %q out of range", node.Line, node.Value)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return Float(f), nil
	default:
		return String(node.Value), nil
	}
}
