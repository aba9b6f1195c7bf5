package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/bianoble/viteconf/internal/value"
)

// Load reads and validates a Vite override file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vite config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing vite config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML overrides. Unknown keys are rejected.
// An empty document yields an empty Config. An explicit null on a value
// field is kept as a null value; a null section is treated as unset.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	applyNulls(&doc, reflect.ValueOf(&cfg).Elem())

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return &cfg, nil
}

// applyNulls sets every value field that node writes as an explicit null to
// value.Null(). yaml.v3 leaves such fields zero without calling
// UnmarshalYAML.
func applyNulls(node *yaml.Node, rv reflect.Value) {
	node = deref(node)
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) > 0 {
			applyNulls(node.Content[0], rv)
		}
		return
	}
	if node.Kind != yaml.MappingNode || rv.Kind() != reflect.Struct {
		return
	}

	rt := rv.Type()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		for j := 0; j < rt.NumField(); j++ {
			if name, ok := fieldName(rt.Field(j)); ok && name == key.Value {
				applyFieldNull(val, rv.Field(j))
				break
			}
		}
	}
}

func applyFieldNull(node *yaml.Node, fv reflect.Value) {
	node = deref(node)
	if fv.Type() == valueType {
		if isNull(node) {
			fv.Set(reflect.ValueOf(value.Null()))
		}
		return
	}
	if sf, ok := fv.Addr().Interface().(sectionField); ok {
		sf.applyNulls(node)
		return
	}

	switch fv.Kind() {
	case reflect.Pointer:
		if !fv.IsNil() {
			applyNulls(node, fv.Elem())
		}
	case reflect.Struct:
		applyNulls(node, fv)
	case reflect.Slice:
		if node.Kind != yaml.SequenceNode {
			return
		}
		for j, child := range node.Content {
			if j < fv.Len() {
				applyNulls(child, fv.Index(j))
			}
		}
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
