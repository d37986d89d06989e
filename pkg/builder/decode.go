package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reconstructs a descriptor tree from JSON. The input may be a
// single serialized descriptor, a plain string, or a list of either.
func DecodeJSON(data []byte) ([]any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("builder: decode json: %w", err)
	}
	return decodeNodes(raw)
}

// DecodeYAML reconstructs a descriptor tree from YAML.
func DecodeYAML(data []byte) ([]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("builder: decode yaml: %w", err)
	}
	return decodeNodes(raw)
}

// DecodeFile reads a descriptor file and decodes it based on its
// extension (.yaml/.yml for YAML, anything else JSON).
func DecodeFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builder: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// decodeNodes accepts either one serialized node or a list of them.
func decodeNodes(raw any) ([]any, error) {
	if list, ok := raw.([]any); ok {
		nodes := make([]any, 0, len(list))
		for _, item := range list {
			node, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return nodes, nil
	}

	node, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	return []any{node}, nil
}

// decodeNode converts one decoded value into a compiler node.
func decodeNode(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case map[string]any:
		return decodeElement(v)
	default:
		return nil, fmt.Errorf("builder: unsupported node type %T", raw)
	}
}

// decodeElement maps a serialized descriptor object onto an Element.
// Events and directives carry live callables and opaque engine tokens;
// they have no serialized form and any such keys in the input are
// ignored.
func decodeElement(m map[string]any) (*Element, error) {
	el := &Element{}

	if tag, ok := m["tag"].(string); ok {
		el.Tag = tag
	}
	if attrs, ok := m["attributes"].(map[string]any); ok {
		el.Attrs = attrs
	}
	if props, ok := m["properties"].(map[string]any); ok {
		el.Props = props
	}
	if children, ok := m["children"].([]any); ok {
		for _, child := range children {
			node, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, node)
		}
	}

	return el, nil
}
