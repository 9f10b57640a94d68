package node

import (
	"github.com/goccy/go-yaml"
)

// MarshalYAML encodes node as YAML, mapping keys keep insertion order
func MarshalYAML(n Node) ([]byte, error) {
	return yaml.Marshal(YAMLValue(n))
}

// YAMLValue returns yaml encodable value, mappings are represented as yaml.MapSlice
func YAMLValue(n Node) interface{} {
	switch actual := n.(type) {
	case *Mapping:
		result := make(yaml.MapSlice, 0, actual.Len())
		actual.Range(func(key string, item Node) bool {
			result = append(result, yaml.MapItem{Key: key, Value: YAMLValue(item)})
			return true
		})
		return result
	case Sequence:
		result := make([]interface{}, len(actual))
		for i, item := range actual {
			result[i] = YAMLValue(item)
		}
		return result
	case Scalar:
		return normalize(actual.Value)
	case Raw:
		return actual.Value
	}
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (m *Mapping) MarshalYAML() (interface{}, error) {
	return YAMLValue(m), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (s Sequence) MarshalYAML() (interface{}, error) {
	return YAMLValue(s), nil
}
