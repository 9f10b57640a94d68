package serializable

import (
	"reflect"

	"github.com/viant/serializable/conv"
	"github.com/viant/serializable/node"
)

// DefaultMaxDepth is the nesting depth used unless an entity implements DepthLimiter
const DefaultMaxDepth = conv.DefaultMaxDepth

// DepthLimiter overrides default serialization depth of an entity
type DepthLimiter interface {
	SerializationDepth() int
}

// Serializable wraps an entity to be encoded with generic JSON and YAML encoders
type Serializable struct {
	entity  interface{}
	options []conv.Option
}

// Of creates a serializable wrapper
func Of(entity interface{}, opts ...conv.Option) *Serializable {
	return &Serializable{entity: entity, options: opts}
}

// ToArray converts the wrapped entity
func (s *Serializable) ToArray() (node.Node, error) {
	return ToArray(s.entity, s.options...)
}

// MarshalJSON returns JSON encoded entity tree
func (s *Serializable) MarshalJSON() ([]byte, error) {
	tree, err := s.ToArray()
	if err != nil {
		return nil, err
	}
	return node.MarshalJSON(tree)
}

// MarshalYAML returns YAML marshalable entity tree
func (s *Serializable) MarshalYAML() (interface{}, error) {
	tree, err := s.ToArray()
	if err != nil {
		return nil, err
	}
	return node.YAMLValue(tree), nil
}

// serializationDepth returns DepthLimiter depth, struct values are also checked with pointer receiver methods
func serializationDepth(entity interface{}) int {
	if limiter, ok := entity.(DepthLimiter); ok {
		return limiter.SerializationDepth()
	}
	value := reflect.ValueOf(entity)
	if value.Kind() != reflect.Struct {
		return DefaultMaxDepth
	}
	ptr := reflect.New(value.Type())
	ptr.Elem().Set(value)
	if limiter, ok := ptr.Interface().(DepthLimiter); ok {
		return limiter.SerializationDepth()
	}
	return DefaultMaxDepth
}

// ToArray converts entity with its serialization depth, options are applied last
func ToArray(entity interface{}, opts ...conv.Option) (node.Node, error) {
	depth := serializationDepth(entity)
	return conv.Convert(entity, append([]conv.Option{conv.WithMaxDepth(depth)}, opts...)...)
}

// ToJSON returns JSON representation of converted entity
func ToJSON(entity interface{}, opts ...conv.Option) (string, error) {
	tree, err := ToArray(entity, opts...)
	if err != nil {
		return "", err
	}
	data, err := node.MarshalJSON(tree)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToYAML returns YAML representation of converted entity
func ToYAML(entity interface{}, opts ...conv.Option) ([]byte, error) {
	tree, err := ToArray(entity, opts...)
	if err != nil {
		return nil, err
	}
	return node.MarshalYAML(tree)
}
