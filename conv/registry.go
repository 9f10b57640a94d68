package conv

import (
	"reflect"
	"sync"
	"time"

	"github.com/viant/serializable/node"
	"github.com/viant/serializable/visitor"
)

// ValueEncoder encodes a value type with a dedicated representation
type ValueEncoder func(value interface{}, options *Options) (node.Node, error)

// Registry holds per type accessors and value type encoders
type Registry struct {
	accessors *visitor.SyncMap[reflect.Type, []Accessor]
	encoders  sync.Map // map[reflect.Type]ValueEncoder
}

var registry = newDefaultRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{accessors: visitor.NewSyncMap[reflect.Type, []Accessor]()}
}

func newDefaultRegistry() *Registry {
	ret := NewRegistry()
	ret.RegisterValueType(reflect.TypeOf(time.Time{}), encodeTime)
	ret.RegisterValueType(reflect.TypeOf(time.Location{}), encodeLocation)
	return ret
}

// Register registers ordered accessors for a struct or pointer to struct type
func (r *Registry) Register(rType reflect.Type, accessors ...Accessor) {
	r.accessors.Put(derefType(rType), append([]Accessor{}, accessors...))
}

// RegisterValueType registers value type encoder, a pointer to registered type uses the same encoder
func (r *Registry) RegisterValueType(rType reflect.Type, encoder ValueEncoder) {
	r.encoders.Store(rType, encoder)
}

// Accessors returns registered accessors
func (r *Registry) Accessors(rType reflect.Type) ([]Accessor, bool) {
	return r.accessors.Get(derefType(rType))
}

// ValueEncoder returns value type encoder
func (r *Registry) ValueEncoder(rType reflect.Type) (ValueEncoder, bool) {
	if v, ok := r.encoders.Load(rType); ok {
		return v.(ValueEncoder), true
	}
	if rType.Kind() == reflect.Ptr {
		if v, ok := r.encoders.Load(rType.Elem()); ok {
			return v.(ValueEncoder), true
		}
	}
	return nil, false
}

// Register registers package level accessors, used by every converter
func Register(rType reflect.Type, accessors ...Accessor) {
	registry.Register(rType, accessors...)
}

// RegisterValueType registers package level value type encoder, used by every converter
func RegisterValueType(rType reflect.Type, encoder ValueEncoder) {
	registry.RegisterValueType(rType, encoder)
}

func derefType(rType reflect.Type) reflect.Type {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return rType
}
