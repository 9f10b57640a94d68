package conv

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/serializable/node"
	"github.com/viant/serializable/visitor"
)

// Converter converts entities into node trees, it is safe for concurrent use
type Converter struct {
	options  Options
	registry *Registry
	names    *visitor.SyncMap[string, string]
}

// NewConverter creates a new converter with the provided options
func NewConverter(options Options) *Converter {
	return &Converter{
		options:  options,
		registry: NewRegistry(),
		names:    visitor.NewSyncMap[string, string](),
	}
}

// Convert converts entity with default options modified by supplied options
func Convert(entity interface{}, opts ...Option) (node.Node, error) {
	options := DefaultOptions()
	options.Apply(opts...)
	return NewConverter(options).Convert(entity)
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// Register registers ordered accessors for a struct or pointer to struct type,
// registered accessors take precedence over reflection discovered ones
func (c *Converter) Register(rType reflect.Type, accessors ...Accessor) {
	c.registry.Register(rType, accessors...)
}

// RegisterValueType registers value type encoder
func (c *Converter) RegisterValueType(rType reflect.Type, encoder ValueEncoder) {
	c.registry.RegisterValueType(rType, encoder)
}

// Convert converts entity into a mapping of accessor derived names to converted values.
// A value type entity is converted with its encoder, i.e. time.Time yields one element sequence.
func (c *Converter) Convert(entity interface{}) (node.Node, error) {
	return c.convert(entity, newSession(&c.options))
}

func (c *Converter) convert(entity interface{}, s session) (node.Node, error) {
	if entity == nil {
		return nil, newConversionError(nil, "nil", s.depth, "failed to describe accessors", errors.New("entity was nil"))
	}
	rType := reflect.TypeOf(entity)
	typeName := rType.String()
	if encoder, ok := c.valueEncoder(rType); ok {
		result, err := encoder(entity, s.options)
		if err != nil {
			return nil, newConversionError(entity, typeName, s.depth, "failed to encode value type", err)
		}
		return result, nil
	}
	value, err := objectValue(entity)
	if err != nil {
		return nil, newConversionError(entity, typeName, s.depth, "failed to describe accessors", err)
	}
	accessors := c.accessors(value.Type())
	target := value.Interface()
	result := node.NewMapping(len(accessors))
	for i := range accessors {
		accessor := &accessors[i]
		name := c.fieldName(accessor)
		item, err := invoke(accessor, target)
		if err != nil {
			return nil, newConversionError(entity, typeName, s.depth, fmt.Sprintf("failed to read %v", name), err)
		}
		if s.exceeded() {
			if s.options.ThrowOnLimitExceeded {
				return nil, newRecursionLimitError(entity, typeName, s.depth)
			}
			if s.options.ReplaceValueOnLimitExceeded {
				result.Put(name, node.ScalarOf(s.options.marker()))
			} else {
				result.Put(name, node.Raw{Value: item})
			}
			continue
		}
		child, err := c.descend(item, s.withTimeLayout(accessor.TimeLayout))
		if err != nil {
			return nil, err
		}
		result.Put(name, child)
	}
	return result, nil
}

// descend converts accessor returned value, containers keep the session budget, objects consume one level
func (c *Converter) descend(value interface{}, s session) (node.Node, error) {
	if value == nil {
		return node.Null(), nil
	}
	rValue := reflect.ValueOf(value)
	rType := rValue.Type()
	if rValue.Kind() == reflect.Ptr && rValue.IsNil() {
		return node.Null(), nil
	}
	if _, ok := c.valueEncoder(rType); ok {
		return c.descendObject(value, s)
	}
	switch rValue.Kind() {
	case reflect.Ptr:
		if rType.Elem().Kind() == reflect.Struct {
			return c.descendObject(value, s)
		}
		return c.descend(rValue.Elem().Interface(), s)
	case reflect.Struct:
		return c.descendObject(value, s)
	case reflect.Slice:
		if rType.Elem().Kind() == reflect.Uint8 {
			return node.ScalarOf(string(rValue.Bytes())), nil
		}
		return c.descendSequence(value, rValue.Len(), s)
	case reflect.Array:
		return c.descendSequence(value, rValue.Len(), s)
	case reflect.Map:
		return c.descendMapping(value, rValue.Len(), s)
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return node.ScalarOf(value), nil
	}
	return nil, newConversionError(value, rType.String(), s.depth, "unsupported value kind", errors.Errorf("%v", rValue.Kind()))
}

func (c *Converter) descendObject(value interface{}, s session) (node.Node, error) {
	result, err := c.convert(value, s.descend())
	if err != nil {
		return nil, err
	}
	return node.Collapse(result), nil
}

func (c *Converter) descendSequence(value interface{}, size int, s session) (node.Node, error) {
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return nil, newConversionError(value, reflect.TypeOf(value).String(), s.depth, "failed to visit sequence", err)
	}
	result := make(node.Sequence, 0, size)
	err = visit.Each(func(_ int, element interface{}) error {
		child, err := c.descend(element, s)
		if err != nil {
			return err
		}
		result = append(result, child)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return node.Collapse(result), nil
}

func (c *Converter) descendMapping(value interface{}, size int, s session) (node.Node, error) {
	visit, err := visitor.AnyMapVisitorOf(value)
	if err != nil {
		return nil, newConversionError(value, reflect.TypeOf(value).String(), s.depth, "failed to visit mapping", err)
	}
	result := node.NewMapping(size)
	err = visit.Each(func(key string, element interface{}) error {
		child, err := c.descend(element, s)
		if err != nil {
			return err
		}
		result.Put(key, child)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return node.Collapse(result), nil
}

func (c *Converter) valueEncoder(rType reflect.Type) (ValueEncoder, bool) {
	if encoder, ok := c.registry.ValueEncoder(rType); ok {
		return encoder, true
	}
	return registry.ValueEncoder(rType)
}

// accessors returns registered or reflection discovered accessors for pointer to struct type
func (c *Converter) accessors(rType reflect.Type) []Accessor {
	if accessors, ok := c.registry.Accessors(rType); ok {
		return accessors
	}
	if accessors, ok := registry.Accessors(rType); ok {
		return accessors
	}
	return methodAccessors(rType)
}

func (c *Converter) fieldName(accessor *Accessor) string {
	if c.options.CaseFormat == "" || accessor.source == "" {
		return accessor.Name
	}
	name, _ := c.names.GetOrCompute(accessor.source, func() (string, error) {
		return formatName(accessor.source, c.options.CaseFormat), nil
	})
	return name
}

// objectValue returns pointer to struct value for supplied entity, struct values are copied
func objectValue(entity interface{}) (reflect.Value, error) {
	value := reflect.ValueOf(entity)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return value, errors.Errorf("nil %s entity", value.Type().String())
		}
		if value.Elem().Kind() == reflect.Struct {
			return value, nil
		}
	case reflect.Struct:
		ptr := reflect.New(value.Type())
		ptr.Elem().Set(value)
		return ptr, nil
	}
	return value, errors.Errorf("unsupported entity type: %s, expected struct or pointer to struct", value.Type().String())
}

