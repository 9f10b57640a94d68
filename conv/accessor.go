package conv

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/serializable/visitor"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// methodCache caches reflection discovered accessors per pointer type
var methodCache = visitor.NewSyncMap[reflect.Type, []Accessor]()

// Accessor represents a named entity getter
type Accessor struct {
	// Name is the output field name
	Name string
	// Get returns accessor value for supplied entity (pointer to struct)
	Get func(entity interface{}) (interface{}, error)
	// TimeLayout overrides time layout for the accessor value
	TimeLayout string
	// source is the upper camel name used with case formats
	source string
}

// Getter creates a typed accessor, T can be a struct or pointer to struct type
func Getter[T any, V any](name string, fn func(entity T) V) Accessor {
	return Accessor{Name: name, Get: func(entity interface{}) (interface{}, error) {
		typed, err := assertEntity[T](entity)
		if err != nil {
			return nil, err
		}
		return fn(typed), nil
	}}
}

// GetterWithError creates a typed accessor returning an error
func GetterWithError[T any, V any](name string, fn func(entity T) (V, error)) Accessor {
	return Accessor{Name: name, Get: func(entity interface{}) (interface{}, error) {
		typed, err := assertEntity[T](entity)
		if err != nil {
			return nil, err
		}
		return fn(typed)
	}}
}

// FieldAccessors creates accessors reading struct fields directly, exported or not.
// Output names use the first letter lower case rule, i.e. MainColor -> mainColor
func FieldAccessors(rType reflect.Type, fields ...string) ([]Accessor, error) {
	result := make([]Accessor, 0, len(fields))
	for _, name := range fields {
		field, err := visitor.FieldOf(rType, name)
		if err != nil {
			return nil, err
		}
		result = append(result, fieldAccessor(field, name))
	}
	return result, nil
}

func assertEntity[T any](entity interface{}) (T, error) {
	if typed, ok := entity.(T); ok {
		return typed, nil
	}
	value := reflect.ValueOf(entity)
	if value.Kind() == reflect.Ptr && !value.IsNil() {
		if typed, ok := value.Elem().Interface().(T); ok {
			return typed, nil
		}
	}
	var zero T
	return zero, errors.Errorf("expected %v, got %T", reflect.TypeOf((*T)(nil)).Elem(), entity)
}

// methodAccessors returns accessors discovered from rType method set, sorted by method name
func methodAccessors(rType reflect.Type) []Accessor {
	accessors, _ := methodCache.GetOrCompute(rType, func() ([]Accessor, error) {
		var result []Accessor
		for i := 0; i < rType.NumMethod(); i++ {
			method := rType.Method(i)
			name, ok := FieldName(method.Name)
			if !ok || !isAccessor(method.Type) {
				continue
			}
			result = append(result, Accessor{
				Name:   name,
				source: method.Name[len(accessorPrefix):],
				Get:    methodGetter(method),
			})
		}
		return result, nil
	})
	return accessors
}

// isAccessor returns true for func(receiver) V and func(receiver) (V, error) method types
func isAccessor(methodType reflect.Type) bool {
	if methodType.NumIn() != 1 {
		return false
	}
	switch methodType.NumOut() {
	case 1:
		return true
	case 2:
		return methodType.Out(1) == errorType
	}
	return false
}

func methodGetter(method reflect.Method) func(entity interface{}) (interface{}, error) {
	withError := method.Type.NumOut() == 2
	return func(entity interface{}) (interface{}, error) {
		out := method.Func.Call([]reflect.Value{reflect.ValueOf(entity)})
		if withError && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return out[0].Interface(), nil
	}
}

// invoke calls accessor, panics are reported as errors
func invoke(accessor *Accessor, entity interface{}) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("accessor %v panicked: %v", accessor.Name, r)
		}
	}()
	if value, err = accessor.Get(entity); err != nil {
		return nil, errors.Wrapf(err, "failed to invoke %v accessor", accessor.Name)
	}
	return value, nil
}
