package conv

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/serializable/visitor"
	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

// TaggedAccessors creates accessors for exported fields of a struct type in declaration order.
// The format tag timeLayout key overrides time layout of a field, i.e. `format:"timeLayout=2006-01-02"`.
func TaggedAccessors(rType reflect.Type) ([]Accessor, error) {
	structType := derefType(rType)
	if structType.Kind() != reflect.Struct {
		return nil, errors.Errorf("expected struct type, got %s", rType.String())
	}
	var result []Accessor
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		if structField.PkgPath != "" || structField.Anonymous {
			continue
		}
		tag, err := format.Parse(structField.Tag)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %v tag at %s.%s", format.TagName, structType.String(), structField.Name)
		}
		field, err := visitor.FieldOf(structType, structField.Name)
		if err != nil {
			return nil, err
		}
		accessor := fieldAccessor(field, structField.Name)
		accessor.TimeLayout = tag.TimeLayout
		result = append(result, accessor)
	}
	return result, nil
}

func fieldAccessor(field *xunsafe.Field, name string) Accessor {
	return Accessor{
		Name:   lowerFirst(name),
		source: upperFirst(name),
		Get: func(entity interface{}) (interface{}, error) {
			ptr := xunsafe.AsPointer(entity)
			if ptr == nil {
				return nil, errors.Errorf("nil entity for field %v", field.Name)
			}
			return field.Value(ptr), nil
		},
	}
}
