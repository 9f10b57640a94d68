package visitor

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

type fieldKey struct {
	structType reflect.Type
	name       string
}

var fieldCache = NewSyncMap[fieldKey, *xunsafe.Field]()

// FieldOf returns cached accessor of a direct (non promoted) field of struct or pointer to struct type
func FieldOf(structType reflect.Type, name string) (*xunsafe.Field, error) {
	for structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, got %s", structType.String())
	}
	return fieldCache.GetOrCompute(fieldKey{structType: structType, name: name}, func() (*xunsafe.Field, error) {
		structField, ok := structType.FieldByName(name)
		if !ok || len(structField.Index) != 1 {
			return nil, fmt.Errorf("failed to lookup field %v at %s", name, structType.String())
		}
		return xunsafe.NewField(structField), nil
	})
}
