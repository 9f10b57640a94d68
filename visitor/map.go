package visitor

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"sort"
)

// MapVisitorOf creates a visitor iterating map[K]E in ascending key order.
func MapVisitorOf[K cmp.Ordered, E any](aMap map[K]E) Visitor[K, E] {
	keys := make([]K, 0, len(aMap))
	for k := range aMap {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return func(f func(key K, element E) (bool, error)) error {
		for _, k := range keys {
			continueVisit, err := f(k, aMap[k])
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitorOf dynamically creates a visitor from any map value.
// Keys are formatted as strings, entries are visited in ascending key order.
func AnyMapVisitorOf(value interface{}) (Visitor[string, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return AnyTypedMapVisitorOf[string, interface{}](actual), nil
	case map[string]string:
		return AnyTypedMapVisitorOf[string, string](actual), nil
	case map[string]int:
		return AnyTypedMapVisitorOf[string, int](actual), nil
	case map[string]bool:
		return AnyTypedMapVisitorOf[string, bool](actual), nil
	case map[int]interface{}:
		return AnyTypedMapVisitorOf[int, interface{}](actual), nil
	case map[int]string:
		return AnyTypedMapVisitorOf[int, string](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedMapVisitorOf returns ordered visitor with string formatted keys
func AnyTypedMapVisitorOf[K cmp.Ordered, V any](aMap map[K]V) Visitor[string, any] {
	visit := MapVisitorOf[K, V](aMap)
	return func(f func(key string, element any) (bool, error)) error {
		return visit(func(key K, element V) (bool, error) {
			return f(fmt.Sprint(key), element)
		})
	}
}

// AnyMapVisitor defines any map visitor
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key string, element any) (bool, error)) error {
	keys := v.data.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
	for _, key := range keys {
		continueVisit, err := f(fmt.Sprint(key.Interface()), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func lessKey(x, y reflect.Value) bool {
	if x.Kind() == y.Kind() {
		switch x.Kind() {
		case reflect.String:
			return x.String() < y.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return x.Int() < y.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return x.Uint() < y.Uint()
		case reflect.Float32, reflect.Float64:
			return x.Float() < y.Float()
		}
	}
	return fmt.Sprint(x.Interface()) < fmt.Sprint(y.Interface())
}
