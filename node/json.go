package node

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/francoispqt/gojay"
)

var nullJSON = []byte("null")

// MarshalJSON encodes node as JSON, mapping keys keep insertion order
func MarshalJSON(n Node) ([]byte, error) {
	if err := checkRaw(n); err != nil {
		return nil, err
	}
	switch actual := n.(type) {
	case nil:
		return nullJSON, nil
	case *Mapping:
		return gojay.MarshalJSONObject(actual)
	case Sequence:
		return gojay.MarshalJSONArray(actual)
	case Scalar:
		value := normalize(actual.Value)
		if value == nil {
			return nullJSON, nil
		}
		return gojay.Marshal(value)
	case Raw:
		return json.Marshal(actual.Value)
	}
	return nil, fmt.Errorf("unsupported node type: %T", n)
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (m *Mapping) MarshalJSONObject(enc *gojay.Encoder) {
	m.Range(func(key string, n Node) bool {
		encodeKey(enc, key, n)
		return true
	})
}

// IsNil implements gojay.MarshalerJSONObject
func (m *Mapping) IsNil() bool {
	return m == nil
}

// MarshalJSON implements json.Marshaler
func (m *Mapping) MarshalJSON() ([]byte, error) {
	return MarshalJSON(m)
}

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (s Sequence) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range s {
		encodeItem(enc, item)
	}
}

// IsNil implements gojay.MarshalerJSONArray, an empty sequence is encoded as []
func (s Sequence) IsNil() bool {
	return false
}

// MarshalJSON implements json.Marshaler
func (s Sequence) MarshalJSON() ([]byte, error) {
	return MarshalJSON(s)
}

// MarshalJSON implements json.Marshaler
func (s Scalar) MarshalJSON() ([]byte, error) {
	return MarshalJSON(s)
}

// MarshalJSON implements json.Marshaler
func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value)
}

func encodeKey(enc *gojay.Encoder, key string, n Node) {
	switch actual := n.(type) {
	case *Mapping:
		enc.ObjectKey(key, actual)
	case Sequence:
		enc.ArrayKey(key, actual)
	case Scalar:
		switch value := normalize(actual.Value).(type) {
		case nil:
			enc.NullKey(key)
		case string:
			enc.StringKey(key, value)
		case bool:
			enc.BoolKey(key, value)
		case int64:
			enc.Int64Key(key, value)
		case uint64:
			enc.Uint64Key(key, value)
		case float64:
			enc.Float64Key(key, value)
		default:
			embedded := embeddedJSON(value)
			enc.AddEmbeddedJSONKey(key, &embedded)
		}
	case Raw:
		embedded := embeddedJSON(actual.Value)
		enc.AddEmbeddedJSONKey(key, &embedded)
	default:
		enc.NullKey(key)
	}
}

func encodeItem(enc *gojay.Encoder, n Node) {
	switch actual := n.(type) {
	case *Mapping:
		enc.Object(actual)
	case Sequence:
		enc.Array(actual)
	case Scalar:
		switch value := normalize(actual.Value).(type) {
		case nil:
			enc.Null()
		case string:
			enc.String(value)
		case bool:
			enc.Bool(value)
		case int64:
			enc.Int64(value)
		case uint64:
			enc.Uint64(value)
		case float64:
			enc.Float64(value)
		default:
			embedded := embeddedJSON(value)
			enc.AddEmbeddedJSON(&embedded)
		}
	case Raw:
		embedded := embeddedJSON(actual.Value)
		enc.AddEmbeddedJSON(&embedded)
	default:
		enc.Null()
	}
}

// normalize maps named and sized scalar types to string, bool, int64, uint64 or float64
func normalize(value interface{}) interface{} {
	switch actual := value.(type) {
	case nil, string, bool, int64, uint64, float64:
		return actual
	case int:
		return int64(actual)
	case []byte:
		return string(actual)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		return rValue.String()
	case reflect.Bool:
		return rValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rValue.Uint()
	case reflect.Float32, reflect.Float64:
		return rValue.Float()
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if rValue.IsNil() {
			return nil
		}
	}
	return value
}

// embeddedJSON encodes value with encoding/json, checkRaw reports failures before encoding starts
func embeddedJSON(value interface{}) gojay.EmbeddedJSON {
	data, err := json.Marshal(value)
	if err != nil {
		return nullJSON
	}
	return data
}

func checkRaw(n Node) error {
	switch actual := n.(type) {
	case *Mapping:
		var err error
		actual.Range(func(key string, item Node) bool {
			if err = checkRaw(item); err != nil {
				err = fmt.Errorf("%v: %w", key, err)
			}
			return err == nil
		})
		return err
	case Sequence:
		for i, item := range actual {
			if err := checkRaw(item); err != nil {
				return fmt.Errorf("[%v]: %w", i, err)
			}
		}
	case Raw:
		if _, err := json.Marshal(actual.Value); err != nil {
			return fmt.Errorf("failed to encode raw %T value: %w", actual.Value, err)
		}
	case Scalar:
		switch value := normalize(actual.Value).(type) {
		case float64:
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return fmt.Errorf("unsupported float value: %v", value)
			}
		case nil, string, bool, int64, uint64:
		default:
			if _, err := json.Marshal(actual.Value); err != nil {
				return fmt.Errorf("failed to encode scalar %T value: %w", actual.Value, err)
			}
		}
	}
	return nil
}
