package node

import (
	"reflect"
	"strconv"
)

// Kind represents a node kind
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
	KindRaw
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindRaw:
		return "raw"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Node represents an output tree node: Scalar, Sequence, *Mapping or Raw
type Node interface {
	Kind() Kind
	//Interface returns plain go value: map[string]interface{}, []interface{} or scalar
	Interface() interface{}
	node()
}

type (
	//Scalar represents string, number, bool or nil value
	Scalar struct {
		Value interface{}
	}

	//Sequence represents ordered list of nodes
	Sequence []Node

	//Raw represents a value left unconverted
	Raw struct {
		Value interface{}
	}
)

// Null returns nil scalar
func Null() Scalar {
	return Scalar{}
}

// ScalarOf returns a scalar node
func ScalarOf(value interface{}) Scalar {
	return Scalar{Value: value}
}

// Kind returns KindScalar
func (s Scalar) Kind() Kind { return KindScalar }

// Interface returns scalar value
func (s Scalar) Interface() interface{} { return s.Value }

// IsNull returns true for nil value
func (s Scalar) IsNull() bool { return isNil(s.Value) }

func (s Scalar) node() {}

// Kind returns KindSequence
func (s Sequence) Kind() Kind { return KindSequence }

// Len returns sequence length
func (s Sequence) Len() int { return len(s) }

func (s Sequence) node() {}

// Kind returns KindRaw
func (r Raw) Kind() Kind { return KindRaw }

// Interface returns unconverted value
func (r Raw) Interface() interface{} { return r.Value }

// IsNull returns true for nil value
func (r Raw) IsNull() bool { return isNil(r.Value) }

func (r Raw) node() {}

// Interface returns []interface{} representation
func (s Sequence) Interface() interface{} {
	result := make([]interface{}, len(s))
	for i, item := range s {
		if item == nil {
			continue
		}
		result[i] = item.Interface()
	}
	return result
}

// IsNull returns true if node represents null value
func IsNull(n Node) bool {
	switch actual := n.(type) {
	case nil:
		return true
	case Scalar:
		return actual.IsNull()
	case Raw:
		return actual.IsNull()
	}
	return false
}

// Collapse replaces a one element indexed container with its sole element.
// A single element holding null is kept as is.
func Collapse(n Node) Node {
	switch actual := n.(type) {
	case Sequence:
		if len(actual) == 1 && !IsNull(actual[0]) {
			return actual[0]
		}
	case *Mapping:
		if actual.Len() != 1 {
			return n
		}
		if item, ok := actual.Get("0"); ok && !IsNull(item) {
			return item
		}
	}
	return n
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rValue.IsNil()
	}
	return false
}
