package conv

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/serializable/node"
)

func TestTaggedAccessors(t *testing.T) {
	note := "paid"
	issued := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	var testCases = []struct {
		description string
		entity      *Invoice
		expect      map[string]interface{}
	}{
		{
			description: "empty values",
			entity:      &Invoice{Number: "INV-1", Issued: issued, Posted: issued, Total: 12.5, secret: "y"},
			expect: map[string]interface{}{
				"number": "INV-1",
				"issued": "2024-03-05",
				"posted": "2024-03-05T10:00:00+00:00",
				"note":   nil,
				"lines":  []interface{}{},
				"total":  12.5,
			},
		},
		{
			description: "all values",
			entity:      &Invoice{Number: "INV-2", Issued: issued, Posted: issued, Note: &note, Lines: []string{"a", "b"}, Total: 1},
			expect: map[string]interface{}{
				"number": "INV-2",
				"issued": "2024-03-05",
				"posted": "2024-03-05T10:00:00+00:00",
				"note":   "paid",
				"lines":  []interface{}{"a", "b"},
				"total":  1.0,
			},
		},
	}

	accessors, err := TaggedAccessors(reflect.TypeOf(Invoice{}))
	require.Nil(t, err)
	converter := NewConverter(DefaultOptions())
	converter.Register(reflect.TypeOf(Invoice{}), accessors...)
	for _, testCase := range testCases {
		actual, err := converter.Convert(testCase.entity)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, []string{"number", "issued", "posted", "note", "lines", "total"}, actual.(*node.Mapping).Keys(), testCase.description)
		assert.EqualValues(t, testCase.expect, actual.Interface(), testCase.description)
	}

	_, err = TaggedAccessors(reflect.TypeOf(1))
	assert.Error(t, err)
}
