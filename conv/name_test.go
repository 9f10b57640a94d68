package conv

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFieldName(t *testing.T) {
	var testCases = []struct {
		description string
		method      string
		expect      string
		ok          bool
	}{
		{description: "camel", method: "GetMainColor", expect: "mainColor", ok: true},
		{description: "single word", method: "GetId", expect: "id", ok: true},
		{description: "acronym keeps remainder", method: "GetURL", expect: "uRL", ok: true},
		{description: "lower remainder", method: "Getaway", expect: "away", ok: true},
		{description: "unicode", method: "GetÄrea", expect: "ärea", ok: true},
		{description: "bare get", method: "Get"},
		{description: "no prefix", method: "MainColor"},
		{description: "setter", method: "SetMainColor"},
	}
	for _, testCase := range testCases {
		actual, ok := FieldName(testCase.method)
		assert.Equal(t, testCase.ok, ok, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
