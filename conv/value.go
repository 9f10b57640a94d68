package conv

import (
	"time"

	"github.com/pkg/errors"
	"github.com/viant/serializable/node"
)

// encodeTime encodes time as one element sequence with formatted time
func encodeTime(value interface{}, options *Options) (node.Node, error) {
	var ts time.Time
	switch actual := value.(type) {
	case time.Time:
		ts = actual
	case *time.Time:
		if actual == nil {
			return node.Null(), nil
		}
		ts = *actual
	default:
		return nil, errors.Errorf("expected time.Time, got %T", value)
	}
	return node.Sequence{node.ScalarOf(ts.Format(options.timeLayout()))}, nil
}

// encodeLocation encodes time zone name with its offset in seconds at reference instant
func encodeLocation(value interface{}, options *Options) (node.Node, error) {
	var location *time.Location
	switch actual := value.(type) {
	case *time.Location:
		location = actual
	case time.Location:
		location = &actual
	default:
		return nil, errors.Errorf("expected time.Location, got %T", value)
	}
	if location == nil {
		return node.Null(), nil
	}
	_, offset := options.now().In(location).Zone()
	result := node.NewMapping(2)
	result.Put("timezone", node.ScalarOf(location.String()))
	result.Put("offset", node.ScalarOf(offset))
	return result, nil
}
