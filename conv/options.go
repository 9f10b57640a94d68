package conv

import (
	"time"

	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
)

const (
	// DefaultMaxDepth is the default number of nested object boundaries converted
	DefaultMaxDepth = 4
	// DefaultMarker replaces values beyond recursion limit
	DefaultMarker = "***"
	// AtomLayout is ISO-8601 extended date time layout with numeric zone offset
	AtomLayout = "2006-01-02T15:04:05-07:00"
)

// Options contains configuration for the converter
type Options struct {
	// MaxDepth specifies number of nested objects to convert
	MaxDepth int
	// ThrowOnLimitExceeded returns RecursionLimitError when the limit is reached
	ThrowOnLimitExceeded bool
	// ReplaceValueOnLimitExceeded replaces values beyond the limit with Marker, otherwise raw values are kept
	ReplaceValueOnLimitExceeded bool
	// Marker replaces values beyond the limit
	Marker string
	// TimeLayout is used to format time.Time
	TimeLayout string
	// CaseFormat formats accessor derived names, lower first letter rule is used when empty
	CaseFormat text.CaseFormat
	// Clock returns reference instant for time zone offsets
	Clock func() time.Time
}

// Option modifies options
type Option func(o *Options)

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		MaxDepth:                    DefaultMaxDepth,
		ThrowOnLimitExceeded:        true,
		ReplaceValueOnLimitExceeded: true,
		Marker:                      DefaultMarker,
		TimeLayout:                  AtomLayout,
		Clock:                       time.Now,
	}
}

// Apply applies options
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

func (o *Options) marker() string {
	if o.Marker == "" {
		return DefaultMarker
	}
	return o.Marker
}

func (o *Options) timeLayout() string {
	if o.TimeLayout == "" {
		return AtomLayout
	}
	return o.TimeLayout
}

func (o *Options) now() time.Time {
	if o.Clock == nil {
		return time.Now()
	}
	return o.Clock()
}

// WithMaxDepth sets max depth
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithThrowOnLimitExceeded sets recursion limit error policy
func WithThrowOnLimitExceeded(flag bool) Option {
	return func(o *Options) {
		o.ThrowOnLimitExceeded = flag
	}
}

// WithReplaceValueOnLimitExceeded sets recursion limit replacement policy
func WithReplaceValueOnLimitExceeded(flag bool) Option {
	return func(o *Options) {
		o.ReplaceValueOnLimitExceeded = flag
	}
}

// WithMarker sets recursion limit marker
func WithMarker(marker string) Option {
	return func(o *Options) {
		o.Marker = marker
	}
}

// WithTimeLayout sets time layout
func WithTimeLayout(layout string) Option {
	return func(o *Options) {
		o.TimeLayout = layout
	}
}

// WithDateFormat sets time layout with ISO date format i.e. YYYY-MM-DD hh:mm:ss
func WithDateFormat(dateFormat string) Option {
	return func(o *Options) {
		o.TimeLayout = ftime.DateFormatToTimeLayout(dateFormat)
	}
}

// WithCaseFormat sets accessor name case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.CaseFormat = caseFormat
	}
}

// WithClock sets reference clock
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}
