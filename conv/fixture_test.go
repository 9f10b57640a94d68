package conv

import (
	"errors"
	"time"
)

const (
	countryName = "Finland"
	countryCode = 358
	mainColor   = "Blue"
	flagHeight  = 150
	flagWidth   = 245
)

type Flag struct {
	mainColor  string
	height     int
	width      int
	registered bool
	options    interface{}
}

func (f *Flag) GetOptions() interface{} { return f.options }
func (f *Flag) GetMainColor() string    { return f.mainColor }
func (f *Flag) GetHeight() int          { return f.height }
func (f *Flag) GetWidth() int           { return f.width }
func (f *Flag) GetRegistered() bool     { return f.registered }

type Country struct {
	name string
	id   int
	flag *Flag
}

func (c *Country) GetName() string { return c.name }
func (c *Country) GetId() int      { return c.id }
func (c *Country) GetFlag() *Flag  { return c.flag }

// SetName is not an accessor
func (c *Country) SetName(name string) { c.name = name }

// Get has no field name
func (c *Country) Get() string { return c.name }

// GetByKey requires an argument
func (c *Country) GetByKey(key string) string { return key }

func newFlag(options ...map[string]interface{}) *Flag {
	ret := &Flag{mainColor: mainColor, height: flagHeight, width: flagWidth, registered: true, options: []interface{}{}}
	if len(options) > 0 {
		ret.options = options[0]
	}
	return ret
}

func newCountry(flag *Flag) *Country {
	return &Country{name: countryName, id: countryCode, flag: flag}
}

type Pair struct {
	left  *Flag
	right *Flag
}

func (p Pair) GetLeft() *Flag  { return p.left }
func (p Pair) GetRight() *Flag { return p.right }

type Holder struct {
	values interface{}
}

func (h *Holder) GetValues() interface{} { return h.values }

var errBroken = errors.New("broken")

type Broken struct{}

func (b *Broken) GetValue() (int, error) { return 0, errBroken }

type Panicky struct{}

func (p *Panicky) GetValue() int { panic("boom") }

type Releasable struct {
	released time.Time
	zone     *time.Location
}

func (r *Releasable) GetReleased() time.Time     { return r.released }
func (r *Releasable) GetZone() *time.Location    { return r.zone }
func (r *Releasable) GetMissing() *time.Location { return nil }

type Money struct {
	Amount   int64
	Currency string
}

type Wallet struct {
	balance Money
}

func (w *Wallet) GetBalance() Money { return w.balance }

type Invoice struct {
	Number string
	Issued time.Time `format:"timeLayout=2006-01-02"`
	Posted time.Time
	Note   *string
	Lines  []string
	Total  float64
	secret string
}
