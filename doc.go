// Package serializable converts getter exposing entities into ordered node trees
// and encodes them as JSON or YAML.
//
//	type Country struct{ name string }
//
//	func (c *Country) GetName() string { return c.name }
//
//	text, err := serializable.ToJSON(&Country{name: "Finland"}) // {"name":"Finland"}
//
// Entities must not reference themselves through slices or maps: containers do
// not consume the depth budget, so such a cycle ends in a fatal stack overflow.
// NaN and infinite floats cannot be encoded as JSON and ToJSON returns an error.
package serializable
