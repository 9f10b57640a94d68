// Package conv converts an object graph into a node tree by walking accessor
// methods (exported, argument-less methods prefixed with Get), recursing into
// nested objects, slices and maps up to a configurable depth.
// Accessors can be discovered by reflection or registered per type, and
// value types such as time.Time and *time.Location use dedicated encoders.
//
// Only nested objects consume the depth budget; slices and maps do not, and
// there is no cycle detection. A slice or map that contains itself recurses
// until the runtime aborts with a fatal stack overflow, which cannot be recovered.
// With both limit policies disabled, values beyond the limit are kept as node.Raw
// and must be encodable by the caller's encoder.
package conv
