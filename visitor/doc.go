// Package visitor offers generic visitors for common container types.
// It provides reflection-backed iteration over maps, slices and arrays,
// cached struct field accessors, with simple callback-based traversal.
package visitor
