// Package node defines the converter output tree: scalars, sequences, ordered
// mappings and raw (unconverted) values, with JSON and YAML encoders.
package node
