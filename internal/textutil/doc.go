// Package textutil provides small text helpers shared across the pipeline,
// currently the slug conversion used to turn user-supplied tab patterns into
// filesystem-safe directory names.
package textutil
