// Package archive zips a finished output tree into a single file for
// sharing.
package archive
