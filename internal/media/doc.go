// Package media classifies files into image/audio/video categories, resolves
// MIME types for gallery playback elements, and matches file names against
// user-supplied tab patterns.
//
// Tab matching is a case-insensitive substring test against the file name: a
// pattern of "mp4" or ".mp4" catches extension, and "holiday" catches any
// file with that word in its name. A file may match several patterns and is
// then copied into every matching tab.
package media
