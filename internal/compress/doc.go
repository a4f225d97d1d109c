// Package compress rewrites organized media files in place to save space.
// Images are resized and re-encoded in process; audio and video are
// transcoded through ffmpeg when it is installed. Every rewrite goes
// through a temp file and replaces the original only when the result is
// smaller, so a file is never made worse or left half-written.
package compress
