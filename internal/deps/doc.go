// Package deps discovers the external binaries imgpack can use (ffmpeg and
// ffprobe). Availability feeds both the `imgpack deps` command and the
// compressor's degradation policy: missing binaries downgrade audio/video
// compression to a warning no-op instead of failing the run.
package deps
