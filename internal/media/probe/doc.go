// Package probe wraps ffprobe for container and stream inspection. The
// compressor uses it to decide whether a transcode is worth attempting:
// files already below the configured bitrate floors are left alone.
package probe
