// Package pipeline runs the full build: scan the source directory,
// organize files into the timestamped output tree, optionally compress
// them, render the gallery page, and optionally zip the result. Stages run
// sequentially, once each. An unreadable root or an empty scan aborts the
// run; everything else is reported per file in the summary.
package pipeline
