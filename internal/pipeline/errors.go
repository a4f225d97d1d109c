package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrScan marks fatal scan failures: unreadable root, nothing found.
	ErrScan = errors.New("scan error")
	// ErrConfiguration marks invalid configuration or flag combinations.
	ErrConfiguration = errors.New("configuration error")
	// ErrExternalTool marks ffmpeg/ffprobe invocation failures.
	ErrExternalTool = errors.New("external tool error")
	// ErrTransient marks per-file I/O failures the run survives.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for classification. The marker should be one of
// the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error should abort the run rather than be
// reported per file.
func Fatal(err error) bool {
	return errors.Is(err, ErrScan) || errors.Is(err, ErrConfiguration)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
