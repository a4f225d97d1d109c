package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"imgpack/internal/logging"
)

func TestConsoleHandlerLiftsComponentIntoPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logging.WithComponent(logger, "organizer").Info("copied file",
		logging.String("tab", "jpg"),
		logging.Int("count", 3),
	)

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO organizer: copied file") {
		t.Fatalf("missing component prefix in %q", line)
	}
	if !strings.Contains(line, "tab=jpg") || !strings.Contains(line, "count=3") {
		t.Fatalf("missing attrs in %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not appear as key/value in %q", line)
	}
}

func TestConsoleHandlerQuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Warn("copy failed", logging.Error(errors.New("permission denied: /tmp/x")))
	if !strings.Contains(buf.String(), `error="permission denied: /tmp/x"`) {
		t.Fatalf("expected quoted error value, got %q", buf.String())
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info record should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "emitted") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestJSONHandlerNormalizesKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("scan complete", logging.Int("files", 12))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode json record: %v", err)
	}
	if record["msg"] != "scan complete" {
		t.Fatalf("unexpected msg field: %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("unexpected level field: %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("missing ts field")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
