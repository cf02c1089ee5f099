package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	return entry
}

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))

	logger.Info("cell evaluated",
		String("day", "07"),
		Int("iterations", 10),
		Float64("ratio", 0.5))

	entry := decodeLine(t, &buf)
	if entry["message"] != "cell evaluated" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["day"] != "07" {
		t.Errorf("day = %v", entry["day"])
	}
	if entry["iterations"] != float64(10) {
		t.Errorf("iterations = %v", entry["iterations"])
	}
	if entry["ratio"] != 0.5 {
		t.Errorf("ratio = %v", entry["ratio"])
	}
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))

	logger.Error("merge failed", errors.New("markers missing"), String("path", "README.md"))

	entry := decodeLine(t, &buf)
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["error"] != "markers missing" {
		t.Errorf("error = %v", entry["error"])
	}
	if entry["path"] != "README.md" {
		t.Errorf("path = %v", entry["path"])
	}
}

func TestNewLoggerComponent(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "runner").Info("hello")

	entry := decodeLine(t, &buf)
	if entry["component"] != "runner" {
		t.Errorf("component = %v", entry["component"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entries should carry a timestamp")
	}
}

func TestZerologAdapterPrintf(t *testing.T) {
	var buf bytes.Buffer
	NewZerologAdapter(zerolog.New(&buf)).Printf("day %s in %s", "07", "1.2ms")

	entry := decodeLine(t, &buf)
	if entry["message"] != "day 07 in 1.2ms" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(log.New(&buf, "", 0))

	logger.Info("run finished", Int("cells", 6))
	logger.Error("run failed", errors.New("empty report"))

	out := buf.String()
	if !strings.Contains(out, "[INFO] run finished cells=6") {
		t.Errorf("info line missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR] run failed error=empty report") {
		t.Errorf("error line missing: %q", out)
	}
}
