package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn", "console")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Info("hidden")
	log.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn missing: %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", "json")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Info("hello", "step", "Download")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "hello" || rec["step"] != "Download" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_BadInputs(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(&buf, "loud", "console"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := New(&buf, "info", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
