package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/skillmart/skillmart/internal/logging"
)

func TestNew_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{
		Level:  logging.LevelInfo,
		Output: &buf,
		JSON:   false,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected output to contain 'key=value', got: %s", output)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{
		Level:  logging.LevelInfo,
		Output: &buf,
		JSON:   true,
	})

	logger.Info("test message", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if entry["msg"] != "test message" {
		t.Errorf("expected msg='test message', got: %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("expected key='value', got: %v", entry["key"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{
		Level:  logging.LevelWarn,
		Output: &buf,
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should appear at warn level")
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: logging.LevelInfo, Output: &buf})

	ctx := logging.NewContext(context.Background(), logger)
	got := logging.FromContext(ctx)
	if got != logger {
		t.Error("FromContext should return the logger attached with NewContext")
	}

	// Without an attached logger the default is returned.
	if logging.FromContext(context.Background()) == nil {
		t.Error("FromContext should fall back to the default logger")
	}
}

func TestAttributeHelpers(t *testing.T) {
	tests := map[string]struct {
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		"skill":     {attr: logging.Skill("my-skill"), wantKey: logging.KeySkill, wantVal: "my-skill"},
		"ref":       {attr: logging.Ref("owner/foo"), wantKey: logging.KeyRef, wantVal: "owner/foo"},
		"repo":      {attr: logging.Repo("https://example.com/r"), wantKey: logging.KeyRepo, wantVal: "https://example.com/r"},
		"path":      {attr: logging.Path("/tmp/x"), wantKey: logging.KeyPath, wantVal: "/tmp/x"},
		"operation": {attr: logging.Operation("install"), wantKey: logging.KeyOperation, wantVal: "install"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("attr key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if got := tt.attr.Value.String(); got != tt.wantVal {
				t.Errorf("attr value = %q, want %q", got, tt.wantVal)
			}
		})
	}
}

func TestErr_NilError(t *testing.T) {
	attr := logging.Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) should return an empty attr, got key %q", attr.Key)
	}
}
