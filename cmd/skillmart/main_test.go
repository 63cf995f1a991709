package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/skillmart/skillmart/internal/cli"
)

func TestCLIInitialization(t *testing.T) {
	// Capture stdout
	old := os.Stdout
	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("failed to create pipe: %v", pipeErr)
	}
	os.Stdout = w

	// Run help command to verify CLI initializes correctly
	ctx := context.Background()
	err := cli.Run(ctx, []string{"skillmart", "--help"})

	// Restore stdout
	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close pipe writer: %v", closeErr)
	}
	os.Stdout = old

	// Read captured output
	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("failed to read captured output: %v", copyErr)
	}
	output := buf.String()

	if err != nil {
		t.Fatalf("CLI initialization failed: %v", err)
	}

	if !strings.Contains(output, "skillmart") {
		t.Errorf("expected help output to contain 'skillmart', got: %q", output)
	}
	if !strings.Contains(output, "USAGE") || !strings.Contains(output, "COMMANDS") {
		t.Errorf("expected help output to contain USAGE and COMMANDS sections, got: %q", output)
	}
}

func TestVersionFlag(t *testing.T) {
	old := os.Stdout
	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("failed to create pipe: %v", pipeErr)
	}
	os.Stdout = w

	ctx := context.Background()
	err := cli.Run(ctx, []string{"skillmart", "--version"})

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close pipe writer: %v", closeErr)
	}
	os.Stdout = old

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("failed to read captured output: %v", copyErr)
	}
	output := buf.String()

	if err != nil {
		t.Fatalf("--version flag failed: %v", err)
	}

	if !strings.Contains(output, "skillmart") {
		t.Errorf("expected version output to contain 'skillmart', got: %q", output)
	}
}
