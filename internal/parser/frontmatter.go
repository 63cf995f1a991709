// Package parser reads SKILL.md descriptor files in the Agent Skills format:
// a YAML frontmatter block delimited by --- lines, followed by a free-text body.
package parser

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontmatterResult contains the split frontmatter and remaining body.
type FrontmatterResult struct {
	// Frontmatter contains the raw frontmatter bytes
	Frontmatter []byte
	// Body contains the remaining content after the closing delimiter
	Body string
	// HasFrontmatter indicates whether a complete frontmatter block was found
	HasFrontmatter bool
}

var delimiter = []byte("---")

// SplitFrontmatter extracts the YAML frontmatter block from content.
// A file without an opening --- line, or without a closing one, is treated
// as having no frontmatter at all.
func SplitFrontmatter(content []byte) FrontmatterResult {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return FrontmatterResult{Body: string(content)}
	}

	remaining := content[len(delimiter):]

	// Handle both \n and \r\n line endings
	if bytes.HasPrefix(remaining, []byte("\r\n")) {
		remaining = remaining[2:]
	} else {
		remaining = remaining[1:]
	}

	// Scan line by line for the closing fence. The fence line must be
	// exactly --- (trailing whitespace tolerated); a longer dash run is
	// ordinary content, not a delimiter.
	offset := 0
	for {
		lineEnd := bytes.IndexByte(remaining[offset:], '\n')
		var line []byte
		bodyStart := len(remaining)
		if lineEnd == -1 {
			line = remaining[offset:]
		} else {
			line = remaining[offset : offset+lineEnd]
			bodyStart = offset + lineEnd + 1
		}

		if isFenceLine(line) {
			// Normalize frontmatter by removing \r from Windows line endings
			frontmatter := bytes.ReplaceAll(remaining[:offset], []byte("\r\n"), []byte("\n"))
			frontmatter = bytes.TrimSuffix(frontmatter, []byte("\n"))
			return FrontmatterResult{
				Frontmatter:    frontmatter,
				Body:           string(remaining[bodyStart:]),
				HasFrontmatter: true,
			}
		}

		if lineEnd == -1 {
			return FrontmatterResult{Body: string(content)}
		}
		offset = bodyStart
	}
}

// isFenceLine reports whether line is a frontmatter fence.
func isFenceLine(line []byte) bool {
	return string(bytes.TrimRight(line, " \t\r")) == "---"
}

// ParseYAMLFrontmatter parses a frontmatter block into a mapping.
func ParseYAMLFrontmatter(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return make(map[string]any), nil
	}

	var result map[string]any
	if err := yaml.Unmarshal(frontmatter, &result); err != nil {
		return nil, fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}

	return result, nil
}

// NormalizeBody trims surrounding whitespace and normalizes line endings.
func NormalizeBody(body string) string {
	trimmed := strings.TrimSpace(body)
	return strings.ReplaceAll(trimmed, "\r\n", "\n")
}
