package model

// Skill represents a parsed SKILL.md capability bundle.
type Skill struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Body          string            `json:"body"`
	AllowedTools  string            `json:"allowed_tools,omitempty"`
	License       string            `json:"license,omitempty"`
	Compatibility string            `json:"compatibility,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Field limits from the Agent Skills format.
const (
	MaxNameLength        = 64
	MaxDescriptionLength = 1024
)
