// Package permissions evaluates the active skill's allowed-tools list.
package permissions

import (
	"slices"
	"strings"

	"github.com/skillmart/skillmart/internal/model"
)

// Gate decides whether a tool may be used while a skill is active.
// A skill that declares no allowed-tools leaves every tool permitted.
type Gate struct {
	tools        []string
	unrestricted bool
}

// NewGate builds a gate from a comma-separated allowed-tools declaration.
func NewGate(allowedTools string) *Gate {
	trimmed := strings.TrimSpace(allowedTools)
	if trimmed == "" {
		return &Gate{unrestricted: true}
	}

	parts := strings.Split(trimmed, ",")
	tools := make([]string, 0, len(parts))
	for _, part := range parts {
		if tool := strings.TrimSpace(part); tool != "" {
			tools = append(tools, tool)
		}
	}
	if len(tools) == 0 {
		return &Gate{unrestricted: true}
	}

	return &Gate{tools: tools}
}

// ForActive builds a gate for the given active-skill record.
func ForActive(active model.ActiveSkill) *Gate {
	return NewGate(active.AllowedTools)
}

// Allows reports whether the named tool is permitted. Matching is
// case-sensitive, mirroring how hosts compare tool names.
func (g *Gate) Allows(tool string) bool {
	if g.unrestricted {
		return true
	}
	return slices.Contains(g.tools, tool)
}

// Unrestricted reports whether the gate permits every tool.
func (g *Gate) Unrestricted() bool {
	return g.unrestricted
}

// Tools returns the declared tool list, nil when unrestricted.
func (g *Gate) Tools() []string {
	return g.tools
}
