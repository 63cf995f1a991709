package permissions

import (
	"testing"

	"github.com/skillmart/skillmart/internal/model"
)

func TestNewGate(t *testing.T) {
	tests := map[string]struct {
		allowedTools string
		tool         string
		want         bool
	}{
		"listed tool":             {allowedTools: "Read,Write", tool: "Read", want: true},
		"unlisted tool":           {allowedTools: "Read,Write", tool: "Bash", want: false},
		"empty list permits all":  {allowedTools: "", tool: "Bash", want: true},
		"whitespace only":         {allowedTools: "  ", tool: "Bash", want: true},
		"spaces around names":     {allowedTools: " Read , Write ", tool: "Write", want: true},
		"case sensitive":          {allowedTools: "Read", tool: "read", want: false},
		"stray commas":            {allowedTools: ",Read,,", tool: "Read", want: true},
		"stray commas deny other": {allowedTools: ",Read,,", tool: "Write", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gate := NewGate(tt.allowedTools)
			if got := gate.Allows(tt.tool); got != tt.want {
				t.Errorf("NewGate(%q).Allows(%q) = %v, want %v", tt.allowedTools, tt.tool, got, tt.want)
			}
		})
	}
}

func TestGate_Unrestricted(t *testing.T) {
	if !NewGate("").Unrestricted() {
		t.Error("empty declaration should be unrestricted")
	}
	if NewGate("Read").Unrestricted() {
		t.Error("declared tools should restrict the gate")
	}
}

func TestForActive(t *testing.T) {
	gate := ForActive(model.ActiveSkill{Name: "foo", AllowedTools: "Read"})
	if !gate.Allows("Read") || gate.Allows("Write") {
		t.Error("gate should reflect the active skill's allowed tools")
	}

	open := ForActive(model.ActiveSkill{Name: "bar"})
	if !open.Allows("Write") {
		t.Error("active skill without allowed tools should permit everything")
	}
}

func TestGate_Tools(t *testing.T) {
	gate := NewGate("Read, Write")
	tools := gate.Tools()
	if len(tools) != 2 || tools[0] != "Read" || tools[1] != "Write" {
		t.Errorf("Tools() = %v, want [Read Write]", tools)
	}
	if NewGate("").Tools() != nil {
		t.Error("unrestricted gate should have nil tool list")
	}
}
