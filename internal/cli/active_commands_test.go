package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/skillmart/skillmart/internal/state"
)

func TestUseCommand(t *testing.T) {
	skillsDir, stateFile := sandboxPaths(t)
	installSkillFixture(t, skillsDir, "foo",
		"---\nname: foo\ndescription: x\nallowed-tools: \"Read,Write\"\n---\n")

	output, err := captureRun(t, "use", "foo")
	if err != nil {
		t.Fatalf("use error = %v", err)
	}
	if !strings.Contains(output, "Activated skill") {
		t.Errorf("use output = %q", output)
	}

	active, ok := state.NewStore(stateFile).Active()
	if !ok {
		t.Fatal("no active skill recorded after use")
	}
	if active.Name != "foo" || active.AllowedTools != "Read,Write" {
		t.Errorf("active = %+v, want foo/Read,Write", active)
	}
}

func TestUseCommand_NotInstalled(t *testing.T) {
	sandboxPaths(t)

	_, err := captureRun(t, "use", "ghost")
	if err == nil || !strings.Contains(err.Error(), "not installed") {
		t.Fatalf("use error = %v, want not-installed error", err)
	}
}

func TestUseCommand_InvalidDescriptor(t *testing.T) {
	skillsDir, _ := sandboxPaths(t)
	installSkillFixture(t, skillsDir, "bad", "---\ndescription: missing name\n---\n")

	_, err := captureRun(t, "use", "bad")
	if err == nil || !strings.Contains(err.Error(), "invalid descriptor") {
		t.Fatalf("use error = %v, want invalid-descriptor error", err)
	}
}

func TestCurrentCommand_NoActiveSkill(t *testing.T) {
	sandboxPaths(t)

	output, err := captureRun(t, "current")
	if err != nil {
		t.Fatalf("current error = %v", err)
	}
	if !strings.Contains(output, "No active skill") {
		t.Errorf("current output = %q", output)
	}
}

func TestActivationLifecycle(t *testing.T) {
	skillsDir, stateFile := sandboxPaths(t)
	installSkillFixture(t, skillsDir, "foo",
		"---\nname: foo\ndescription: x\nallowed-tools: Read\n---\n")

	if _, err := captureRun(t, "use", "foo"); err != nil {
		t.Fatalf("use error = %v", err)
	}

	output, err := captureRun(t, "--no-color", "current")
	if err != nil {
		t.Fatalf("current error = %v", err)
	}
	if !strings.Contains(output, "foo") || !strings.Contains(output, "Read") {
		t.Errorf("current output = %q", output)
	}

	if _, err := captureRun(t, "deactivate"); err != nil {
		t.Fatalf("deactivate error = %v", err)
	}

	if _, err := os.Stat(stateFile); !os.IsNotExist(err) {
		t.Errorf("state file should be deleted after deactivate, stat err = %v", err)
	}

	output, err = captureRun(t, "current")
	if err != nil {
		t.Fatalf("current error = %v", err)
	}
	if !strings.Contains(output, "No active skill") {
		t.Errorf("current after deactivate = %q", output)
	}
}

func TestCurrentCommand_Check(t *testing.T) {
	skillsDir, _ := sandboxPaths(t)
	installSkillFixture(t, skillsDir, "foo",
		"---\nname: foo\ndescription: x\nallowed-tools: \"Read,Write\"\n---\n")

	if _, err := captureRun(t, "use", "foo"); err != nil {
		t.Fatalf("use error = %v", err)
	}

	output, err := captureRun(t, "--no-color", "current", "--check", "Read")
	if err != nil {
		t.Fatalf("check Read error = %v", err)
	}
	if !strings.Contains(output, "allowed") {
		t.Errorf("check Read output = %q", output)
	}

	_, err = captureRun(t, "current", "--check", "Bash")
	if err == nil || !strings.Contains(err.Error(), "not allowed") {
		t.Fatalf("check Bash error = %v, want not-allowed error", err)
	}
}

func TestCurrentCommand_CheckWithoutActiveSkill(t *testing.T) {
	sandboxPaths(t)

	output, err := captureRun(t, "--no-color", "current", "--check", "Bash")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(output, "allowed") {
		t.Errorf("check output = %q", output)
	}
}

func TestDeactivateCommand_NoopWhenInactive(t *testing.T) {
	sandboxPaths(t)

	output, err := captureRun(t, "deactivate")
	if err != nil {
		t.Fatalf("deactivate error = %v", err)
	}
	if !strings.Contains(output, "Cleared active skill") {
		t.Errorf("deactivate output = %q", output)
	}
}
