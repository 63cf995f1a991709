package marketplace

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for installer outcomes, matchable with errors.Is.
var (
	// ErrInvalidRef means the skill reference was neither a URL nor owner/name.
	ErrInvalidRef = errors.New("invalid skill reference")
	// ErrAlreadyInstalled means a directory for the skill already exists.
	ErrAlreadyInstalled = errors.New("skill is already installed")
	// ErrNotInstalled means no directory for the skill exists.
	ErrNotInstalled = errors.New("skill is not installed")
	// ErrSkillMissing means the checkout succeeded but the skill subtree
	// was not present in the repository.
	ErrSkillMissing = errors.New("skill not found in repository")
)

// FetchError reports a failed git subprocess invocation, carrying the
// captured stderr of the subprocess.
type FetchError struct {
	Op     string // "clone" or "sparse-checkout"
	Repo   string
	Stderr string
	Err    error
}

// Error returns a human-readable message including the captured stderr.
func (e *FetchError) Error() string {
	msg := fmt.Sprintf("git %s of %s failed", e.Op, e.Repo)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return msg + ": " + stderr
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying subprocess error.
func (e *FetchError) Unwrap() error {
	return e.Err
}
