// Package marketplace installs and removes skills from marketplace
// repositories via sparse checkout of the repository's skills/ subtree.
package marketplace

import (
	"fmt"
	"strings"
)

// Ref is a resolved skill reference: the repository to fetch from and the
// skill name, which is also the target directory name.
type Ref struct {
	RepoURL string
	Name    string
}

// ParseRef resolves a raw skill reference. Two forms are accepted:
//
//	https://example.com/owner/repo  - full repository URL, skill name is the
//	                                  last path segment
//	owner/skill-name                - shorthand, expanded to the owner's
//	                                  conventional skills repository
func ParseRef(raw string) (Ref, error) {
	if strings.HasPrefix(raw, "http") {
		trimmed := strings.TrimRight(raw, "/")
		segments := strings.Split(trimmed, "/")
		return Ref{
			RepoURL: raw,
			Name:    segments[len(segments)-1],
		}, nil
	}

	if owner, name, ok := strings.Cut(raw, "/"); ok {
		return Ref{
			RepoURL: fmt.Sprintf("https://github.com/%s/skills", owner),
			Name:    name,
		}, nil
	}

	return Ref{}, fmt.Errorf("%w: %q (use 'owner/skill-name' format)", ErrInvalidRef, raw)
}

// SkillNameFromRef extracts just the skill name from a raw reference,
// without requiring the reference to resolve to a repository. Used by
// removal, which never contacts the source.
func SkillNameFromRef(raw string) string {
	trimmed := strings.TrimRight(raw, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx != -1 {
		return trimmed[idx+1:]
	}
	return trimmed
}
