package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/skillmart/skillmart/internal/logging"
	"github.com/skillmart/skillmart/internal/model"
)

// SkillFileName is the descriptor file expected in every skill directory.
const SkillFileName = "SKILL.md"

// Status classifies the outcome of parsing a descriptor file. The original
// Agent Skills plugin collapsed every failure into "no skill"; keeping them
// apart lets callers report precisely what was wrong.
type Status int

const (
	// StatusOK means a valid skill was parsed.
	StatusOK Status = iota
	// StatusNotFound means the descriptor file does not exist or is unreadable.
	StatusNotFound
	// StatusNoFrontmatter means the file has no complete frontmatter block.
	StatusNoFrontmatter
	// StatusMalformed means the frontmatter is not a valid YAML mapping.
	StatusMalformed
	// StatusInvalid means required fields are missing or fail validation.
	StatusInvalid
)

// String returns a human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusNoFrontmatter:
		return "no frontmatter"
	case StatusMalformed:
		return "malformed frontmatter"
	case StatusInvalid:
		return "validation failed"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// Result is the tagged outcome of parsing a descriptor file.
// Skill is only meaningful when Status is StatusOK; Reason carries
// detail for StatusMalformed and StatusInvalid.
type Result struct {
	Status Status
	Skill  model.Skill
	Reason string
}

// OK reports whether the result holds a valid skill.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// namePattern matches valid skill names: lowercase alphanumeric runs
// separated by single hyphens.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateName checks a skill name against the Agent Skills format rules.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > model.MaxNameLength {
		return fmt.Errorf("name exceeds %d characters", model.MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name %q must be lowercase hyphen-separated alphanumerics", name)
	}
	return nil
}

// ValidateDescription checks a skill description against the format rules.
func ValidateDescription(description string) error {
	if description == "" {
		return fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > model.MaxDescriptionLength {
		return fmt.Errorf("description exceeds %d characters", model.MaxDescriptionLength)
	}
	return nil
}

// ParseFile reads and parses a single SKILL.md descriptor file.
func ParseFile(path string) Result {
	// #nosec G304 - path is resolved from the configured skills directory
	content, err := os.ReadFile(path)
	if err != nil {
		logging.Debug("descriptor not readable", logging.Path(path), logging.Err(err))
		return Result{Status: StatusNotFound}
	}

	split := SplitFrontmatter(content)
	if !split.HasFrontmatter {
		return Result{Status: StatusNoFrontmatter}
	}

	fm, err := ParseYAMLFrontmatter(split.Frontmatter)
	if err != nil {
		return Result{Status: StatusMalformed, Reason: err.Error()}
	}

	skill := model.Skill{
		Name:          extractString(fm, "name"),
		Description:   extractString(fm, "description"),
		AllowedTools:  extractString(fm, "allowed-tools"),
		License:       extractString(fm, "license"),
		Compatibility: extractString(fm, "compatibility"),
		Metadata:      extractStringMap(fm, "metadata"),
		Body:          NormalizeBody(split.Body),
	}

	if err := ValidateName(skill.Name); err != nil {
		return Result{Status: StatusInvalid, Reason: err.Error()}
	}
	if err := ValidateDescription(skill.Description); err != nil {
		return Result{Status: StatusInvalid, Reason: err.Error()}
	}

	return Result{Status: StatusOK, Skill: skill}
}

// ListSkills enumerates the immediate, non-hidden subdirectories of dir and
// parses each one's SKILL.md. Directories whose descriptor does not parse
// cleanly are skipped. The result is sorted lexicographically by name.
func ListSkills(dir string) ([]model.Skill, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("skills directory not found", logging.Path(dir))
			return []model.Skill{}, nil
		}
		return nil, fmt.Errorf("failed to read skills directory %q: %w", dir, err)
	}

	skills := make([]model.Skill, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		descriptor := filepath.Join(dir, entry.Name(), SkillFileName)
		result := ParseFile(descriptor)
		if !result.OK() {
			logging.Debug("skipping skill directory",
				logging.Path(descriptor),
				logging.Operation(result.Status.String()),
			)
			continue
		}
		skills = append(skills, result.Skill)
	}

	slices.SortFunc(skills, func(a, b model.Skill) int {
		return strings.Compare(a.Name, b.Name)
	})

	return skills, nil
}

// extractString extracts a string value from a frontmatter map.
func extractString(fm map[string]any, key string) string {
	if val, ok := fm[key]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return ""
}

// extractStringMap extracts a nested mapping from a frontmatter map,
// stringifying non-string values.
func extractStringMap(fm map[string]any, key string) map[string]string {
	val, ok := fm[key]
	if !ok {
		return nil
	}
	mapVal, ok := val.(map[string]any)
	if !ok {
		return nil
	}
	result := make(map[string]string, len(mapVal))
	for k, v := range mapVal {
		if strVal, ok := v.(string); ok {
			result[k] = strVal
		} else {
			result[k] = fmt.Sprintf("%v", v)
		}
	}
	return result
}
