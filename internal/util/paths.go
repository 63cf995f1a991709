package util

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// SkillmartConfigPath returns the skillmart configuration directory
func SkillmartConfigPath() string {
	return filepath.Join(HomeDir(), ".config", "skillmart")
}

// DefaultSkillsPath returns the default installed-skills directory
func DefaultSkillsPath() string {
	return filepath.Join(HomeDir(), ".skillmart", "skills")
}

// DefaultStateFilePath returns the default active-skill state file location
func DefaultStateFilePath() string {
	return filepath.Join(HomeDir(), ".skillmart", ".active_skill.json")
}

// DefaultSourcesFilePath returns the default marketplace sources file location
func DefaultSourcesFilePath() string {
	return filepath.Join(SkillmartConfigPath(), "sources.toml")
}

// ExpandPath expands a leading ~ to the home directory and resolves
// relative paths against baseDir. Returns "" for an empty input.
func ExpandPath(path, baseDir string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		return filepath.Join(baseDir, path)
	}
	return path
}
