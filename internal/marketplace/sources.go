package marketplace

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/skillmart/skillmart/internal/logging"
)

// DefaultSource is the marketplace repository consulted when no sources
// file is configured.
const DefaultSource = "https://github.com/anthropics/skills"

// Sources is the marketplace source registry, loaded from a small TOML file:
//
//	sources = [
//	  "https://github.com/anthropics/skills",
//	]
type Sources struct {
	Sources []string `toml:"sources"`
}

// DefaultSources returns the built-in source list.
func DefaultSources() Sources {
	return Sources{Sources: []string{DefaultSource}}
}

// LoadSources reads the source registry from path. A missing file yields
// the defaults; a malformed file is an error.
func LoadSources(path string) (Sources, error) {
	// #nosec G304 - path comes from the configuration layer
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("sources file not found, using defaults", logging.Path(path))
			return DefaultSources(), nil
		}
		return Sources{}, fmt.Errorf("failed to read sources file %q: %w", path, err)
	}

	var sources Sources
	if err := toml.Unmarshal(data, &sources); err != nil {
		return Sources{}, fmt.Errorf("failed to parse sources file %q: %w", path, err)
	}

	if len(sources.Sources) == 0 {
		sources = DefaultSources()
	}
	return sources, nil
}

// Primary returns the first configured source.
func (s Sources) Primary() string {
	if len(s.Sources) > 0 {
		return s.Sources[0]
	}
	return DefaultSource
}
