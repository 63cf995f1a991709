package marketplace

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/skillmart/skillmart/internal/logging"
)

// Installer installs and removes skills under a single skills directory.
type Installer struct {
	skillsDir string
	fetcher   Fetcher
	sources   Sources
}

// NewInstaller creates an installer rooted at skillsDir.
func NewInstaller(skillsDir string, fetcher Fetcher, sources Sources) *Installer {
	return &Installer{
		skillsDir: skillsDir,
		fetcher:   fetcher,
		sources:   sources,
	}
}

// Install resolves ref, fetches the skill's subtree into a temporary clone
// under the skills directory, and moves it into place. It refuses to
// overwrite an existing installation. The installed skill name is returned.
func (i *Installer) Install(ctx context.Context, rawRef string) (string, error) {
	if err := os.MkdirAll(i.skillsDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create skills directory: %w", err)
	}

	ref, err := ParseRef(rawRef)
	if err != nil {
		return "", err
	}

	target := filepath.Join(i.skillsDir, ref.Name)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("skill %q: remove it first to reinstall: %w", ref.Name, ErrAlreadyInstalled)
	}

	logging.Info("installing skill",
		logging.Skill(ref.Name),
		logging.Repo(ref.RepoURL),
		logging.Operation("install"),
	)

	// Temp clone lives next to the target so the final move stays on one
	// filesystem.
	tmpDir := filepath.Join(i.skillsDir, ".tmp_"+ref.Name)
	subdir := path.Join("skills", ref.Name)

	if err := i.fetcher.Fetch(ctx, ref.RepoURL, subdir, tmpDir); err != nil {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			logging.Warn("failed to clean up temp clone", logging.Path(tmpDir), logging.Err(rmErr))
		}
		return "", err
	}

	source := filepath.Join(tmpDir, "skills", ref.Name)
	if _, err := os.Stat(source); err != nil {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			logging.Warn("failed to clean up temp clone", logging.Path(tmpDir), logging.Err(rmErr))
		}
		return "", fmt.Errorf("skill %q: %w", ref.Name, ErrSkillMissing)
	}

	if err := os.Rename(source, target); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to move skill into place: %w", err)
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		logging.Warn("failed to clean up temp clone", logging.Path(tmpDir), logging.Err(err))
	}

	logging.Info("skill installed", logging.Skill(ref.Name), logging.Path(target))
	return ref.Name, nil
}

// Remove deletes an installed skill directory. The reference is resolved to
// a name only; the source repository is never contacted.
func (i *Installer) Remove(rawRef string) (string, error) {
	name := SkillNameFromRef(rawRef)
	target := filepath.Join(i.skillsDir, name)

	if _, err := os.Stat(target); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("skill %q: %w", name, ErrNotInstalled)
		}
		return "", fmt.Errorf("failed to stat skill directory: %w", err)
	}

	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("failed to remove skill %q: %w", name, err)
	}

	logging.Info("skill removed", logging.Skill(name), logging.Path(target))
	return name, nil
}

// SearchResult is a single marketplace search or listing entry.
type SearchResult struct {
	Message string `json:"message"`
}

// Search queries the marketplace for skills matching query.
// TODO(marketplace): query the sources' skill indexes once the upstream
// marketplace publishes one; until then this returns a pointer to the
// primary source.
func (i *Installer) Search(query string) []SearchResult {
	return []SearchResult{
		{Message: fmt.Sprintf("Marketplace search not yet implemented. Check %s for available skills.", i.sources.Primary())},
	}
}

// ListAvailable lists skills available from the configured sources.
func (i *Installer) ListAvailable() []SearchResult {
	return []SearchResult{
		{Message: fmt.Sprintf("Marketplace listing not yet implemented. Check %s for available skills.", i.sources.Primary())},
	}
}
