package marketplace

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/skillmart/skillmart/internal/logging"
)

// Fetcher retrieves a sparse subtree of a remote repository into a local
// destination directory. Narrowing retrieval to this single capability keeps
// the installer independent of how the bytes actually arrive.
type Fetcher interface {
	Fetch(ctx context.Context, repoURL, subdir, dest string) error
}

// GitFetcher fetches via the git executable: a shallow, blob-less sparse
// clone followed by narrowing the sparse checkout to the requested subtree.
// All network access is delegated to git.
type GitFetcher struct {
	// GitPath overrides the git executable to invoke. Defaults to "git".
	GitPath string
}

func (f *GitFetcher) git() string {
	if f.GitPath != "" {
		return f.GitPath
	}
	return "git"
}

// Fetch clones repoURL into dest and restricts the checkout to subdir.
func (f *GitFetcher) Fetch(ctx context.Context, repoURL, subdir, dest string) error {
	logging.Debug("cloning repository", logging.Repo(repoURL), logging.Path(dest))

	if err := f.run(ctx, "clone", repoURL,
		f.git(), "clone", "--depth", "1", "--filter=blob:none", "--sparse", repoURL, dest); err != nil {
		return err
	}

	logging.Debug("narrowing sparse checkout", logging.Repo(repoURL), logging.Path(subdir))

	return f.run(ctx, "sparse-checkout", repoURL,
		f.git(), "-C", dest, "sparse-checkout", "set", subdir)
}

// run executes a git command, capturing stderr for error reporting.
func (f *GitFetcher) run(ctx context.Context, op, repo string, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &FetchError{
			Op:     op,
			Repo:   repo,
			Stderr: stderr.String(),
			Err:    err,
		}
	}
	return nil
}
