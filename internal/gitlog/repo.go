package gitlog

import (
	"context"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/commitlens/commitlens/internal/errors"
)

// IsRemoteURL reports whether source names a remote repository rather
// than a local working tree.
func IsRemoteURL(source string) bool {
	return strings.Contains(source, "://") || strings.HasPrefix(source, "git@")
}

// Clone clones url into dir with the given git binary. History analysis
// needs the full history, so no shallow options are passed.
func Clone(ctx context.Context, gitBin, url, dir string) error {
	cmd := exec.CommandContext(ctx, gitBin, "clone", "--quiet", url, dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.GitErrorf(err, "clone %s failed: %s", url, strings.TrimSpace(string(out)))
	}
	return nil
}

// DetectRepo checks that path is inside a git working tree
// using git rev-parse to verify
func DetectRepo(ctx context.Context, gitBin, path string) error {
	cmd := exec.CommandContext(ctx, gitBin, "rev-parse", "--is-inside-work-tree")
	cmd.Dir = path
	if err := cmd.Run(); err != nil {
		return errors.GitErrorf(err, "%s is not a git repository", path)
	}
	return nil
}

// DisplayName derives a short org/repo label for a source, used in
// reports and saved runs. Local paths fall back to their base name and
// unparseable URLs to the raw source string.
func DisplayName(source string) string {
	if !IsRemoteURL(source) {
		abs, err := filepath.Abs(source)
		if err != nil {
			return source
		}
		return filepath.Base(abs)
	}
	org, repo, err := ParseRepoURL(source)
	if err != nil {
		return source
	}
	return org + "/" + repo
}

// ParseRepoURL extracts org and repo name from a git URL.
// Supports multiple URL formats:
//   - HTTPS: https://github.com/owner/repo.git
//   - SSH: git@github.com:owner/repo.git
//   - Git protocol: git://github.com/owner/repo.git
func ParseRepoURL(remoteURL string) (org, repo string, err error) {
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	httpsRegex := regexp.MustCompile(`https?://[^/]+/([^/]+)/([^/]+)`)
	if matches := httpsRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	sshRegex := regexp.MustCompile(`git@[^:]+:([^/]+)/([^/]+)`)
	if matches := sshRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	gitRegex := regexp.MustCompile(`git://[^/]+/([^/]+)/([^/]+)`)
	if matches := gitRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	return "", "", errors.New(errors.ErrorTypeGit, "unrecognized git URL format: "+remoteURL)
}
