// Package git wraps the repository operations chlog needs: origin remote
// inference and commit-range walks.
package git

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/ariel-frischer/chlog/internal/errors"
)

// debugLogger, when set, receives diagnostic messages from repository
// operations.
var debugLogger func(format string, args ...any)

// SetDebugLogger installs a logger for git diagnostics. Pass nil to
// disable.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func debugf(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Commit is one commit in a range walk.
type Commit struct {
	// Hash is the abbreviated (7 character) commit hash.
	Hash string
	// Subject is the first line of the commit message.
	Subject string
}

func openRepo(path string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, errors.NewNotFoundError(
			fmt.Sprintf("no git repository found at %s", path),
			"run chlog inside a git repository")
	}
	return repo, nil
}

// InferRemote derives the GitHub owner and repository name from the origin
// remote of the repository containing path. ok is false when there is no
// repository, no origin remote, or the URL is not a recognizable GitHub
// URL.
func InferRemote(path string) (owner, repo string, ok bool) {
	r, err := openRepo(path)
	if err != nil {
		debugf("remote inference: %v", err)
		return "", "", false
	}
	remote, err := r.Remote("origin")
	if err != nil {
		debugf("remote inference: no origin remote")
		return "", "", false
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", false
	}
	return parseGitHubURL(urls[0])
}

// parseGitHubURL extracts owner/repo from the SSH and HTTPS URL forms
// GitHub uses.
func parseGitHubURL(url string) (owner, repo string, ok bool) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		_, path, _ = strings.Cut(url, "github.com/")
	default:
		return "", "", false
	}
	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	owner, repo, ok = strings.Cut(path, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", false
	}
	return owner, repo, true
}

// ListCommits walks commits reachable from end but not from start, newest
// first. end defaults to HEAD when empty; an empty or unresolvable start
// leaves the walk unbounded. Revisions may be tags, branches, or hashes.
func ListCommits(path, start, end string) ([]Commit, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	endHash, err := resolveCommit(repo, end)
	if err != nil {
		return nil, err
	}

	// Commits reachable from start are already covered by a prior release
	// and must not reappear. An unresolvable start (tag not pushed yet) is
	// treated as no lower bound rather than an error.
	excluded := map[plumbing.Hash]bool{}
	if start != "" {
		if startHash, err := resolveCommit(repo, start); err == nil {
			if err := markAncestors(repo, startHash, excluded); err != nil {
				return nil, err
			}
		} else {
			debugf("start revision %s unresolvable, walking unbounded: %v", start, err)
		}
	}

	iter, err := repo.Log(&gogit.LogOptions{From: endHash})
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "walking commits")
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if excluded[c.Hash] {
			return nil
		}
		subject, _, _ := strings.Cut(c.Message, "\n")
		commits = append(commits, Commit{
			Hash:    c.Hash.String()[:7],
			Subject: strings.TrimSpace(subject),
		})
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "walking commits")
	}
	debugf("walked %d commits in %s..%s", len(commits), start, end)
	return commits, nil
}

// resolveCommit turns a revision string into a commit hash, peeling
// annotated tags.
func resolveCommit(repo *gogit.Repository, rev string) (plumbing.Hash, error) {
	if rev == "" || rev == "HEAD" {
		head, err := repo.Head()
		if err != nil {
			return plumbing.ZeroHash, errors.WrapWithMessage(err, errors.Runtime, "resolving HEAD")
		}
		return head.Hash(), nil
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, errors.NewNotFoundError(
			fmt.Sprintf("revision %s not found", rev))
	}
	if tag, err := repo.TagObject(*hash); err == nil {
		commit, err := tag.Commit()
		if err != nil {
			return plumbing.ZeroHash, errors.WrapWithMessage(err, errors.Runtime, "peeling tag")
		}
		return commit.Hash, nil
	}
	return *hash, nil
}

// markAncestors records from and every commit reachable from it.
func markAncestors(repo *gogit.Repository, from plumbing.Hash, seen map[plumbing.Hash]bool) error {
	iter, err := repo.Log(&gogit.LogOptions{From: from})
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "walking excluded commits")
	}
	defer iter.Close()
	return iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
}
