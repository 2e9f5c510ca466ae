/*
 * Copyright (c) 2020-2024. Devtron Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package git

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/goosewin/chronicler/internals"
	"github.com/goosewin/chronicler/pkg/changelog"
	"github.com/goosewin/chronicler/util"
	"go.uber.org/zap"
	"strings"
	"time"
)

type RepositoryCommitSource interface {
	// ResolveCommits reads the commits named by selector from a repository below the git base directory
	ResolveCommits(ctx context.Context, selector CommitSelector) (*ResolvedCommits, error)
}

type RepositoryCommitSourceImpl struct {
	logger         *zap.SugaredLogger
	conf           *internals.Configuration
	locker         *internals.RepositoryLocker
	openRepository func(path string) (*git.Repository, error)
}

func NewRepositoryCommitSourceImpl(logger *zap.SugaredLogger, conf *internals.Configuration, locker *internals.RepositoryLocker) *RepositoryCommitSourceImpl {
	return &RepositoryCommitSourceImpl{
		logger:         logger,
		conf:           conf,
		locker:         locker,
		openRepository: openRepoPlain,
	}
}

func openRepoPlain(path string) (*git.Repository, error) {
	return git.PlainOpen(path)
}

func (impl *RepositoryCommitSourceImpl) ResolveCommits(ctx context.Context, selector CommitSelector) (resolved *ResolvedCommits, err error) {
	selector, err = normalizeSelector(selector)
	if err != nil {
		return nil, err
	}
	repositoryPath, err := ResolveRepositoryPath(impl.conf.GitBaseDir, selector.Repository)
	if err != nil {
		impl.logger.Warnw("rejected repository path", "repository", selector.Repository, "err", err)
		return nil, err
	}

	start := time.Now()
	defer func() {
		util.TriggerGitOperationMetrics(string(selector.Type), start, err)
	}()
	gitCtx, cancel := BuildGitContext(ctx).
		WithRepositoryPath(repositoryPath).
		WithHistoryLimit(impl.conf.GitHistoryCount).
		WithTimeout(impl.conf.GitOperationTimeoutInSec)
	defer cancel()

	project := GetProjectName(repositoryPath)
	// the lock is held by the reading goroutine, so a read abandoned on timeout still blocks the next one
	resolved, err = RunWithTimeout(gitCtx, func() (*ResolvedCommits, error) {
		var lockedResult *ResolvedCommits
		lockErr := impl.locker.WithRepositoryLock(repositoryPath, func() error {
			if ctxErr := gitCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			repository, openErr := impl.openRepository(repositoryPath)
			if openErr != nil {
				return fmt.Errorf("opening repository %s: %w", selector.Repository, openErr)
			}
			var resolveErr error
			lockedResult, resolveErr = impl.resolve(gitCtx, repository, selector)
			return resolveErr
		})
		return lockedResult, lockErr
	})
	if err != nil {
		impl.logger.Errorw("error in resolving commits", "project", project, "repository", repositoryPath, "selector", selector.Type, "err", err)
		return nil, err
	}
	if len(resolved.Commits) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoCommitsInRange, selector.Type, selector.Repository)
	}
	if resolved.Limited {
		impl.logger.Warnw("commit history limit reached", "project", project, "repository", repositoryPath, "limit", gitCtx.HistoryLimit)
	}
	impl.logger.Debugw("resolved commits", "project", project, "repository", repositoryPath, "selector", selector.Type, "count", len(resolved.Commits))
	return resolved, nil
}

func normalizeSelector(selector CommitSelector) (CommitSelector, error) {
	selector.FromRef = strings.TrimSpace(selector.FromRef)
	selector.ToRef = strings.TrimSpace(selector.ToRef)
	selector.CommitHash = strings.TrimSpace(selector.CommitHash)
	switch selector.Type {
	case SelectorCommitRange:
		if selector.FromRef == "" {
			return selector, fmt.Errorf("%w: fromRef is required for %s", ErrInvalidSelector, selector.Type)
		}
		if selector.ToRef == "" {
			selector.ToRef = HeadRef
		}
	case SelectorCommit:
		if selector.CommitHash == "" {
			return selector, fmt.Errorf("%w: commitHash is required for %s", ErrInvalidSelector, selector.Type)
		}
	case SelectorReleaseRange:
		if selector.FromRef == "" || selector.ToRef == "" {
			return selector, fmt.Errorf("%w: fromRef and toRef are required for %s", ErrInvalidSelector, selector.Type)
		}
	case SelectorRelease:
		if selector.ToRef == "" {
			return selector, fmt.Errorf("%w: toRef is required for %s", ErrInvalidSelector, selector.Type)
		}
	default:
		return selector, fmt.Errorf("%w: %q", ErrUnsupportedSelector, selector.Type)
	}
	return selector, nil
}

func (impl *RepositoryCommitSourceImpl) resolve(gitCtx GitContext, repository *git.Repository, selector CommitSelector) (*ResolvedCommits, error) {
	switch selector.Type {
	case SelectorCommit:
		commit, err := resolveCommit(repository, selector.CommitHash)
		if err != nil {
			return nil, err
		}
		return &ResolvedCommits{
			Commits: []changelog.Commit{toChangelogCommit(commit)},
			Title:   fmt.Sprintf("Commit %s", ShortHash(commit.Hash.String())),
		}, nil
	case SelectorRelease:
		to, err := resolveCommit(repository, selector.ToRef)
		if err != nil {
			return nil, err
		}
		from, err := impl.previousTagCommit(gitCtx, repository, selector.ToRef, to)
		if err != nil {
			return nil, err
		}
		return impl.rangeCommits(gitCtx, repository, from, to, fmt.Sprintf("Release %s", selector.ToRef))
	default:
		from, err := resolveCommit(repository, selector.FromRef)
		if err != nil {
			return nil, err
		}
		to, err := resolveCommit(repository, selector.ToRef)
		if err != nil {
			return nil, err
		}
		title := fmt.Sprintf("Changelog %s to %s", selector.FromRef, selector.ToRef)
		if selector.Type == SelectorReleaseRange {
			title = fmt.Sprintf("Release %s", selector.ToRef)
		}
		return impl.rangeCommits(gitCtx, repository, from, to, title)
	}
}

// rangeCommits returns the commits reachable from to but not from from, newest first in walk order.
// A nil from selects the whole history of to.
func (impl *RepositoryCommitSourceImpl) rangeCommits(gitCtx GitContext, repository *git.Repository, from, to *object.Commit, title string) (*ResolvedCommits, error) {
	excluded := map[plumbing.Hash]bool{}
	if from != nil {
		var err error
		excluded, err = ancestors(gitCtx, repository, from.Hash)
		if err != nil {
			return nil, err
		}
	}
	isExcluded := object.CommitFilter(func(c *object.Commit) bool {
		return excluded[c.Hash]
	})
	isIncluded := object.CommitFilter(func(c *object.Commit) bool {
		return !excluded[c.Hash]
	})
	itr := object.NewFilterCommitIter(to, &isIncluded, &isExcluded)
	defer itr.Close()

	resolved := &ResolvedCommits{Title: title}
	err := itr.ForEach(func(c *object.Commit) error {
		if err := gitCtx.Err(); err != nil {
			return err
		}
		if gitCtx.HistoryLimit > 0 && len(resolved.Commits) >= gitCtx.HistoryLimit {
			resolved.Limited = true
			return storer.ErrStop
		}
		resolved.Commits = append(resolved.Commits, toChangelogCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history of %s: %w", ShortHash(to.Hash.String()), err)
	}
	return resolved, nil
}

// previousTagCommit finds the most recent tagged commit that is a strict ancestor of release.
func (impl *RepositoryCommitSourceImpl) previousTagCommit(gitCtx GitContext, repository *git.Repository, releaseTag string, release *object.Commit) (*object.Commit, error) {
	reachable, err := ancestors(gitCtx, repository, release.Hash)
	if err != nil {
		return nil, err
	}
	tags, err := repository.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer tags.Close()

	var previous *object.Commit
	var previousTag string
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if name == releaseTag {
			return nil
		}
		commit, err := peelToCommit(repository, ref.Hash())
		if err != nil {
			impl.logger.Debugw("skipping tag not pointing to a commit", "tag", name, "err", err)
			return nil
		}
		if commit.Hash == release.Hash || !reachable[commit.Hash] {
			return nil
		}
		if previous == nil || commit.Committer.When.After(previous.Committer.When) {
			previous = commit
			previousTag = name
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	if previous == nil {
		impl.logger.Infow("no earlier tag found, using full history", "tag", releaseTag)
		return nil, nil
	}
	impl.logger.Debugw("resolved previous tag", "tag", releaseTag, "previous", previousTag)
	return previous, nil
}

func ancestors(gitCtx GitContext, repository *git.Repository, from plumbing.Hash) (map[plumbing.Hash]bool, error) {
	itr, err := repository.Log(&git.LogOptions{From: from})
	if err != nil {
		return nil, fmt.Errorf("error in getting iterator for %s: %w", ShortHash(from.String()), err)
	}
	defer itr.Close()
	seen := map[plumbing.Hash]bool{}
	err = itr.ForEach(func(c *object.Commit) error {
		if err := gitCtx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

func resolveCommit(repository *git.Repository, revision string) (*object.Commit, error) {
	hash, err := repository.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", revision, err)
	}
	commit, err := repository.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", ShortHash(hash.String()), err)
	}
	return commit, nil
}

func peelToCommit(repository *git.Repository, hash plumbing.Hash) (*object.Commit, error) {
	commit, err := repository.CommitObject(hash)
	if err == nil {
		return commit, nil
	}
	if !errors.Is(err, plumbing.ErrObjectNotFound) && !errors.Is(err, plumbing.ErrInvalidType) {
		return nil, err
	}
	tag, tagErr := repository.TagObject(hash)
	if tagErr != nil {
		return nil, err
	}
	return tag.Commit()
}
