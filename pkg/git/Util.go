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
	"fmt"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/goosewin/chronicler/pkg/changelog"
	"path/filepath"
	"strings"
)

func GetProjectName(repositoryPath string) string {
	//if path = /git-base/github.com/goosewin/chronicler.git then it will return chronicler
	repositoryPath = strings.TrimSuffix(filepath.ToSlash(repositoryPath), "/")
	repositoryPath = strings.TrimSuffix(repositoryPath, "/.git")
	repositoryPath = repositoryPath[strings.LastIndex(repositoryPath, "/")+1:]
	return strings.TrimSuffix(repositoryPath, ".git")
}

// ResolveRepositoryPath joins a relative repository onto baseDir and rejects any result that escapes it.
func ResolveRepositoryPath(baseDir string, repository string) (string, error) {
	repository = strings.TrimSpace(repository)
	if repository == "" {
		return "", fmt.Errorf("%w: repository is required", ErrInvalidSelector)
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	target := repository
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	target = filepath.Clean(target)
	rel, err := filepath.Rel(base, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrRepositoryOutsideBaseDir, repository)
	}
	return target, nil
}

func ShortHash(hash string) string {
	if len(hash) > shortHashSize {
		return hash[:shortHashSize]
	}
	return hash
}

func toChangelogCommit(commit *object.Commit) changelog.Commit {
	author := commit.Author.Name
	if author == "" {
		author = commit.Author.Email
	}
	return changelog.Commit{
		Hash:    commit.Hash.String(),
		Message: strings.TrimSpace(commit.Message),
		Author:  author,
		Date:    commit.Author.When,
	}
}
