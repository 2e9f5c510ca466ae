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
	"errors"
	"github.com/goosewin/chronicler/pkg/changelog"
)

type SelectorType string

const (
	SelectorCommitRange  SelectorType = "commit_range"
	SelectorCommit       SelectorType = "commit"
	SelectorReleaseRange SelectorType = "release_range"
	SelectorRelease      SelectorType = "release"
)

const (
	HeadRef       = "HEAD"
	shortHashSize = 8
)

var (
	ErrRepositoryOutsideBaseDir = errors.New("repository path is outside the git base directory")
	ErrUnsupportedSelector      = errors.New("unsupported commit selector")
	ErrInvalidSelector          = errors.New("invalid commit selector")
	ErrNoCommitsInRange         = errors.New("no commits found for selector")
)

// CommitSelector names the commits of a repository a changelog is generated from.
type CommitSelector struct {
	Repository string       `json:"repository"`
	Type       SelectorType `json:"type"`
	FromRef    string       `json:"fromRef,omitempty"`
	ToRef      string       `json:"toRef,omitempty"`
	CommitHash string       `json:"commitHash,omitempty"`
}

type ResolvedCommits struct {
	Commits []changelog.Commit
	// Title is derived from the selector, e.g. "Release v1.2.0".
	Title string
	// Limited is set when the history limit stopped the walk before the range start.
	Limited bool
}
