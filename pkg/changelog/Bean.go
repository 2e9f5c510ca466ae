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

package changelog

import (
	"errors"
	"github.com/samber/lo"
	"time"
)

const DefaultTitle = "Changelog"

const (
	FallbackReasonAiUnavailable = "ai-unavailable"
	FallbackReasonRewriteFailed = "rewrite-failed"
)

var (
	ErrEmptyCommitBatch   = errors.New("commit batch contains no commits")
	ErrInvalidCommit      = errors.New("invalid commit")
	ErrAIUnavailable      = errors.New("language model backend is not configured")
	ErrEmptyAgentResponse = errors.New("language model returned an empty response")
	ErrPipelineFailure    = errors.New("changelog pipeline failed")
)

type Commit struct {
	Hash    string    `json:"hash"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
}

type ClassifiedCommit struct {
	Commit
	Category CategoryTag `json:"category"`
	// Scope is empty when the commit carried no conventional scope.
	Scope string `json:"scope,omitempty"`
	// Description is the text rendered for the commit.
	Description string `json:"description"`
}

type CommitBatch struct {
	Commits   []Commit  `json:"commits"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Authors   []string  `json:"authors"`
}

// NewCommitBatch derives the date bounds and the author set from the commits themselves.
func NewCommitBatch(commits []Commit) CommitBatch {
	batch := CommitBatch{Commits: commits, Authors: []string{}}
	for i, commit := range commits {
		if i == 0 || commit.Date.Before(batch.StartDate) {
			batch.StartDate = commit.Date
		}
		if i == 0 || commit.Date.After(batch.EndDate) {
			batch.EndDate = commit.Date
		}
	}
	authors := lo.FilterMap(commits, func(commit Commit, _ int) (string, bool) {
		return commit.Author, commit.Author != ""
	})
	batch.Authors = lo.Uniq(authors)
	return batch
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) IsComplete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

type CategoryStats struct {
	// Total is the number of commits in the batch before truncation.
	Total      int                 `json:"total"`
	ByCategory map[CategoryTag]int `json:"byCategory"`
	DateRange  DateRange           `json:"dateRange"`
	Authors    []string            `json:"authors"`
	Truncated  bool                `json:"truncated"`
	Dropped    int                 `json:"dropped"`
}

type CategorizedResult struct {
	ByCategory map[CategoryTag][]ClassifiedCommit `json:"byCategory"`
	Stats      CategoryStats                      `json:"stats"`
}

type ChangelogMetadata struct {
	CommitCount    int       `json:"commitCount"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Authors        []string  `json:"authors"`
	Fallback       bool      `json:"fallback"`
	FallbackReason string    `json:"fallbackReason,omitempty"`
	Truncated      bool      `json:"truncated,omitempty"`
}

type GeneratedChangelog struct {
	Document string            `json:"changelog"`
	Summary  *string           `json:"summary"`
	Metadata ChangelogMetadata `json:"metadata"`
}

type GenerationRequest struct {
	CommitData      CommitBatch `json:"commitData"`
	Title           string      `json:"title,omitempty"`
	IncludeStats    bool        `json:"includeStats,omitempty"`
	GenerateSummary bool        `json:"generateSummary,omitempty"`
}
