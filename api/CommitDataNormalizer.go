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


package api

import (
	"errors"
	"fmt"
	"github.com/goosewin/chronicler/pkg/changelog"
	"github.com/tidwall/gjson"
	"strings"
	"time"
)

var ErrInvalidRequestPayload = errors.New("invalid request payload")

// key variants accepted by the normaliser, in lookup order
var (
	commitDataKeys   = []string{"commitData", "commit_data"}
	startDateKeys    = []string{"startDate", "start_date"}
	endDateKeys      = []string{"endDate", "end_date"}
	commitHashKeys   = []string{"hash", "sha", "id"}
	commitDateKeys   = []string{"date", "timestamp"}
	authorObjectKeys = []string{"name", "login", "username"}
	includeStatsKeys = []string{"includeStats", "include_stats"}
	summaryFlagKeys  = []string{"generateSummary", "generate_summary"}
)

// stats are rendered unless the caller opts out
const defaultStatsValue = true

// NormalizeGenerationRequest reads a generate request from JSON. Batch dates and authors that are absent
// are derived from the commits.
func NormalizeGenerationRequest(payload string) (changelog.GenerationRequest, error) {
	request := changelog.GenerationRequest{}
	if !gjson.Valid(payload) {
		return request, fmt.Errorf("%w: body is not valid JSON", ErrInvalidRequestPayload)
	}
	root := gjson.Parse(payload)
	data := first(root, commitDataKeys)
	if !data.IsObject() {
		return request, fmt.Errorf("%w: commitData object is required", ErrInvalidRequestPayload)
	}

	rawCommits := data.Get("commits")
	if rawCommits.Exists() && !rawCommits.IsArray() {
		return request, fmt.Errorf("%w: commitData.commits must be an array", ErrInvalidRequestPayload)
	}
	commits := make([]changelog.Commit, 0, len(rawCommits.Array()))
	for i, raw := range rawCommits.Array() {
		commit, err := normalizeCommit(raw)
		if err != nil {
			return request, fmt.Errorf("%w: commit %d: %v", ErrInvalidRequestPayload, i, err)
		}
		commits = append(commits, commit)
	}

	batch := changelog.NewCommitBatch(commits)
	if start := first(data, startDateKeys); start.Exists() {
		date, err := parseDate(start)
		if err != nil {
			return request, fmt.Errorf("%w: startDate: %v", ErrInvalidRequestPayload, err)
		}
		batch.StartDate = date
	}
	if end := first(data, endDateKeys); end.Exists() {
		date, err := parseDate(end)
		if err != nil {
			return request, fmt.Errorf("%w: endDate: %v", ErrInvalidRequestPayload, err)
		}
		batch.EndDate = date
	}
	if authors := data.Get("authors"); authors.IsArray() && len(authors.Array()) > 0 {
		batch.Authors = batch.Authors[:0]
		for _, author := range authors.Array() {
			if name := strings.TrimSpace(author.String()); name != "" {
				batch.Authors = append(batch.Authors, name)
			}
		}
	}

	request.CommitData = batch
	request.Title = strings.TrimSpace(root.Get("title").String())
	request.IncludeStats = defaultStatsValue
	if stats := first(root, includeStatsKeys); stats.Exists() {
		request.IncludeStats = stats.Bool()
	}
	request.GenerateSummary = first(root, summaryFlagKeys).Bool()
	return request, nil
}

func normalizeCommit(raw gjson.Result) (changelog.Commit, error) {
	if !raw.IsObject() {
		return changelog.Commit{}, errors.New("must be an object")
	}
	rawDate := first(raw, commitDateKeys)
	if !rawDate.Exists() {
		return changelog.Commit{}, errors.New("date is required")
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return changelog.Commit{}, err
	}
	return changelog.Commit{
		Hash:    strings.TrimSpace(first(raw, commitHashKeys).String()),
		Message: raw.Get("message").String(),
		Author:  normalizeAuthor(raw.Get("author")),
		Date:    date,
	}, nil
}

func normalizeAuthor(author gjson.Result) string {
	if author.IsObject() {
		return strings.TrimSpace(first(author, authorObjectKeys).String())
	}
	return strings.TrimSpace(author.String())
}

// parseDate accepts RFC 3339 strings, plain dates and unix seconds.
func parseDate(value gjson.Result) (time.Time, error) {
	if value.Type == gjson.Number {
		return time.Unix(value.Int(), 0).UTC(), nil
	}
	text := strings.TrimSpace(value.String())
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if date, err := time.Parse(layout, text); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", text)
}

func first(value gjson.Result, keys []string) gjson.Result {
	for _, key := range keys {
		if result := value.Get(key); result.Exists() {
			return result
		}
	}
	return gjson.Result{}
}
