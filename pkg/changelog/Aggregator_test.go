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
	"testing"
	"time"

	"github.com/goosewin/chronicler/internals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classifierFunc func(commit Commit) (ClassifiedCommit, error)

func (f classifierFunc) Classify(commit Commit) (ClassifiedCommit, error) {
	return f(commit)
}

func TestAggregateCountsEveryCommit(t *testing.T) {

	// Arrange
	messages := []string{
		"feat: a", "feat(ui): b", "fix: c", "docs: d", "chore: e", "refactor: f",
		"style: g", "test: h", "perf: i", "ci: j", "build: k", "revert: l", "whatever",
	}
	commits := make([]Commit, 0, len(messages))
	for i, message := range messages {
		commits = append(commits, newCommit(i, message, "alice"))
	}
	batch := NewCommitBatch(commits)

	// Action
	result := newTestAggregator().Aggregate(batch)

	// Assert
	assert.Equal(t, len(messages), result.Stats.Total)
	assert.Equal(t, len(messages), classifiedCount(result))
	assert.False(t, result.Stats.Truncated)
	assert.Len(t, result.Stats.ByCategory, len(AllCategories))
	sum := 0
	for tag, count := range result.Stats.ByCategory {
		assert.Equal(t, len(result.ByCategory[tag]), count, tag.String())
		sum += count
	}
	assert.Equal(t, len(messages), sum)
	assert.Equal(t, 2, result.Stats.ByCategory[CategoryFeatures])
	assert.Equal(t, 1, result.Stats.ByCategory[CategoryOther])
}

func TestAggregatePreservesOrderWithinCategory(t *testing.T) {
	commits := []Commit{
		newCommit(0, "fix: first", "alice"),
		newCommit(1, "feat: unrelated", "bob"),
		newCommit(2, "fix: second", "alice"),
		newCommit(3, "fix: third", "carol"),
	}

	result := newTestAggregator().Aggregate(NewCommitBatch(commits))

	fixes := result.ByCategory[CategoryFixes]
	require.Len(t, fixes, 3)
	assert.Equal(t, "first", fixes[0].Description)
	assert.Equal(t, "second", fixes[1].Description)
	assert.Equal(t, "third", fixes[2].Description)
}

func TestAggregateEchoesRequestedRange(t *testing.T) {
	start := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	batch := CommitBatch{
		Commits:   commitsWithMessage(3, "fix: thing"),
		StartDate: start,
		EndDate:   end,
		Authors:   []string{"alice", "dave"},
	}

	result := newTestAggregator().Aggregate(batch)

	assert.Equal(t, start, result.Stats.DateRange.Start)
	assert.Equal(t, end, result.Stats.DateRange.End)
	assert.Equal(t, []string{"alice", "dave"}, result.Stats.Authors)
}

func TestAggregateTruncatesToMostRecentCommits(t *testing.T) {

	// Arrange
	commits := commitsWithMessage(600, "feat: item")
	// oldest last, so truncation cannot simply keep a prefix
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
	commits[0], commits[599] = commits[599], commits[0]
	batch := NewCommitBatch(commits)

	// Action
	result := newTestAggregator().Aggregate(batch)

	// Assert
	assert.Equal(t, 600, result.Stats.Total)
	assert.True(t, result.Stats.Truncated)
	assert.Equal(t, 500, classifiedCount(result))
	kept := result.ByCategory[CategoryFeatures]
	require.Len(t, kept, 500)
	cutoff := baseTime.Add(100 * time.Hour)
	for _, commit := range kept {
		assert.False(t, commit.Date.Before(cutoff), commit.Hash)
	}
	assert.Equal(t, baseTime.Add(599*time.Hour), kept[0].Date)
	assert.Len(t, batch.Commits, 600)
}

func TestAggregateHonoursConfiguredCap(t *testing.T) {
	cfg := &internals.Configuration{MaxCommitsToClassify: 5}
	aggregator := NewCategoryAggregatorImpl(testLogger(), NewCommitClassifierImpl(testLogger()), cfg)

	result := aggregator.Aggregate(NewCommitBatch(commitsWithMessage(8, "fix: x")))

	assert.Equal(t, 8, result.Stats.Total)
	assert.Equal(t, 5, classifiedCount(result))
}

func TestAggregateDropsCommitsThatFailClassification(t *testing.T) {

	// Arrange
	commits := commitsWithMessage(10, "fix: thing")
	commits[3].Hash = ""
	commits[7].Message = "explode"
	classifier := NewCommitClassifierImpl(testLogger())
	panicky := classifierFunc(func(commit Commit) (ClassifiedCommit, error) {
		if commit.Message == "explode" {
			panic("unexpected input")
		}
		return classifier.Classify(commit)
	})
	aggregator := NewCategoryAggregatorImpl(testLogger(), panicky, testConfig())

	// Action
	result := aggregator.Aggregate(NewCommitBatch(commits))

	// Assert
	assert.Equal(t, 10, result.Stats.Total)
	assert.Equal(t, 2, result.Stats.Dropped)
	assert.Equal(t, 8, classifiedCount(result))
	assert.Equal(t, 8, result.Stats.ByCategory[CategoryFixes])
}

func TestNewCommitBatch(t *testing.T) {
	commits := []Commit{
		newCommit(5, "a", "bob"),
		newCommit(1, "b", "alice"),
		newCommit(9, "c", "bob"),
		newCommit(3, "d", ""),
	}

	batch := NewCommitBatch(commits)

	assert.Equal(t, baseTime.Add(1*time.Hour), batch.StartDate)
	assert.Equal(t, baseTime.Add(9*time.Hour), batch.EndDate)
	assert.Equal(t, []string{"bob", "alice"}, batch.Authors)
	assert.False(t, batch.StartDate.After(batch.EndDate))
}
