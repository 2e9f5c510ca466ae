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
	"fmt"
	"github.com/goosewin/chronicler/internals"
	"github.com/goosewin/chronicler/internals/middleware"
	"go.uber.org/zap"
	"sort"
)

type CategoryAggregator interface {
	Aggregate(batch CommitBatch) CategorizedResult
}

type CategoryAggregatorImpl struct {
	logger     *zap.SugaredLogger
	classifier CommitClassifier
	maxCommits int
}

func NewCategoryAggregatorImpl(logger *zap.SugaredLogger, classifier CommitClassifier, cfg *internals.Configuration) *CategoryAggregatorImpl {
	return &CategoryAggregatorImpl{
		logger:     logger,
		classifier: classifier,
		maxCommits: cfg.MaxCommitsToClassify,
	}
}

func (impl *CategoryAggregatorImpl) Aggregate(batch CommitBatch) CategorizedResult {
	commits, truncated := impl.limit(batch.Commits)
	if truncated {
		middleware.TruncatedBatchCounter.WithLabelValues().Inc()
		impl.logger.Infow("commit batch truncated before classification", "total", len(batch.Commits), "kept", len(commits))
	}

	result := CategorizedResult{
		ByCategory: make(map[CategoryTag][]ClassifiedCommit),
		Stats: CategoryStats{
			Total:      len(batch.Commits),
			ByCategory: make(map[CategoryTag]int, len(AllCategories)),
			DateRange:  DateRange{Start: batch.StartDate, End: batch.EndDate},
			Authors:    batch.Authors,
			Truncated:  truncated,
		},
	}
	for _, tag := range AllCategories {
		result.Stats.ByCategory[tag] = 0
	}

	for _, commit := range commits {
		classified, err := impl.classify(commit)
		if err != nil {
			result.Stats.Dropped++
			middleware.ClassificationErrorCounter.WithLabelValues().Inc()
			impl.logger.Warnw("dropping commit that could not be classified", "hash", commit.Hash, "err", err)
			continue
		}
		result.ByCategory[classified.Category] = append(result.ByCategory[classified.Category], classified)
		result.Stats.ByCategory[classified.Category]++
	}
	return result
}

// limit keeps the most recent commits when the batch exceeds the classification cap.
func (impl *CategoryAggregatorImpl) limit(commits []Commit) ([]Commit, bool) {
	if impl.maxCommits <= 0 || len(commits) <= impl.maxCommits {
		return commits, false
	}
	sorted := make([]Commit, len(commits))
	copy(sorted, commits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted[:impl.maxCommits], true
}

func (impl *CategoryAggregatorImpl) classify(commit Commit) (classified ClassifiedCommit, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic while classifying %s: %v", ErrInvalidCommit, commit.Hash, r)
		}
	}()
	return impl.classifier.Classify(commit)
}
