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
	"go.uber.org/zap"
	"regexp"
	"strings"
)

var conventionalCommitPattern = regexp.MustCompile(`(?i)^(feat|fix|docs|chore|refactor|style|test|perf|ci|build|revert)(\([a-z0-9_./-]+\))?!?:\s(.+)$`)

type heuristicRule struct {
	category CategoryTag
	keywords []string
}

// heuristicRules are evaluated in order; the first rule with a matching keyword wins.
var heuristicRules = []heuristicRule{
	{category: CategoryFeatures, keywords: []string{"add", "new", "feature", "implement", "support"}},
	{category: CategoryFixes, keywords: []string{"fix", "bug", "issue", "resolve", "correct"}},
	{category: CategoryDocs, keywords: []string{"doc", "readme", "comment"}},
	{category: CategoryRefactor, keywords: []string{"refactor", "clean", "restructure"}},
	{category: CategoryTest, keywords: []string{"test"}},
	{category: CategoryPerf, keywords: []string{"perf", "performance", "optimize"}},
}

type CommitClassifier interface {
	Classify(commit Commit) (ClassifiedCommit, error)
}

type CommitClassifierImpl struct {
	logger *zap.SugaredLogger
}

func NewCommitClassifierImpl(logger *zap.SugaredLogger) *CommitClassifierImpl {
	return &CommitClassifierImpl{logger: logger}
}

func (impl *CommitClassifierImpl) Classify(commit Commit) (ClassifiedCommit, error) {
	if strings.TrimSpace(commit.Hash) == "" {
		return ClassifiedCommit{}, fmt.Errorf("%w: missing hash for commit by %q", ErrInvalidCommit, commit.Author)
	}
	line := firstLine(commit.Message)
	if match := conventionalCommitPattern.FindStringSubmatch(line); match != nil {
		category, _ := ParseCategoryTag(match[1])
		return ClassifiedCommit{
			Commit:      commit,
			Category:    category,
			Scope:       strings.Trim(match[2], "()"),
			Description: strings.TrimSpace(match[3]),
		}, nil
	}
	return ClassifiedCommit{
		Commit:      commit,
		Category:    classifyByKeyword(line),
		Description: line,
	}, nil
}

func classifyByKeyword(line string) CategoryTag {
	lower := strings.ToLower(line)
	for _, rule := range heuristicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}
