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
	"fmt"
	"github.com/goosewin/chronicler/internals"
	"go.uber.org/zap"
	"sort"
	"strings"
	"time"
)

const (
	humanDateLayout = "Mon Jan 02 2006"
	shortHashLength = 8
	noChangesLine   = "No categorized changes found."
)

var errEmptyDescription = errors.New("commit has no message to render")

type MarkdownRenderer interface {
	Render(result CategorizedResult, title string, includeStats bool) string
}

type MarkdownRendererImpl struct {
	logger                *zap.SugaredLogger
	maxSummaryCategories  int
	maxContributors       int
	maxCommitsPerCategory int
	maxMessageLength      int
}

func NewMarkdownRendererImpl(logger *zap.SugaredLogger, cfg *internals.Configuration) *MarkdownRendererImpl {
	return &MarkdownRendererImpl{
		logger:                logger,
		maxSummaryCategories:  cfg.MaxSummaryCategories,
		maxContributors:       cfg.MaxContributors,
		maxCommitsPerCategory: cfg.MaxCommitsPerCategory,
		maxMessageLength:      cfg.MaxMessageLength,
	}
}

func (impl *MarkdownRendererImpl) Render(result CategorizedResult, title string, includeStats bool) (document string) {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	defer func() {
		if r := recover(); r != nil {
			impl.logger.Errorw("changelog rendering failed, returning fallback document", "title", title, "err", r)
			document = fallbackDocument(title, fmt.Sprint(r))
		}
	}()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if result.Stats.DateRange.IsComplete() {
		fmt.Fprintf(&sb, "Generated from changes between %s and %s.\n\n",
			formatHumanDate(result.Stats.DateRange.Start), formatHumanDate(result.Stats.DateRange.End))
	}
	if includeStats {
		impl.renderSummary(&sb, result.Stats)
	}

	rendered := 0
	for _, tag := range RenderOrder {
		commits := result.ByCategory[tag]
		if len(commits) == 0 {
			continue
		}
		if impl.renderCategory(&sb, tag, commits) {
			rendered++
		}
	}
	if rendered == 0 {
		sb.WriteString(noChangesLine + "\n")
	}
	return sb.String()
}

func (impl *MarkdownRendererImpl) renderSummary(sb *strings.Builder, stats CategoryStats) {
	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(sb, "- Total changes: %d\n", stats.Total)

	counts := make([]CategoryTag, 0, len(stats.ByCategory))
	for tag, count := range stats.ByCategory {
		if count > 0 && tag.IsValid() {
			counts = append(counts, tag)
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		ci, cj := stats.ByCategory[counts[i]], stats.ByCategory[counts[j]]
		if ci != cj {
			return ci > cj
		}
		return counts[i].renderRank() < counts[j].renderRank()
	})
	shown := counts
	if impl.maxSummaryCategories > 0 && len(counts) > impl.maxSummaryCategories {
		shown = counts[:impl.maxSummaryCategories]
	}
	for _, tag := range shown {
		fmt.Fprintf(sb, "- %s: %d\n", tag.DisplayName(), stats.ByCategory[tag])
	}
	if hidden := len(counts) - len(shown); hidden > 0 {
		fmt.Fprintf(sb, "- +%d more categories\n", hidden)
	}
	sb.WriteString("\n")

	if len(stats.Authors) == 0 {
		return
	}
	sb.WriteString("### Contributors\n\n")
	authors := stats.Authors
	if impl.maxContributors > 0 && len(authors) > impl.maxContributors {
		authors = authors[:impl.maxContributors]
	}
	for _, author := range authors {
		fmt.Fprintf(sb, "- %s\n", author)
	}
	if others := len(stats.Authors) - len(authors); others > 0 {
		fmt.Fprintf(sb, "- and %d others\n", others)
	}
	sb.WriteString("\n")
}

// renderCategory writes the section for tag and reports whether anything was written.
// The per-category cap applies to bullets actually rendered.
func (impl *MarkdownRendererImpl) renderCategory(sb *strings.Builder, tag CategoryTag, commits []ClassifiedCommit) bool {
	var bullets strings.Builder
	written, next := 0, 0
	for ; next < len(commits); next++ {
		if impl.maxCommitsPerCategory > 0 && written >= impl.maxCommitsPerCategory {
			break
		}
		commit := commits[next]
		bullet, err := impl.renderBullet(commit)
		if err != nil {
			impl.logger.Warnw("skipping changelog entry", "hash", commit.Hash, "category", tag.String(), "err", err)
			continue
		}
		bullets.WriteString(bullet)
		written++
	}
	remaining := len(commits) - next
	if written == 0 && remaining == 0 {
		return false
	}
	fmt.Fprintf(sb, "## %s\n\n", tag.DisplayName())
	sb.WriteString(bullets.String())
	if remaining > 0 {
		fmt.Fprintf(sb, "... and %d more\n", remaining)
	}
	sb.WriteString("\n")
	return true
}

func (impl *MarkdownRendererImpl) renderBullet(commit ClassifiedCommit) (bullet string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formatting commit %s: %v", commit.Hash, r)
		}
	}()
	description := strings.TrimSpace(commit.Description)
	if description == "" {
		return "", errEmptyDescription
	}
	var sb strings.Builder
	sb.WriteString("- ")
	if commit.Scope != "" {
		fmt.Fprintf(&sb, "**%s**: ", commit.Scope)
	}
	sb.WriteString(truncateText(description, impl.maxMessageLength))
	fmt.Fprintf(&sb, " (`%s`)\n", shortHash(commit.Hash))
	return sb.String(), nil
}

func fallbackDocument(title, reason string) string {
	return fmt.Sprintf("# %s\n\nThe changelog could not be rendered: %s\n", title, reason)
}

func formatHumanDate(t time.Time) string {
	return t.UTC().Format(humanDateLayout)
}

func shortHash(hash string) string {
	runes := []rune(hash)
	if len(runes) <= shortHashLength {
		return hash
	}
	return string(runes[:shortHashLength])
}

// truncateText shortens text to maxLength runes, ending with "...".
func truncateText(text string, maxLength int) string {
	runes := []rune(text)
	if maxLength <= 0 || len(runes) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
